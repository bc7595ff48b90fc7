package initializers

import (
	"context"
	"time"

	"career-portal-frontend/config"
	"career-portal-frontend/fiberlog"
	"career-portal-frontend/lib/auth"
	"career-portal-frontend/lib/flash"
	"career-portal-frontend/lib/portal/client"
	profilehandler "career-portal-frontend/lib/profile"
	reviewhandler "career-portal-frontend/lib/review"
	sessionstore "career-portal-frontend/lib/session/store"
	vacancyhandler "career-portal-frontend/lib/vacancy"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()

	store := InitKV(ctx)
	sessionTTL := time.Duration(config.Conf.Session.TTLInHours) * time.Hour
	sessionstore.NewHandler(store, sessionTTL)
	flash.NewHandler(store)

	backendTimeout := time.Duration(config.Conf.Backend.TimeoutInSec) * time.Second
	client.NewProvider(config.Conf.Backend.Host, backendTimeout)

	auth.NewHandler()
	vacancyhandler.NewHandler()
	profilehandler.NewHandler()
	reviewhandler.NewHandler()
}
