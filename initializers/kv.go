package initializers

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"career-portal-frontend/config"
	"career-portal-frontend/lib/kv"
)

// InitKV подключает redis; при недоступности работаем на in-memory хранилище,
// сессии в этом режиме живут до перезапуска процесса
func InitKV(ctx context.Context) kv.Provider {
	addr := fmt.Sprintf("%v:%v", config.Conf.Redis.Host, config.Conf.Redis.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).
			WithField("addr", addr).
			Warn("redis недоступен, хранилище сессий в памяти")
		_ = client.Close()
		return kv.NewMemoryInstance()
	}
	log.WithField("addr", addr).Info("redis подключен")
	return kv.NewRedisInstance(client)
}
