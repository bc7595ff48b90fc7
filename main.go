package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	log "github.com/sirupsen/logrus"

	"career-portal-frontend/config"
	"career-portal-frontend/controllers"
	"career-portal-frontend/fiberlog"
	"career-portal-frontend/initializers"
	"career-portal-frontend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	engine := html.New(config.Conf.App.ViewsDir, ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(fiberRecover.New())
	app.Use(cors.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Use(middleware.SessionLoader())

	app.Static("/static", config.Conf.App.StaticDir)

	controllers.InitPageRouters(app)
	controllers.InitAuthRouters(app)
	controllers.InitVacancyRouters(app)
	controllers.InitProfileRouters(app)
	controllers.InitEmployerRouters(app)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
