package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"3000"  env:"APP_PORT"`
		StaticDir  string `default:"./static" env:"APP_STATIC_DIR"`
		ViewsDir   string `default:"./views" env:"APP_VIEWS_DIR"`
	}
	Backend struct {
		Host         string `default:"http://localhost:8080" env:"BACKEND_HOST"`
		TimeoutInSec int    `default:"15" env:"BACKEND_TIMEOUT_IN_SEC"`
	}
	Session struct {
		CookieName      string `default:"portal_session" env:"SESSION_COOKIE_NAME"`
		FlashCookieName string `default:"portal_flash" env:"SESSION_FLASH_COOKIE_NAME"`
		JWTSecret       string `default:"change-me" env:"SESSION_JWT_SECRET"`
		TTLInHours      int    `default:"72" env:"SESSION_TTL_IN_HOURS"`
	}
	Redis struct {
		Host     string `default:"127.0.0.1" env:"REDIS_HOST"`
		Port     string `default:"6379" env:"REDIS_PORT"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
