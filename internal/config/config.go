package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB: postgres DSN in deployment, sqlite file path for local runs
	DatabaseURL string `envconfig:"DATABASE_URL" default:"campusspaces.db"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHrs int    `envconfig:"JWT_EXPIRE_HR" default:"24"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
