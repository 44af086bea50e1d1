package main

import (
	"errors"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kcls/circulation/gateway/app"
	"github.com/kcls/circulation/gateway/config"
)

//	@title			KCLS circulation gateway
//	@version		1.0
//	@description	Circulation desk API over the KCLS backend.
//	@BasePath		/

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
