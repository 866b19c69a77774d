package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/bookbuddy-service/shelf/app"
	"github.com/Astemirdum/bookbuddy-service/shelf/config"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(0),
		config.WithTrashTTL(30*time.Second),
	)

	app.Run(cfg)
}
