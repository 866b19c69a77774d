package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookbuddy-service/catalog/config"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/handler"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/repository"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/service"
	"github.com/Astemirdum/bookbuddy-service/catalog/migrations"
	"github.com/Astemirdum/bookbuddy-service/pkg/kafka"
	"github.com/Astemirdum/bookbuddy-service/pkg/logger"
	"github.com/Astemirdum/bookbuddy-service/pkg/postgres"
	"github.com/Astemirdum/bookbuddy-service/pkg/server"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repo repository.Repository
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			log.Fatal("db init", zap.Error(err))
		}
		defer db.Close()
		repo = repository.NewPostgresRepository(db, log)
	default:
		repo = repository.NewMemoryRepository(log)
	}
	if err := repo.Seed(ctx, model.Seed()); err != nil {
		log.Fatal("seed", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.CatalogConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer func() { _ = consumer.Close() }()
		go kafka.Consume(ctx, consumer, handler.NewConsumer(svc.RateBook, log), log, kafka.RatingTopic)
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server.ServerConfig(), h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
