package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookbuddy-service/pkg/kafka"
	"github.com/Astemirdum/bookbuddy-service/pkg/kv"
	"github.com/Astemirdum/bookbuddy-service/pkg/logger"
	"github.com/Astemirdum/bookbuddy-service/pkg/server"
	"github.com/Astemirdum/bookbuddy-service/shelf/config"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/catalog"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/handler"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/notify"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/service"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/store"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/trash"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const trashSweepInterval = 5 * time.Second

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "shelf")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, err := kv.New(ctx, cfg.KV)
	if err != nil {
		log.Fatal("kv", zap.Error(err), zap.String("backend", cfg.KV.Backend))
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("kv close", zap.Error(err))
		}
	}()

	broker := notify.NewBroker(cfg.Shelf.EventBuffer, log)
	defer broker.Close()

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka producer", zap.Error(err))
		}
		defer func() { _ = producer.Close() }()
		go notify.Forward(ctx, broker.Subscribe(""), notify.NewKafkaSink(producer, kafka.ChangesTopic), log.Named("forward"))
	}

	var opts []store.Option
	if cfg.Shelf.SeedDefaultLists {
		opts = append(opts, store.WithSeedLists(model.DefaultReadingLists()))
	}
	stores := store.NewRegistry(storage, broker, log, opts...)

	bin := trash.New(cfg.Shelf.TrashTTL, log)
	go bin.Run(ctx, trashSweepInterval)

	svc := service.NewService(stores, catalog.NewClient(log, cfg.CatalogHTTPServer), bin, kafka.NewEnqueuer(producer), log)
	h := handler.New(svc, broker, cfg.Shelf.HeartbeatInterval, log)

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
	// open event streams end only after the broker closes their subscriptions
	broker.Close()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
