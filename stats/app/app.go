package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kcls/circulation/pkg/kafka"
	"github.com/kcls/circulation/pkg/logger"
	"github.com/kcls/circulation/pkg/postgres"
	"github.com/kcls/circulation/pkg/server"
	"github.com/kcls/circulation/stats/config"
	"github.com/kcls/circulation/stats/internal/handler"
	"github.com/kcls/circulation/stats/internal/repository"
	"github.com/kcls/circulation/stats/internal/service"
	"github.com/kcls/circulation/stats/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo events %w", err)
	}
	svc := service.NewService(repo, log)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %w", err)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				log.Warn("consumer.Close", zap.Error(err))
			}
		}()
		go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.Record, log), log, kafka.CirculationTopic)
	} else {
		log.Warn("KAFKA_ADDRS not set, circulation events are not consumed")
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
	stopConsume()

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
