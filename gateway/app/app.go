package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/config"
	"github.com/kcls/circulation/gateway/internal/handler"
	"github.com/kcls/circulation/gateway/internal/service/audit"
	"github.com/kcls/circulation/gateway/internal/service/borrow"
	"github.com/kcls/circulation/gateway/internal/service/catalog"
	"github.com/kcls/circulation/gateway/internal/service/provider"
	"github.com/kcls/circulation/gateway/internal/service/settings"
	"github.com/kcls/circulation/gateway/internal/service/user"
	"github.com/kcls/circulation/pkg/kafka"
	"github.com/kcls/circulation/pkg/logger"
	"github.com/kcls/circulation/pkg/server"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "gateway")

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		p, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Error("kafka producer, circulation events disabled", zap.Error(err))
		} else {
			producer = p
		}
	}

	client := provider.NewClient(log, cfg.Backend)
	h := handler.New(log, cfg, handler.Services{
		Borrow:   borrow.NewService(log, client),
		Catalog:  catalog.NewService(log, client),
		User:     user.NewService(log, client),
		Audit:    audit.NewService(log, client),
		Settings: settings.NewService(log, client, cfg.Circulation.FinePerDay, cfg.Circulation.UseBackendSettings),
	}, handler.NewEnqueuer(producer))

	srv := server.NewServer(cfg.Server.ServerConfig(), h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("backend", cfg.Backend.APIBase))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Warn("producer.Close", zap.Error(err))
		}
	}
	log.Info("Graceful shutdown finished")
}
