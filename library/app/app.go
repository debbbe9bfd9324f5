package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/library/config"
	"github.com/bookkeep/lending-service/library/internal/events"
	"github.com/bookkeep/lending-service/library/internal/gateway"
	"github.com/bookkeep/lending-service/library/internal/handler"
	"github.com/bookkeep/lending-service/library/internal/repository"
	"github.com/bookkeep/lending-service/library/internal/server"
	"github.com/bookkeep/lending-service/library/internal/service"
	"github.com/bookkeep/lending-service/library/migrations"
	"github.com/bookkeep/lending-service/pkg/kafka"
	"github.com/bookkeep/lending-service/pkg/logger"
	"github.com/bookkeep/lending-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var publisher service.Publisher = events.Noop{}
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		publisher = events.NewKafkaPublisher(producer, log)
	}

	paymentGW := gateway.New(cfg.Payment, log)
	svc := service.NewService(repo, paymentGW, publisher, cfg.Policy, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
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

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
