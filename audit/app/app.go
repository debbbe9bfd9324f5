package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/audit/config"
	"github.com/bookkeep/lending-service/audit/internal/handler"
	"github.com/bookkeep/lending-service/audit/internal/repository"
	"github.com/bookkeep/lending-service/audit/internal/server"
	"github.com/bookkeep/lending-service/audit/internal/service"
	"github.com/bookkeep/lending-service/audit/migrations"
	"github.com/bookkeep/lending-service/pkg/kafka"
	"github.com/bookkeep/lending-service/pkg/logger"
	"github.com/bookkeep/lending-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "audit")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()

	cg, err := kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	defer cg.Close()
	go kafka.Consume(consumeCtx, cg, handler.NewConsumer(svc.Record, log), kafka.LendingTopic, log)

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

	consumeCancel()
	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
