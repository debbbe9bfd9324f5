package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/payment/config"
	"github.com/bookkeep/lending-service/payment/internal/handler"
	"github.com/bookkeep/lending-service/payment/internal/server"
	"github.com/bookkeep/lending-service/payment/internal/service"
	"github.com/bookkeep/lending-service/pkg/logger"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "payment")

	svc := service.NewService(cfg.MaxCharge, log)
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

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
