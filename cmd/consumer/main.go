package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do"
	"github.com/serroba/urlregistry/internal/container"
	"github.com/serroba/urlregistry/internal/messaging"
	"go.uber.org/zap"
)

func main() {
	opts, err := container.ConsumerOptions()
	if err != nil {
		log.Fatal(err)
	}

	injector := do.New()
	do.ProvideValue(injector, opts)
	container.LoggerPackage(injector)
	container.RedisPackage(injector)
	container.BusPackage(injector)
	container.AuditPackage(injector)

	logger := do.MustInvoke[*zap.Logger](injector)
	group := do.MustInvoke[*messaging.ConsumerGroup](injector)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = group.Start(ctx); err != nil {
		logger.Fatal("failed to start consumer group", zap.Error(err))
	}

	logger.Info("audit consumer running",
		zap.String("redis", opts.RedisAddr),
		zap.String("group", opts.ConsumerGroup),
	)

	<-ctx.Done()

	logger.Info("shutting down")

	if err = injector.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
