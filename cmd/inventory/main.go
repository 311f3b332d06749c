// @title       Inventory Management System
// @version     1.0.0
// @description Product and cart management API for e-commerce inventories.
// @BasePath    /
package main

//go:generate swag init --dir ../.. --generalInfo cmd/inventory/main.go --output ../../docs --outputTypes go

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/inventory/internal/config"
	"github.com/Skotchmaster/inventory/internal/db"
	"github.com/Skotchmaster/inventory/internal/events"
	"github.com/Skotchmaster/inventory/internal/httpserver"
	"github.com/Skotchmaster/inventory/internal/logging"
	"github.com/Skotchmaster/inventory/internal/repo"
	"github.com/Skotchmaster/inventory/internal/service"
)

func main() {
	config.LoadEnvFile()

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatalf("db migrate: %v", err)
		}
		logger.Info("schema migrated")
	}

	var publisher events.Publisher = events.Nop{}
	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		publisher = producer
		logger.Info("publishing change events", "brokers", cfg.KafkaBrokers)
	}

	r := &repo.GormRepo{DB: gdb}
	productSvc := &service.ProductService{Repo: r, Publisher: publisher, Topic: cfg.KafkaProductTopic}
	cartSvc := &service.CartService{Repo: r, Publisher: publisher, Topic: cfg.KafkaCartTopic}

	e := httpserver.New(logger, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: productSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
		DB:             gdb,
		DocsURL:        "http://" + cfg.Addr() + "/docs",
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("inventory listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close", "error", err)
		}
	}
	_ = db.Close(gdb)

	logger.Info("inventory stopped")
}
