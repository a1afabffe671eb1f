package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/technicaltest/vehicle-inventory-service/internal/app"
	"github.com/technicaltest/vehicle-inventory-service/internal/config"

	_ "github.com/technicaltest/vehicle-inventory-service/docs"

	_ "github.com/lib/pq"
)

// @title Vehicle Inventory API
// @version 1.0
// @description REST backend for managing vehicle brands and vehicles

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Create app
	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	go application.Run()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop app: %v", err)
	}
}
