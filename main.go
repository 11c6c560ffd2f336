package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/museme/storefront/config"
	"github.com/museme/storefront/internal/app"
	"github.com/museme/storefront/internal/auth"
	"github.com/museme/storefront/internal/storeapi"
	"github.com/museme/storefront/internal/webserver"
)

var (
	h        bool
	initdb   bool
	conffile string
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&initdb, "initdb", false, "drop and recreate the database schema")
	flag.StringVar(&conffile, "c", "", "config yaml file")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(conffile)
	cfg.InitDirs()

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if initdb {
		application.InitDb()
		fmt.Println("database initialized")
		return
	}

	authService := auth.NewService(
		auth.NewGormUserRepository(application.DB()),
		cfg.Auth.Secret,
		time.Duration(cfg.Auth.TokenExpireDays)*24*time.Hour,
	)

	// The route guard verifies with the same key the service signs with.
	webserver.Init(application, authService.Secret())
	storeapi.InitRouter(authService)

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.S().Fatalf("webserver error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.S().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webserver.Shutdown(ctx); err != nil {
		zap.S().Errorf("shutdown error: %v", err)
	}
}
