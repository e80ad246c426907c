package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/BloggingApp/blog-store/internal/config"
	"github.com/BloggingApp/blog-store/internal/handler"
	"github.com/BloggingApp/blog-store/internal/repository"
	"github.com/BloggingApp/blog-store/internal/server"
	"github.com/BloggingApp/blog-store/internal/service"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := loadEnv(); err != nil {
		panic("failed to load environment variables: " + err.Error())
	}

	if err := initConfig(); err != nil {
		panic("failed to initialize yaml config: " + err.Error())
	}

	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	storage, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Sugar().Panicf("failed to open %s storage: %s", cfg.Storage.Driver, err.Error())
	}
	defer closeStorage()

	repo := repository.New(storage, cfg.Storage.Key)
	services := service.New(logger, repo)
	handlers := handler.New(services, logger, cfg.HTTP)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           cfg.Port,
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Sugar().Infof("Server started on port %s with %s storage", cfg.Port, cfg.Storage.Driver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	if cfg.IsDevelopment() {
		logger, _ := zap.NewDevelopment()
		return logger
	}

	logger, _ := zap.NewProduction()
	return logger
}

// loadEnv reads .env when present; plain environment variables are enough.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}
