package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sun1tar/tasks-api/services/tasks/internal/config"
	handlers "github.com/sun1tar/tasks-api/services/tasks/internal/http"
	"github.com/sun1tar/tasks-api/services/tasks/internal/repository"
	"github.com/sun1tar/tasks-api/services/tasks/internal/service"
	"github.com/sun1tar/tasks-api/shared/logger"
)

const shutdownTimeout = 5 * time.Second

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("port", "", "listen port (overrides PORT)")
}

// buildRouter собирает сервис с начальным набором задач и полный стек middleware
func buildRouter(log *logrus.Logger) (http.Handler, error) {
	seed, err := repository.DefaultSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed tasks: %w", err)
	}

	repo := repository.NewMemoryTaskRepository(seed)
	taskService := service.NewTaskService(repo)
	taskHandler := handlers.NewTaskHandler(taskService, log)
	return handlers.NewRouter(taskHandler, log), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetString("port")
		if err := config.ValidatePort(port); err != nil {
			return err
		}
		cfg.Port = port
	}

	logrusLogger := logger.Init("tasks", cfg.LogLevel)

	// В тестовом режиме listener не поднимается: тесты собирают тот же стек
	// обработчиков in-process через buildRouter / http.NewRouter
	if cfg.TestMode() {
		logrusLogger.WithField("env", cfg.Env).
			Info("test mode, listener not started; handlers are served in-process via NewRouter")
		return nil
	}

	router, err := buildRouter(logrusLogger)
	if err != nil {
		logrusLogger.WithError(err).Error("failed to build router")
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrusLogger.WithField("port", cfg.Port).Info("tasks service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logrusLogger.WithError(err).Error("server failed")
			return err
		}
	case <-quit:
		logrusLogger.Info("shutting down tasks service...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrusLogger.WithError(err).Error("graceful shutdown failed")
			return err
		}
	}
	return nil
}
