package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/container"
	"github.com/quizforge/quizforge/internal/router"
)

func main() {
	cfg := config.Load()
	config.Init(cfg.LogLevel)
	log := config.Logger()

	ctx := context.Background()
	c, err := container.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build application container")
	}

	handler := router.New(router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		SessionHandler: c.SessionContainer.Handler,
	})

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handler,
	}

	go func() {
		log.Infof("QuizForge listening on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	log.Info("Server stopped")
}
