package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floodwatch/internal/config"
	"floodwatch/internal/handler"
	"floodwatch/internal/logger"
	"floodwatch/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	gin.SetMode(ginMode(cfg.Server.Mode))

	predictSvc := service.NewPredictService(cfg.Predictor.URL, cfg.Predictor.Timeout())
	askSvc := service.NewAskService(cfg.Assistant.URL, cfg.Assistant.Timeout())

	floodH := handler.NewFloodHandler(predictSvc)
	askH := handler.NewAskHandler(askSvc)

	r, err := handler.NewRouter(cfg.Server, floodH, askH)
	if err != nil {
		logger.Error("router init failed", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		logger.Info("server starting", "addr", cfg.Addr(),
			"predict_url", cfg.Predictor.URL, "ask_url", cfg.Assistant.URL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	}
	return gin.ReleaseMode
}
