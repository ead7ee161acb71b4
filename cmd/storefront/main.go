package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/MOWLI17/luxora-sub001/internal/app"
	"github.com/MOWLI17/luxora-sub001/internal/version"
)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to YAML config (fallback: LUXORA_CONFIG)")
	flag.Parse()

	if configPath == "" {
		configPath = strings.TrimSpace(os.Getenv("LUXORA_CONFIG"))
	}

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		log.WithError(err).Fatal("не удалось загрузить конфигурацию")
	}
	setupLogger(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"http_addr":    cfg.App.HTTPAddr,
		"metrics_addr": cfg.App.MetricsAddr,
		"version":      version.String(),
	}).Info("запускаем витрину Luxora")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("витрина остановлена")
}
