package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/tasktailordevai/likability-score/internal/bot"
	"github.com/tasktailordevai/likability-score/internal/config"
	"github.com/tasktailordevai/likability-score/internal/service"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if !cfg.HasTelegram() {
		log.Fatalf("TELEGRAM_BOT_TOKEN is required")
	}

	analyzer, err := service.BuildAnalyzer(cfg)
	if err != nil {
		log.Fatalf("error building analyzer: %v", err)
	}
	chat := service.BuildChat(cfg, analyzer)

	b, err := bot.New(cfg.TelegramBotToken, chat)
	if err != nil {
		log.Fatalf("error starting bot: %v", err)
	}

	b.Run()
}
