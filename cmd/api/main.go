package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tasktailordevai/likability-score/internal/config"
	"github.com/tasktailordevai/likability-score/internal/handler"
	"github.com/tasktailordevai/likability-score/internal/service"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	analyzer, err := service.BuildAnalyzer(cfg)
	if err != nil {
		log.Fatalf("error building analyzer: %v", err)
	}
	chat := service.BuildChat(cfg, analyzer)

	analyzeHandler := handler.NewAnalyzeHandler(analyzer)
	chatHandler := handler.NewChatHandler(chat)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/api/chat", chatHandler.PostChat)
	r.POST("/api/chat/stream", chatHandler.PostChatStream)
	r.GET("/api/analyze/:name", analyzeHandler.GetAnalyze)
	r.GET("/api/compare/:name1/:name2", analyzeHandler.GetCompare)
	r.GET("/api/config", analyzeHandler.GetConfig)
	r.GET("/api/cache/stats", analyzeHandler.GetCacheStats)
	r.POST("/api/cache/clear", analyzeHandler.PostCacheClear)
	r.GET("/health", analyzeHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
