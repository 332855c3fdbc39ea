package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tasktailordevai/likability-score/internal/analyzer"
	"github.com/tasktailordevai/likability-score/internal/config"
	"github.com/tasktailordevai/likability-score/pkg/fetch"
	"github.com/tasktailordevai/likability-score/pkg/llm"
)

// llmClient is whichever provider the config selects. All three interfaces
// are backed by the same client.
type llmClient interface {
	llm.SentimentClassifier
	llm.IntentParser
	llm.Narrator
	Name() string
}

func buildLLM(cfg *config.Config) llmClient {
	if cfg.LLMProvider == "anthropic" && cfg.HasAnthropic() {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	if cfg.HasOpenAI() {
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}
	if cfg.HasAnthropic() {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	return nil
}

// BuildAnalyzer wires fetch clients, sentiment and scoring from config.
// Missing credentials leave the corresponding fetcher nil.
func BuildAnalyzer(cfg *config.Config) (*Analyzer, error) {
	scorer, err := analyzer.NewScorer(analyzer.Profile(cfg.ScoringProfile))
	if err != nil {
		return nil, fmt.Errorf("failed to build scorer: %w", err)
	}

	deps := Deps{
		RSS:      fetch.NewRSSClient(),
		Scorer:   scorer,
		CacheTTL: time.Duration(cfg.CacheTTLHours) * time.Hour,
	}

	if cfg.HasNewsAPI() {
		deps.News = fetch.NewNewsAPIClient(cfg.NewsAPIKey)
	} else {
		slog.Warn("NEWSAPI_KEY not set, news source disabled")
	}
	if cfg.HasReddit() {
		deps.Reddit = fetch.NewRedditClient(cfg.RedditClientID, cfg.RedditClientSecret, cfg.RedditUserAgent)
	} else {
		slog.Warn("Reddit credentials not set, reddit source disabled")
	}
	if cfg.HasYouTube() {
		deps.YouTube = fetch.NewYouTubeClient(cfg.YouTubeAPIKey)
	} else {
		slog.Warn("YOUTUBE_API_KEY not set, youtube source disabled")
	}

	client := buildLLM(cfg)
	if client == nil {
		slog.Warn("no LLM API key set, using rule-based sentiment only")
		deps.Sentiment = analyzer.NewSentimentAnalyzer(nil)
	} else {
		slog.Info("sentiment model configured", "provider", client.Name())
		deps.Sentiment = analyzer.NewSentimentAnalyzer(client)
	}

	return NewAnalyzer(deps), nil
}

// BuildChat wires a ChatService on top of an Analyzer. Without an LLM the
// chat still works through the keyword grammar and template answers.
func BuildChat(cfg *config.Config, a *Analyzer) *ChatService {
	client := buildLLM(cfg)
	if client == nil {
		return NewChatService(a, nil, nil)
	}
	return NewChatService(a, client, client)
}
