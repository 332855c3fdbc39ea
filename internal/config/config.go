package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is populated from the environment. Every external credential is
// optional: a missing key disables its source or feature and the analysis
// degrades instead of refusing to start.
type Config struct {
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	LLMProvider     string `envconfig:"LLM_PROVIDER" default:"openai"`

	NewsAPIKey         string `envconfig:"NEWSAPI_KEY"`
	RedditClientID     string `envconfig:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `envconfig:"REDDIT_CLIENT_SECRET"`
	RedditUserAgent    string `envconfig:"REDDIT_USER_AGENT" default:"LikabilityBot/1.0"`
	YouTubeAPIKey      string `envconfig:"YOUTUBE_API_KEY"`

	CacheTTLHours  int    `envconfig:"CACHE_TTL_HOURS" default:"24"`
	ScoringProfile string `envconfig:"SCORING_PROFILE" default:"standard"`

	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	Port             string `envconfig:"PORT" default:"8080"`
	FrontendURL      string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would make scoring silently wrong.
func (c *Config) Validate() error {
	switch c.ScoringProfile {
	case "standard", "extended":
	default:
		return fmt.Errorf("invalid SCORING_PROFILE %q: must be standard or extended", c.ScoringProfile)
	}

	if c.CacheTTLHours <= 0 {
		return fmt.Errorf("invalid CACHE_TTL_HOURS %d: must be positive", c.CacheTTLHours)
	}

	switch c.LLMProvider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("invalid LLM_PROVIDER %q: must be openai or anthropic", c.LLMProvider)
	}

	return nil
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

func (c *Config) HasAnthropic() bool {
	return c.AnthropicAPIKey != ""
}

func (c *Config) HasNewsAPI() bool {
	return c.NewsAPIKey != ""
}

func (c *Config) HasReddit() bool {
	return c.RedditClientID != "" && c.RedditClientSecret != ""
}

func (c *Config) HasYouTube() bool {
	return c.YouTubeAPIKey != ""
}

func (c *Config) HasTelegram() bool {
	return c.TelegramBotToken != ""
}
