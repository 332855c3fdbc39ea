package service

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tasktailordevai/likability-score/internal/analyzer"
	"github.com/tasktailordevai/likability-score/internal/cache"
	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/pkg/fetch"
)

// Fetcher interfaces are defined here, on the consumer side, so any source
// client satisfying the shape plugs in. A nil fetcher means the source is not
// configured and its slot reports that instead of failing the analysis.

type NewsFetcher interface {
	Fetch(query string) fetch.NewsResult
}

type MultiLangNewsFetcher interface {
	FetchMultipleLanguages(query string) fetch.NewsResult
}

type RedditFetcher interface {
	Fetch(query string) fetch.RedditResult
}

type VideoFetcher interface {
	Fetch(query string) fetch.VideoResult
}

// Deps bundles everything an Analyzer needs. Only Scorer and Sentiment are
// required; fetchers may be nil.
type Deps struct {
	News      NewsFetcher
	RSS       MultiLangNewsFetcher
	Reddit    RedditFetcher
	YouTube   VideoFetcher
	Sentiment *analyzer.SentimentAnalyzer
	Scorer    *analyzer.Scorer
	CacheTTL  time.Duration
}

// Analyzer runs the full pipeline for one politician: fetch all sources
// concurrently, normalize sentiment, score, cache.
type Analyzer struct {
	deps Deps

	results  *cache.Cache[model.LikabilityResult]
	compares *cache.Cache[model.ComparisonResult]
}

func NewAnalyzer(deps Deps) *Analyzer {
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = 24 * time.Hour
	}
	return &Analyzer{
		deps:     deps,
		results:  cache.New[model.LikabilityResult](deps.CacheTTL),
		compares: cache.New[model.ComparisonResult](deps.CacheTTL),
	}
}

func (a *Analyzer) Profile() analyzer.Profile {
	return a.deps.Scorer.Profile()
}

func (a *Analyzer) SentimentModelAvailable() bool {
	return a.deps.Sentiment.Available()
}

// Info describes the running configuration without exposing credentials.
type Info struct {
	ScoringProfile string          `json:"scoring_profile"`
	SentimentModel bool            `json:"sentiment_model"`
	Sources        map[string]bool `json:"sources"`
	CacheTTLHours  float64         `json:"cache_ttl_hours"`
}

func (a *Analyzer) Info() Info {
	return Info{
		ScoringProfile: string(a.deps.Scorer.Profile()),
		SentimentModel: a.deps.Sentiment.Available(),
		Sources: map[string]bool{
			"newsapi": a.deps.News != nil,
			"rss":     a.deps.RSS != nil,
			"reddit":  a.deps.Reddit != nil,
			"youtube": a.deps.YouTube != nil,
		},
		CacheTTLHours: a.deps.CacheTTL.Hours(),
	}
}

// Analyze returns the likability result for one politician, from cache when
// a fresh entry exists and force is false.
func (a *Analyzer) Analyze(name string, force bool) (*model.LikabilityResult, error) {
	return a.AnalyzeWithProgress(name, force, nil)
}

// AnalyzeWithProgress is Analyze with a progress callback for streaming
// surfaces. progress may be nil.
func (a *Analyzer) AnalyzeWithProgress(name string, force bool, progress func(string)) (*model.LikabilityResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("politician name is required")
	}

	key := cache.Key("analyze", name)
	if !force {
		if cached, ok := a.results.Get(key); ok {
			slog.Info("serving analysis from cache", "name", name)
			cached.Cached = true
			return &cached, nil
		}
	}

	notify := func(msg string) {
		if progress != nil {
			progress(msg)
		}
	}

	notify(fmt.Sprintf("Collecting data for %s...", name))
	slog.Info("starting analysis", "name", name, "force", force)

	in := a.collect(name, notify)

	notify("Analyzing sentiment...")
	a.classify(name, &in)

	notify("Calculating likability score...")
	result := a.deps.Scorer.Calculate(name, in)
	result.AISummary = buildSummary(in)

	a.results.Set(key, *result)
	slog.Info("analysis complete", "name", name, "score", result.Score)
	return result, nil
}

// collect fans out to every configured source at once. Unconfigured sources
// come back with a fixed error string in their result.
func (a *Analyzer) collect(name string, notify func(string)) analyzer.Inputs {
	var in analyzer.Inputs
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		if a.deps.News == nil {
			in.News = fetch.NewsResult{Error: "NewsAPI key not configured"}
			return
		}
		in.News = a.deps.News.Fetch(name)
	}()
	go func() {
		defer wg.Done()
		if a.deps.RSS == nil {
			in.RSS = fetch.NewsResult{Error: "RSS fetcher not configured"}
			return
		}
		in.RSS = a.deps.RSS.FetchMultipleLanguages(name)
	}()
	go func() {
		defer wg.Done()
		if a.deps.Reddit == nil {
			in.Reddit = fetch.RedditResult{Error: "Reddit API credentials not configured"}
			return
		}
		in.Reddit = a.deps.Reddit.Fetch(name)
	}()
	go func() {
		defer wg.Done()
		if a.deps.YouTube == nil {
			in.YouTube = fetch.VideoResult{Error: "YouTube API key not configured"}
			return
		}
		in.YouTube = a.deps.YouTube.Fetch(name)
	}()
	wg.Wait()

	notify(fmt.Sprintf("Collected %d news articles, %d posts, %d videos",
		len(in.News.Articles)+len(in.RSS.Articles), len(in.Reddit.Posts), len(in.YouTube.Videos)))
	return in
}

// classify runs sentiment over each source's texts. Sequential on purpose:
// batched model calls are the expensive path and providers rate-limit them.
func (a *Analyzer) classify(name string, in *analyzer.Inputs) {
	in.NewsSentiment = a.deps.Sentiment.Analyze(newsTexts(in.News), name, "news articles")
	in.RSSSentiment = a.deps.Sentiment.Analyze(rssTexts(in.RSS), name, "news headlines")
	in.RedditSentiment = a.deps.Sentiment.Analyze(redditTexts(in.Reddit), name, "reddit posts")
	in.YouTubeSentiment = a.deps.Sentiment.Analyze(videoTexts(in.YouTube), name, "youtube videos")
}

// Compare analyzes both politicians and caches the comparison under its own
// key, so repeat comparisons skip even the per-politician cache lookups.
func (a *Analyzer) Compare(name1, name2 string, force bool) (*model.ComparisonResult, error) {
	key := cache.Key("compare", name1, name2)
	if !force {
		if cached, ok := a.compares.Get(key); ok {
			slog.Info("serving comparison from cache", "name1", name1, "name2", name2)
			return &cached, nil
		}
	}

	r1, err := a.Analyze(name1, force)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", name1, err)
	}
	r2, err := a.Analyze(name2, force)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", name2, err)
	}

	cmp := analyzer.Compare(*r1, *r2)
	a.compares.Set(key, *cmp)
	return cmp, nil
}

// MultiCompare ranks three or more politicians by score.
func (a *Analyzer) MultiCompare(names []string) ([]analyzer.Ranking, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("need at least two politicians to compare")
	}

	results := make([]model.LikabilityResult, 0, len(names))
	for _, name := range names {
		r, err := a.Analyze(name, false)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %s: %w", name, err)
		}
		results = append(results, *r)
	}

	return analyzer.Rank(results), nil
}

// CacheStats aggregates both internal caches.
type CacheStats struct {
	Analyses    cache.Stats `json:"analyses"`
	Comparisons cache.Stats `json:"comparisons"`
}

func (a *Analyzer) CacheStats() CacheStats {
	return CacheStats{
		Analyses:    a.results.Stats(),
		Comparisons: a.compares.Stats(),
	}
}

// ClearCache drops every cached analysis and comparison, returning how many
// entries were removed.
func (a *Analyzer) ClearCache() int {
	n := a.results.Clear() + a.compares.Clear()
	slog.Info("cache cleared", "entries", n)
	return n
}

func newsTexts(r fetch.NewsResult) []string {
	texts := make([]string, 0, len(r.Articles))
	for _, art := range r.Articles {
		text := art.Title
		if art.Description != "" {
			text += ". " + art.Description
		}
		texts = append(texts, text)
	}
	return texts
}

func rssTexts(r fetch.NewsResult) []string {
	texts := make([]string, 0, len(r.Articles))
	for _, art := range r.Articles {
		texts = append(texts, art.Title)
	}
	return texts
}

func redditTexts(r fetch.RedditResult) []string {
	texts := make([]string, 0, len(r.Posts))
	for _, p := range r.Posts {
		text := p.Title
		if p.Text != "" {
			text += ". " + p.Text
		}
		texts = append(texts, text)
	}
	return texts
}

func videoTexts(r fetch.VideoResult) []string {
	texts := make([]string, 0, len(r.Videos))
	for _, v := range r.Videos {
		texts = append(texts, v.Title)
	}
	return texts
}

// buildSummary joins the model-written per-source summaries; sources that fell
// back to rule-based analysis contribute their counts line.
func buildSummary(in analyzer.Inputs) string {
	var parts []string
	for _, s := range []model.SourceSentiment{in.NewsSentiment, in.RedditSentiment} {
		if s.Summary != "" && s.Summary != "No texts to analyze" {
			parts = append(parts, s.Summary)
		}
	}
	return strings.Join(parts, " ")
}
