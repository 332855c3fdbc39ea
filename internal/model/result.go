package model

import (
	"encoding/json"
	"math"
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SourceSentiment is the normalized output of sentiment analysis over one
// source's texts. Counts are never negative; all-zero counts mean "no data".
type SourceSentiment struct {
	PositiveCount    int       `json:"positive_count"`
	NegativeCount    int       `json:"negative_count"`
	NeutralCount     int       `json:"neutral_count"`
	OverallSentiment Sentiment `json:"overall_sentiment"`
	Confidence       float64   `json:"confidence"`
	KeyTopics        []string  `json:"key_topics"`
	Summary          string    `json:"summary"`
	Error            string    `json:"error,omitempty"`
}

func (s SourceSentiment) Total() int {
	return s.PositiveCount + s.NegativeCount + s.NeutralCount
}

// SentimentScore converts positive/negative/neutral counts to a 0-100 score:
// ((positive - negative) / total + 1) * 50. A total of zero means no data and
// scores a neutral 50.0.
func SentimentScore(positive, negative, neutral int) float64 {
	total := positive + negative + neutral
	if total == 0 {
		return 50.0
	}
	raw := float64(positive-negative) / float64(total)
	return math.Max(0, math.Min(100, (raw+1)*50))
}

// SourceData reports what one source contributed to an analysis.
type SourceData struct {
	SourceName     string   `json:"source_name"`
	ItemsCollected int      `json:"items_collected"`
	PositiveCount  int      `json:"positive_count"`
	NegativeCount  int      `json:"negative_count"`
	NeutralCount   int      `json:"neutral_count"`
	SampleItems    []string `json:"sample_items"`
	Error          string   `json:"error,omitempty"`
}

func (s SourceData) SentimentScore() float64 {
	return math.Round(SentimentScore(s.PositiveCount, s.NegativeCount, s.NeutralCount)*10) / 10
}

// MarshalJSON caps sample_items at 3 entries; up to 5 are kept in memory for
// display surfaces that want more.
func (s SourceData) MarshalJSON() ([]byte, error) {
	type alias SourceData
	a := alias(s)
	if len(a.SampleItems) > 3 {
		a.SampleItems = a.SampleItems[:3]
	}
	return json.Marshal(a)
}

// ScoreBreakdown holds the per-component sub-scores. Sentiment components are
// 0-100, trend is -100..100. YouTubeSentiment is present only under the
// extended scoring profile.
type ScoreBreakdown struct {
	NewsSentiment    float64  `json:"news_sentiment"`
	RedditSentiment  float64  `json:"reddit_sentiment"`
	RSSSentiment     float64  `json:"rss_sentiment"`
	YouTubeSentiment *float64 `json:"youtube_sentiment,omitempty"`
	Engagement       float64  `json:"engagement"`
	Trend            float64  `json:"trend"`
}

// LikabilityResult is the complete analysis of one politician. All fields are
// populated before the result is returned; Cached is flipped to true only
// when an instance is served from the cache.
type LikabilityResult struct {
	Name       string                `json:"name"`
	Score      float64               `json:"score"`
	Breakdown  ScoreBreakdown        `json:"breakdown"`
	Insights   []string              `json:"insights"`
	Weaknesses []string              `json:"weaknesses"`
	AISummary  string                `json:"ai_summary"`
	AnalyzedAt time.Time             `json:"analyzed_at"`
	Cached     bool                  `json:"cached"`
	Sources    map[string]SourceData `json:"sources"`
}

// ComparisonResult is derived from two already-valid LikabilityResults and
// never mutates them.
type ComparisonResult struct {
	Politician1        LikabilityResult `json:"politician1"`
	Politician2        LikabilityResult `json:"politician2"`
	Winner             string           `json:"winner"`
	ScoreDifference    float64          `json:"score_difference"`
	ComparisonInsights []string         `json:"comparison_insights"`
	Recommendations    []string         `json:"recommendations"`
	AIAnalysis         string           `json:"ai_analysis"`
	AnalyzedAt         time.Time        `json:"analyzed_at"`
}
