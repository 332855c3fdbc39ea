package analyzer

import (
	"fmt"

	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/pkg/llm"
)

// maxBatchSize caps how many texts go to the model in one call; later items
// are dropped, not queued.
const maxBatchSize = 25

// fallbackConfidence signals reduced reliability of the rule-based path.
const fallbackConfidence = 50

var fallbackTopics = []string{"politics", "governance"}

// SentimentAnalyzer normalizes raw texts into sentiment counts. The primary
// strategy is a model-backed classifier; when it is unconfigured or fails the
// keyword fallback takes over, so Analyze never surfaces a failure - only a
// result whose Error field records what went wrong upstream.
type SentimentAnalyzer struct {
	primary llm.SentimentClassifier // nil when no model is configured
}

func NewSentimentAnalyzer(primary llm.SentimentClassifier) *SentimentAnalyzer {
	return &SentimentAnalyzer{primary: primary}
}

func (a *SentimentAnalyzer) Available() bool {
	return a.primary != nil
}

// Analyze classifies a batch of texts about an entity from one source kind.
func (a *SentimentAnalyzer) Analyze(texts []string, entity, sourceKind string) model.SourceSentiment {
	if len(texts) == 0 {
		return model.SourceSentiment{
			OverallSentiment: model.SentimentNeutral,
			KeyTopics:        []string{},
			Summary:          "No texts to analyze",
		}
	}

	batch := texts
	if len(batch) > maxBatchSize {
		batch = batch[:maxBatchSize]
	}

	if a.primary == nil {
		return a.keywordAnalysis(batch, "Using rule-based fallback (sentiment model not configured)")
	}

	res, err := a.primary.ClassifyBatch(llm.SentimentInput{
		Texts:      batch,
		Entity:     entity,
		SourceKind: sourceKind,
	})
	if err != nil {
		return a.keywordAnalysis(batch, fmt.Sprintf("Sentiment model error: %v", err))
	}

	return model.SourceSentiment{
		PositiveCount:    res.PositiveCount,
		NegativeCount:    res.NegativeCount,
		NeutralCount:     res.NeutralCount,
		OverallSentiment: overallSentiment(res.OverallSentiment),
		Confidence:       res.Confidence,
		KeyTopics:        res.KeyTopics,
		Summary:          res.Summary,
	}
}

// keywordAnalysis is the deterministic fallback strategy. Error is always set
// on this path so callers can tell degraded results from model-backed ones.
func (a *SentimentAnalyzer) keywordAnalysis(texts []string, reason string) model.SourceSentiment {
	var positive, negative, neutral int
	for _, text := range texts {
		switch classifyKeywords(text) {
		case model.SentimentPositive:
			positive++
		case model.SentimentNegative:
			negative++
		default:
			neutral++
		}
	}

	overall := model.SentimentNeutral
	if positive > negative {
		overall = model.SentimentPositive
	} else if negative > positive {
		overall = model.SentimentNegative
	}

	return model.SourceSentiment{
		PositiveCount:    positive,
		NegativeCount:    negative,
		NeutralCount:     neutral,
		OverallSentiment: overall,
		Confidence:       fallbackConfidence,
		KeyTopics:        fallbackTopics,
		Summary:          fmt.Sprintf("Rule-based analysis: %d positive, %d negative, %d neutral", positive, negative, neutral),
		Error:            reason,
	}
}

func overallSentiment(s string) model.Sentiment {
	switch model.Sentiment(s) {
	case model.SentimentPositive, model.SentimentNegative:
		return model.Sentiment(s)
	default:
		return model.SentimentNeutral
	}
}
