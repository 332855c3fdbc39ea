package analyzer

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/pkg/llm"
)

type fakeClassifier struct {
	result  *llm.SentimentResult
	err     error
	gotCount int
	gotIn   llm.SentimentInput
}

func (f *fakeClassifier) ClassifyBatch(in llm.SentimentInput) (*llm.SentimentResult, error) {
	f.gotIn = in
	f.gotCount = len(in.Texts)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := NewSentimentAnalyzer(nil)

	got := a.Analyze(nil, "Test Person", "news")

	assert.Equal(t, got.PositiveCount, 0)
	assert.Equal(t, got.NegativeCount, 0)
	assert.Equal(t, got.NeutralCount, 0)
	assert.Equal(t, got.OverallSentiment, model.SentimentNeutral)
	assert.Equal(t, got.Summary, "No texts to analyze")
	assert.Equal(t, got.Error, "")
}

func TestAnalyzeUsesModel(t *testing.T) {
	fake := &fakeClassifier{result: &llm.SentimentResult{
		PositiveCount:    3,
		NegativeCount:    1,
		NeutralCount:     1,
		OverallSentiment: "positive",
		Confidence:       85,
		KeyTopics:        []string{"economy", "election"},
		Summary:          "Mostly favorable coverage",
	}}
	a := NewSentimentAnalyzer(fake)

	got := a.Analyze([]string{"a", "b", "c"}, "Test Person", "news")

	assert.Equal(t, fake.gotIn.Entity, "Test Person")
	assert.Equal(t, fake.gotIn.SourceKind, "news")
	assert.Equal(t, got.PositiveCount, 3)
	assert.Equal(t, got.OverallSentiment, model.SentimentPositive)
	assert.Equal(t, got.Confidence, 85.0)
	assert.Equal(t, got.KeyTopics, []string{"economy", "election"})
	assert.Equal(t, got.Error, "")
}

func TestAnalyzeTruncatesBatch(t *testing.T) {
	fake := &fakeClassifier{result: &llm.SentimentResult{OverallSentiment: "neutral"}}
	a := NewSentimentAnalyzer(fake)

	texts := make([]string, 40)
	for i := range texts {
		texts[i] = "text"
	}
	a.Analyze(texts, "Test Person", "reddit")

	assert.Equal(t, fake.gotCount, 25)
}

func TestAnalyzeFallbackWhenUnconfigured(t *testing.T) {
	a := NewSentimentAnalyzer(nil)

	got := a.Analyze([]string{"great victory for the people", "corruption scandal exposed"}, "Test Person", "news")

	assert.Equal(t, got.PositiveCount, 1)
	assert.Equal(t, got.NegativeCount, 1)
	assert.Equal(t, got.OverallSentiment, model.SentimentNeutral)
	assert.Equal(t, got.Confidence, 50.0)
	assert.Equal(t, got.Error, "Using rule-based fallback (sentiment model not configured)")
}

func TestAnalyzeFallbackOnModelError(t *testing.T) {
	fake := &fakeClassifier{err: errors.New("rate limited")}
	a := NewSentimentAnalyzer(fake)

	got := a.Analyze([]string{"excellent development work"}, "Test Person", "news")

	assert.Equal(t, got.PositiveCount, 1)
	assert.Equal(t, got.Error, "Sentiment model error: rate limited")
}

func TestAnalyzeCoercesUnknownOverall(t *testing.T) {
	fake := &fakeClassifier{result: &llm.SentimentResult{
		PositiveCount:    1,
		OverallSentiment: "mixed",
	}}
	a := NewSentimentAnalyzer(fake)

	got := a.Analyze([]string{"a"}, "Test Person", "news")

	assert.Equal(t, got.OverallSentiment, model.SentimentNeutral)
}

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		text string
		want model.Sentiment
	}{
		{"A great win and excellent progress", model.SentimentPositive},
		{"Another scandal, total failure and corruption", model.SentimentNegative},
		{"The parliament session resumed on Monday", model.SentimentNeutral},
		{"good work but a bad outcome", model.SentimentNeutral},
		{"GREAT leadership", model.SentimentPositive},
		{"विकास और प्रगति", model.SentimentPositive},
		{"घोटाला और झूठ", model.SentimentNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, classifyKeywords(tt.text), tt.want)
	}
}

func TestKeywordMajorityOverall(t *testing.T) {
	a := NewSentimentAnalyzer(nil)

	got := a.Analyze([]string{
		"great progress on development",
		"excellent win for the state",
		"corruption charges filed",
	}, "Test Person", "news")

	assert.Equal(t, got.PositiveCount, 2)
	assert.Equal(t, got.NegativeCount, 1)
	assert.Equal(t, got.OverallSentiment, model.SentimentPositive)
	assert.Equal(t, got.Summary, "Rule-based analysis: 2 positive, 1 negative, 0 neutral")
}
