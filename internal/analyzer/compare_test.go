package analyzer

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/tasktailordevai/likability-score/internal/model"
)

func result(name string, score float64, b model.ScoreBreakdown, weaknesses ...string) model.LikabilityResult {
	return model.LikabilityResult{
		Name:       name,
		Score:      score,
		Breakdown:  b,
		Weaknesses: weaknesses,
	}
}

func TestCompareWinner(t *testing.T) {
	a := result("Alpha", 62.5, model.ScoreBreakdown{NewsSentiment: 70, RedditSentiment: 55, Engagement: 40})
	b := result("Beta", 48.0, model.ScoreBreakdown{NewsSentiment: 45, RedditSentiment: 50, Engagement: 60})

	got := Compare(a, b)

	assert.Equal(t, got.Winner, "Alpha")
	assert.Equal(t, got.ScoreDifference, 14.5)
	assert.Equal(t, got.ComparisonInsights[0], "Alpha leads by 14.5 points")
	assert.Equal(t, got.AIAnalysis, "Alpha has higher likability with a 14.5 point lead.")
}

func TestCompareTieFavorsFirstListed(t *testing.T) {
	a := result("Alpha", 50.0, model.ScoreBreakdown{})
	b := result("Beta", 50.0, model.ScoreBreakdown{})

	got := Compare(a, b)
	assert.Equal(t, got.Winner, "Alpha")
	assert.Equal(t, got.ScoreDifference, 0.0)

	reversed := Compare(b, a)
	assert.Equal(t, reversed.Winner, "Beta")
}

func TestCompareDimensionInsights(t *testing.T) {
	a := result("Alpha", 60, model.ScoreBreakdown{NewsSentiment: 70, RedditSentiment: 50, Engagement: 30})
	b := result("Beta", 55, model.ScoreBreakdown{NewsSentiment: 50, RedditSentiment: 50, Engagement: 45})

	got := Compare(a, b)

	assert.Equal(t, contains(got.ComparisonInsights, "Alpha has better news coverage (+20.0)"), true)
	assert.Equal(t, contains(got.ComparisonInsights, "Beta has higher public engagement (+15.0)"), true)
	// equal reddit scores produce no insight
	for _, in := range got.ComparisonInsights {
		assert.NotEqual(t, in, "Alpha has stronger social media support (+0.0)")
		assert.NotEqual(t, in, "Beta has stronger social media support (+0.0)")
	}
}

func TestCompareRecommendations(t *testing.T) {
	a := result("Alpha", 65, model.ScoreBreakdown{NewsSentiment: 70, RedditSentiment: 60, Engagement: 55})
	b := result("Beta", 40, model.ScoreBreakdown{NewsSentiment: 35, RedditSentiment: 45, Engagement: 55},
		"Negative news media portrayal", "Low public engagement", "Limited data available for analysis")

	got := Compare(a, b)

	assert.Equal(t, contains(got.Recommendations, "Beta should focus on improving news media presence"), true)
	assert.Equal(t, contains(got.Recommendations, "Beta should increase social media engagement"), true)
	// engagement equal, no recommendation for it
	assert.Equal(t, contains(got.Recommendations, "Beta should generate more public discussion and engagement"), false)
	// weaknesses capped at two
	assert.Equal(t, contains(got.Recommendations, "Address: Negative news media portrayal"), true)
	assert.Equal(t, contains(got.Recommendations, "Address: Low public engagement"), true)
	assert.Equal(t, contains(got.Recommendations, "Address: Limited data available for analysis"), false)
}

func TestRank(t *testing.T) {
	results := []model.LikabilityResult{
		result("Alpha", 48.2, model.ScoreBreakdown{}),
		result("Beta", 61.7, model.ScoreBreakdown{}),
		result("Gamma", 55.0, model.ScoreBreakdown{}),
	}

	got := Rank(results)

	assert.Equal(t, len(got), 3)
	assert.Equal(t, got[0], Ranking{Rank: 1, Name: "Beta", Score: 61.7})
	assert.Equal(t, got[1], Ranking{Rank: 2, Name: "Gamma", Score: 55.0})
	assert.Equal(t, got[2], Ranking{Rank: 3, Name: "Alpha", Score: 48.2})
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	results := []model.LikabilityResult{
		result("Alpha", 50.0, model.ScoreBreakdown{}),
		result("Beta", 50.0, model.ScoreBreakdown{}),
	}

	got := Rank(results)

	assert.Equal(t, got[0].Name, "Alpha")
	assert.Equal(t, got[1].Name, "Beta")
}
