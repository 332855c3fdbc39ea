package analyzer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tasktailordevai/likability-score/internal/model"
)

// Compare pits two completed analyses against each other. The winner is the
// strictly higher score; on an exact tie the first-listed politician wins, so
// compare(a, b) and compare(b, a) can disagree on ties but nothing else.
func Compare(a, b model.LikabilityResult) *model.ComparisonResult {
	winner := a
	loser := b
	if b.Score > a.Score {
		winner = b
		loser = a
	}

	diff := round1(math.Abs(a.Score - b.Score))

	insights := []string{fmt.Sprintf("%s leads by %.1f points", winner.Name, diff)}
	insights = append(insights, dimensionInsights(a, b)...)

	recommendations := recommendationsFor(winner, loser)

	return &model.ComparisonResult{
		Politician1:        a,
		Politician2:        b,
		Winner:             winner.Name,
		ScoreDifference:    diff,
		ComparisonInsights: insights,
		Recommendations:    recommendations,
		AIAnalysis:         fmt.Sprintf("%s has higher likability with a %.1f point lead.", winner.Name, diff),
		AnalyzedAt:         time.Now(),
	}
}

// dimensionInsights names which side is ahead on each breakdown dimension.
// Equal dimensions produce nothing.
func dimensionInsights(a, b model.LikabilityResult) []string {
	insights := []string{}

	if d := a.Breakdown.NewsSentiment - b.Breakdown.NewsSentiment; d != 0 {
		leader, delta := dimensionLeader(a, b, d)
		insights = append(insights, fmt.Sprintf("%s has better news coverage (+%.1f)", leader, delta))
	}
	if d := a.Breakdown.RedditSentiment - b.Breakdown.RedditSentiment; d != 0 {
		leader, delta := dimensionLeader(a, b, d)
		insights = append(insights, fmt.Sprintf("%s has stronger social media support (+%.1f)", leader, delta))
	}
	if d := a.Breakdown.Engagement - b.Breakdown.Engagement; d != 0 {
		leader, delta := dimensionLeader(a, b, d)
		insights = append(insights, fmt.Sprintf("%s has higher public engagement (+%.1f)", leader, delta))
	}

	return insights
}

func dimensionLeader(a, b model.LikabilityResult, diff float64) (string, float64) {
	if diff > 0 {
		return a.Name, round1(diff)
	}
	return b.Name, round1(-diff)
}

// recommendationsFor suggests improvements for the trailing politician: one
// per breakdown dimension where they trail, plus up to two drawn from their
// own recorded weaknesses.
func recommendationsFor(winner, loser model.LikabilityResult) []string {
	recs := []string{}

	if loser.Breakdown.NewsSentiment < winner.Breakdown.NewsSentiment {
		recs = append(recs, fmt.Sprintf("%s should focus on improving news media presence", loser.Name))
	}
	if loser.Breakdown.RedditSentiment < winner.Breakdown.RedditSentiment {
		recs = append(recs, fmt.Sprintf("%s should increase social media engagement", loser.Name))
	}
	if loser.Breakdown.Engagement < winner.Breakdown.Engagement {
		recs = append(recs, fmt.Sprintf("%s should generate more public discussion and engagement", loser.Name))
	}

	for i, w := range loser.Weaknesses {
		if i == 2 {
			break
		}
		recs = append(recs, "Address: "+w)
	}

	return recs
}

// Ranking is one row of a multi-way comparison.
type Ranking struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Rank orders results by score, highest first. Ties keep input order.
func Rank(results []model.LikabilityResult) []Ranking {
	sorted := make([]model.LikabilityResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	rankings := make([]Ranking, len(sorted))
	for i, r := range sorted {
		rankings[i] = Ranking{Rank: i + 1, Name: r.Name, Score: r.Score}
	}
	return rankings
}
