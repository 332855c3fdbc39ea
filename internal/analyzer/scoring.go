package analyzer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/pkg/fetch"
)

// Profile selects which sources participate in the overall score and their
// weights. The two sets are fixed per deployment; there is no interpolation
// between them.
type Profile string

const (
	// ProfileStandard scores news, reddit and engagement (no video source).
	ProfileStandard Profile = "standard"
	// ProfileExtended adds YouTube as a fourth sentiment source.
	ProfileExtended Profile = "extended"
)

type scoreWeights struct {
	news       float64
	reddit     float64
	youtube    float64
	engagement float64
	trend      float64
}

func (w scoreWeights) sum() float64 {
	return w.news + w.reddit + w.youtube + w.engagement + w.trend
}

var profileWeights = map[Profile]scoreWeights{
	ProfileStandard: {news: 0.40, reddit: 0.35, engagement: 0.15, trend: 0.10},
	ProfileExtended: {news: 0.30, reddit: 0.25, youtube: 0.25, engagement: 0.15, trend: 0.05},
}

// Inputs carries everything one analysis needs: raw fetch results for
// reporting and engagement metrics, and the normalized sentiment per source.
// Missing data (zero values) degrades to neutral defaults, never to an error.
type Inputs struct {
	News    fetch.NewsResult
	RSS     fetch.NewsResult
	Reddit  fetch.RedditResult
	YouTube fetch.VideoResult

	NewsSentiment    model.SourceSentiment
	RSSSentiment     model.SourceSentiment
	RedditSentiment  model.SourceSentiment
	YouTubeSentiment model.SourceSentiment
}

// Scorer computes likability scores under one profile.
type Scorer struct {
	profile Profile
	weights scoreWeights
	now     func() time.Time
}

func NewScorer(profile Profile) (*Scorer, error) {
	w, ok := profileWeights[profile]
	if !ok {
		return nil, fmt.Errorf("unknown scoring profile %q", profile)
	}
	if math.Abs(w.sum()-1.0) > 1e-9 {
		return nil, fmt.Errorf("scoring profile %q weights sum to %v, want 1.0", profile, w.sum())
	}
	return &Scorer{profile: profile, weights: w, now: time.Now}, nil
}

func (s *Scorer) Profile() Profile {
	return s.profile
}

// Calculate aggregates per-source sentiment and engagement into one
// LikabilityResult. Pure computation: it never fails for well-formed input.
func (s *Scorer) Calculate(name string, in Inputs) *model.LikabilityResult {
	sources := s.buildSources(in)

	newsScore := sentimentScore(in.NewsSentiment)
	rssScore := sentimentScore(in.RSSSentiment)
	redditScore := sentimentScore(in.RedditSentiment)
	youtubeScore := sentimentScore(in.YouTubeSentiment)

	// Both individual scores at exactly 0 is indistinguishable from "no
	// data" under the formula, so that case defaults to 50 instead of
	// averaging to maximally negative.
	combinedNewsScore := 50.0
	if newsScore > 0 || rssScore > 0 {
		combinedNewsScore = (newsScore + rssScore) / 2
	}

	engagementScore := engagement(in.Reddit.Posts, in.YouTube.Videos)
	trendScore := s.trend(in)

	overall := combinedNewsScore*s.weights.news +
		redditScore*s.weights.reddit +
		engagementScore*s.weights.engagement +
		((trendScore+100)/2)*s.weights.trend
	if s.profile == ProfileExtended {
		overall += youtubeScore * s.weights.youtube
	}

	breakdown := model.ScoreBreakdown{
		NewsSentiment:   round1(newsScore),
		RedditSentiment: round1(redditScore),
		RSSSentiment:    round1(rssScore),
		Engagement:      round1(engagementScore),
		Trend:           round1(trendScore),
	}
	if s.profile == ProfileExtended {
		yt := round1(youtubeScore)
		breakdown.YouTubeSentiment = &yt
	}

	insights, weaknesses := s.strengthsAndWeaknesses(breakdown, sources, in)

	return &model.LikabilityResult{
		Name:       name,
		Score:      round1(overall),
		Breakdown:  breakdown,
		Sources:    sources,
		Insights:   insights,
		Weaknesses: weaknesses,
		AnalyzedAt: s.now(),
		Cached:     false,
	}
}

func (s *Scorer) buildSources(in Inputs) map[string]model.SourceData {
	sources := map[string]model.SourceData{
		"newsapi": {
			SourceName:     "NewsAPI",
			ItemsCollected: len(in.News.Articles),
			PositiveCount:  in.NewsSentiment.PositiveCount,
			NegativeCount:  in.NewsSentiment.NegativeCount,
			NeutralCount:   in.NewsSentiment.NeutralCount,
			SampleItems:    articleTitles(in.News.Articles),
			Error:          firstError(in.News.Error, in.NewsSentiment.Error),
		},
		"rss": {
			SourceName:     "Google News RSS",
			ItemsCollected: len(in.RSS.Articles),
			PositiveCount:  in.RSSSentiment.PositiveCount,
			NegativeCount:  in.RSSSentiment.NegativeCount,
			NeutralCount:   in.RSSSentiment.NeutralCount,
			SampleItems:    articleTitles(in.RSS.Articles),
			Error:          firstError(in.RSS.Error, in.RSSSentiment.Error),
		},
		"reddit": {
			SourceName:     "Reddit",
			ItemsCollected: len(in.Reddit.Posts),
			PositiveCount:  in.RedditSentiment.PositiveCount,
			NegativeCount:  in.RedditSentiment.NegativeCount,
			NeutralCount:   in.RedditSentiment.NeutralCount,
			SampleItems:    postTitles(in.Reddit.Posts),
			Error:          firstError(in.Reddit.Error, in.RedditSentiment.Error),
		},
	}

	if s.profile == ProfileExtended {
		sources["youtube"] = model.SourceData{
			SourceName:     "YouTube",
			ItemsCollected: len(in.YouTube.Videos),
			PositiveCount:  in.YouTubeSentiment.PositiveCount,
			NegativeCount:  in.YouTubeSentiment.NegativeCount,
			NeutralCount:   in.YouTubeSentiment.NeutralCount,
			SampleItems:    videoTitles(in.YouTube.Videos),
			Error:          firstError(in.YouTube.Error, in.YouTubeSentiment.Error),
		}
	}

	return sources
}

func sentimentScore(s model.SourceSentiment) float64 {
	return model.SentimentScore(s.PositiveCount, s.NegativeCount, s.NeutralCount)
}

// engagement scales raw activity metrics into 0-100. Each metric has a fixed
// linear cap; per-source metric weights sum to 1.0 and the halving keeps a
// single moderately active source from maxing out the score.
func engagement(posts []fetch.Post, videos []fetch.Video) float64 {
	if len(posts) == 0 && len(videos) == 0 {
		return 50.0
	}

	var redditScore float64
	if len(posts) > 0 {
		var totalScore, totalComments int
		var ratioSum float64
		for _, p := range posts {
			totalScore += p.Score
			totalComments += p.NumComments
			ratioSum += p.UpvoteRatio
		}

		postScore := math.Min(100, float64(len(posts))*5)
		upvoteScore := math.Min(100, float64(totalScore)/10)
		commentScore := math.Min(100, float64(totalComments)/5)
		ratioScore := ratioSum / float64(len(posts)) * 100

		redditScore = (postScore*0.2 + upvoteScore*0.3 + commentScore*0.2 + ratioScore*0.3) / 2
	}

	var youtubeScore float64
	if len(videos) > 0 {
		var totalViews, totalLikes, totalComments int64
		for _, v := range videos {
			totalViews += v.Views
			totalLikes += v.Likes
			totalComments += v.CommentsCount
		}

		videoScore := math.Min(100, float64(len(videos))*10)
		viewsScore := math.Min(100, float64(totalViews)/100000)
		likesScore := math.Min(100, float64(totalLikes)/10000)
		commentsScore := math.Min(100, float64(totalComments)/1000)

		youtubeScore = (videoScore*0.2 + viewsScore*0.3 + likesScore*0.2 + commentsScore*0.3) / 2
	}

	var combined float64
	switch {
	case len(posts) > 0 && len(videos) > 0:
		combined = (redditScore + youtubeScore) / 2
	case len(posts) > 0:
		combined = redditScore
	default:
		combined = youtubeScore
	}

	return math.Max(0, math.Min(100, combined))
}

// trend is an instantaneous proxy in -100..100: average sentiment direction
// weighted by average confidence over the profile's sentiment sources. It is
// not a time series; a real trend would need historical data this system does
// not keep.
func (s *Scorer) trend(in Inputs) float64 {
	sentiments := []model.SourceSentiment{in.NewsSentiment, in.RedditSentiment}
	if s.profile == ProfileExtended {
		sentiments = append(sentiments, in.YouTubeSentiment)
	}

	var dirSum, confSum float64
	for _, sn := range sentiments {
		dirSum += direction(sn.OverallSentiment)
		confSum += confidenceOrDefault(sn.Confidence)
	}

	n := float64(len(sentiments))
	return (dirSum / n) * (confSum / n)
}

func direction(s model.Sentiment) float64 {
	switch s {
	case model.SentimentPositive:
		return 1
	case model.SentimentNegative:
		return -1
	default:
		return 0
	}
}

// A source that never reported confidence counts as 50, matching the neutral
// default used elsewhere.
func confidenceOrDefault(confidence float64) float64 {
	if confidence == 0 {
		return 50
	}
	return confidence
}

// Threshold rules for insights and weaknesses. Each breakdown field feeds at
// most one of the two lists: the insight and weakness bands never overlap.
func (s *Scorer) strengthsAndWeaknesses(b model.ScoreBreakdown, sources map[string]model.SourceData, in Inputs) ([]string, []string) {
	insights := []string{}
	weaknesses := []string{}

	if b.NewsSentiment >= 65 {
		insights = append(insights, "Favorable news media coverage")
	} else if b.NewsSentiment < 40 {
		weaknesses = append(weaknesses, "Negative news media portrayal")
	}

	if b.RSSSentiment >= 65 {
		insights = append(insights, "Positive trending news")
	} else if b.RSSSentiment < 40 {
		weaknesses = append(weaknesses, "Negative trending coverage")
	}

	if b.RedditSentiment >= 65 {
		insights = append(insights, "Strong support on social platforms")
	} else if b.RedditSentiment < 40 {
		weaknesses = append(weaknesses, "Negative social media sentiment")
	}

	if b.YouTubeSentiment != nil {
		if *b.YouTubeSentiment >= 65 {
			insights = append(insights, "Positive video platform reception")
		} else if *b.YouTubeSentiment < 40 {
			weaknesses = append(weaknesses, "Negative video platform sentiment")
		}
	}

	if b.Engagement >= 70 {
		insights = append(insights, "High public engagement and discussion")
	} else if b.Engagement < 35 {
		weaknesses = append(weaknesses, "Low public engagement")
	}

	if b.Trend > 20 {
		insights = append(insights, "Improving public perception trend")
	} else if b.Trend < -20 {
		weaknesses = append(weaknesses, "Declining public perception")
	}

	var totalItems int
	for _, src := range sources {
		totalItems += src.ItemsCollected
	}
	if totalItems < 10 {
		weaknesses = append(weaknesses, "Limited data available for analysis")
	} else if totalItems > 50 {
		insights = append(insights, "Comprehensive data coverage")
	}

	if topics := keyTopics(in.NewsSentiment.KeyTopics, in.RedditSentiment.KeyTopics); len(topics) > 0 {
		insights = append(insights, "Key topics: "+strings.Join(topics, ", "))
	}

	return insights, weaknesses
}

// keyTopics merges topic lists preserving first-seen order, capped at 3.
func keyTopics(lists ...[]string) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, list := range lists {
		for _, topic := range list {
			if topic == "" || seen[topic] {
				continue
			}
			seen[topic] = true
			topics = append(topics, topic)
			if len(topics) == 3 {
				return topics
			}
		}
	}
	return topics
}

func articleTitles(articles []fetch.Article) []string {
	titles := []string{}
	for i, a := range articles {
		if i == 5 {
			break
		}
		titles = append(titles, a.Title)
	}
	return titles
}

func postTitles(posts []fetch.Post) []string {
	titles := []string{}
	for i, p := range posts {
		if i == 5 {
			break
		}
		titles = append(titles, p.Title)
	}
	return titles
}

func videoTitles(videos []fetch.Video) []string {
	titles := []string{}
	for i, v := range videos {
		if i == 5 {
			break
		}
		titles = append(titles, v.Title)
	}
	return titles
}

func firstError(errs ...string) string {
	for _, e := range errs {
		if e != "" {
			return e
		}
	}
	return ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
