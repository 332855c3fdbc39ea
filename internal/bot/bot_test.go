package bot

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/internal/service"
)

func TestCommandToMessage(t *testing.T) {
	assert.Equal(t, commandToMessage("start", ""), "help")
	assert.Equal(t, commandToMessage("help", ""), "help")
	assert.Equal(t, commandToMessage("analyze", "Test Person"), "analyze Test Person")
	assert.Equal(t, commandToMessage("compare", "Alpha vs Beta"), "compare Alpha vs Beta")
}

func TestFormatReplyPlain(t *testing.T) {
	reply := &service.ChatReply{Response: "Nothing to report."}
	assert.Equal(t, formatReply(reply), "Nothing to report.")
}

func TestFormatReplyWithScore(t *testing.T) {
	reply := &service.ChatReply{
		Response: "A fairly popular figure.",
		Score: &model.LikabilityResult{
			Name:  "Test Person",
			Score: 61.5,
			Breakdown: model.ScoreBreakdown{
				NewsSentiment:   70,
				RedditSentiment: 55,
				Engagement:      40,
				Trend:           12.5,
			},
		},
	}

	got := formatReply(reply)

	assert.Equal(t, strings.Contains(got, "A fairly popular figure."), true)
	assert.Equal(t, strings.Contains(got, "Score: 61.5/100"), true)
	assert.Equal(t, strings.Contains(got, "News: 70.0 | Reddit: 55.0"), true)
}
