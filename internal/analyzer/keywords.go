package analyzer

import (
	"strings"

	"github.com/tasktailordevai/likability-score/internal/model"
)

// Keyword sets for the rule-based fallback. Matching is case-insensitive
// substring search, so Hindi terms match regardless of surrounding script.
var positiveKeywords = []string{
	"great", "amazing", "good", "excellent", "best", "proud", "support",
	"love", "victory", "success", "progress", "development", "growth",
	"अच्छा", "शानदार", "बधाई", "जीत", "विकास", "प्रगति",
	"visionary", "leader", "historic", "landmark", "achievement",
}

var negativeKeywords = []string{
	"bad", "worst", "hate", "fail", "failure", "corrupt", "scam",
	"disaster", "crisis", "problem", "issue", "wrong", "terrible",
	"pappu", "feku", "jumla", "lies", "false", "fake",
	"बुरा", "घोटाला", "झूठ", "असफल", "भ्रष्ट",
}

// classifyKeywords labels a single text by comparing positive and negative
// keyword hits. Equal hits (including zero) are neutral.
func classifyKeywords(text string) model.Sentiment {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range positiveKeywords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeKeywords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return model.SentimentPositive
	case neg > pos:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
