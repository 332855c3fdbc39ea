package llm

import "strings"

// SentimentInput is one batch of texts about an entity from a single source.
type SentimentInput struct {
	Texts      []string
	Entity     string
	SourceKind string
}

type SentimentResult struct {
	PositiveCount    int      `json:"positive_count"`
	NegativeCount    int      `json:"negative_count"`
	NeutralCount     int      `json:"neutral_count"`
	OverallSentiment string   `json:"overall_sentiment"`
	Confidence       float64  `json:"confidence"`
	KeyTopics        []string `json:"key_topics"`
	Summary          string   `json:"summary"`
}

// SentimentClassifier labels a batch of texts in a single model call.
type SentimentClassifier interface {
	ClassifyBatch(in SentimentInput) (*SentimentResult, error)
}

// Intent is what the model extracted from a free-form chat message.
type Intent struct {
	Action      string   `json:"action"` // analyze | compare | multi_compare | help | chat
	Politicians []string `json:"politicians"`
	Response    string   `json:"response"`
}

type IntentParser interface {
	ParseIntent(message string) (*Intent, error)
}

// Narrator turns analysis results into a conversational answer.
type Narrator interface {
	Narrate(userMessage, analysis string) (string, error)
	// NarrateStream delivers the answer incrementally through onDelta.
	NarrateStream(userMessage, analysis string, onDelta func(string)) error
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
