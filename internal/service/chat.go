package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tasktailordevai/likability-score/internal/analyzer"
	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/pkg/llm"
)

const helpText = "I can analyze politician likability from news and social media. Try:\n" +
	"- \"Analyze Politician Name\" for a full likability report\n" +
	"- \"Compare Name One vs Name Two\" for a head-to-head comparison\n" +
	"- Naming three or more politicians for a ranking"

// ChatReply is the complete answer to one chat message. Score, Comparison and
// Rankings are set depending on what the message asked for.
type ChatReply struct {
	Response   string                  `json:"response"`
	Intent     string                  `json:"intent"`
	Score      *model.LikabilityResult `json:"score,omitempty"`
	Comparison *model.ComparisonResult `json:"comparison,omitempty"`
	Rankings   []analyzer.Ranking      `json:"rankings,omitempty"`
}

// ChatEvents receives incremental updates while a chat message is being
// handled. Any callback may be nil.
type ChatEvents struct {
	Status     func(string)
	Intent     func(llm.Intent)
	Score      func(*model.LikabilityResult)
	Comparison func(*model.ComparisonResult)
	Rankings   func([]analyzer.Ranking)
	Delta      func(string)
}

func (e ChatEvents) status(msg string) {
	if e.Status != nil {
		e.Status(msg)
	}
}

// ChatService answers free-form questions about politician likability. The
// intent parser and narrator are optional; without them the service falls
// back to a fixed command grammar and template answers.
type ChatService struct {
	analyzer *Analyzer
	intents  llm.IntentParser // nil when no model is configured
	narrator llm.Narrator     // nil when no model is configured
}

func NewChatService(a *Analyzer, intents llm.IntentParser, narrator llm.Narrator) *ChatService {
	return &ChatService{analyzer: a, intents: intents, narrator: narrator}
}

// Handle answers one chat message synchronously.
func (s *ChatService) Handle(message string) (*ChatReply, error) {
	return s.HandleStream(message, ChatEvents{})
}

// HandleStream answers one chat message, reporting progress through events.
// The returned reply always carries the final state regardless of which
// callbacks were set.
func (s *ChatService) HandleStream(message string, events ChatEvents) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	intent := s.parseIntent(message)
	if events.Intent != nil {
		events.Intent(intent)
	}
	slog.Info("chat intent", "action", intent.Action, "politicians", intent.Politicians)

	switch intent.Action {
	case "analyze":
		return s.handleAnalyze(message, intent, events)
	case "compare":
		return s.handleCompare(message, intent, events)
	case "multi_compare":
		return s.handleMultiCompare(intent, events)
	case "help":
		return &ChatReply{Response: helpText, Intent: "help"}, nil
	default:
		response := intent.Response
		if response == "" {
			response = helpText
		}
		return &ChatReply{Response: response, Intent: "chat"}, nil
	}
}

func (s *ChatService) handleAnalyze(message string, intent llm.Intent, events ChatEvents) (*ChatReply, error) {
	if len(intent.Politicians) == 0 {
		return &ChatReply{Response: "Please name the politician you want analyzed.", Intent: "analyze"}, nil
	}

	name := intent.Politicians[0]
	result, err := s.analyzer.AnalyzeWithProgress(name, false, events.Status)
	if err != nil {
		return nil, err
	}
	if events.Score != nil {
		events.Score(result)
	}

	response := s.narrate(message, formatForNarrative(result), events.Delta)
	if response == "" {
		response = fmt.Sprintf("%s has a likability score of %.1f/100.", result.Name, result.Score)
	}
	return &ChatReply{Response: response, Intent: "analyze", Score: result}, nil
}

func (s *ChatService) handleCompare(message string, intent llm.Intent, events ChatEvents) (*ChatReply, error) {
	if len(intent.Politicians) < 2 {
		return &ChatReply{Response: "Please name two politicians to compare.", Intent: "compare"}, nil
	}

	events.status(fmt.Sprintf("Comparing %s and %s...", intent.Politicians[0], intent.Politicians[1]))
	cmp, err := s.analyzer.Compare(intent.Politicians[0], intent.Politicians[1], false)
	if err != nil {
		return nil, err
	}
	if events.Comparison != nil {
		events.Comparison(cmp)
	}

	response := s.narrate(message, formatComparisonForNarrative(cmp), events.Delta)
	if response == "" {
		response = fmt.Sprintf("%s leads with %.1f point difference.", cmp.Winner, cmp.ScoreDifference)
	}
	return &ChatReply{Response: response, Intent: "compare", Comparison: cmp}, nil
}

func (s *ChatService) handleMultiCompare(intent llm.Intent, events ChatEvents) (*ChatReply, error) {
	if len(intent.Politicians) < 2 {
		return &ChatReply{Response: "Please name the politicians to rank.", Intent: "multi_compare"}, nil
	}

	events.status(fmt.Sprintf("Ranking %d politicians...", len(intent.Politicians)))
	rankings, err := s.analyzer.MultiCompare(intent.Politicians)
	if err != nil {
		return nil, err
	}
	if events.Rankings != nil {
		events.Rankings(rankings)
	}

	var b strings.Builder
	b.WriteString("Likability ranking:\n")
	for _, r := range rankings {
		fmt.Fprintf(&b, "%d. %s - %.1f/100\n", r.Rank, r.Name, r.Score)
	}
	return &ChatReply{Response: strings.TrimRight(b.String(), "\n"), Intent: "multi_compare", Rankings: rankings}, nil
}

// parseIntent asks the model first and falls back to a small command grammar
// when no parser is configured or it fails.
func (s *ChatService) parseIntent(message string) llm.Intent {
	if s.intents != nil {
		intent, err := s.intents.ParseIntent(message)
		if err == nil && intent != nil {
			return *intent
		}
		if err != nil {
			slog.Warn("intent parsing failed, using keyword grammar", "error", err)
		}
	}
	return keywordIntent(message)
}

// keywordIntent recognizes "analyze NAME", "compare A vs B" / "compare A and
// B", and "help". Anything else is plain chat.
func keywordIntent(message string) llm.Intent {
	lower := strings.ToLower(message)

	switch {
	case strings.HasPrefix(lower, "help") || strings.Contains(lower, "what can you do"):
		return llm.Intent{Action: "help"}

	case strings.HasPrefix(lower, "compare "):
		rest := strings.TrimSpace(message[len("compare "):])
		var names []string
		for _, sep := range []string{" vs ", " vs. ", " and ", ","} {
			if strings.Contains(strings.ToLower(rest), sep) {
				for _, part := range strings.Split(rest, sep) {
					if name := strings.TrimSpace(part); name != "" {
						names = append(names, name)
					}
				}
				break
			}
		}
		action := "compare"
		if len(names) > 2 {
			action = "multi_compare"
		}
		return llm.Intent{Action: action, Politicians: names}

	case strings.HasPrefix(lower, "analyze ") || strings.HasPrefix(lower, "analyse "):
		name := strings.TrimSpace(message[len("analyze "):])
		if name == "" {
			return llm.Intent{Action: "analyze"}
		}
		return llm.Intent{Action: "analyze", Politicians: []string{name}}

	default:
		return llm.Intent{Action: "chat"}
	}
}

// narrate turns structured analysis into a conversational answer; empty means
// the caller should use its template fallback.
func (s *ChatService) narrate(message, analysis string, onDelta func(string)) string {
	if s.narrator == nil {
		return ""
	}

	if onDelta != nil {
		var b strings.Builder
		err := s.narrator.NarrateStream(message, analysis, func(delta string) {
			b.WriteString(delta)
			onDelta(delta)
		})
		if err != nil {
			slog.Warn("streaming narration failed", "error", err)
			return ""
		}
		return b.String()
	}

	response, err := s.narrator.Narrate(message, analysis)
	if err != nil {
		slog.Warn("narration failed", "error", err)
		return ""
	}
	return response
}

// formatForNarrative flattens a result into the compact JSON the narrator
// prompt expects.
func formatForNarrative(r *model.LikabilityResult) string {
	compact := map[string]any{
		"name":       r.Name,
		"score":      r.Score,
		"breakdown":  r.Breakdown,
		"insights":   r.Insights,
		"weaknesses": r.Weaknesses,
	}
	data, err := json.Marshal(compact)
	if err != nil {
		return fmt.Sprintf("%s scored %.1f/100", r.Name, r.Score)
	}
	return string(data)
}

func formatComparisonForNarrative(c *model.ComparisonResult) string {
	compact := map[string]any{
		"winner":           c.Winner,
		"score_difference": c.ScoreDifference,
		"politician1":      map[string]any{"name": c.Politician1.Name, "score": c.Politician1.Score},
		"politician2":      map[string]any{"name": c.Politician2.Name, "score": c.Politician2.Score},
		"insights":         c.ComparisonInsights,
	}
	data, err := json.Marshal(compact)
	if err != nil {
		return fmt.Sprintf("%s leads by %.1f points", c.Winner, c.ScoreDifference)
	}
	return string(data)
}
