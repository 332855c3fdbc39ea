package bot

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tasktailordevai/likability-score/internal/service"
)

// Bot answers Telegram messages through the chat service. One goroutine per
// update keeps slow analyses from blocking the poll loop.
type Bot struct {
	api  *tgbotapi.BotAPI
	chat *service.ChatService
}

func New(token string, chat *service.ChatService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	return &Bot{api: api, chat: chat}, nil
}

// Run long-polls for updates until the updates channel closes.
func (b *Bot) Run() {
	slog.Info("telegram bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		go b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	text := msg.Text
	if cmd := msg.Command(); cmd != "" {
		text = commandToMessage(cmd, msg.CommandArguments())
	}

	// Status updates edit a single placeholder message instead of spamming
	// the chat.
	placeholder, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "Working on it..."))
	if err != nil {
		slog.Error("failed to send placeholder", "error", err)
		return
	}

	reply, err := b.chat.HandleStream(text, service.ChatEvents{
		Status: func(status string) {
			edit := tgbotapi.NewEditMessageText(msg.Chat.ID, placeholder.MessageID, status)
			if _, err := b.api.Send(edit); err != nil {
				slog.Warn("failed to edit status message", "error", err)
			}
		},
	})
	if err != nil {
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, placeholder.MessageID, "Sorry, that did not work: "+err.Error())
		b.api.Send(edit)
		return
	}

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, placeholder.MessageID, formatReply(reply))
	if _, err := b.api.Send(edit); err != nil {
		slog.Error("failed to send reply", "error", err)
	}
}

// commandToMessage maps bot commands onto the chat grammar.
func commandToMessage(cmd, args string) string {
	switch cmd {
	case "start", "help":
		return "help"
	case "analyze":
		return "analyze " + args
	case "compare":
		return "compare " + args
	default:
		return args
	}
}

// formatReply appends a compact score breakdown under the narrative when an
// analysis payload is present.
func formatReply(reply *service.ChatReply) string {
	if reply.Score == nil {
		return reply.Response
	}

	var b strings.Builder
	b.WriteString(reply.Response)
	fmt.Fprintf(&b, "\n\nScore: %.1f/100\n", reply.Score.Score)
	fmt.Fprintf(&b, "News: %.1f | Reddit: %.1f | Engagement: %.1f | Trend: %.1f",
		reply.Score.Breakdown.NewsSentiment,
		reply.Score.Breakdown.RedditSentiment,
		reply.Score.Breakdown.Engagement,
		reply.Score.Breakdown.Trend)
	return b.String()
}
