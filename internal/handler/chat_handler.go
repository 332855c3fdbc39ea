package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasktailordevai/likability-score/internal/analyzer"
	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/internal/service"
	"github.com/tasktailordevai/likability-score/pkg/llm"
)

type ChatRunner interface {
	Handle(message string) (*service.ChatReply, error)
	HandleStream(message string, events service.ChatEvents) (*service.ChatReply, error)
}

type ChatHandler struct {
	chat ChatRunner
}

func NewChatHandler(chat ChatRunner) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) PostChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, err := h.chat.Handle(req.Message)
	if err != nil {
		slog.Error("chat failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// PostChatStream answers over server-sent events. Each event is one JSON
// object with a "type" field: status, intent, score, comparison, rankings,
// delta, done or error.
func (h *ChatHandler) PostChatStream(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	send := func(payload any) {
		data, err := json.Marshal(payload)
		if err != nil {
			slog.Error("failed to marshal stream event", "error", err)
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", data)
		c.Writer.Flush()
	}

	reply, err := h.chat.HandleStream(req.Message, service.ChatEvents{
		Status: func(msg string) {
			send(gin.H{"type": "status", "message": msg})
		},
		Intent: func(intent llm.Intent) {
			send(gin.H{"type": "intent", "action": intent.Action, "politicians": intent.Politicians})
		},
		Score: func(r *model.LikabilityResult) {
			send(gin.H{"type": "score", "result": r})
		},
		Comparison: func(r *model.ComparisonResult) {
			send(gin.H{"type": "comparison", "result": r})
		},
		Rankings: func(r []analyzer.Ranking) {
			send(gin.H{"type": "rankings", "rankings": r})
		},
		Delta: func(d string) {
			send(gin.H{"type": "delta", "content": d})
		},
	})
	if err != nil {
		send(gin.H{"type": "error", "error": err.Error()})
		return
	}

	send(gin.H{"type": "done", "response": reply.Response, "intent": reply.Intent})
}
