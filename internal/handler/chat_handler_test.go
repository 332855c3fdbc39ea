package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/tasktailordevai/likability-score/internal/service"
)

type fakeChat struct {
	reply    *service.ChatReply
	err      error
	statuses []string
	deltas   []string
}

func (f *fakeChat) Handle(message string) (*service.ChatReply, error) {
	return f.reply, f.err
}

func (f *fakeChat) HandleStream(message string, events service.ChatEvents) (*service.ChatReply, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.statuses {
		events.Status(s)
	}
	for _, d := range f.deltas {
		events.Delta(d)
	}
	return f.reply, nil
}

func newChatRouter(fake *fakeChat) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(fake)
	r.POST("/api/chat", h.PostChat)
	r.POST("/api/chat/stream", h.PostChatStream)
	return r
}

func TestPostChat_ReturnsReply(t *testing.T) {
	fake := &fakeChat{reply: &service.ChatReply{Response: "Scored 60/100.", Intent: "analyze"}}
	r := newChatRouter(fake)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"message": "analyze Test Person"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/chat", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, w.Code, http.StatusOK)

	var res service.ChatReply
	err := json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, err, nil)
	assert.Equal(t, res.Intent, "analyze")
}

func TestPostChat_InvalidBody(t *testing.T) {
	r := newChatRouter(&fakeChat{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestPostChat_ServiceError(t *testing.T) {
	fake := &fakeChat{err: errors.New("message is required")}
	r := newChatRouter(fake)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": ""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestPostChatStream_EmitsEvents(t *testing.T) {
	fake := &fakeChat{
		reply:    &service.ChatReply{Response: "done text", Intent: "analyze"},
		statuses: []string{"Collecting data..."},
		deltas:   []string{"done ", "text"},
	}
	r := newChatRouter(fake)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/stream", strings.NewReader(`{"message": "analyze Test Person"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, w.Header().Get("Content-Type"), "text/event-stream")

	events := parseSSE(t, w.Body.String())
	assert.Equal(t, events[0]["type"], "status")
	assert.Equal(t, events[1]["type"], "delta")
	assert.Equal(t, events[1]["content"], "done ")

	last := events[len(events)-1]
	assert.Equal(t, last["type"], "done")
	assert.Equal(t, last["response"], "done text")
}

func TestPostChatStream_ErrorEvent(t *testing.T) {
	fake := &fakeChat{err: errors.New("model unavailable")}
	r := newChatRouter(fake)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/stream", strings.NewReader(`{"message": "analyze X"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	events := parseSSE(t, w.Body.String())
	last := events[len(events)-1]
	assert.Equal(t, last["type"], "error")
	assert.Equal(t, last["error"], "model unavailable")
}

func parseSSE(t *testing.T, body string) []map[string]any {
	t.Helper()

	var events []map[string]any
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var event map[string]any
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			t.Fatalf("invalid event %q: %v", line, err)
		}
		events = append(events, event)
	}

	if len(events) == 0 {
		t.Fatal("no events in stream body")
	}
	return events
}
