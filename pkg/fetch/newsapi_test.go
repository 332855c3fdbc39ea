package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newsAPITestClient(srv *httptest.Server) *NewsAPIClient {
	c := NewNewsAPIClient("test-key")
	c.baseURL = srv.URL
	c.httpClient = srv.Client()
	return c
}

func TestNewsAPIFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"Narendra Modi"`, r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totalResults": 2,
			"articles": [
				{"title": "Modi inaugurates metro line", "description": "New line opened.", "url": "https://example.com/1", "publishedAt": "2026-08-20T10:00:00Z", "source": {"name": "The Hindu"}},
				{"title": "Opposition criticizes policy", "description": "Debate continues.", "url": "https://example.com/2", "publishedAt": "2026-08-21T10:00:00Z", "source": {"name": "NDTV"}}
			]
		}`))
	}))
	defer srv.Close()

	res := newsAPITestClient(srv).Fetch("Narendra Modi")

	assert.Equal(t, "", res.Error)
	assert.Equal(t, 2, res.TotalResults)
	assert.Equal(t, 2, len(res.Articles))
	assert.Equal(t, "Modi inaugurates metro line", res.Articles[0].Title)
	assert.Equal(t, "The Hindu", res.Articles[0].Source)
	assert.Equal(t, "https://example.com/1", res.Articles[0].URL)
}

func TestNewsAPIFetchUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	res := newsAPITestClient(srv).Fetch("Modi")

	assert.Equal(t, "Invalid NewsAPI key", res.Error)
	assert.Equal(t, 0, len(res.Articles))
}

func TestNewsAPIFetchRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	res := newsAPITestClient(srv).Fetch("Modi")

	assert.Equal(t, "NewsAPI rate limit exceeded (100/day for free tier)", res.Error)
}

func TestNewsAPIFetchDateRange(t *testing.T) {
	var gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from")
		w.Write([]byte(`{"totalResults": 0, "articles": []}`))
	}))
	defer srv.Close()

	c := newsAPITestClient(srv)
	c.now = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	c.Fetch("Modi")

	assert.Equal(t, "2026-07-27", gotFrom)
}
