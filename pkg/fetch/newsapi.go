package fetch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const newsAPIBaseURL = "https://newsapi.org/v2/everything"

// NewsAPIClient searches news articles via newsapi.org. The free tier allows
// 100 requests/day and articles up to one month old.
type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    newsAPIBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

// Fetch searches for recent articles mentioning the query as an exact phrase,
// going back up to 30 days.
func (c *NewsAPIClient) Fetch(query string) NewsResult {
	fromDate := c.now().AddDate(0, 0, -30).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q", query))
	params.Set("from", fromDate)
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", "50")
	params.Set("language", "en")
	params.Set("apiKey", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return NewsResult{Articles: []Article{}, Error: fmt.Sprintf("NewsAPI error: %v", err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return NewsResult{Articles: []Article{}, Error: "Invalid NewsAPI key"}
	case http.StatusTooManyRequests:
		return NewsResult{Articles: []Article{}, Error: "NewsAPI rate limit exceeded (100/day for free tier)"}
	default:
		return NewsResult{Articles: []Article{}, Error: fmt.Sprintf("NewsAPI error: %d", resp.StatusCode)}
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return NewsResult{Articles: []Article{}, Error: fmt.Sprintf("NewsAPI decode error: %v", err)}
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			Source:      item.Source.Name,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
	}

	return NewsResult{
		Articles:     articles,
		TotalResults: raw.TotalResults,
	}
}

type newsAPIResponse struct {
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
	Source      newsAPISource `json:"source"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
