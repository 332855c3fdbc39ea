package fetch

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const googleNewsRSSURL = "https://news.google.com/rss/search"

// RSSClient pulls headlines from Google News RSS feeds. No API key, no rate
// limits, headlines only.
type RSSClient struct {
	baseURL string
	parser  *gofeed.Parser
}

func NewRSSClient() *RSSClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	return &RSSClient{
		baseURL: googleNewsRSSURL,
		parser:  parser,
	}
}

// Fetch queries the feed for one language/country edition.
func (c *RSSClient) Fetch(query, language, country string) NewsResult {
	feedURL := fmt.Sprintf("%s?q=%s&hl=%s-%s&gl=%s&ceid=%s:%s",
		c.baseURL, url.QueryEscape(query), language, country, country, country, language)

	feed, err := c.parser.ParseURL(feedURL)
	if err != nil {
		return NewsResult{Articles: []Article{}, Error: fmt.Sprintf("RSS fetch error: %v", err)}
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title, source := splitGoogleNewsTitle(item.Title)
		articles = append(articles, Article{
			Title:       title,
			Description: item.Description,
			Source:      source,
			URL:         item.Link,
			PublishedAt: item.Published,
		})
	}

	return NewsResult{
		Articles:     articles,
		TotalResults: len(articles),
	}
}

// FetchMultipleLanguages merges the English and Hindi editions, deduplicating
// by URL. Per-language errors are joined but do not discard the other
// language's articles.
func (c *RSSClient) FetchMultipleLanguages(query string) NewsResult {
	english := c.Fetch(query, "en", "IN")
	hindi := c.Fetch(query, "hi", "IN")

	seen := make(map[string]bool)
	unique := []Article{}
	for _, a := range append(english.Articles, hindi.Articles...) {
		if seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		unique = append(unique, a)
	}

	var errs []string
	if english.Error != "" {
		errs = append(errs, "English: "+english.Error)
	}
	if hindi.Error != "" {
		errs = append(errs, "Hindi: "+hindi.Error)
	}

	return NewsResult{
		Articles:     unique,
		TotalResults: len(unique),
		Error:        strings.Join(errs, "; "),
	}
}

// splitGoogleNewsTitle extracts the publisher from Google News titles, which
// arrive as "Headline - Publisher".
func splitGoogleNewsTitle(title string) (string, string) {
	idx := strings.LastIndex(title, " - ")
	if idx < 0 {
		return title, "Unknown"
	}
	return title[:idx], title[idx+3:]
}
