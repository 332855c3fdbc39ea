package fetch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	redditTokenURL = "https://www.reddit.com/api/v1/access_token"
	redditAPIURL   = "https://oauth.reddit.com"

	redditPostLimit = 50
	maxPostTextLen  = 500
)

// Subreddits searched for political discussion.
var redditSubreddits = []string{"india", "IndiaSpeaks", "indianews", "IndianPoliticalMemes"}

// RedditClient searches subreddits through the OAuth2 client-credentials
// flow. Tokens are cached until shortly before expiry.
type RedditClient struct {
	clientID     string
	clientSecret string
	userAgent    string
	tokenURL     string
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewRedditClient(clientID, clientSecret, userAgent string) *RedditClient {
	return &RedditClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
		tokenURL:     redditTokenURL,
		baseURL:      redditAPIURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *RedditClient) Name() string {
	return "Reddit"
}

// Fetch searches the configured subreddits for posts about the query, most
// upvoted first. Per-subreddit failures are reported in Error without
// discarding the other subreddits' posts.
func (c *RedditClient) Fetch(query string) RedditResult {
	token, err := c.accessToken()
	if err != nil {
		return RedditResult{Posts: []Post{}, Error: fmt.Sprintf("Reddit API error: %v", err)}
	}

	perSubreddit := redditPostLimit / len(redditSubreddits)
	var allPosts []Post
	var errs []string

	for _, subreddit := range redditSubreddits {
		posts, err := c.search(token, subreddit, query, perSubreddit)
		if err != nil {
			errs = append(errs, fmt.Sprintf("r/%s: %v", subreddit, err))
			continue
		}
		allPosts = append(allPosts, posts...)
	}

	sort.SliceStable(allPosts, func(i, j int) bool {
		return allPosts[i].Score > allPosts[j].Score
	})
	if len(allPosts) > redditPostLimit {
		allPosts = allPosts[:redditPostLimit]
	}
	if allPosts == nil {
		allPosts = []Post{}
	}

	return RedditResult{
		Posts:        allPosts,
		TotalResults: len(allPosts),
		Error:        strings.Join(errs, "; "),
	}
}

func (c *RedditClient) search(token, subreddit, query string, limit int) ([]Post, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("restrict_sr", "1")
	params.Set("sort", "relevance")
	params.Set("t", "month")
	params.Set("limit", fmt.Sprintf("%d", limit))

	endpoint := fmt.Sprintf("%s/r/%s/search?%s", c.baseURL, subreddit, params.Encode())
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var raw redditListing
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(raw.Data.Children))
	for _, child := range raw.Data.Children {
		d := child.Data
		text := d.Selftext
		if len(text) > maxPostTextLen {
			text = text[:maxPostTextLen]
		}
		posts = append(posts, Post{
			Title:       d.Title,
			Text:        text,
			Subreddit:   subreddit,
			Score:       d.Score,
			UpvoteRatio: d.UpvoteRatio,
			NumComments: d.NumComments,
			URL:         "https://reddit.com" + d.Permalink,
			CreatedUTC:  d.CreatedUTC,
		})
	}
	return posts, nil
}

func (c *RedditClient) accessToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequest(http.MethodPost, c.tokenURL, body)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}

	c.token = parsed.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(parsed.ExpiresIn-60) * time.Second)
	return c.token, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
}
