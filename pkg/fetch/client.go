package fetch

// Clients in this package never return a Go error from Fetch: upstream
// failures are reported through the Error field so the scoring pipeline can
// degrade to neutral defaults instead of aborting.

type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

type NewsResult struct {
	Articles     []Article `json:"articles"`
	TotalResults int       `json:"total_results"`
	Error        string    `json:"error,omitempty"`
}

type Post struct {
	Title       string  `json:"title"`
	Text        string  `json:"text"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	URL         string  `json:"url"`
	CreatedUTC  float64 `json:"created_utc"`
}

type RedditResult struct {
	Posts        []Post `json:"posts"`
	TotalResults int    `json:"total_results"`
	Error        string `json:"error,omitempty"`
}

type Video struct {
	VideoID       string `json:"video_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Channel       string `json:"channel"`
	PublishedAt   string `json:"published_at"`
	URL           string `json:"url"`
	Views         int64  `json:"views"`
	Likes         int64  `json:"likes"`
	CommentsCount int64  `json:"comments_count"`
	Duration      string `json:"duration"`
}

type VideoResult struct {
	Videos       []Video `json:"videos"`
	TotalResults int     `json:"total_results"`
	Error        string  `json:"error,omitempty"`
}
