package fetch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	youtubeAPIURL    = "https://www.googleapis.com/youtube/v3"
	maxVideoResults  = 10
	maxVideoDescrLen = 500
)

// YouTubeClient searches videos through the Data API v3 and joins in view,
// like and comment statistics.
type YouTubeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey:     apiKey,
		baseURL:    youtubeAPIURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *YouTubeClient) Name() string {
	return "YouTube"
}

// Fetch returns the most viewed recent videos about the query, with
// statistics attached.
func (c *YouTubeClient) Fetch(query string) VideoResult {
	videos, err := c.search(query)
	if err != nil {
		return VideoResult{Videos: []Video{}, Error: fmt.Sprintf("YouTube error: %v", err)}
	}
	if len(videos) == 0 {
		return VideoResult{Videos: []Video{}}
	}

	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.VideoID
	}

	stats, err := c.statistics(ids)
	if err != nil {
		return VideoResult{Videos: []Video{}, Error: fmt.Sprintf("YouTube error: %v", err)}
	}

	for i := range videos {
		if s, ok := stats[videos[i].VideoID]; ok {
			videos[i].Views = s.views
			videos[i].Likes = s.likes
			videos[i].CommentsCount = s.comments
			videos[i].Duration = s.duration
		}
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Views > videos[j].Views
	})

	return VideoResult{
		Videos:       videos,
		TotalResults: len(videos),
	}
}

func (c *YouTubeClient) search(query string) ([]Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query+" India politics")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxVideoResults))
	params.Set("order", "viewCount")
	params.Set("relevanceLanguage", "en")
	params.Set("regionCode", "IN")
	params.Set("key", c.apiKey)

	var raw ytSearchResponse
	if err := c.getJSON(c.baseURL+"/search?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(raw.Items))
	for _, item := range raw.Items {
		description := item.Snippet.Description
		if len(description) > maxVideoDescrLen {
			description = description[:maxVideoDescrLen]
		}
		videos = append(videos, Video{
			VideoID:     item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: description,
			Channel:     item.Snippet.ChannelTitle,
			PublishedAt: item.Snippet.PublishedAt,
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}
	return videos, nil
}

type ytStats struct {
	views    int64
	likes    int64
	comments int64
	duration string
}

func (c *YouTubeClient) statistics(ids []string) (map[string]ytStats, error) {
	params := url.Values{}
	params.Set("part", "statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))
	params.Set("key", c.apiKey)

	var raw ytVideosResponse
	if err := c.getJSON(c.baseURL+"/videos?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	stats := make(map[string]ytStats, len(raw.Items))
	for _, item := range raw.Items {
		stats[item.ID] = ytStats{
			views:    parseCount(item.Statistics.ViewCount),
			likes:    parseCount(item.Statistics.LikeCount),
			comments: parseCount(item.Statistics.CommentCount),
			duration: item.ContentDetails.Duration,
		}
	}
	return stats, nil
}

func (c *YouTubeClient) getJSON(endpoint string, out any) error {
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// The API reports counts as decimal strings.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type ytSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

type ytVideosResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}
