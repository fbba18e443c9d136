package model

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"publishedAt"`
}

// Wire types for the YouTube Data API v3 search response.
type YouTubeSearchResponse struct {
	Items []YouTubeSearchItem `json:"items"`
}

type YouTubeSearchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		PublishedAt string `json:"publishedAt"`
		Thumbnails  struct {
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}
