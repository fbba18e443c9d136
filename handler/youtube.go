package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
)

const videoCacheKey = "videos:feed"

// fallbackVideos is served when no API key is configured, so the public site
// still renders a video section.
var fallbackVideos = []model.Video{
	{
		ID:          "dQw4w9WgXcQ",
		Title:       "Our mission in two minutes",
		Thumbnail:   "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		PublishedAt: "2024-01-15T08:00:00Z",
	},
	{
		ID:          "jNQXAC9IVRw",
		Title:       "Highlights from last year's charity gala",
		Thumbnail:   "https://i.ytimg.com/vi/jNQXAC9IVRw/hqdefault.jpg",
		PublishedAt: "2023-11-02T10:30:00Z",
	},
}

// GetVideos returns the latest uploads of the foundation's channel, cached
// in redis for ten minutes.
func (h *Handler) GetVideos(c *fiber.Ctx) error {
	if h.YouTube.APIKey == "" {
		return utils.SuccessResponse(c, fiber.StatusOK, fallbackVideos)
	}

	ctx := c.Context()
	if h.Redis != nil {
		if cached, err := h.Redis.Get(ctx, videoCacheKey).Bytes(); err == nil {
			var videos []model.Video
			if json.Unmarshal(cached, &videos) == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, videos)
			}
		}
	}

	q := url.Values{}
	q.Set("key", h.YouTube.APIKey)
	q.Set("channelId", h.YouTube.ChannelID)
	q.Set("part", "snippet,id")
	q.Set("order", "date")
	q.Set("type", "video")
	q.Set("maxResults", "6")

	resp, err := http.Get("https://www.googleapis.com/youtube/v3/search?" + q.Encode())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM,
			fmt.Errorf("youtube api status %d", resp.StatusCode))
	}

	var search model.YouTubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	videos := make([]model.Video, 0, len(search.Items))
	for _, item := range search.Items {
		videos = append(videos, model.Video{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}

	if h.Redis != nil {
		if payload, err := json.Marshal(videos); err == nil {
			if err := h.Redis.Set(ctx, videoCacheKey, payload, 10*time.Minute).Err(); err != nil {
				log.Printf("cache videos: %v", err)
			}
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, videos)
}
