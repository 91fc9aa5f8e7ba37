// Package youtubeapi fetches video metadata from the YouTube Data API v3.
package youtubeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kioku/src/core/domain"
	"kioku/src/infra/config"
)

type videoListResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Status struct {
			PrivacyStatus string `json:"privacyStatus"`
		} `json:"status"`
	} `json:"items"`
}

// Client implements ports.YoutubePort.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

func New(cfg config.YoutubeConfig, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// FetchInfo looks the video up by id. An unknown id comes back from the API
// as an empty item list, which is reported as a system error.
func (c *Client) FetchInfo(ctx context.Context, id domain.YoutubeID) (*domain.YoutubeInfo, error) {
	q := url.Values{}
	q.Set("part", "snippet,contentDetails,status")
	q.Set("id", id.String())
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + "/videos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewSystemError("build youtube request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewSystemError("youtube api request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewSystemError(fmt.Sprintf("youtube api returned status %d", resp.StatusCode), nil)
	}

	var body videoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.NewSystemError("decode youtube response", err)
	}
	if len(body.Items) == 0 {
		return nil, domain.NewSystemError(fmt.Sprintf("youtube video not found: id=%s", id.String()), nil)
	}

	item := body.Items[0]
	return &domain.YoutubeInfo{
		Title:       item.Snippet.Title,
		ChannelName: item.Snippet.ChannelTitle,
		Duration:    item.ContentDetails.Duration,
		IsPublic:    item.Status.PrivacyStatus == "public",
	}, nil
}
