// Package noteapi fetches note.com article metadata through the OGP
// scraping endpoint.
package noteapi

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

type ogpResponse struct {
	URL string `json:"url"`
	OG  struct {
		Title string `json:"title"`
		Image string `json:"image"`
	} `json:"og"`
}

// Client implements ports.NotePort against the OGP endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(cfg config.NoteConfig, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.OGPBaseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// FetchInfo resolves the author name from the note.com user page, then the
// article title, url and thumbnail from the article page. note.com suffixes
// OGP titles with "｜<owner>", which is stripped.
func (c *Client) FetchInfo(ctx context.Context, noteID domain.NoteID, authorHandle string) (*domain.NoteInfo, error) {
	userPage, err := c.fetchOGP(ctx, fmt.Sprintf("https://note.com/%s", authorHandle))
	if err != nil {
		return nil, err
	}
	if userPage.OG.Title == "" {
		return nil, domain.NewSystemError(fmt.Sprintf("ogp api returned no user name for %q", authorHandle), nil)
	}
	userName := strings.TrimSuffix(userPage.OG.Title, "｜note")

	article, err := c.fetchOGP(ctx, fmt.Sprintf("https://note.com/%s/n/%s", authorHandle, noteID.String()))
	if err != nil {
		return nil, err
	}
	if article.URL == "" {
		return nil, domain.NewSystemError(fmt.Sprintf("ogp api returned no url for note %s", noteID.String()), nil)
	}
	if article.OG.Title == "" {
		return nil, domain.NewSystemError(fmt.Sprintf("ogp api returned no title for note %s", noteID.String()), nil)
	}
	title := strings.TrimSuffix(article.OG.Title, "｜"+userName)

	articleURL, err := domain.NewURL(article.URL, "NoteInfo.url")
	if err != nil {
		return nil, err
	}
	thumbnail, err := domain.NewURLOrNone(article.OG.Image, "NoteInfo.thumbnailUrl")
	if err != nil {
		return nil, err
	}

	return &domain.NoteInfo{
		Title:        title,
		NoteUserName: userName,
		URL:          articleURL,
		ThumbnailURL: thumbnail,
	}, nil
}

func (c *Client) fetchOGP(ctx context.Context, target string) (*ogpResponse, error) {
	endpoint := c.baseURL + "?url=" + url.QueryEscape(target)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewSystemError("build ogp request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewSystemError("ogp api request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewSystemError(fmt.Sprintf("ogp api returned status %d for %s", resp.StatusCode, target), nil)
	}

	var body ogpResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.NewSystemError("decode ogp response", err)
	}
	return &body, nil
}
