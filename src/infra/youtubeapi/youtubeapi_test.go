package youtubeapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"kioku/src/core/domain"
	"kioku/src/infra/config"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(config.YoutubeConfig{APIKey: "test-key", BaseURL: srv.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return c, srv
}

func TestFetchInfo(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/videos", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "snippet,contentDetails,status", q.Get("part"))
		require.Equal(t, "dQw4w9WgXcQ", q.Get("id"))
		require.Equal(t, "test-key", q.Get("key"))

		fmt.Fprint(w, `{"items":[{
			"snippet":{"title":"A Video","channelTitle":"channel"},
			"contentDetails":{"duration":"PT3M33S"},
			"status":{"privacyStatus":"public"}
		}]}`)
	})
	defer srv.Close()

	id, err := domain.NewYoutubeID("dQw4w9WgXcQ")
	require.NoError(t, err)

	info, err := c.FetchInfo(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "A Video", info.Title)
	require.Equal(t, "channel", info.ChannelName)
	require.Equal(t, "PT3M33S", info.Duration)
	require.True(t, info.IsPublic)
}

func TestFetchInfoUnlistedVideo(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"items":[{
			"snippet":{"title":"Hidden","channelTitle":"channel"},
			"contentDetails":{"duration":"PT10M"},
			"status":{"privacyStatus":"unlisted"}
		}]}`)
	})
	defer srv.Close()

	id, _ := domain.NewYoutubeID("dQw4w9WgXcQ")
	info, err := c.FetchInfo(context.Background(), id)
	require.NoError(t, err)
	require.False(t, info.IsPublic, "anything but public counts as private")
}

func TestFetchInfoUnknownVideo(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	})
	defer srv.Close()

	id, _ := domain.NewYoutubeID("dQw4w9WgXcQ")
	_, err := c.FetchInfo(context.Background(), id)
	require.True(t, domain.IsSystemError(err))
}

func TestFetchInfoUpstreamError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer srv.Close()

	id, _ := domain.NewYoutubeID("dQw4w9WgXcQ")
	_, err := c.FetchInfo(context.Background(), id)
	require.True(t, domain.IsSystemError(err))
}
