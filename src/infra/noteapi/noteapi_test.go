package noteapi

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

const testNoteID = "0f4a2a6e-5a31-4d75-9c6e-6f2a3f9f2a11"

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(config.NoteConfig{OGPBaseURL: srv.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return c, srv
}

func TestFetchInfo(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		target := r.URL.Query().Get("url")
		switch target {
		case "https://note.com/alice":
			fmt.Fprint(w, `{"og":{"title":"Alice｜note"}}`)
		case "https://note.com/alice/n/" + testNoteID:
			fmt.Fprint(w, `{"url":"https://note.com/alice/n/abc","og":{"title":"My Article｜Alice","image":"https://assets.note.com/abc.png"}}`)
		default:
			t.Errorf("unexpected ogp target %q", target)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer srv.Close()

	id, err := domain.NewNoteID(testNoteID)
	require.NoError(t, err)

	info, err := c.FetchInfo(context.Background(), id, "alice")
	require.NoError(t, err)
	require.Equal(t, "My Article", info.Title, "the author suffix is stripped from the title")
	require.Equal(t, "Alice", info.NoteUserName, "the note suffix is stripped from the user name")
	require.Equal(t, "https://note.com/alice/n/abc", info.URL.String())
	require.NotNil(t, info.ThumbnailURL)
	require.Equal(t, "https://assets.note.com/abc.png", info.ThumbnailURL.String())
}

func TestFetchInfoNoThumbnail(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("url") == "https://note.com/alice" {
			fmt.Fprint(w, `{"og":{"title":"Alice｜note"}}`)
			return
		}
		fmt.Fprint(w, `{"url":"https://note.com/alice/n/abc","og":{"title":"Bare Article"}}`)
	})
	defer srv.Close()

	id, _ := domain.NewNoteID(testNoteID)
	info, err := c.FetchInfo(context.Background(), id, "alice")
	require.NoError(t, err)
	require.Equal(t, "Bare Article", info.Title)
	require.Nil(t, info.ThumbnailURL)
}

func TestFetchInfoUpstreamError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	id, _ := domain.NewNoteID(testNoteID)
	_, err := c.FetchInfo(context.Background(), id, "alice")
	require.True(t, domain.IsSystemError(err))
}

func TestFetchInfoMissingData(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		article string
	}{
		{"no user name", `{"og":{}}`, ""},
		{"no article url", `{"og":{"title":"Alice｜note"}}`, `{"og":{"title":"My Article"}}`},
		{"no article title", `{"og":{"title":"Alice｜note"}}`, `{"url":"https://note.com/alice/n/abc","og":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("url") == "https://note.com/alice" {
					fmt.Fprint(w, tt.user)
					return
				}
				fmt.Fprint(w, tt.article)
			})
			defer srv.Close()

			id, _ := domain.NewNoteID(testNoteID)
			_, err := c.FetchInfo(context.Background(), id, "alice")
			require.True(t, domain.IsSystemError(err))
		})
	}
}
