package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kioku/src/core/domain"
)

func feedDay(day int) time.Time {
	return time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC)
}

func feedSources() (*fakeKiokuSource, *fakeKiokuSource, *fakeKiokuSource) {
	docs := &fakeKiokuSource{items: []domain.Kioku{
		domain.DocKioku{ID: "a64f9b36-2f12-4b9e-8f5d-0af24a1b3c77", Title: "doc", UserName: "alice", CreatedAt: feedDay(10)},
	}}
	notes := &fakeKiokuSource{items: []domain.Kioku{
		domain.NoteKioku{ID: "0f4a2a6e-5a31-4d75-9c6e-6f2a3f9f2a11", Title: "note", NoteUserName: "bob", URL: "https://note.com/bob/n/abc", CreatedAt: feedDay(20)},
	}}
	videos := &fakeKiokuSource{items: []domain.Kioku{
		domain.YoutubeKioku{ID: "dQw4w9WgXcQ", Title: "video", ChannelName: "ch", IsPublic: false, CreatedAt: feedDay(5)},
	}}
	return docs, notes, videos
}

func TestKiokuServiceGet(t *testing.T) {
	docs, notes, videos := feedSources()
	svc := NewKiokuService(docs, notes, videos, nil, testLogger())

	items, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Equal(t, domain.KiokuCategoryNote, items[0].Category)
	require.Equal(t, domain.KiokuCategoryDoc, items[1].Category)
	require.Equal(t, domain.KiokuCategoryPrivateYoutube, items[2].Category)
	require.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", items[2].ThumbnailURL)
}

func TestKiokuServiceGetSourceFailure(t *testing.T) {
	docs, notes, videos := feedSources()
	notes.err = domain.NewSystemError("database error: note", nil)
	svc := NewKiokuService(docs, notes, videos, nil, testLogger())

	_, err := svc.Get(context.Background())
	require.True(t, domain.IsSystemError(err), "no partial feed on source failure")
}

func TestKiokuServiceGetCacheHit(t *testing.T) {
	docs, notes, videos := feedSources()
	cached := []domain.FeedItem{{ID: "cached", Title: "from cache"}}
	cache := &fakeFeedCache{items: cached, hit: true}
	svc := NewKiokuService(docs, notes, videos, cache, testLogger())

	items, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, cached, items)
	require.Zero(t, cache.setCalls)
}

func TestKiokuServiceGetCacheMissPopulates(t *testing.T) {
	docs, notes, videos := feedSources()
	cache := &fakeFeedCache{}
	svc := NewKiokuService(docs, notes, videos, cache, testLogger())

	items, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, 1, cache.setCalls)
	require.Equal(t, items, cache.items)
}

func TestKiokuServiceGetCacheErrorsAreSoft(t *testing.T) {
	docs, notes, videos := feedSources()
	cache := &fakeFeedCache{
		getErr: domain.NewSystemError("redis down", nil),
		setErr: domain.NewSystemError("redis down", nil),
	}
	svc := NewKiokuService(docs, notes, videos, cache, testLogger())

	items, err := svc.Get(context.Background())
	require.NoError(t, err, "cache failures must not fail the feed")
	require.Len(t, items, 3)
}
