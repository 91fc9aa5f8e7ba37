package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"kioku/src/core/domain"
)

func TestYoutubeServiceCreate(t *testing.T) {
	repo := newFakeYoutubeRepo()
	port := &fakeYoutubePort{info: &domain.YoutubeInfo{
		Title:       "A Video",
		ChannelName: "channel",
		Duration:    "PT3M33S",
		IsPublic:    true,
	}}
	svc := NewYoutubeService(repo, port, &fakeClock{}, testLogger())

	res, err := svc.Create(context.Background(), CreateYoutubeCmd{ID: "dQw4w9WgXcQ"})
	require.NoError(t, err)
	require.Equal(t, "dQw4w9WgXcQ", res.ID)

	stored, err := repo.Read(context.Background(), domain.YoutubeID("dQw4w9WgXcQ"))
	require.NoError(t, err)
	require.Equal(t, "A Video", stored.Info.Title)
	require.True(t, stored.Info.IsPublic)
	require.Equal(t, testNow, stored.CreatedAt)
}

func TestYoutubeServiceCreateInvalidID(t *testing.T) {
	repo := newFakeYoutubeRepo()
	port := &fakeYoutubePort{info: &domain.YoutubeInfo{}}
	svc := NewYoutubeService(repo, port, &fakeClock{}, testLogger())

	_, err := svc.Create(context.Background(), CreateYoutubeCmd{ID: "short"})
	require.True(t, domain.IsValidationError(err))
	require.Zero(t, port.calls, "an invalid id must fail before the fetch")
	require.Zero(t, repo.upsertCalls)
}

func TestYoutubeServiceCreateFetchFailure(t *testing.T) {
	repo := newFakeYoutubeRepo()
	port := &fakeYoutubePort{err: domain.NewSystemError("youtube video not found: id=dQw4w9WgXcQ", nil)}
	svc := NewYoutubeService(repo, port, &fakeClock{}, testLogger())

	_, err := svc.Create(context.Background(), CreateYoutubeCmd{ID: "dQw4w9WgXcQ"})
	require.True(t, domain.IsSystemError(err))
	require.Zero(t, repo.upsertCalls)
}
