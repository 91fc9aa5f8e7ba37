package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

func TestDocServiceCreate(t *testing.T) {
	repo := newFakeDocRepo()
	svc := NewDocService(repo, &fakeClock{}, testLogger())

	res, err := svc.Create(context.Background(), CreateDocCmd{Title: "My Doc", UserID: "user-1"})
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	id, err := domain.NewDocID(res.ID)
	require.NoError(t, err)
	stored, err := repo.Read(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, domain.DocStatusPrivate, stored.Status)
	require.Equal(t, "My Doc", stored.Title.String())
	require.Contains(t, stored.Body, `"heading"`)
	require.Equal(t, testNow, stored.CreatedAt)
}

func TestDocServiceCreateValidation(t *testing.T) {
	repo := newFakeDocRepo()
	svc := NewDocService(repo, &fakeClock{}, testLogger())

	tests := []struct {
		name string
		cmd  CreateDocCmd
	}{
		{"empty title", CreateDocCmd{Title: "", UserID: "user-1"}},
		{"title too long", CreateDocCmd{Title: strings.Repeat("x", 101), UserID: "user-1"}},
		{"missing user", CreateDocCmd{Title: "ok", UserID: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.cmd)
			require.True(t, domain.IsValidationError(err))
		})
	}
	require.Zero(t, repo.upsertCalls, "nothing may be written on a rejected command")
}

func TestDocServiceUpdate(t *testing.T) {
	repo := newFakeDocRepo()
	svc := NewDocService(repo, &fakeClock{}, testLogger())

	res, err := svc.Create(context.Background(), CreateDocCmd{Title: "Before", UserID: "user-1"})
	require.NoError(t, err)

	err = svc.Update(context.Background(), UpdateDocCmd{
		ID:           res.ID,
		Title:        "After",
		Description:  "now described",
		Status:       "public",
		Body:         `{"type":"doc"}`,
		ThumbnailURL: "https://example.com/t.png",
		UserID:       "user-1",
	})
	require.NoError(t, err)

	id, _ := domain.NewDocID(res.ID)
	stored, err := repo.Read(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "After", stored.Title.String())
	require.Equal(t, domain.DocStatusPublic, stored.Status)
	require.NotNil(t, stored.Description)
	require.Equal(t, "now described", stored.Description.String())
	require.NotNil(t, stored.ThumbnailURL)
}

func TestDocServiceUpdateRejectsBeforeRead(t *testing.T) {
	repo := newFakeDocRepo()
	svc := NewDocService(repo, &fakeClock{}, testLogger())

	res, err := svc.Create(context.Background(), CreateDocCmd{Title: "Keep", UserID: "user-1"})
	require.NoError(t, err)
	writesBefore := repo.upsertCalls

	err = svc.Update(context.Background(), UpdateDocCmd{
		ID:     res.ID,
		Title:  "Renamed",
		Status: "draft", // not a valid status
		UserID: "user-1",
	})
	require.True(t, domain.IsValidationError(err))
	require.Equal(t, writesBefore, repo.upsertCalls)

	id, _ := domain.NewDocID(res.ID)
	stored, _ := repo.Read(context.Background(), id)
	require.Equal(t, "Keep", stored.Title.String(), "a rejected update must not change the doc")
}

func TestDocServiceUpdateNotFound(t *testing.T) {
	svc := NewDocService(newFakeDocRepo(), &fakeClock{}, testLogger())

	err := svc.Update(context.Background(), UpdateDocCmd{
		ID:     "a64f9b36-2f12-4b9e-8f5d-0af24a1b3c77",
		Title:  "x",
		Status: "public",
		UserID: "user-1",
	})
	require.True(t, domain.IsNotFound(err))
}

func TestDocServiceDelete(t *testing.T) {
	repo := newFakeDocRepo()
	svc := NewDocService(repo, &fakeClock{}, testLogger())

	res, err := svc.Create(context.Background(), CreateDocCmd{Title: "Doomed", UserID: "user-1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), DeleteDocCmd{ID: res.ID}))

	id, _ := domain.NewDocID(res.ID)
	_, err = repo.Read(context.Background(), id)
	require.True(t, domain.IsNotFound(err))

	// Deleting again reports not found, no blind delete
	err = svc.Delete(context.Background(), DeleteDocCmd{ID: res.ID})
	require.True(t, domain.IsNotFound(err))
	require.Equal(t, 1, repo.deleteCalls)
}

func TestDocServiceSearch(t *testing.T) {
	repo := newFakeDocRepo()
	svc := NewDocService(repo, &fakeClock{}, testLogger())

	res, err := svc.Create(context.Background(), CreateDocCmd{Title: "Private One", UserID: "user-1"})
	require.NoError(t, err)
	require.NoError(t, svc.Update(context.Background(), UpdateDocCmd{
		ID: res.ID, Title: "Public One", Status: "public", UserID: "user-1",
	}))
	_, err = svc.Create(context.Background(), CreateDocCmd{Title: "Still Private", UserID: "user-1"})
	require.NoError(t, err)

	all, err := svc.Search(context.Background(), ports.SearchDocQuery{})
	require.NoError(t, err)
	require.Len(t, all.Docs, 2)

	public, err := svc.Search(context.Background(), ports.SearchDocQuery{
		Statuses: []domain.DocStatus{domain.DocStatusPublic},
	})
	require.NoError(t, err)
	require.Len(t, public.Docs, 1)
	require.Equal(t, "Public One", public.Docs[0].Title)
	require.NotEmpty(t, public.Docs[0].Slug)
}
