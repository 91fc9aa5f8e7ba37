package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

// KiokuService serves the aggregated feed.
type KiokuService struct {
	docs   ports.DocKiokuSource
	notes  ports.NoteKiokuSource
	videos ports.YoutubeKiokuSource
	cache  ports.FeedCache
	log    *slog.Logger
}

// NewKiokuService wires the three content sources. cache may be nil, in
// which case every request recomputes the feed.
func NewKiokuService(docs ports.DocKiokuSource, notes ports.NoteKiokuSource, videos ports.YoutubeKiokuSource, cache ports.FeedCache, log *slog.Logger) *KiokuService {
	return &KiokuService{docs: docs, notes: notes, videos: videos, cache: cache, log: log}
}

// Get returns the merged feed, most recent first.
//
// The three sources are fetched concurrently and the request fails if any
// of them fails; there is no partial feed. Cache failures are logged and
// treated as misses.
func (s *KiokuService) Get(ctx context.Context) ([]domain.FeedItem, error) {
	if s.cache != nil {
		items, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn("feed cache read failed", "error", err)
		} else if ok {
			return items, nil
		}
	}

	var docKiokus, noteKiokus, videoKiokus []domain.Kioku
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docKiokus, err = s.docs.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		noteKiokus, err = s.notes.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		videoKiokus, err = s.videos.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := domain.MergeAndSortKiokus([][]domain.Kioku{docKiokus, noteKiokus, videoKiokus})
	items := make([]domain.FeedItem, 0, len(merged))
	for _, k := range merged {
		item, err := domain.ConvertToFeedItem(k)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, items); err != nil {
			s.log.Warn("feed cache write failed", "error", err)
		}
	}
	return items, nil
}
