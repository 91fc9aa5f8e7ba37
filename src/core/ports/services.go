package ports

import (
	"context"
	"io"
	"time"

	"kioku/src/core/domain"
)

// NotePort fetches note.com article metadata. The author handle is the
// note.com user name the article belongs to.
type NotePort interface {
	FetchInfo(ctx context.Context, noteID domain.NoteID, authorHandle string) (*domain.NoteInfo, error)
}

// YoutubePort fetches video metadata from the YouTube Data API.
type YoutubePort interface {
	FetchInfo(ctx context.Context, id domain.YoutubeID) (*domain.YoutubeInfo, error)
}

// TimePort is the injected clock. Workflows never read the wall clock
// directly, which keeps timestamp behavior deterministic in tests.
type TimePort interface {
	Now(ctx context.Context) (time.Time, error)
}

// Upload is a blob handed to the storage port.
type Upload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoragePort stores a blob and returns a publicly resolvable URL for it.
// Fails with a system error on unsupported content types or I/O failure.
type StoragePort interface {
	PutObject(ctx context.Context, up Upload) (string, error)
}

// FeedCache is an optional read-through cache for the aggregated feed.
// A miss is reported as (nil, false, nil); errors are for the caller to
// log and ignore, never to fail a feed request on.
type FeedCache interface {
	Get(ctx context.Context) ([]domain.FeedItem, bool, error)
	Set(ctx context.Context, items []domain.FeedItem) error
}
