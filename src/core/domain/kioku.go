package domain

import (
	"fmt"
	"sort"
	"time"
)

// KiokuCategory classifies a feed entry by its content source.
type KiokuCategory string

const (
	KiokuCategoryDoc            KiokuCategory = "doc"
	KiokuCategoryNote           KiokuCategory = "note"
	KiokuCategoryYoutube        KiokuCategory = "youtube"
	KiokuCategoryPrivateYoutube KiokuCategory = "privateYoutube"
)

// Kioku is one entry of the aggregated feed, before projection. The variant
// set is closed: DocKioku, NoteKioku and YoutubeKioku are the only
// implementations, enforced by the unexported marker method. Adding a new
// content source means adding a variant here and a case in ConvertToFeedItem.
type Kioku interface {
	kioku()
	// PostedAt is the creation time used for feed ordering.
	PostedAt() time.Time
}

// DocKioku is the feed projection of a Doc.
type DocKioku struct {
	ID           DocID
	Title        string
	UserName     string
	ThumbnailURL string
	CreatedAt    time.Time
}

func (DocKioku) kioku()                {}
func (k DocKioku) PostedAt() time.Time { return k.CreatedAt }

// NoteKioku is the feed projection of a Note.
type NoteKioku struct {
	ID           NoteID
	Title        string
	NoteUserName string
	URL          string
	ThumbnailURL string
	CreatedAt    time.Time
}

func (NoteKioku) kioku()                {}
func (k NoteKioku) PostedAt() time.Time { return k.CreatedAt }

// YoutubeKioku is the feed projection of a Youtube video.
type YoutubeKioku struct {
	ID          YoutubeID
	Title       string
	ChannelName string
	IsPublic    bool
	Duration    string
	CreatedAt   time.Time
}

func (YoutubeKioku) kioku()                {}
func (k YoutubeKioku) PostedAt() time.Time { return k.CreatedAt }

// FeedItem is the unified feed shape served to clients.
type FeedItem struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Name         string        `json:"name"`
	Category     KiokuCategory `json:"category"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Duration     string        `json:"duration,omitempty"`
	URL          string        `json:"url"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// MergeAndSortKiokus flattens independently fetched source lists into one
// sequence sorted by creation time, most recent first. The sort is stable,
// so entries with equal timestamps keep the order of their source lists
// (docs, then notes, then videos, in the order the lists were passed).
func MergeAndSortKiokus(lists [][]Kioku) []Kioku {
	var total int
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]Kioku, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PostedAt().After(merged[j].PostedAt())
	})
	return merged
}

// ConvertToFeedItem projects a Kioku variant into the unified feed shape.
// The mapping is total over the closed variant set; an unknown variant is a
// programming error and reported as such.
func ConvertToFeedItem(k Kioku) (FeedItem, error) {
	switch v := k.(type) {
	case DocKioku:
		return FeedItem{
			ID:           v.ID.String(),
			Title:        v.Title,
			Name:         v.UserName,
			Category:     KiokuCategoryDoc,
			ThumbnailURL: v.ThumbnailURL,
			URL:          "/docs/" + v.ID.Short(),
			CreatedAt:    v.CreatedAt,
		}, nil
	case NoteKioku:
		return FeedItem{
			ID:           v.ID.String(),
			Title:        v.Title,
			Name:         v.NoteUserName,
			Category:     KiokuCategoryNote,
			ThumbnailURL: v.ThumbnailURL,
			URL:          v.URL,
			CreatedAt:    v.CreatedAt,
		}, nil
	case YoutubeKioku:
		category := KiokuCategoryYoutube
		if !v.IsPublic {
			category = KiokuCategoryPrivateYoutube
		}
		return FeedItem{
			ID:       v.ID.String(),
			Title:    v.Title,
			Name:     v.ChannelName,
			Category: category,
			// The thumbnail is derived from the video id, never stored.
			ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", v.ID),
			Duration:     v.Duration,
			URL:          fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID),
			CreatedAt:    v.CreatedAt,
		}, nil
	default:
		return FeedItem{}, NewSystemError(fmt.Sprintf("unhandled kioku variant %T", k), nil)
	}
}
