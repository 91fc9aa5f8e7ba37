package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNow = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
	err error
}

func (c *fakeClock) Now(context.Context) (time.Time, error) {
	if c.err != nil {
		return time.Time{}, c.err
	}
	if c.now.IsZero() {
		return testNow, nil
	}
	return c.now, nil
}

// fakeDocRepo is an in-memory ports.DocRepository recording writes.
type fakeDocRepo struct {
	docs        map[domain.DocID]domain.Doc
	upsertCalls int
	deleteCalls int
	readErr     error
	upsertErr   error
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: make(map[domain.DocID]domain.Doc)}
}

func (r *fakeDocRepo) Health(context.Context) error { return nil }

func (r *fakeDocRepo) Upsert(_ context.Context, docs ...domain.Doc) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upsertCalls++
	for _, d := range docs {
		r.docs[d.ID] = d
	}
	return nil
}

func (r *fakeDocRepo) Read(_ context.Context, id domain.DocID) (*domain.Doc, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.NewNotFoundError("doc")
	}
	return &d, nil
}

func (r *fakeDocRepo) Delete(_ context.Context, docs ...domain.Doc) error {
	r.deleteCalls++
	for _, d := range docs {
		delete(r.docs, d.ID)
	}
	return nil
}

func (r *fakeDocRepo) Get(ctx context.Context, q ports.GetDocQuery) (*ports.DocDto, error) {
	id, err := domain.NewDocID(q.ID)
	if err != nil {
		return nil, err
	}
	d, err := r.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ports.DocDto{
		ID:        d.ID.String(),
		Title:     d.Title.String(),
		Status:    string(d.Status),
		Body:      d.Body,
		UserID:    d.UserID.String(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	return &dto, nil
}

func (r *fakeDocRepo) Search(_ context.Context, q ports.SearchDocQuery) ([]ports.DocInfo, error) {
	var infos []ports.DocInfo
	for _, d := range r.docs {
		if len(q.Statuses) > 0 {
			match := false
			for _, s := range q.Statuses {
				if d.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		infos = append(infos, ports.DocInfo{
			ID:     d.ID.String(),
			Slug:   d.ID.Short(),
			Title:  d.Title.String(),
			Status: string(d.Status),
		})
	}
	return infos, nil
}

// fakeNoteRepo is an in-memory ports.NoteRepository.
type fakeNoteRepo struct {
	notes       map[domain.NoteID]domain.Note
	upsertCalls int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[domain.NoteID]domain.Note)}
}

func (r *fakeNoteRepo) Health(context.Context) error { return nil }

func (r *fakeNoteRepo) Upsert(_ context.Context, notes ...domain.Note) error {
	r.upsertCalls++
	for _, n := range notes {
		r.notes[n.ID] = n
	}
	return nil
}

func (r *fakeNoteRepo) Read(_ context.Context, id domain.NoteID) (*domain.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, domain.NewNotFoundError("note")
	}
	return &n, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, notes ...domain.Note) error {
	for _, n := range notes {
		delete(r.notes, n.ID)
	}
	return nil
}

// fakeYoutubeRepo is an in-memory ports.YoutubeRepository.
type fakeYoutubeRepo struct {
	videos      map[domain.YoutubeID]domain.Youtube
	upsertCalls int
}

func newFakeYoutubeRepo() *fakeYoutubeRepo {
	return &fakeYoutubeRepo{videos: make(map[domain.YoutubeID]domain.Youtube)}
}

func (r *fakeYoutubeRepo) Health(context.Context) error { return nil }

func (r *fakeYoutubeRepo) Upsert(_ context.Context, videos ...domain.Youtube) error {
	r.upsertCalls++
	for _, v := range videos {
		r.videos[v.ID] = v
	}
	return nil
}

func (r *fakeYoutubeRepo) Read(_ context.Context, id domain.YoutubeID) (*domain.Youtube, error) {
	v, ok := r.videos[id]
	if !ok {
		return nil, domain.NewNotFoundError("youtube")
	}
	return &v, nil
}

func (r *fakeYoutubeRepo) Delete(_ context.Context, videos ...domain.Youtube) error {
	for _, v := range videos {
		delete(r.videos, v.ID)
	}
	return nil
}

// fakeUserRepo is an in-memory ports.UserRepository with injectable errors.
type fakeUserRepo struct {
	users       map[domain.UserID]domain.User
	upsertCalls int
	readErr     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[domain.UserID]domain.User)}
}

func (r *fakeUserRepo) Health(context.Context) error { return nil }

func (r *fakeUserRepo) Upsert(_ context.Context, users ...domain.User) error {
	r.upsertCalls++
	for _, u := range users {
		r.users[u.ID] = u
	}
	return nil
}

func (r *fakeUserRepo) Read(_ context.Context, id domain.UserID) (*domain.User, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	return &u, nil
}

// fakeNotePort returns canned note metadata.
type fakeNotePort struct {
	info  *domain.NoteInfo
	err   error
	calls int
}

func (p *fakeNotePort) FetchInfo(_ context.Context, _ domain.NoteID, _ string) (*domain.NoteInfo, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.info, nil
}

// fakeYoutubePort returns canned video metadata.
type fakeYoutubePort struct {
	info  *domain.YoutubeInfo
	err   error
	calls int
}

func (p *fakeYoutubePort) FetchInfo(_ context.Context, _ domain.YoutubeID) (*domain.YoutubeInfo, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.info, nil
}

// fakeKiokuSource serves a canned kioku list.
type fakeKiokuSource struct {
	items []domain.Kioku
	err   error
}

func (s *fakeKiokuSource) GetAll(context.Context) ([]domain.Kioku, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

// fakeFeedCache is an in-memory ports.FeedCache with injectable errors.
type fakeFeedCache struct {
	items    []domain.FeedItem
	hit      bool
	getErr   error
	setErr   error
	setCalls int
}

func (c *fakeFeedCache) Get(context.Context) ([]domain.FeedItem, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.items, c.hit, nil
}

func (c *fakeFeedCache) Set(_ context.Context, items []domain.FeedItem) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.setCalls++
	c.items = items
	c.hit = true
	return nil
}

// fakeStorage records uploads and returns a canned URL.
type fakeStorage struct {
	url   string
	err   error
	calls int
}

func (s *fakeStorage) PutObject(_ context.Context, _ ports.Upload) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}
