package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

var testNow = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct{}

func (fakeClock) Now(context.Context) (time.Time, error) { return testNow, nil }

// recordingNotePort captures the arguments of the last FetchInfo call.
type recordingNotePort struct {
	noteID domain.NoteID
	handle string
	calls  int
}

func (p *recordingNotePort) FetchInfo(_ context.Context, noteID domain.NoteID, authorHandle string) (*domain.NoteInfo, error) {
	p.calls++
	p.noteID = noteID
	p.handle = authorHandle
	return &domain.NoteInfo{
		Title:        "a note",
		NoteUserName: authorHandle,
		URL:          domain.URL("https://note.com/" + authorHandle + "/n/" + noteID.String()),
	}, nil
}

type fakeNoteRepo struct {
	notes map[domain.NoteID]domain.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[domain.NoteID]domain.Note)}
}

func (r *fakeNoteRepo) Health(context.Context) error { return nil }

func (r *fakeNoteRepo) Upsert(_ context.Context, notes ...domain.Note) error {
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

// fakeDocRepo serves canned read models and records the queries it saw.
type fakeDocRepo struct {
	dto       ports.DocDto
	infos     []ports.DocInfo
	lastQuery ports.SearchDocQuery
}

func (r *fakeDocRepo) Health(context.Context) error { return nil }

func (r *fakeDocRepo) Upsert(context.Context, ...domain.Doc) error { return nil }

func (r *fakeDocRepo) Read(context.Context, domain.DocID) (*domain.Doc, error) {
	return nil, domain.NewNotFoundError("doc")
}

func (r *fakeDocRepo) Delete(context.Context, ...domain.Doc) error { return nil }

func (r *fakeDocRepo) Get(context.Context, ports.GetDocQuery) (*ports.DocDto, error) {
	dto := r.dto
	return &dto, nil
}

func (r *fakeDocRepo) Search(_ context.Context, q ports.SearchDocQuery) ([]ports.DocInfo, error) {
	r.lastQuery = q
	return r.infos, nil
}
