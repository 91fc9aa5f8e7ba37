package domain

import (
	"encoding/base64"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Value objects. Every value that crosses the workflow boundary is parsed
// into one of these types by its constructor; past that boundary the rest
// of the domain assumes well-formedness and performs no further checks.
//
// Constructors take an optional field name used in validation errors, so
// adapters can report the exact field they were converting
// (e.g. NewURL(raw, "NoteInfo.thumbnailUrl")).

// DocID identifies a Doc aggregate. UUIDv4.
type DocID string

// NoteID identifies a Note aggregate. UUIDv4.
type NoteID string

// YoutubeID identifies a Youtube aggregate. Exactly 11 characters,
// matching YouTube's video id format; not a UUID.
type YoutubeID string

// UserID is the opaque identifier issued by the identity provider.
type UserID string

// String1To100 is a non-empty string of at most 100 characters, used for titles
// and short descriptions.
type String1To100 string

// URL is a syntactically valid absolute URL (scheme and host present).
type URL string

// Email is a syntactically valid email address.
type Email string

func fieldName(def string, override []string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return def
}

func parseUUIDv4(raw, field string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return NewValidationError(field, fmt.Sprintf("must be a UUID: %q", raw))
	}
	// uuid.Parse also accepts braced, urn-prefixed, and unhyphenated
	// forms; only the canonical lowercase hyphenated form is a valid id.
	if id.String() != raw {
		return NewValidationError(field, fmt.Sprintf("must be a canonical UUID: %q", raw))
	}
	if id.Version() != 4 {
		return NewValidationError(field, fmt.Sprintf("must be a UUIDv4: %q", raw))
	}
	return nil
}

// NewDocID parses a DocID from its string form.
func NewDocID(raw string, field ...string) (DocID, error) {
	if err := parseUUIDv4(raw, fieldName("DocId", field)); err != nil {
		return "", err
	}
	return DocID(raw), nil
}

// CreateDocID generates a fresh DocID.
func CreateDocID() DocID {
	return DocID(uuid.NewString())
}

// Short returns the base64url form of the id, used as the public short slug
// in document routes and feed URLs.
func (id DocID) Short() string {
	u, err := uuid.Parse(string(id))
	if err != nil {
		// Ids only exist via the validator, so this is unreachable in
		// practice; fall back to the raw value rather than panic.
		return string(id)
	}
	return base64.RawURLEncoding.EncodeToString(u[:])
}

func (id DocID) String() string { return string(id) }

// NewNoteID parses a NoteID from its string form.
func NewNoteID(raw string, field ...string) (NoteID, error) {
	if err := parseUUIDv4(raw, fieldName("NoteId", field)); err != nil {
		return "", err
	}
	return NoteID(raw), nil
}

// CreateNoteID generates a fresh NoteID.
func CreateNoteID() NoteID {
	return NoteID(uuid.NewString())
}

func (id NoteID) String() string { return string(id) }

// NewYoutubeID validates a YouTube video id.
func NewYoutubeID(raw string, field ...string) (YoutubeID, error) {
	if utf8.RuneCountInString(raw) != 11 {
		return "", NewValidationError(fieldName("YoutubeId", field), fmt.Sprintf("must be exactly 11 characters: %q", raw))
	}
	return YoutubeID(raw), nil
}

func (id YoutubeID) String() string { return string(id) }

// NewUserID validates a provider-supplied user id. Any non-empty string.
func NewUserID(raw string, field ...string) (UserID, error) {
	if raw == "" {
		return "", NewValidationError(fieldName("UserId", field), "must not be empty")
	}
	return UserID(raw), nil
}

func (id UserID) String() string { return string(id) }

// NewString1To100 validates a title-sized string.
func NewString1To100(raw string, field ...string) (String1To100, error) {
	n := utf8.RuneCountInString(raw)
	if n < 1 || n > 100 {
		return "", NewValidationError(fieldName("String1To100", field), fmt.Sprintf("length must be between 1 and 100, got %d", n))
	}
	return String1To100(raw), nil
}

// NewString1To100OrNone is the optional-text-field variant: an empty input
// maps to nil instead of failing.
func NewString1To100OrNone(raw string, field ...string) (*String1To100, error) {
	if raw == "" {
		return nil, nil
	}
	s, err := NewString1To100(raw, field...)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s String1To100) String() string { return string(s) }

// NewURL validates an absolute URL.
func NewURL(raw string, field ...string) (URL, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", NewValidationError(fieldName("Url", field), fmt.Sprintf("must be an absolute URL: %q", raw))
	}
	return URL(raw), nil
}

// NewURLOrNone maps an empty input to nil instead of failing.
func NewURLOrNone(raw string, field ...string) (*URL, error) {
	if raw == "" {
		return nil, nil
	}
	u, err := NewURL(raw, field...)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (u URL) String() string { return string(u) }

// NewEmail validates an email address.
func NewEmail(raw string, field ...string) (Email, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw || !strings.Contains(raw, "@") {
		return "", NewValidationError(fieldName("Email", field), fmt.Sprintf("must be an email address: %q", raw))
	}
	return Email(raw), nil
}

func (e Email) String() string { return string(e) }

// LocalPart returns the part of the address before the "@".
func (e Email) LocalPart() string {
	at := strings.Index(string(e), "@")
	if at < 0 {
		return string(e)
	}
	return string(e)[:at]
}
