package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"kioku/src/core/domain"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		contentType string
		kind        string
		ext         string
	}{
		{"image/png", "image", "png"},
		{"image/jpeg", "image", "jpg"},
		{"image/jpg", "image", "jpg"},
		{"image/webp", "image", "webp"},
		{"audio/mpeg", "audio", "mp3"},
		{"audio/x-m4a", "audio", "m4a"},
		{"video/mp4", "video", "mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			key, err := ObjectKey(tt.contentType)
			require.NoError(t, err)

			parts := strings.SplitN(key, "/", 2)
			require.Len(t, parts, 2)
			require.Equal(t, tt.kind, parts[0])
			require.True(t, strings.HasSuffix(parts[1], "."+tt.ext), "key %q", key)

			_, err = uuid.Parse(strings.TrimSuffix(parts[1], "."+tt.ext))
			require.NoError(t, err, "the file name must be a fresh uuid")
		})
	}
}

func TestObjectKeyUniqueness(t *testing.T) {
	a, err := ObjectKey("image/png")
	require.NoError(t, err)
	b, err := ObjectKey("image/png")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestObjectKeyUnsupportedType(t *testing.T) {
	for _, ct := range []string{"", "text/plain", "application/pdf", "image/gif"} {
		_, err := ObjectKey(ct)
		require.True(t, domain.IsSystemError(err), "content type %q", ct)
	}
}
