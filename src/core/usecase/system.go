package usecase

import (
	"context"
	"log/slog"

	"kioku/src/core/ports"
)

// SystemService handles cross-cutting workflows that belong to no single
// aggregate. Currently that is file upload.
type SystemService struct {
	storage ports.StoragePort
	log     *slog.Logger
}

func NewSystemService(storage ports.StoragePort, log *slog.Logger) *SystemService {
	return &SystemService{storage: storage, log: log}
}

// UploadFileResult carries the public URL of the stored blob.
type UploadFileResult struct {
	URL string
}

// UploadFile stores the blob and returns its public URL.
func (s *SystemService) UploadFile(ctx context.Context, up ports.Upload) (*UploadFileResult, error) {
	url, err := s.storage.PutObject(ctx, up)
	if err != nil {
		return nil, err
	}

	s.log.Info("file uploaded", "content_type", up.ContentType, "url", url)
	return &UploadFileResult{URL: url}, nil
}
