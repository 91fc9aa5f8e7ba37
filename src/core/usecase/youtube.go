package usecase

import (
	"context"
	"log/slog"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

// YoutubeService handles the video workflows.
type YoutubeService struct {
	repo   ports.YoutubeRepository
	videos ports.YoutubePort
	clock  ports.TimePort
	log    *slog.Logger
}

func NewYoutubeService(repo ports.YoutubeRepository, videos ports.YoutubePort, clock ports.TimePort, log *slog.Logger) *YoutubeService {
	return &YoutubeService{repo: repo, videos: videos, clock: clock, log: log}
}

// CreateYoutubeCmd tracks a YouTube video by its video id.
type CreateYoutubeCmd struct {
	ID string
}

// CreateYoutubeResult reports the id of the tracked video.
type CreateYoutubeResult struct {
	ID string
}

// Create validates the video id, fetches the video metadata, and persists
// the aggregate. An invalid id fails before any port is touched.
func (s *YoutubeService) Create(ctx context.Context, cmd CreateYoutubeCmd) (*CreateYoutubeResult, error) {
	id, err := domain.NewYoutubeID(cmd.ID, "YoutubeId")
	if err != nil {
		return nil, err
	}

	info, err := s.videos.FetchInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	video := domain.NewYoutube(id, *info, now)
	if err := s.repo.Upsert(ctx, video); err != nil {
		return nil, err
	}

	s.log.Info("youtube created", "youtube_id", id.String(), "public", info.IsPublic)
	return &CreateYoutubeResult{ID: id.String()}, nil
}
