package usecase

import (
	"context"
	"log/slog"

	"kioku/src/core/domain"
	"kioku/src/core/ports"
)

// UserService handles the profile workflows.
type UserService struct {
	repo  ports.UserRepository
	clock ports.TimePort
	log   *slog.Logger
}

func NewUserService(repo ports.UserRepository, clock ports.TimePort, log *slog.Logger) *UserService {
	return &UserService{repo: repo, clock: clock, log: log}
}

// GetUserQuery identifies the authenticated principal: the opaque provider
// id plus the email the provider asserted.
type GetUserQuery struct {
	ID    string
	Email string
}

// GetUserResult wraps the user read model.
type GetUserResult struct {
	User ports.UserDto
}

// Get returns the user, creating it on first sight.
//
// Only a not-found read triggers creation; any other failure kind
// propagates unchanged, so a flaky database never causes a duplicate
// profile to be written.
func (s *UserService) Get(ctx context.Context, q GetUserQuery) (*GetUserResult, error) {
	email, err := domain.NewEmail(q.Email, "User.email")
	if err != nil {
		return nil, err
	}
	id, err := domain.NewUserID(q.ID, "User.id")
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Read(ctx, id)
	switch {
	case err == nil:
	case domain.IsNotFound(err):
		now, nerr := s.clock.Now(ctx)
		if nerr != nil {
			return nil, nerr
		}
		created := domain.NewUser(id, email, now)
		if uerr := s.repo.Upsert(ctx, created); uerr != nil {
			return nil, uerr
		}
		s.log.Info("user created", "user_id", id.String(), "name", created.Name)
		user = &created
	default:
		return nil, err
	}

	return &GetUserResult{User: convToUserDto(*user)}, nil
}

// UpdateUserCmd replaces the mutable profile fields.
type UpdateUserCmd struct {
	ID      string
	Name    string
	ImgURL  string
	Discord string
	Github  string
}

// Update reads the existing user, validates the optional image URL, and
// persists the updated profile.
func (s *UserService) Update(ctx context.Context, cmd UpdateUserCmd) error {
	id, err := domain.NewUserID(cmd.ID, "User.id")
	if err != nil {
		return err
	}
	imgURL, err := domain.NewURLOrNone(cmd.ImgURL, "User.imgUrl")
	if err != nil {
		return err
	}

	user, err := s.repo.Read(ctx, id)
	if err != nil {
		return err
	}
	now, err := s.clock.Now(ctx)
	if err != nil {
		return err
	}

	updated := domain.UpdateUser(*user, cmd.Name, imgURL, cmd.Discord, cmd.Github, now)
	if err := s.repo.Upsert(ctx, updated); err != nil {
		return err
	}

	s.log.Info("user updated", "user_id", id.String())
	return nil
}

func convToUserDto(u domain.User) ports.UserDto {
	var imgURL string
	if u.ImgURL != nil {
		imgURL = u.ImgURL.String()
	}
	return ports.UserDto{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email.String(),
		ImgURL:  imgURL,
		Discord: u.Discord,
		Github:  u.Github,
	}
}
