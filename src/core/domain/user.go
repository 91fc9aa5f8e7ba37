package domain

import "time"

// User is a community member. The id comes from the identity provider and
// is opaque at this layer.
type User struct {
	ID        UserID
	Name      string
	Email     Email
	ImgURL    *URL
	Discord   string
	Github    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a User on first sight.
//
// Logic rules:
//   - name defaults to the local part of the email
//   - imgUrl is unset, discord and github are empty
//   - createdAt and updatedAt are both now
func NewUser(id UserID, email Email, now time.Time) User {
	return User{
		ID:        id,
		Name:      email.LocalPart(),
		Email:     email,
		ImgURL:    nil,
		Discord:   "",
		Github:    "",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateUser replaces the mutable profile fields and bumps updatedAt.
// ID, email and createdAt carry over unchanged.
func UpdateUser(user User, name string, imgURL *URL, discord, github string, now time.Time) User {
	user.Name = name
	user.ImgURL = imgURL
	user.Discord = discord
	user.Github = github
	user.UpdatedAt = now
	return user
}
