package user

import (
	"context"

	"sns/internal/core/user"
)

// UserRepository is the outbound port for storing and loading users.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// DTOs for the use cases.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

func ToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
	}
}
