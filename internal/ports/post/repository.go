package post

import (
	"context"

	"sns/internal/core/post"
	"sns/internal/ports/pagination"
	userPort "sns/internal/ports/user"
)

// PostRepository is the outbound port for storing and loading posts.
// Reads exclude soft-deleted rows; Delete only marks the row deleted.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	Save(ctx context.Context, p *post.Post) (*post.Post, error)
	Delete(ctx context.Context, p *post.Post) error
	FindAll(ctx context.Context, req pagination.Request) ([]*post.Post, int64, error)
	FindAllByUser(ctx context.Context, userID string, req pagination.Request) ([]*post.Post, int64, error)
}

// DTOs for the use cases.
type PostDTO struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	User      *userPort.UserDTO `json:"user,omitempty"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
}
