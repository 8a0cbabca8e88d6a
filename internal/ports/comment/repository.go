package comment

import (
	"context"

	"sns/internal/core/comment"
	"sns/internal/ports/pagination"
	userPort "sns/internal/ports/user"
)

// CommentRepository is the outbound port for comment rows. FindAllByPost
// returns comments in insertion order.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	FindAllByPost(ctx context.Context, postID string, req pagination.Request) ([]*comment.Comment, int64, error)
}

// DTOs for the use cases.
type CommentDTO struct {
	ID        string            `json:"id"`
	Body      string            `json:"body"`
	PostID    string            `json:"postId"`
	User      *userPort.UserDTO `json:"user,omitempty"`
	CreatedAt string            `json:"createdAt"`
}
