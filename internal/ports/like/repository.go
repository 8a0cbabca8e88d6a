package like

import (
	"context"

	"sns/internal/core/like"
)

// LikeRepository is the outbound port for like rows. Create returns
// apperr.ErrDuplicated when the (user, post) pair already exists.
type LikeRepository interface {
	Create(ctx context.Context, l *like.Like) (*like.Like, error)
	FindByUserAndPost(ctx context.Context, userID, postID string) (*like.Like, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
}

// LikeCounterCache caches per-post like counts. A miss is not an error.
type LikeCounterCache interface {
	Get(ctx context.Context, postID string) (int64, bool, error)
	Set(ctx context.Context, postID string, count int64) error
	Invalidate(ctx context.Context, postID string) error
}
