package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const likeCountTTL = 10 * time.Minute

// LikeCounterRedis caches per-post like counts under like_count:<postID>.
type LikeCounterRedis struct {
	Client *redis.Client
}

func NewLikeCounterRedis(client *redis.Client) *LikeCounterRedis {
	return &LikeCounterRedis{
		Client: client,
	}
}

func (r *LikeCounterRedis) Get(ctx context.Context, postID string) (int64, bool, error) {
	val, err := r.Client.Get(ctx, likeCountKey(postID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// unparsable entry, treat as a miss
		return 0, false, nil
	}
	return count, true, nil
}

func (r *LikeCounterRedis) Set(ctx context.Context, postID string, count int64) error {
	return r.Client.Set(ctx, likeCountKey(postID), count, likeCountTTL).Err()
}

func (r *LikeCounterRedis) Invalidate(ctx context.Context, postID string) error {
	return r.Client.Del(ctx, likeCountKey(postID)).Err()
}

func likeCountKey(postID string) string {
	return "like_count:" + postID
}
