package database

import (
	"context"
	"errors"

	"sns/internal/apperr"
	"sns/internal/core/like"

	"gorm.io/gorm"
)

// LikeRepositoryDatabase implements the like repository port on gorm.
type LikeRepositoryDatabase struct {
	db *gorm.DB
}

func NewLikeRepositoryDatabase(db *gorm.DB) *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{db: db}
}

func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) (*like.Like, error) {
	if err := conn(ctx, repo.db).Create(l).Error; err != nil {
		// uniq_user_post violation: a concurrent request won the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicated
		}
		return nil, err
	}
	return l, nil
}

func (repo *LikeRepositoryDatabase) FindByUserAndPost(ctx context.Context, userID, postID string) (*like.Like, error) {
	var l like.Like
	if err := conn(ctx, repo.db).Where("user_id = ? AND post_id = ?", userID, postID).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (repo *LikeRepositoryDatabase) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := conn(ctx, repo.db).Model(&like.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
