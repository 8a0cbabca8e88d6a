package database

import (
	"context"

	"sns/internal/core/comment"
	"sns/internal/ports/pagination"

	"gorm.io/gorm"
)

// CommentRepositoryDatabase implements the comment repository port on gorm.
type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := conn(ctx, repo.db).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindAllByPost(ctx context.Context, postID string, req pagination.Request) ([]*comment.Comment, int64, error) {
	var total int64
	if err := conn(ctx, repo.db).Model(&comment.Comment{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*comment.Comment
	if err := conn(ctx, repo.db).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
