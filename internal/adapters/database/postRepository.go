package database

import (
	"context"
	"errors"

	"sns/internal/apperr"
	"sns/internal/core/post"
	"sns/internal/ports/pagination"

	"gorm.io/gorm"
)

// PostRepositoryDatabase implements the post repository port on gorm.
// gorm's DeletedAt keeps soft-deleted posts out of every read here.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := conn(ctx, repo.db).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := conn(ctx, repo.db).Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Save(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := conn(ctx, repo.db).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, p *post.Post) error {
	// gorm.DeletedAt turns this into a soft delete
	return conn(ctx, repo.db).Delete(p).Error
}

func (repo *PostRepositoryDatabase) FindAll(ctx context.Context, req pagination.Request) ([]*post.Post, int64, error) {
	var total int64
	if err := conn(ctx, repo.db).Model(&post.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*post.Post
	if err := conn(ctx, repo.db).
		Preload("User").
		Order("created_at DESC").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) FindAllByUser(ctx context.Context, userID string, req pagination.Request) ([]*post.Post, int64, error) {
	var total int64
	if err := conn(ctx, repo.db).Model(&post.Post{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*post.Post
	if err := conn(ctx, repo.db).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
