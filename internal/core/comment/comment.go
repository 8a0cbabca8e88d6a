package comment

import (
	"time"

	"sns/internal/core/post"
	"sns/internal/core/user"

	"github.com/gofrs/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	Body      string    `gorm:"type:text;not null"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	User      user.User `gorm:"foreignkey:UserID"`
	Post      post.Post `gorm:"foreignkey:PostID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
