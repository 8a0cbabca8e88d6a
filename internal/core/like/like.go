package like

import (
	"time"

	"sns/internal/core/post"
	"sns/internal/core/user"

	"github.com/gofrs/uuid"
)

// Like is one user's like of one post. The composite unique index is the
// authoritative guard against duplicates under concurrent requests.
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_post"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_post"`
	User      user.User `gorm:"foreignkey:UserID"`
	Post      post.Post `gorm:"foreignkey:PostID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
