package alarm

import (
	"time"

	"sns/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Type names the action that produced the alarm.
type Type string

const (
	TypeNewLikeOnPost    Type = "NEW_LIKE_ON_POST"
	TypeNewCommentOnPost Type = "NEW_COMMENT_ON_POST"
)

// Args is the per-type payload. It stays a typed struct even though it is
// persisted as a JSON column: every current type shares the same shape.
type Args struct {
	FromUserID string `json:"fromUserId"`
	TargetID   string `json:"targetId"`
}

// Alarm is a notification row for the user referenced by UserID.
type Alarm struct {
	ID        uuid.UUID      `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID    uuid.UUID      `gorm:"type:char(36);not null;index"`
	User      user.User      `gorm:"foreignkey:UserID"`
	Type      Type           `gorm:"type:varchar(32);not null"`
	Args      Args           `gorm:"serializer:json"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
