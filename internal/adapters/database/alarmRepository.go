package database

import (
	"context"

	"sns/internal/core/alarm"
	"sns/internal/ports/pagination"

	"gorm.io/gorm"
)

// AlarmRepositoryDatabase implements the alarm repository port on gorm.
// gorm's DeletedAt keeps soft-deleted alarms out of FindAllByUser.
type AlarmRepositoryDatabase struct {
	db *gorm.DB
}

func NewAlarmRepositoryDatabase(db *gorm.DB) *AlarmRepositoryDatabase {
	return &AlarmRepositoryDatabase{db: db}
}

func (repo *AlarmRepositoryDatabase) Create(ctx context.Context, a *alarm.Alarm) (*alarm.Alarm, error) {
	if err := conn(ctx, repo.db).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (repo *AlarmRepositoryDatabase) FindAllByUser(ctx context.Context, userID string, req pagination.Request) ([]*alarm.Alarm, int64, error) {
	var total int64
	if err := conn(ctx, repo.db).Model(&alarm.Alarm{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var alarms []*alarm.Alarm
	if err := conn(ctx, repo.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&alarms).Error; err != nil {
		return nil, 0, err
	}
	return alarms, total, nil
}
