package alarm

import (
	"context"

	"sns/internal/core/alarm"
	"sns/internal/ports/pagination"
)

// AlarmRepository is the outbound port for alarm rows. Reads exclude
// soft-deleted alarms and return newest first.
type AlarmRepository interface {
	Create(ctx context.Context, a *alarm.Alarm) (*alarm.Alarm, error)
	FindAllByUser(ctx context.Context, userID string, req pagination.Request) ([]*alarm.Alarm, int64, error)
}

// DTOs for the use cases.
type AlarmDTO struct {
	ID        string     `json:"id"`
	Type      alarm.Type `json:"type"`
	Args      alarm.Args `json:"args"`
	CreatedAt string     `json:"createdAt"`
}
