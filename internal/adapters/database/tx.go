package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// GormTransactor implements storage.Transactor on a gorm transaction. The
// open transaction rides the context so every repository call inside fn
// lands on the same unit of work.
type GormTransactor struct {
	db *gorm.DB
}

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn resolves the handle a repository call should use: the transaction
// carried by ctx if there is one, the repository's own otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
