package storage

import "context"

// Transactor runs fn inside one atomic unit of work. Repository calls made
// with the context passed to fn share that unit: they commit or roll back
// together.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
