package repository

import (
	"context"

	"paysched/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, q db.Query, entity any) error
	Update(ctx context.Context, model any, filters []db.Filter, updates map[string]any) (int64, error)
}
