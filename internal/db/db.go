package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Filter is a single "column op value" condition. Column and Op are
// trusted identifiers supplied by the repository, never by a request.
type Filter struct {
	Column string
	Op     string
	Value  any
}

type Query struct {
	Filters []Filter
	OrderBy string
	Limit   int
}

type GormDB struct {
	DB *gorm.DB
}

// Open connects to the database using the dialector for driver.
func Open(driver, dsn string) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return NewGormDB(dialector, logger.Default.LogMode(logger.Warn))
}

func NewGormDB(dialector gorm.Dialector, l logger.Interface) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         l,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates a single record. Unique constraint violations surface as ErrDuplicateKey.
func (f *GormDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert record: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// Find loads every row matching all filters into entity, which must point to a slice.
func (f *GormDB) Find(ctx context.Context, q Query, entity any) error {
	tx := f.DB.WithContext(ctx)
	for _, flt := range q.Filters {
		tx = tx.Where(fmt.Sprintf("%s %s ?", flt.Column, flt.Op), flt.Value)
	}
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("find records: %w", err)
	}
	return nil
}

// Update applies updates to the rows of model matching all filters and
// reports how many rows changed.
func (f *GormDB) Update(ctx context.Context, model any, filters []Filter, updates map[string]any) (int64, error) {
	if len(filters) == 0 {
		return 0, errors.New("update without filters is not allowed")
	}

	tx := f.DB.WithContext(ctx).Model(model)
	for _, flt := range filters {
		tx = tx.Where(fmt.Sprintf("%s %s ?", flt.Column, flt.Op), flt.Value)
	}

	tx = tx.Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("update records: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
