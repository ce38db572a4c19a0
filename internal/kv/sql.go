package kv

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"authdemo/internal/model"
)

// SQL stores slots as rows of the slots table.
type SQL struct {
	db *gorm.DB
}

var _ Store = (*SQL)(nil)

// NewSQL wraps a GORM handle whose schema already contains the slots table.
func NewSQL(db *gorm.DB) *SQL {
	return &SQL{db: db}
}

// Get returns the slot value or nil if no row exists.
func (s *SQL) Get(ctx context.Context, key string) ([]byte, error) {
	var slot model.Slot
	err := s.db.WithContext(ctx).Where(&model.Slot{Key: key}).Take(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select slot %s: %w", key, err)
	}
	return slot.Value, nil
}

// Set upserts the slot row.
func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	slot := model.Slot{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
