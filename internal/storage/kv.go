package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budgetapp/internal/models"
)

// gormKV is a KeyValue backed by the kv_entries table.
type gormKV struct {
	db *gorm.DB
}

// NewKeyValue returns a KeyValue over db. The kv_entries table must exist.
func NewKeyValue(db *gorm.DB) KeyValue {
	return &gormKV{db: db}
}

func (s *gormKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where(&models.KVEntry{Key: key}).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *gormKV) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (s *gormKV) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where(&models.KVEntry{Key: key}).Delete(&models.KVEntry{}).Error
}
