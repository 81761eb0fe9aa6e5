package repositories

import (
	"context"
	"time"

	"github.com/lac-hong-legacy/sdr_trainer/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository stores blob-store entries as rows of kv_entries.
type KVRepository struct {
	BaseRepository
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *KVRepository) Migrate() error {
	return ds.db.AutoMigrate(&model.KVEntry{})
}

func (ds *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entries []model.KVEntry
	if err := ds.conn(ctx).Where("store_key = ?", key).Limit(1).Find(&entries).Error; err != nil {
		return "", false, err
	}
	if len(entries) == 0 {
		return "", false, nil
	}
	return entries[0].Value, true, nil
}

// Set upserts the entry so a record is always replaced in one statement.
func (ds *KVRepository) Set(ctx context.Context, key, value string) error {
	now := time.Now()
	entry := model.KVEntry{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return ds.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (ds *KVRepository) Delete(ctx context.Context, key string) error {
	return ds.conn(ctx).Where("store_key = ?", key).Delete(&model.KVEntry{}).Error
}
