package repositories

import (
	"context"

	"gorm.io/gorm"
)

// BaseRepository holds the connection shared by the store repositories.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB returns the underlying database connection
func (r *BaseRepository) DB() *gorm.DB {
	return r.db
}

// conn scopes the connection to ctx so cancelled requests stop their query.
func (r *BaseRepository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
