package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn inside a transaction bound to ctx.
// fn returning an error rolls back; returning nil commits.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.Upsert(ctx, tx, record)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
