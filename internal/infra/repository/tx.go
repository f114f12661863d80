package repository

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/domain"
)

type txKey struct{}

// TxManager opens gorm transactions and hands them to repositories through
// the context.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// DoSerializable runs fn in a SERIALIZABLE transaction. gorm rolls back when
// fn returns an error or panics. Nested calls reuse the outer transaction.
// A serialization_failure is returned to the caller as is; there are no
// retries.
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// conn returns the transaction bound to ctx, or the base handle.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// notFound translates gorm's sentinel into the domain one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

var _ domain.TxManager = (*TxManager)(nil)
