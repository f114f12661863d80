// Package domain holds contracts shared by every aggregate.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = errors.New("domain: record not found")

// TxManager runs fn inside a single serializable transaction. Repositories
// called with the ctx handed to fn take part in that transaction. The
// transaction is committed when fn returns nil and rolled back otherwise.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
