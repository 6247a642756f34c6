package model

import (
	"time"
)

type WithID[T ~string] interface {
	ID() T
}

// WithLifecycle exposes the audit timestamps of a persisted record.
// CreatedAt is set once, LastModifiedAt moves on every successful update.
type WithLifecycle interface {
	CreatedAt() time.Time
	LastModifiedAt() time.Time
}
