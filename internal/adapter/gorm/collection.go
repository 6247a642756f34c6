package gorm

import (
	"time"

	"github.com/wagner1975/eezycollectionz/internal/core/model"
)

// Collection is the persisted form of a model.Collection. Timestamps are
// stored as microseconds since the Unix epoch.
type Collection struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	Name string

	CreatedAt      int64 `gorm:"autoCreateTime:false;index"`
	LastModifiedAt int64 `gorm:"index"`
}

type wrappedCollection struct {
	c *Collection
}

// ID implements model.Collection.
func (w *wrappedCollection) ID() model.CollectionID {
	return model.CollectionID(w.c.ID)
}

// Name implements model.Collection.
func (w *wrappedCollection) Name() string {
	return w.c.Name
}

// CreatedAt implements model.Collection.
func (w *wrappedCollection) CreatedAt() time.Time {
	return fromMicros(w.c.CreatedAt)
}

// LastModifiedAt implements model.Collection.
func (w *wrappedCollection) LastModifiedAt() time.Time {
	return fromMicros(w.c.LastModifiedAt)
}

var _ model.Collection = &wrappedCollection{}

func fromCollection(c model.Collection) *Collection {
	return &Collection{
		ID:             string(c.ID()),
		Name:           c.Name(),
		CreatedAt:      c.CreatedAt().UnixMicro(),
		LastModifiedAt: c.LastModifiedAt().UnixMicro(),
	}
}

func fromMicros(micros int64) time.Time {
	return time.UnixMicro(micros).UTC()
}
