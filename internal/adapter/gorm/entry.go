package gorm

import (
	"time"

	"github.com/wagner1975/eezycollectionz/internal/core/model"
)

type Entry struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CollectionID string      `gorm:"index;not null"`
	Collection   *Collection `gorm:"constraint:OnDelete:CASCADE"`

	Name string

	CreatedAt      int64 `gorm:"autoCreateTime:false;index"`
	LastModifiedAt int64 `gorm:"index"`
}

type wrappedEntry struct {
	e *Entry
}

// ID implements model.Entry.
func (w *wrappedEntry) ID() model.EntryID {
	return model.EntryID(w.e.ID)
}

// CollectionID implements model.Entry.
func (w *wrappedEntry) CollectionID() model.CollectionID {
	return model.CollectionID(w.e.CollectionID)
}

// Name implements model.Entry.
func (w *wrappedEntry) Name() string {
	return w.e.Name
}

// CreatedAt implements model.Entry.
func (w *wrappedEntry) CreatedAt() time.Time {
	return fromMicros(w.e.CreatedAt)
}

// LastModifiedAt implements model.Entry.
func (w *wrappedEntry) LastModifiedAt() time.Time {
	return fromMicros(w.e.LastModifiedAt)
}

var _ model.Entry = &wrappedEntry{}

func fromEntry(e model.Entry) *Entry {
	return &Entry{
		ID:             string(e.ID()),
		CollectionID:   string(e.CollectionID()),
		Name:           e.Name(),
		CreatedAt:      e.CreatedAt().UnixMicro(),
		LastModifiedAt: e.LastModifiedAt().UnixMicro(),
	}
}
