package model

import (
	"time"

	"github.com/google/uuid"
)

type EntryID string

// NewEntryID returns a random (v4) identifier, or the empty identifier if
// no randomness could be read.
func NewEntryID() EntryID {
	id, err := uuid.NewRandom()
	if err != nil {
		return ""
	}

	return EntryID(id.String())
}

// Entry is an item of a collection. It references its parent collection
// but does not own it.
type Entry interface {
	WithID[EntryID]
	WithLifecycle

	Name() string
	CollectionID() CollectionID
}

type BaseEntry struct {
	id             EntryID
	collectionID   CollectionID
	name           string
	createdAt      time.Time
	lastModifiedAt time.Time
}

// ID implements Entry.
func (e *BaseEntry) ID() EntryID {
	return e.id
}

// CollectionID implements Entry.
func (e *BaseEntry) CollectionID() CollectionID {
	return e.collectionID
}

// Name implements Entry.
func (e *BaseEntry) Name() string {
	return e.name
}

// CreatedAt implements Entry.
func (e *BaseEntry) CreatedAt() time.Time {
	return e.createdAt
}

// LastModifiedAt implements Entry.
func (e *BaseEntry) LastModifiedAt() time.Time {
	return e.lastModifiedAt
}

func NewEntry(id EntryID, collectionID CollectionID, name string, createdAt time.Time, lastModifiedAt time.Time) *BaseEntry {
	return &BaseEntry{
		id:             id,
		collectionID:   collectionID,
		name:           name,
		createdAt:      createdAt,
		lastModifiedAt: lastModifiedAt,
	}
}

func CopyEntry(e Entry) *BaseEntry {
	return NewEntry(e.ID(), e.CollectionID(), e.Name(), e.CreatedAt(), e.LastModifiedAt())
}

var _ Entry = &BaseEntry{}
