package model

import (
	"time"

	"github.com/google/uuid"
)

type CollectionID string

// NewCollectionID returns a random (v4) identifier, or the empty identifier if
// no randomness could be read.
func NewCollectionID() CollectionID {
	id, err := uuid.NewRandom()
	if err != nil {
		return ""
	}

	return CollectionID(id.String())
}

type Collection interface {
	WithID[CollectionID]
	WithLifecycle

	Name() string
}

type BaseCollection struct {
	id             CollectionID
	name           string
	createdAt      time.Time
	lastModifiedAt time.Time
}

// ID implements Collection.
func (c *BaseCollection) ID() CollectionID {
	return c.id
}

// Name implements Collection.
func (c *BaseCollection) Name() string {
	return c.name
}

// CreatedAt implements Collection.
func (c *BaseCollection) CreatedAt() time.Time {
	return c.createdAt
}

// LastModifiedAt implements Collection.
func (c *BaseCollection) LastModifiedAt() time.Time {
	return c.lastModifiedAt
}

func NewCollection(id CollectionID, name string, createdAt time.Time, lastModifiedAt time.Time) *BaseCollection {
	return &BaseCollection{
		id:             id,
		name:           name,
		createdAt:      createdAt,
		lastModifiedAt: lastModifiedAt,
	}
}

// CopyCollection returns a detached copy of the given collection.
func CopyCollection(c Collection) *BaseCollection {
	return NewCollection(c.ID(), c.Name(), c.CreatedAt(), c.LastModifiedAt())
}

var _ Collection = &BaseCollection{}
