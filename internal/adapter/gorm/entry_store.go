package gorm

import (
	"context"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryExists implements port.EntryStore.
func (s *Store) EntryExists(ctx context.Context, id model.EntryID) (bool, error) {
	var exists bool

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		if err := db.Model(&Entry{}).Where("id = ?", string(id)).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}

		exists = count > 0

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return exists, nil
}

// GetEntryByID implements port.EntryStore.
func (s *Store) GetEntryByID(ctx context.Context, id model.EntryID) (model.Entry, error) {
	var entry Entry

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&entry, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedEntry{&entry}, nil
}

// CreateEntry implements port.EntryStore.
func (s *Store) CreateEntry(ctx context.Context, e model.Entry) (model.Entry, error) {
	entry := fromEntry(e)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := checkParentCollection(db, entry.CollectionID); err != nil {
			return errors.WithStack(err)
		}

		if err := db.Omit(clause.Associations).Create(entry).Error; err != nil {
			return errors.WithStack(translateError(err))
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedEntry{entry}, nil
}

// SaveEntry implements port.EntryStore.
func (s *Store) SaveEntry(ctx context.Context, e model.Entry) (model.Entry, error) {
	entry := fromEntry(e)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Model(&Entry{}).Where("id = ?", entry.ID).Updates(map[string]any{
			"collection_id":    entry.CollectionID,
			"name":             entry.Name,
			"created_at":       entry.CreatedAt,
			"last_modified_at": entry.LastModifiedAt,
		})
		if result.Error != nil {
			return errors.WithStack(translateError(result.Error))
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		// Rolled back with the transaction when the parent is gone
		if err := checkParentCollection(db, entry.CollectionID); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedEntry{entry}, nil
}

// DeleteEntryByID implements port.EntryStore.
func (s *Store) DeleteEntryByID(ctx context.Context, id model.EntryID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&Entry{}, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// QueryEntries implements port.EntryStore.
func (s *Store) QueryEntries(ctx context.Context, opts port.QueryOptions) ([]model.Entry, int64, error) {
	return s.queryEntries(ctx, func(db *gorm.DB) *gorm.DB { return db }, opts)
}

// QueryEntriesByCollectionID implements port.EntryStore.
func (s *Store) QueryEntriesByCollectionID(ctx context.Context, collectionID model.CollectionID, opts port.QueryOptions) ([]model.Entry, int64, error) {
	return s.queryEntries(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("collection_id = ?", string(collectionID))
	}, opts)
}

func (s *Store) queryEntries(ctx context.Context, filter func(db *gorm.DB) *gorm.DB, opts port.QueryOptions) ([]model.Entry, int64, error) {
	var (
		entries []*Entry
		total   int64
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := filter(db.Model(&Entry{})).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := applyQueryOptions(filter(db.Model(&Entry{})), opts).Find(&entries).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	wrappedEntries := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		wrappedEntries = append(wrappedEntries, &wrappedEntry{e})
	}

	return wrappedEntries, total, nil
}

func checkParentCollection(db *gorm.DB, collectionID string) error {
	var count int64
	if err := db.Model(&Collection{}).Where("id = ?", collectionID).Count(&count).Error; err != nil {
		return errors.WithStack(err)
	}

	if count == 0 {
		return errors.Wrapf(port.ErrConflict, "collection '%s' does not exist", collectionID)
	}

	return nil
}
