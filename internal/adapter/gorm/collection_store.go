package gorm

import (
	"context"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"gorm.io/gorm"
)

// CollectionExists implements port.CollectionStore.
func (s *Store) CollectionExists(ctx context.Context, id model.CollectionID) (bool, error) {
	var exists bool

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		if err := db.Model(&Collection{}).Where("id = ?", string(id)).Count(&count).Error; err != nil {
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

// GetCollectionByID implements port.CollectionStore.
func (s *Store) GetCollectionByID(ctx context.Context, id model.CollectionID) (model.Collection, error) {
	var collection Collection

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&collection, "id = ?", string(id)).Error; err != nil {
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

	return &wrappedCollection{&collection}, nil
}

// CreateCollection implements port.CollectionStore.
func (s *Store) CreateCollection(ctx context.Context, c model.Collection) (model.Collection, error) {
	collection := fromCollection(c)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(collection).Error; err != nil {
			return errors.WithStack(translateError(err))
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCollection{collection}, nil
}

// SaveCollection implements port.CollectionStore.
func (s *Store) SaveCollection(ctx context.Context, c model.Collection) (model.Collection, error) {
	collection := fromCollection(c)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Model(&Collection{}).Where("id = ?", collection.ID).Updates(map[string]any{
			"name":             collection.Name,
			"created_at":       collection.CreatedAt,
			"last_modified_at": collection.LastModifiedAt,
		})
		if result.Error != nil {
			return errors.WithStack(translateError(result.Error))
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCollection{collection}, nil
}

// DeleteCollectionByID implements port.CollectionStore.
func (s *Store) DeleteCollectionByID(ctx context.Context, id model.CollectionID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&Entry{}, "collection_id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.Delete(&Collection{}, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// QueryCollections implements port.CollectionStore.
func (s *Store) QueryCollections(ctx context.Context, opts port.QueryOptions) ([]model.Collection, int64, error) {
	var (
		collections []*Collection
		total       int64
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&Collection{}).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := applyQueryOptions(db.Model(&Collection{}), opts).Find(&collections).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	wrappedCollections := make([]model.Collection, 0, len(collections))
	for _, c := range collections {
		wrappedCollections = append(wrappedCollections, &wrappedCollection{c})
	}

	return wrappedCollections, total, nil
}
