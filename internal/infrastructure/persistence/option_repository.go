package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOptionRepository implements postal.OptionRepository for any flat
// catalog option entity. One instantiation serves print colors, print
// sides, postage speeds and envelope formats; the entity's TableName tells
// GORM where to look.
type GormOptionRepository[T postal.CatalogOption] struct {
	db *gorm.DB
}

// NewGormOptionRepository creates a new GormOptionRepository for one entity type
func NewGormOptionRepository[T postal.CatalogOption](db *gorm.DB) *GormOptionRepository[T] {
	return &GormOptionRepository[T]{db: db}
}

// FindByID finds an option by its ID
func (r *GormOptionRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var option T
	if err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &option, nil
}

// FindByCode finds an option by its unique code
func (r *GormOptionRepository[T]) FindByCode(ctx context.Context, code string) (*T, error) {
	var option T
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&option).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &option, nil
}

// FindByIDs finds all options with the given IDs, ordered by sort order
func (r *GormOptionRepository[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var options []T
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("sort_order asc").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// FindAll finds all options ordered by sort order
func (r *GormOptionRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var options []T
	if err := r.db.WithContext(ctx).
		Order("sort_order asc").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// Save creates or updates an option
func (r *GormOptionRepository[T]) Save(ctx context.Context, option *T) error {
	return r.db.WithContext(ctx).Save(option).Error
}

// Delete removes an option by ID
func (r *GormOptionRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var option T
	result := r.db.WithContext(ctx).Delete(&option, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure the generic repository satisfies the domain interface
var _ postal.OptionRepository[postal.PrintColorOption] = (*GormOptionRepository[postal.PrintColorOption])(nil)
