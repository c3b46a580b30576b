package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPostageRateRepository implements postal.PostageRateRepository using GORM
type GormPostageRateRepository struct {
	db *gorm.DB
}

// NewGormPostageRateRepository creates a new GormPostageRateRepository
func NewGormPostageRateRepository(db *gorm.DB) *GormPostageRateRepository {
	return &GormPostageRateRepository{db: db}
}

// FindByID finds a postage rate by its ID
func (r *GormPostageRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*postal.PostageRate, error) {
	var rate postal.PostageRate
	if err := r.db.WithContext(ctx).First(&rate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindByCode finds a postage rate by its code
func (r *GormPostageRateRepository) FindByCode(ctx context.Context, code string) (*postal.PostageRate, error) {
	var rate postal.PostageRate
	if err := r.db.WithContext(ctx).First(&rate, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindByBand finds a rate by the importer's reconciliation triple
func (r *GormPostageRateRepository) FindByBand(ctx context.Context, fullName string, weightMinGrams, weightMaxGrams int) (*postal.PostageRate, error) {
	var rate postal.PostageRate
	if err := r.db.WithContext(ctx).
		Where("full_name = ? AND weight_min_grams = ? AND weight_max_grams = ?", fullName, weightMinGrams, weightMaxGrams).
		First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindAll finds all postage rates ordered by weight band
func (r *GormPostageRateRepository) FindAll(ctx context.Context) ([]postal.PostageRate, error) {
	var rates []postal.PostageRate
	if err := r.db.WithContext(ctx).
		Order("weight_min_grams asc, weight_max_grams asc").
		Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// FindActive finds all active postage rates ordered by weight band
func (r *GormPostageRateRepository) FindActive(ctx context.Context) ([]postal.PostageRate, error) {
	var rates []postal.PostageRate
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("weight_min_grams asc, weight_max_grams asc").
		Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// Save creates or updates a postage rate
func (r *GormPostageRateRepository) Save(ctx context.Context, rate *postal.PostageRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

// Delete removes a postage rate by ID
func (r *GormPostageRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&postal.PostageRate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPostageRateRepository implements postal.PostageRateRepository
var _ postal.PostageRateRepository = (*GormPostageRateRepository)(nil)
