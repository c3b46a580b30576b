package postal

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PostageRate is a carrier price banded by a closed weight range
// [WeightMinGrams, WeightMaxGrams], both ends inclusive. A nil SpeedID
// matches any delivery speed; EnvelopeFormatCode is informational in the
// current model because rates are global rather than envelope-scoped.
type PostageRate struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FullName           string          `gorm:"type:varchar(200);not null"`
	Code               string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	EnvelopeFormatCode *string         `gorm:"type:varchar(50)"`
	SpeedID            *uuid.UUID      `gorm:"type:uuid;index"`
	WeightMinGrams     int             `gorm:"not null"`
	WeightMaxGrams     int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsActive           bool            `gorm:"not null;default:true"`
	SortOrder          int             `gorm:"not null;default:0"`
	CreatedAt          time.Time       `gorm:"not null;autoCreateTime"`
	UpdatedAt          time.Time       `gorm:"not null;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (PostageRate) TableName() string {
	return "postage_rates"
}

// NewPostageRate creates a new postage rate
func NewPostageRate(fullName, code string, weightMinGrams, weightMaxGrams int, price decimal.Decimal) (*PostageRate, error) {
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_RATE_NAME", "Rate name cannot be empty")
	}
	if err := validateOptionCode(code); err != nil {
		return nil, err
	}
	if err := ValidateWeightRange(weightMinGrams, weightMaxGrams); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE_PRICE", "Rate price cannot be negative")
	}
	return &PostageRate{
		ID:             uuid.New(),
		FullName:       fullName,
		Code:           code,
		WeightMinGrams: weightMinGrams,
		WeightMaxGrams: weightMaxGrams,
		Price:          price,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

// SetPrice updates the rate's price
func (r *PostageRate) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_RATE_PRICE", "Rate price cannot be negative")
	}
	r.Price = price
	r.UpdatedAt = time.Now()
	return nil
}

// SetSpeed scopes the rate to a delivery speed; nil means any speed
func (r *PostageRate) SetSpeed(speedID *uuid.UUID) {
	r.SpeedID = speedID
	r.UpdatedAt = time.Now()
}

// Matches reports whether the rate covers the given total weight for the
// chosen speed. Both range bounds are inclusive; a rate without a speed is
// a wildcard.
func (r *PostageRate) Matches(totalWeightGrams int, speedID *uuid.UUID) bool {
	if !r.IsActive {
		return false
	}
	if totalWeightGrams < r.WeightMinGrams || totalWeightGrams > r.WeightMaxGrams {
		return false
	}
	if r.SpeedID == nil {
		return true
	}
	return speedID != nil && *r.SpeedID == *speedID
}

// RangeWidth returns the width of the weight band
func (r *PostageRate) RangeWidth() int {
	return r.WeightMaxGrams - r.WeightMinGrams
}

// SelectRate picks the applicable rate for a total weight and speed.
// When several active rates match, the narrowest band wins; ties fall back
// to the lowest sort order and then the code, so selection is deterministic
// regardless of store order. Returns nil when no rate applies.
func SelectRate(rates []PostageRate, totalWeightGrams int, speedID *uuid.UUID) *PostageRate {
	var candidates []PostageRate
	for _, r := range rates {
		if r.Matches(totalWeightGrams, speedID) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].RangeWidth() != candidates[j].RangeWidth() {
			return candidates[i].RangeWidth() < candidates[j].RangeWidth()
		}
		if candidates[i].SortOrder != candidates[j].SortOrder {
			return candidates[i].SortOrder < candidates[j].SortOrder
		}
		return candidates[i].Code < candidates[j].Code
	})
	return &candidates[0]
}

// RateOverlap reports two active rates whose closed weight ranges intersect
// for the same envelope format and speed scope.
type RateOverlap struct {
	First  PostageRate
	Second PostageRate
}

// DetectRateOverlaps scans active rates and reports every pair of
// overlapping bands sharing the same (envelope format code, speed) scope.
// Storage does not enforce disjoint bands, so admins run this after edits
// or imports.
func DetectRateOverlaps(rates []PostageRate) []RateOverlap {
	groups := make(map[string][]PostageRate)
	for _, r := range rates {
		if !r.IsActive {
			continue
		}
		key := ""
		if r.EnvelopeFormatCode != nil {
			key = *r.EnvelopeFormatCode
		}
		key += "|"
		if r.SpeedID != nil {
			key += r.SpeedID.String()
		}
		groups[key] = append(groups[key], r)
	}

	var overlaps []RateOverlap
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			if group[i].WeightMinGrams != group[j].WeightMinGrams {
				return group[i].WeightMinGrams < group[j].WeightMinGrams
			}
			return group[i].Code < group[j].Code
		})
		// Sorted by min, so band i overlaps an earlier band j exactly when
		// it starts at or before j's end. Checking all earlier bands keeps
		// pairs hidden behind a wide band visible.
		for i := 1; i < len(group); i++ {
			for j := 0; j < i; j++ {
				if group[i].WeightMinGrams <= group[j].WeightMaxGrams {
					overlaps = append(overlaps, RateOverlap{First: group[j], Second: group[i]})
				}
			}
		}
	}
	return overlaps
}

// ValidateWeightRange validates a closed weight band
func ValidateWeightRange(minGrams, maxGrams int) error {
	if minGrams < 0 {
		return shared.NewDomainError("INVALID_WEIGHT_RANGE", "Weight range cannot start below zero")
	}
	if minGrams > maxGrams {
		return shared.NewDomainError("INVALID_WEIGHT_RANGE", "Weight range minimum cannot exceed maximum")
	}
	return nil
}
