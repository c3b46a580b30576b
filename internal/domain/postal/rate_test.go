package postal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostageRate_Validation(t *testing.T) {
	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := NewPostageRate("Letter 20g", "letter_20g", 50, 20, decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("rejects negative minimum", func(t *testing.T) {
		_, err := NewPostageRate("Letter 20g", "letter_20g", -1, 20, decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewPostageRate("Letter 20g", "letter_20g", 0, 20, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("single-gram band is valid", func(t *testing.T) {
		rate, err := NewPostageRate("Letter 20g", "letter_20g", 20, 20, decimal.NewFromInt(1))
		require.NoError(t, err)
		assert.Equal(t, 0, rate.RangeWidth())
	})
}

func TestPostageRate_Matches_InclusiveBounds(t *testing.T) {
	rate := testRate(t, "band", 20, 50, "1.20")

	assert.False(t, rate.Matches(19, nil))
	assert.True(t, rate.Matches(20, nil))
	assert.True(t, rate.Matches(50, nil))
	assert.False(t, rate.Matches(51, nil))
}

func TestPostageRate_Matches_InactiveNeverMatches(t *testing.T) {
	rate := testRate(t, "band", 0, 50, "1.20")
	rate.IsActive = false

	assert.False(t, rate.Matches(25, nil))
}

func TestSelectRate(t *testing.T) {
	t.Run("boundary weight picks exactly one deterministic rate", func(t *testing.T) {
		// Adjacent closed bands sharing gram 20: the narrower band wins.
		rates := []PostageRate{
			testRate(t, "band_low", 0, 20, "0.80"),
			testRate(t, "band_high", 20, 50, "1.20"),
		}
		picked := SelectRate(rates, 20, nil)
		require.NotNil(t, picked)
		assert.Equal(t, "band_low", picked.Code)

		// Same input, reversed store order, same answer.
		picked = SelectRate([]PostageRate{rates[1], rates[0]}, 20, nil)
		require.NotNil(t, picked)
		assert.Equal(t, "band_low", picked.Code)
	})

	t.Run("narrowest range wins", func(t *testing.T) {
		rates := []PostageRate{
			testRate(t, "wide", 0, 100, "2.00"),
			testRate(t, "narrow", 20, 40, "1.50"),
		}
		picked := SelectRate(rates, 30, nil)
		require.NotNil(t, picked)
		assert.Equal(t, "narrow", picked.Code)
	})

	t.Run("equal widths fall back to sort order then code", func(t *testing.T) {
		a := testRate(t, "b_code", 0, 50, "1.00")
		b := testRate(t, "a_code", 0, 50, "1.00")
		picked := SelectRate([]PostageRate{a, b}, 10, nil)
		require.NotNil(t, picked)
		assert.Equal(t, "a_code", picked.Code)

		b.SortOrder = 5
		picked = SelectRate([]PostageRate{a, b}, 10, nil)
		require.NotNil(t, picked)
		assert.Equal(t, "b_code", picked.Code)
	})

	t.Run("no candidates yields nil", func(t *testing.T) {
		assert.Nil(t, SelectRate(nil, 10, nil))
		assert.Nil(t, SelectRate([]PostageRate{testRate(t, "band", 0, 5, "1.00")}, 10, nil))
	})
}

func TestDetectRateOverlaps(t *testing.T) {
	t.Run("adjacent closed bands sharing a bound overlap", func(t *testing.T) {
		rates := []PostageRate{
			testRate(t, "low", 0, 20, "0.80"),
			testRate(t, "high", 20, 50, "1.20"),
		}
		overlaps := DetectRateOverlaps(rates)
		require.Len(t, overlaps, 1)
		assert.Equal(t, "low", overlaps[0].First.Code)
		assert.Equal(t, "high", overlaps[0].Second.Code)
	})

	t.Run("wide band overlapping several narrow bands reports every pair", func(t *testing.T) {
		rates := []PostageRate{
			testRate(t, "wide", 0, 100, "2.00"),
			testRate(t, "narrow", 5, 6, "0.80"),
			testRate(t, "mid", 30, 40, "1.20"),
		}
		overlaps := DetectRateOverlaps(rates)
		require.Len(t, overlaps, 2)
		assert.Equal(t, "wide", overlaps[0].First.Code)
		assert.Equal(t, "narrow", overlaps[0].Second.Code)
		assert.Equal(t, "wide", overlaps[1].First.Code)
		assert.Equal(t, "mid", overlaps[1].Second.Code)
	})

	t.Run("disjoint bands report nothing", func(t *testing.T) {
		rates := []PostageRate{
			testRate(t, "low", 0, 20, "0.80"),
			testRate(t, "high", 21, 50, "1.20"),
		}
		assert.Empty(t, DetectRateOverlaps(rates))
	})

	t.Run("different speed scopes never overlap", func(t *testing.T) {
		a := testRate(t, "low", 0, 20, "0.80")
		b := testRate(t, "high", 10, 50, "1.20")
		speed := a.ID // any uuid
		b.SpeedID = &speed
		assert.Empty(t, DetectRateOverlaps([]PostageRate{a, b}))
	})

	t.Run("inactive rates are ignored", func(t *testing.T) {
		a := testRate(t, "low", 0, 20, "0.80")
		b := testRate(t, "high", 10, 50, "1.20")
		b.IsActive = false
		assert.Empty(t, DetectRateOverlaps([]PostageRate{a, b}))
	})
}
