package postal

import (
	"context"
	"strings"
	"testing"

	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"github.com/postalis/backend/internal/infrastructure/ratefile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type importerMocks struct {
	rateRepo       *MockRateRepository
	speedRepo      *MockOptionRepository[postal.PostageSpeedOption]
	assignmentRepo *MockAssignmentRepository
	tenantRepo     *MockTenantRepository
	cache          *MockConfigCache
}

func newImporter(t *testing.T) (*RateImportService, *importerMocks) {
	t.Helper()
	m := &importerMocks{
		rateRepo:       new(MockRateRepository),
		speedRepo:      new(MockOptionRepository[postal.PostageSpeedOption]),
		assignmentRepo: new(MockAssignmentRepository),
		tenantRepo:     new(MockTenantRepository),
		cache:          new(MockConfigCache),
	}
	service := NewRateImportService(m.rateRepo, m.speedRepo, m.assignmentRepo, m.tenantRepo, m.cache, zap.NewNop())
	return service, m
}

func TestDeriveRateCode(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{"plain name", "Green Letter", "green_letter"},
		{"accents stripped", "Lettre Prioritaire Économique", "lettre_prioritaire_economique"},
		{"punctuation collapsed", "Letter -- 20g (tracked)", "letter_20g_tracked"},
		{"leading and trailing runs trimmed", "  ...Letter!  ", "letter"},
		{"long names truncated", strings.Repeat("a", 80), strings.Repeat("a", 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRateCode(tt.fullName))
		})
	}
}

func TestClassifySpeed(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"Lettre Prioritaire 20g", "priority"},
		{"LETTRE PRIORITAIRE", "priority"},
		{"Express parcel", "priority"},
		{"Lettre Verte 20g", "economy"},
		{"Economy letter", "economy"},
		{"Lettre Suivie", "tracked"},
		{"Registered mail", "tracked"},
		{"Plain letter", ""},
	}
	for _, tt := range tests {
		t.Run(tt.fullName, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySpeed(tt.fullName))
		})
	}
}

func TestRateImportServiceImportRows(t *testing.T) {
	ctx := context.Background()

	rows := []ratefile.Row{
		{LineNumber: 2, FullName: "Green Letter", WeightMinGrams: 0, WeightMaxGrams: 20, Price: decimal.RequireFromString("1.29")},
		{LineNumber: 3, FullName: "Green Letter", WeightMinGrams: 21, WeightMaxGrams: 100, Price: decimal.RequireFromString("2.58")},
	}

	t.Run("first run creates every band", func(t *testing.T) {
		service, m := newImporter(t)
		m.rateRepo.On("FindByBand", ctx, "Green Letter", 0, 20).Return(nil, shared.ErrNotFound)
		m.rateRepo.On("FindByBand", ctx, "Green Letter", 21, 100).Return(nil, shared.ErrNotFound)
		m.speedRepo.On("FindByCode", ctx, "economy").Return(nil, shared.ErrNotFound)
		m.rateRepo.On("Save", ctx, mock.Anything).Return(nil)
		m.cache.On("EvictAll", ctx).Return(nil)

		result, err := service.ImportRows(ctx, rows)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 0, result.Skipped)
		m.cache.AssertCalled(t, "EvictAll", ctx)
	})

	t.Run("second run with unchanged prices skips every band", func(t *testing.T) {
		service, m := newImporter(t)
		first, err := postal.NewPostageRate("Green Letter", "green_letter_0_20", 0, 20, decimal.RequireFromString("1.29"))
		require.NoError(t, err)
		second, err := postal.NewPostageRate("Green Letter", "green_letter_21_100", 21, 100, decimal.RequireFromString("2.58"))
		require.NoError(t, err)

		m.rateRepo.On("FindByBand", ctx, "Green Letter", 0, 20).Return(first, nil)
		m.rateRepo.On("FindByBand", ctx, "Green Letter", 21, 100).Return(second, nil)

		result, err := service.ImportRows(ctx, rows)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 2, result.Skipped)
		m.rateRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		m.cache.AssertNotCalled(t, "EvictAll", mock.Anything)
	})

	t.Run("price change updates the matched band", func(t *testing.T) {
		service, m := newImporter(t)
		existing, err := postal.NewPostageRate("Green Letter", "green_letter_0_20", 0, 20, decimal.RequireFromString("1.10"))
		require.NoError(t, err)

		m.rateRepo.On("FindByBand", ctx, "Green Letter", 0, 20).Return(existing, nil)
		m.speedRepo.On("FindByCode", ctx, "economy").Return(nil, shared.ErrNotFound)
		m.rateRepo.On("Save", ctx, existing).Return(nil)
		m.cache.On("EvictAll", ctx).Return(nil)

		result, err := service.ImportRows(ctx, rows[:1])
		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Updated)
		assert.True(t, existing.Price.Equal(decimal.RequireFromString("1.29")))
	})

	t.Run("update adopts a speed option registered after the first import", func(t *testing.T) {
		service, m := newImporter(t)
		existing, err := postal.NewPostageRate("Lettre Prioritaire", "lettre_prioritaire_0_20", 0, 20, decimal.RequireFromString("1.10"))
		require.NoError(t, err)
		require.Nil(t, existing.SpeedID)
		speed, err := postal.NewPostageSpeedOption("priority", "Priority", 0)
		require.NoError(t, err)

		m.rateRepo.On("FindByBand", ctx, "Lettre Prioritaire", 0, 20).Return(existing, nil)
		m.speedRepo.On("FindByCode", ctx, "priority").Return(speed, nil)
		m.rateRepo.On("Save", ctx, existing).Return(nil)
		m.cache.On("EvictAll", ctx).Return(nil)

		result, err := service.ImportRows(ctx, []ratefile.Row{
			{LineNumber: 2, FullName: "Lettre Prioritaire", WeightMinGrams: 0, WeightMaxGrams: 20, Price: decimal.RequireFromString("1.16")},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Updated)
		require.NotNil(t, existing.SpeedID)
		assert.Equal(t, speed.ID, *existing.SpeedID)
	})

	t.Run("classified speed scopes a created rate", func(t *testing.T) {
		service, m := newImporter(t)
		speed, err := postal.NewPostageSpeedOption("priority", "Priority", 0)
		require.NoError(t, err)

		m.rateRepo.On("FindByBand", ctx, "Lettre Prioritaire", 0, 20).Return(nil, shared.ErrNotFound)
		m.speedRepo.On("FindByCode", ctx, "priority").Return(speed, nil)
		m.rateRepo.On("Save", ctx, mock.MatchedBy(func(r *postal.PostageRate) bool {
			return r.SpeedID != nil && *r.SpeedID == speed.ID
		})).Return(nil)
		m.cache.On("EvictAll", ctx).Return(nil)

		result, err := service.ImportRows(ctx, []ratefile.Row{
			{LineNumber: 2, FullName: "Lettre Prioritaire", WeightMinGrams: 0, WeightMaxGrams: 20, Price: decimal.RequireFromString("1.49")},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("store failure aborts the batch", func(t *testing.T) {
		service, m := newImporter(t)
		m.rateRepo.On("FindByBand", ctx, "Green Letter", 0, 20).Return(nil, shared.ErrStoreUnavailable)

		_, err := service.ImportRows(ctx, rows)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})
}

func TestRateImportServiceImportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("parses and reconciles a price list file", func(t *testing.T) {
		service, m := newImporter(t)
		file := "full_name;weight_min_grams;weight_max_grams;price\n" +
			"Green Letter;0;20;1,29\n" +
			"Green Letter;21;bad;2,58\n"

		m.rateRepo.On("FindByBand", ctx, "Green Letter", 0, 20).Return(nil, shared.ErrNotFound)
		m.speedRepo.On("FindByCode", ctx, "economy").Return(nil, shared.ErrNotFound)
		m.rateRepo.On("Save", ctx, mock.Anything).Return(nil)
		m.cache.On("EvictAll", ctx).Return(nil)

		result, err := service.ImportCSV(ctx, strings.NewReader(file))
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalRows)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.ErrorRows)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 3, result.Errors[0].Row)
	})

	t.Run("missing required column fails the parse", func(t *testing.T) {
		service, _ := newImporter(t)
		file := "name;min;max;price\nGreen Letter;0;20;1,29\n"

		_, err := service.ImportCSV(ctx, strings.NewReader(file))
		assert.ErrorIs(t, err, ratefile.ErrMissingHeader)
	})
}
