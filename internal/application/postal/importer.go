package postal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"github.com/postalis/backend/internal/infrastructure/ratefile"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RateImportResult represents the outcome of one price list reconciliation
type RateImportResult struct {
	TotalRows int                `json:"total_rows"`
	Created   int                `json:"created"`
	Updated   int                `json:"updated"`
	Skipped   int                `json:"skipped"`
	ErrorRows int                `json:"error_rows"`
	Errors    []ratefile.RowError `json:"errors,omitempty"`
}

// RateImportService reconciles an external carrier price list against the
// stored rate table. A row is matched by its (fullName, weightMinGrams,
// weightMaxGrams) triple: a missing triple creates a rate, a price change
// updates it, an unchanged row is skipped. The importer never deletes, so
// rerunning the same file is a no-op after the first pass.
type RateImportService struct {
	rateRepo    postal.PostageRateRepository
	speedRepo   postal.OptionRepository[postal.PostageSpeedOption]
	invalidator *cacheInvalidator
	parser      *ratefile.Parser
	logger      *zap.Logger
}

// NewRateImportService creates a new RateImportService
func NewRateImportService(
	rateRepo postal.PostageRateRepository,
	speedRepo postal.OptionRepository[postal.PostageSpeedOption],
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
) *RateImportService {
	return &RateImportService{
		rateRepo:    rateRepo,
		speedRepo:   speedRepo,
		invalidator: newCacheInvalidator(assignmentRepo, tenantRepo, cache, logger),
		parser:      ratefile.NewParser(),
		logger:      logger,
	}
}

// ImportCSV parses a price list file and reconciles it against the store.
// Malformed rows are reported per row and do not abort the batch.
func (s *RateImportService) ImportCSV(ctx context.Context, r io.Reader) (*RateImportResult, error) {
	parsed, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	result, err := s.ImportRows(ctx, parsed.Rows)
	if err != nil {
		return nil, err
	}
	result.TotalRows += len(parsed.Errors)
	result.ErrorRows += len(parsed.Errors)
	result.Errors = append(parsed.Errors, result.Errors...)
	return result, nil
}

// ImportRows reconciles already-parsed price list rows against the store.
// A store failure aborts the batch; rows reconciled before the failure have
// already been committed.
func (s *RateImportService) ImportRows(ctx context.Context, rows []ratefile.Row) (*RateImportResult, error) {
	result := &RateImportResult{TotalRows: len(rows)}

	for _, row := range rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := s.importRow(ctx, row, result); err != nil {
			return nil, err
		}
	}

	if result.Created > 0 || result.Updated > 0 {
		s.invalidator.EvictAll(ctx)
	}

	s.logger.Info("rate import finished",
		zap.Int("total_rows", result.TotalRows),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("error_rows", result.ErrorRows))
	return result, nil
}

func (s *RateImportService) importRow(ctx context.Context, row ratefile.Row, result *RateImportResult) error {
	existing, err := s.rateRepo.FindByBand(ctx, row.FullName, row.WeightMinGrams, row.WeightMaxGrams)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return fmt.Errorf("failed to look up rate band: %w", err)
	}

	if existing != nil {
		if existing.Price.Equal(row.Price) {
			result.Skipped++
			return nil
		}
		if err := existing.SetPrice(row.Price); err != nil {
			result.Errors = append(result.Errors, ratefile.NewRowError(row.LineNumber, ratefile.ColumnPrice, ratefile.ErrCodeRateFileInvalidType, err.Error()))
			result.ErrorRows++
			return nil
		}
		// A speed option registered after the rate was first imported picks
		// the rate up on the next price change.
		existing.SpeedID, err = s.classifiedSpeedID(ctx, row.FullName)
		if err != nil {
			return err
		}
		if err := s.rateRepo.Save(ctx, existing); err != nil {
			return fmt.Errorf("failed to update rate: %w", err)
		}
		result.Updated++
		return nil
	}

	rate, err := postal.NewPostageRate(row.FullName, rateCode(row.FullName, row.WeightMinGrams, row.WeightMaxGrams),
		row.WeightMinGrams, row.WeightMaxGrams, row.Price)
	if err != nil {
		result.Errors = append(result.Errors, ratefile.NewRowError(row.LineNumber, "", ratefile.ErrCodeRateFileInvalidRange, err.Error()))
		result.ErrorRows++
		return nil
	}
	rate.SpeedID, err = s.classifiedSpeedID(ctx, row.FullName)
	if err != nil {
		return err
	}

	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return fmt.Errorf("failed to create rate: %w", err)
	}
	result.Created++
	return nil
}

// classifiedSpeedID maps a rate name to an existing delivery speed option.
// A name the classifier cannot place, or a speed not present in the catalog,
// leaves the rate a wildcard.
func (s *RateImportService) classifiedSpeedID(ctx context.Context, fullName string) (*uuid.UUID, error) {
	speedCode := ClassifySpeed(fullName)
	if speedCode == "" {
		return nil, nil
	}
	speed, err := s.speedRepo.FindByCode(ctx, speedCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up speed %q: %w", speedCode, err)
	}
	return &speed.ID, nil
}

// ClassifySpeed derives a delivery speed code from a carrier rate name.
// Matching is on the accent-folded lowercase name, so "Lettre Prioritaire"
// and "lettre prioritaire" classify alike. An unrecognized name returns ""
// and the rate stays speed-wildcard.
func ClassifySpeed(fullName string) string {
	name := foldName(fullName)
	switch {
	case strings.Contains(name, "express"), strings.Contains(name, "priorit"), strings.Contains(name, "priority"):
		return "priority"
	case strings.Contains(name, "verte"), strings.Contains(name, "green"), strings.Contains(name, "econom"):
		return "economy"
	case strings.Contains(name, "suivi"), strings.Contains(name, "tracked"), strings.Contains(name, "registered"):
		return "tracked"
	default:
		return ""
	}
}

// DeriveRateCode turns a carrier rate name into a stable code slug: accents
// stripped, lowercased, every run of non-alphanumerics collapsed into one
// underscore, truncated to the catalog code length.
func DeriveRateCode(fullName string) string {
	folded := foldName(fullName)

	var b strings.Builder
	lastUnderscore := true
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	slug := strings.Trim(b.String(), "_")
	if len(slug) > 50 {
		slug = strings.Trim(slug[:50], "_")
	}
	return slug
}

// rateCode builds the unique code of an imported rate. The weight band joins
// the slug because one carrier product name spans several bands.
func rateCode(fullName string, minGrams, maxGrams int) string {
	base := DeriveRateCode(fullName)
	suffix := fmt.Sprintf("_%d_%d", minGrams, maxGrams)
	if len(base)+len(suffix) > 50 {
		base = strings.Trim(base[:50-len(suffix)], "_")
	}
	return base + suffix
}

// foldName lowercases a name and strips combining accent marks
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
