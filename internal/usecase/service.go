package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"shift-reconciliation/internal/domain"
)

// ReconciliationUseCase orchestrates the reconciliation of one shift:
// fetch the snapshot, build the report, record it for audit, memoize the
// result. The report builder is pure, so a cached report is identical to a
// recomputed one for as long as the snapshot is stable.
type ReconciliationUseCase struct {
	repo        ShiftRepository
	reports     ReportStore
	reportCache *cache.Cache
}

// NewReconciliationUseCase creates a new instance of the usecase. Each
// freshly built report is written to reports when one is given; a nil
// store disables the audit trail. Reports are cached per shift id for
// cacheTTL; a zero TTL disables caching.
func NewReconciliationUseCase(repo ShiftRepository, reports ReportStore, cacheTTL time.Duration) *ReconciliationUseCase {
	var reportCache *cache.Cache
	if cacheTTL > 0 {
		reportCache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return &ReconciliationUseCase{
		repo:        repo,
		reports:     reports,
		reportCache: reportCache,
	}
}

// Reconcile returns the reconciliation report for the given shift.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, shiftID string) (*domain.ShiftReport, error) {
	logger := zerolog.Ctx(ctx)

	if uc.reportCache != nil {
		if cached, ok := uc.reportCache.Get(shiftID); ok {
			logger.Debug().Str("shift_id", shiftID).Msg("serving cached shift report")
			return cached.(*domain.ShiftReport), nil
		}
	}

	shift, err := uc.repo.GetShiftData(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("could not get shift data for %s: %w", shiftID, err)
	}

	report := BuildShiftReport(shiftID, shift)

	if uc.reports != nil {
		// The audit record must not block the report itself.
		if err := uc.reports.SaveReport(ctx, report); err != nil {
			logger.Error().Err(err).Str("shift_id", shiftID).Msg("failed to record shift report")
		}
	}

	if uc.reportCache != nil {
		uc.reportCache.Set(shiftID, report, cache.DefaultExpiration)
	}

	logger.Info().
		Str("shift_id", shiftID).
		Int("cashiers", len(report.Cashiers)).
		Int("tanks", len(report.Tanks)).
		Msg("shift report built")

	return report, nil
}
