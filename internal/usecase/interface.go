package usecase

import (
	"context"

	"shift-reconciliation/internal/domain"
)

// ShiftRepository defines the interface for fetching shift snapshots.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go ShiftRepository,ReportStore
type ShiftRepository interface {
	GetShiftData(ctx context.Context, shiftID string) (*domain.ShiftData, error)
}

// ReportStore records generated reports for audit.
type ReportStore interface {
	SaveReport(ctx context.Context, report *domain.ShiftReport) error
}
