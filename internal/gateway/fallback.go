package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"

	"shift-reconciliation/internal/domain"
)

type shiftSource interface {
	GetShiftData(ctx context.Context, shiftID string) (*domain.ShiftData, error)
}

// FallbackRepository serves snapshots from the primary source and falls
// back to the secondary when the shift is not there. Shifts uploaded over
// HTTP land in the store; snapshot files dropped into the configured
// directory are still served without an upload.
type FallbackRepository struct {
	primary   shiftSource
	secondary shiftSource
}

func NewFallbackRepository(primary, secondary shiftSource) *FallbackRepository {
	return &FallbackRepository{
		primary:   primary,
		secondary: secondary,
	}
}

func (r *FallbackRepository) GetShiftData(ctx context.Context, shiftID string) (*domain.ShiftData, error) {
	shift, err := r.primary.GetShiftData(ctx, shiftID)
	if err == nil {
		return shift, nil
	}
	if errors.Is(err, ErrShiftNotFound) || errors.Is(err, os.ErrNotExist) {
		shift, err = r.secondary.GetShiftData(ctx, shiftID)
		if err != nil && errors.Is(err, os.ErrNotExist) {
			// A miss in both sources is one condition for callers.
			return nil, fmt.Errorf("shift %s: %w", shiftID, ErrShiftNotFound)
		}
		return shift, err
	}
	return nil, err
}
