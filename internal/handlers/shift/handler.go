package shift

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/gateway"
)

// Reconciler produces the reconciliation report for one shift.
type Reconciler interface {
	Reconcile(ctx context.Context, shiftID string) (*domain.ShiftReport, error)
}

// SnapshotStore accepts uploaded shift snapshots.
type SnapshotStore interface {
	SaveShiftData(ctx context.Context, shiftID string, shift *domain.ShiftData) error
}

type Handler struct {
	reconciler Reconciler
	store      SnapshotStore
}

func NewHandler(reconciler Reconciler, store SnapshotStore) *Handler {
	return &Handler{
		reconciler: reconciler,
		store:      store,
	}
}

// SaveSnapshot stores the ShiftData snapshot posted for a shift.
func (h *Handler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	shiftID := chi.URLParam(r, "shift")

	var shift domain.ShiftData
	if err := json.NewDecoder(r.Body).Decode(&shift); err != nil {
		logger.Warn().Err(err).Str("shift_id", shiftID).Msg("rejected malformed snapshot")
		http.Error(w, "malformed shift snapshot", http.StatusBadRequest)
		return
	}

	if err := h.store.SaveShiftData(ctx, shiftID, &shift); err != nil {
		logger.Error().Err(err).Str("shift_id", shiftID).Msg("failed to store snapshot")
		http.Error(w, "failed to store snapshot", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetReport returns the full reconciliation report for a shift.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	shiftID := chi.URLParam(r, "shift")

	report, err := h.reconciler.Reconcile(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gateway.ErrShiftNotFound) {
			http.Error(w, "shift not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("shift_id", shiftID).Msg("failed to reconcile shift")
		http.Error(w, "failed to reconcile shift", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logger.Error().
			Err(err).
			Str("shift_id", shiftID).
			Msg("failed to encode shift report")
	}
}

type tanksResponse struct {
	Tanks            []domain.TankSummaryView `json:"tanks"`
	HideDippingTable bool                     `json:"hide_dipping_table"`
}

// GetTanks returns only the dipping summaries and the visibility flag.
func (h *Handler) GetTanks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	shiftID := chi.URLParam(r, "shift")

	report, err := h.reconciler.Reconcile(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gateway.ErrShiftNotFound) {
			http.Error(w, "shift not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("shift_id", shiftID).Msg("failed to reconcile shift")
		http.Error(w, "failed to reconcile shift", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(tanksResponse{
		Tanks:            report.Tanks,
		HideDippingTable: report.HideDippingTable,
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("shift_id", shiftID).
			Msg("failed to encode tank summaries")
	}
}
