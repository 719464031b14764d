package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shift-reconciliation/internal/domain"
)

// SnapshotRepository implements the ShiftRepository interface over JSON
// snapshot files, one file per shift named <shift_id>.json. The JSON shape
// is exactly what the producing backend ships for a shift-detail request.
type SnapshotRepository struct {
	dir string
}

// NewSnapshotRepository creates a repository reading snapshots from dir.
func NewSnapshotRepository(dir string) *SnapshotRepository {
	return &SnapshotRepository{dir: dir}
}

// GetShiftData reads and decodes the snapshot file for the given shift.
// Shift ids come from URL parameters, so ids carrying path separators are
// rejected rather than allowed to address files outside the directory.
func (r *SnapshotRepository) GetShiftData(ctx context.Context, shiftID string) (*domain.ShiftData, error) {
	if strings.ContainsAny(shiftID, `/\`) {
		return nil, fmt.Errorf("invalid shift id %q: %w", shiftID, ErrShiftNotFound)
	}
	path := filepath.Join(r.dir, shiftID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shift snapshot %s: %w", path, err)
	}

	var shift domain.ShiftData
	if err := json.Unmarshal(data, &shift); err != nil {
		return nil, fmt.Errorf("failed to decode shift snapshot %s: %w", path, err)
	}
	return &shift, nil
}

// ReadSnapshotFile decodes a single snapshot from an explicit path; the
// one-shot CLI report command uses it directly.
func ReadSnapshotFile(path string) (*domain.ShiftData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shift snapshot %s: %w", path, err)
	}

	var shift domain.ShiftData
	if err := json.Unmarshal(data, &shift); err != nil {
		return nil, fmt.Errorf("failed to decode shift snapshot %s: %w", path, err)
	}
	return &shift, nil
}
