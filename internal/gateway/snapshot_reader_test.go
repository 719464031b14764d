package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"shift-reconciliation/internal/domain"
)

func fptr(v float64) *float64 {
	return &v
}

func writeSnapshot(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	assert.NoError(t, err)
}

func TestSnapshotRepository_GetShiftData(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		shiftID  string
		expected *domain.ShiftData
		wantErr  bool
	}{
		{
			name:    "valid snapshot",
			file:    "SH-1.json",
			shiftID: "SH-1",
			content: `{
				"fuel_prices": [{"product_id": 1, "price": 5}],
				"cashiers": [{
					"name": "Alice",
					"pump_readings": [{"fuel_pump_id": 1, "product_id": 1, "opening": 100, "closing": 110}],
					"collected_amount": 50,
					"main_ledger": {"name": "Cash", "amount": 50}
				}],
				"shift_tanks": [{"name": "Tank 1", "opening_reading": 500, "closing_reading": 490}]
			}`,
			expected: &domain.ShiftData{
				FuelPrices: []domain.FuelPrice{{ProductID: 1, Price: fptr(5)}},
				Cashiers: []domain.Cashier{{
					Name: "Alice",
					PumpReadings: []domain.PumpReading{
						{FuelPumpID: 1, ProductID: 1, Opening: fptr(100), Closing: fptr(110)},
					},
					CollectedAmount: fptr(50),
					MainLedger:      domain.Ledger{Name: "Cash", Amount: fptr(50)},
				}},
				ShiftTanks: []domain.ShiftTank{
					{Name: "Tank 1", OpeningReading: fptr(500), ClosingReading: fptr(490)},
				},
			},
		},
		{
			name:    "null numeric fields stay nil",
			file:    "SH-2.json",
			shiftID: "SH-2",
			content: `{
				"fuel_prices": [],
				"cashiers": [{
					"name": "Bob",
					"pump_readings": [{"fuel_pump_id": 2, "product_id": 1, "opening": null, "closing": 20}],
					"collected_amount": null,
					"main_ledger": {"name": "Cash", "amount": null}
				}],
				"shift_tanks": []
			}`,
			expected: &domain.ShiftData{
				FuelPrices: []domain.FuelPrice{},
				Cashiers: []domain.Cashier{{
					Name: "Bob",
					PumpReadings: []domain.PumpReading{
						{FuelPumpID: 2, ProductID: 1, Opening: nil, Closing: fptr(20)},
					},
					CollectedAmount: nil,
					MainLedger:      domain.Ledger{Name: "Cash", Amount: nil},
				}},
				ShiftTanks: []domain.ShiftTank{},
			},
		},
		{
			name:    "malformed json",
			file:    "SH-3.json",
			shiftID: "SH-3",
			content: `{"cashiers": [`,
			wantErr: true,
		},
		{
			name:    "missing file",
			shiftID: "SH-404",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				writeSnapshot(t, dir, tt.file, tt.content)
			}

			repo := NewSnapshotRepository(dir)
			got, err := repo.GetShiftData(context.Background(), tt.shiftID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSnapshotRepository_GetShiftData_RejectsPathSeparators(t *testing.T) {
	base := t.TempDir()
	outside := filepath.Join(base, "secret.json")
	assert.NoError(t, os.WriteFile(outside, []byte(`{"cashiers": [], "fuel_prices": [], "shift_tanks": []}`), 0o644))

	dir := filepath.Join(base, "snapshots")
	assert.NoError(t, os.Mkdir(dir, 0o755))
	repo := NewSnapshotRepository(dir)

	for _, id := range []string{"../secret", `..\secret`, "a/b"} {
		got, err := repo.GetShiftData(context.Background(), id)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrShiftNotFound)
	}
}

func TestReadSnapshotFile(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "shift.json", `{"cashiers": [], "fuel_prices": [], "shift_tanks": []}`)

	shift, err := ReadSnapshotFile(filepath.Join(dir, "shift.json"))
	assert.NoError(t, err)
	assert.NotNil(t, shift)
	assert.Empty(t, shift.Cashiers)

	_, err = ReadSnapshotFile(filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
}
