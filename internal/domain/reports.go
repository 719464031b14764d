package domain

// CashierTotals holds the per-cashier monetary aggregates derived from the
// shift snapshot. CashRemaining deliberately excludes OtherTransactionsTotal
// while the expected-amount check includes it; the two are computed by
// independent formulas and must stay that way.
type CashierTotals struct {
	TotalProductsAmount     float64 `json:"total_products_amount"`
	AdjustmentsAmount       float64 `json:"adjustments_amount"`
	TotalFuelVouchersAmount float64 `json:"total_fuel_vouchers_amount"`
	OtherTransactionsTotal  float64 `json:"other_transactions_total"`
	NetSales                float64 `json:"net_sales"`
	CashRemaining           float64 `json:"cash_remaining"`
}

// DistributionLine is one row of a cashier's cash distribution breakdown.
type DistributionLine struct {
	Type        string  `json:"type"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// CashierSummary is the full reconciliation result for one attendant.
// Variance is collected minus expected: positive is over, negative is short.
type CashierSummary struct {
	Name             string             `json:"name"`
	Totals           CashierTotals      `json:"totals"`
	ExpectedAmount   float64            `json:"expected_amount"`
	CollectedAmount  float64            `json:"collected_amount"`
	Variance         float64            `json:"variance"`
	CashDistribution []DistributionLine `json:"cash_distribution"`
}

// TankSummaryView is the display shape for one tank's dipping record.
// Total is derived here; the remaining fields pass through from the snapshot.
type TankSummaryView struct {
	Name           string  `json:"name"`
	OpeningReading float64 `json:"opening_reading"`
	Incoming       float64 `json:"incoming"`
	Total          float64 `json:"total"`
	ClosingReading float64 `json:"closing_reading"`
	TankDifference float64 `json:"tank_difference"`
	ActualSold     float64 `json:"actual_sold"`
	Deviation      float64 `json:"deviation"`
}

// ShiftTotals sums the per-cashier figures across the whole shift.
type ShiftTotals struct {
	TotalProductsAmount     float64 `json:"total_products_amount"`
	AdjustmentsAmount       float64 `json:"adjustments_amount"`
	TotalFuelVouchersAmount float64 `json:"total_fuel_vouchers_amount"`
	OtherTransactionsTotal  float64 `json:"other_transactions_total"`
	NetSales                float64 `json:"net_sales"`
	ExpectedAmount          float64 `json:"expected_amount"`
	CollectedAmount         float64 `json:"collected_amount"`
	Variance                float64 `json:"variance"`
}

// ShiftReport is the top-level reconciliation output for one shift. The
// on-screen view and the printable report both consume this same structure.
type ShiftReport struct {
	ShiftID          string            `json:"shift_id"`
	Cashiers         []CashierSummary  `json:"cashiers"`
	Totals           ShiftTotals       `json:"totals"`
	Tanks            []TankSummaryView `json:"tanks"`
	HideDippingTable bool              `json:"hide_dipping_table"`
}
