package usecase

import (
	"shift-reconciliation/internal/domain"
)

// fuelVouchersLineType labels the synthetic cash distribution line that
// accounts for product handed out against vouchers.
const fuelVouchersLineType = "Fuel Vouchers"

// num applies the default-to-zero policy for nullable numeric input fields.
// Every formula goes through it so partially entered shift data never causes
// a failure, only zeroed line items.
func num(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// PriceFor returns the shift price for the given product, or 0 when no
// price entry exists. A missing price silently zeroes the line items that
// reference it. When duplicates exist the first entry wins; the snapshot
// producer is assumed to deduplicate.
func PriceFor(fuelPrices []domain.FuelPrice, productID int64) float64 {
	for _, fp := range fuelPrices {
		if fp.ProductID == productID {
			return num(fp.Price)
		}
	}
	return 0
}

// ComputeCashierTotals derives the monetary aggregates for one cashier.
//
// CashRemaining excludes the other-transactions total while the
// expected-amount formula in ComputeExpectedAmount includes it. The source
// system computes the two at different call sites with exactly this
// difference, so they are kept as separate formulas here.
func ComputeCashierTotals(cashier domain.Cashier, fuelPrices []domain.FuelPrice) domain.CashierTotals {
	var totals domain.CashierTotals

	for _, pr := range cashier.PumpReadings {
		qty := num(pr.Closing) - num(pr.Opening)
		totals.TotalProductsAmount += qty * PriceFor(fuelPrices, pr.ProductID)
	}

	for _, adj := range cashier.TankAdjustments {
		delta := num(adj.Quantity) * PriceFor(fuelPrices, adj.ProductID)
		switch adj.Operator {
		case domain.OperatorDecrease:
			totals.AdjustmentsAmount += delta
		case domain.OperatorIncrease:
			totals.AdjustmentsAmount -= delta
		}
		// Any other operator value contributes nothing.
	}

	for _, fv := range cashier.FuelVouchers {
		totals.TotalFuelVouchersAmount += num(fv.Quantity) * PriceFor(fuelPrices, fv.ProductID)
	}

	for _, tx := range cashier.OtherTransactions {
		totals.OtherTransactionsTotal += num(tx.Amount)
	}

	totals.NetSales = totals.TotalProductsAmount + totals.AdjustmentsAmount
	totals.CashRemaining = totals.TotalProductsAmount + totals.AdjustmentsAmount - totals.TotalFuelVouchersAmount

	return totals
}

// ComputeExpectedAmount returns the cash the cashier should hold at shift
// close, used for the over/short check. Unlike CashRemaining it subtracts
// the other-transactions total as well.
func ComputeExpectedAmount(cashier domain.Cashier, fuelPrices []domain.FuelPrice) float64 {
	totals := ComputeCashierTotals(cashier, fuelPrices)
	return totals.TotalProductsAmount + totals.AdjustmentsAmount - totals.TotalFuelVouchersAmount - totals.OtherTransactionsTotal
}

// ComputeVariance returns collected minus expected. Positive means the
// cashier over-collected, negative means short. No rounding is applied;
// formatting is the consumer's concern.
func ComputeVariance(cashier domain.Cashier, expectedAmount float64) float64 {
	return num(cashier.CollectedAmount) - expectedAmount
}

// BuildCashDistributionSummary produces the cashier's cash distribution
// breakdown in display order: the main ledger first, then the other
// transactions grouped by debit ledger name in first-seen order, then the
// fuel vouchers line. Grouping keys are exact strings with no folding.
func BuildCashDistributionSummary(cashier domain.Cashier, fuelPrices []domain.FuelPrice) []domain.DistributionLine {
	lines := []domain.DistributionLine{{
		Type:        cashier.MainLedger.Name,
		Count:       1,
		TotalAmount: num(cashier.MainLedger.Amount),
	}}

	index := make(map[string]int)
	for _, tx := range cashier.OtherTransactions {
		name := tx.DebitLedger.Name
		i, ok := index[name]
		if !ok {
			lines = append(lines, domain.DistributionLine{Type: name})
			i = len(lines) - 1
			index[name] = i
		}
		lines[i].Count++
		lines[i].TotalAmount += num(tx.Amount)
	}

	totals := ComputeCashierTotals(cashier, fuelPrices)
	lines = append(lines, domain.DistributionLine{
		Type:        fuelVouchersLineType,
		Count:       len(cashier.FuelVouchers),
		TotalAmount: totals.TotalFuelVouchersAmount,
	})

	return lines
}

// ComputeTankSummary maps one dipping record to its display shape. Only the
// opening total is derived here; the other figures come from upstream
// unchanged.
func ComputeTankSummary(tank domain.ShiftTank) domain.TankSummaryView {
	return domain.TankSummaryView{
		Name:           tank.Name,
		OpeningReading: num(tank.OpeningReading),
		Incoming:       num(tank.Incoming),
		Total:          num(tank.OpeningReading) + num(tank.Incoming),
		ClosingReading: num(tank.ClosingReading),
		TankDifference: num(tank.TankDifference),
		ActualSold:     num(tank.ActualSold),
		Deviation:      num(tank.Deviation),
	}
}

// HideDippingTable reports whether the shift's dipping table should be
// suppressed. A single tank with an opening or closing reading below 1
// hides the table for the whole shift, not just that tank.
func HideDippingTable(shiftTanks []domain.ShiftTank) bool {
	for _, tank := range shiftTanks {
		if num(tank.OpeningReading) < 1 || num(tank.ClosingReading) < 1 {
			return true
		}
	}
	return false
}

// BuildShiftReport assembles the complete reconciliation report for one
// shift snapshot: per-cashier summaries, shift-wide totals, and the tank
// dipping views. It is a pure recomputation over the given snapshot.
func BuildShiftReport(shiftID string, shift *domain.ShiftData) *domain.ShiftReport {
	report := &domain.ShiftReport{
		ShiftID:          shiftID,
		Cashiers:         make([]domain.CashierSummary, 0, len(shift.Cashiers)),
		Tanks:            make([]domain.TankSummaryView, 0, len(shift.ShiftTanks)),
		HideDippingTable: HideDippingTable(shift.ShiftTanks),
	}

	for _, cashier := range shift.Cashiers {
		totals := ComputeCashierTotals(cashier, shift.FuelPrices)
		expected := ComputeExpectedAmount(cashier, shift.FuelPrices)
		summary := domain.CashierSummary{
			Name:             cashier.Name,
			Totals:           totals,
			ExpectedAmount:   expected,
			CollectedAmount:  num(cashier.CollectedAmount),
			Variance:         ComputeVariance(cashier, expected),
			CashDistribution: BuildCashDistributionSummary(cashier, shift.FuelPrices),
		}
		report.Cashiers = append(report.Cashiers, summary)

		report.Totals.TotalProductsAmount += totals.TotalProductsAmount
		report.Totals.AdjustmentsAmount += totals.AdjustmentsAmount
		report.Totals.TotalFuelVouchersAmount += totals.TotalFuelVouchersAmount
		report.Totals.OtherTransactionsTotal += totals.OtherTransactionsTotal
		report.Totals.NetSales += totals.NetSales
		report.Totals.ExpectedAmount += summary.ExpectedAmount
		report.Totals.CollectedAmount += summary.CollectedAmount
		report.Totals.Variance += summary.Variance
	}

	for _, tank := range shift.ShiftTanks {
		report.Tanks = append(report.Tanks, ComputeTankSummary(tank))
	}

	return report
}
