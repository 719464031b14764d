package domain

// AdjustmentOperator marks the direction of a manual tank stock correction.
type AdjustmentOperator string

const (
	// OperatorIncrease means product was added to the tank without a sale.
	OperatorIncrease AdjustmentOperator = "+"
	// OperatorDecrease means product left the tank and its value is owed in cash.
	OperatorDecrease AdjustmentOperator = "-"
)

// FuelPrice is the price in effect for one product during the shift.
type FuelPrice struct {
	ProductID int64    `json:"product_id"`
	Price     *float64 `json:"price"`
}

// PumpReading holds one cashier's opening and closing meter readings for a
// single pump. Readings may be absent when the shift is still being entered.
type PumpReading struct {
	FuelPumpID int64    `json:"fuel_pump_id"`
	ProductID  int64    `json:"product_id"`
	Opening    *float64 `json:"opening"`
	Closing    *float64 `json:"closing"`
}

// TankAdjustment is a manually entered physical stock correction.
// The '-' operator increases the cash owed by the cashier and '+' decreases
// it; that convention comes from the producing system and is relied on by
// the reconciliation arithmetic.
type TankAdjustment struct {
	ProductID int64              `json:"product_id"`
	Quantity  *float64           `json:"quantity"`
	Operator  AdjustmentOperator `json:"operator"`
}

// FuelVoucher is product handed out against a non-cash instrument.
type FuelVoucher struct {
	ProductID int64    `json:"product_id"`
	Quantity  *float64 `json:"quantity"`
}

// Ledger identifies a cash destination by name.
type Ledger struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
}

// OtherTransaction is any non-fuel cash movement recorded during the shift,
// grouped for display by the name of its debit ledger.
type OtherTransaction struct {
	DebitLedger Ledger   `json:"debit_ledger"`
	Amount      *float64 `json:"amount"`
}

// Cashier is one shift attendant together with everything they recorded.
type Cashier struct {
	Name              string             `json:"name"`
	PumpReadings      []PumpReading      `json:"pump_readings"`
	TankAdjustments   []TankAdjustment   `json:"tank_adjustments"`
	FuelVouchers      []FuelVoucher      `json:"fuel_vouchers"`
	OtherTransactions []OtherTransaction `json:"other_transactions"`
	CollectedAmount   *float64           `json:"collected_amount"`
	MainLedger        Ledger             `json:"main_ledger"`
}

// ShiftTank is the shift-wide dipping record for one physical tank. All
// derived fields except the opening total are computed upstream.
type ShiftTank struct {
	Name           string   `json:"name"`
	OpeningReading *float64 `json:"opening_reading"`
	ClosingReading *float64 `json:"closing_reading"`
	Incoming       *float64 `json:"incoming"`
	TankDifference *float64 `json:"tank_difference"`
	ActualSold     *float64 `json:"actual_sold"`
	Deviation      *float64 `json:"deviation"`
}

// ShiftData is the snapshot the backend produces for one shift-detail
// request. It is read-only to this module.
type ShiftData struct {
	Cashiers   []Cashier   `json:"cashiers"`
	FuelPrices []FuelPrice `json:"fuel_prices"`
	ShiftTanks []ShiftTank `json:"shift_tanks"`
}
