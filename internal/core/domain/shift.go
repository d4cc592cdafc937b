package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus indicates whether a cashier session is still running.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "Open"
	ShiftClosed ShiftStatus = "Closed"
)

// OpeningBalance is one declared starting balance for a mode of payment.
type OpeningBalance struct {
	ModeOfPayment string          `json:"modeOfPayment"`
	Amount        decimal.Decimal `json:"amount"`
}

// OpeningShift marks the start of a cashier session with declared starting
// balances. Its status flips to Closed when a closing shift is submitted
// against it; it is immutable otherwise.
type OpeningShift struct {
	OpeningShiftID  string           `json:"openingShiftID"` // Primary Key (UUID)
	User            string           `json:"user"`
	Company         string           `json:"company"`
	POSProfile      string           `json:"posProfile"`
	PeriodStartDate time.Time        `json:"periodStartDate"`
	Status          ShiftStatus      `json:"status"`
	DocStatus       DocStatus        `json:"docstatus"`
	ClosingShiftID  *string          `json:"closingShiftID,omitempty"` // Back-reference, set on closing submission
	BalanceDetails  []OpeningBalance `json:"balanceDetails"`
	AuditFields
}

// SetStatus derives the shift status from whether a closing shift exists.
func (o *OpeningShift) SetStatus() {
	if o.ClosingShiftID != nil && *o.ClosingShiftID != "" {
		o.Status = ShiftClosed
		return
	}
	o.Status = ShiftOpen
}

// PaymentReconciliationLine compares opening, actual and expected amounts for
// one mode of payment.
type PaymentReconciliationLine struct {
	ModeOfPayment  string          `json:"modeOfPayment"`
	OpeningAmount  decimal.Decimal `json:"openingAmount"`
	ClosingAmount  decimal.Decimal `json:"closingAmount"`  // User-entered actual
	ExpectedAmount decimal.Decimal `json:"expectedAmount"` // Computed from invoices
	Difference     decimal.Decimal `json:"difference"`
}

// TaxLine accumulates tax amounts per distinct (account head, rate) pair.
type TaxLine struct {
	AccountHead string          `json:"accountHead"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// TransactionLine is the audit trail entry for one invoice included in a
// closing shift. Read-only after creation.
type TransactionLine struct {
	SalesInvoiceID string          `json:"salesInvoice"`
	PostingDate    time.Time       `json:"postingDate"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	Customer       string          `json:"customer"`
}

// ClosingShift reconciles a cashier session's expected vs. actual totals.
// Built as a draft by aggregation, validated on save, immutable once
// submitted.
type ClosingShift struct {
	ClosingShiftID  string    `json:"closingShiftID"` // Primary Key (UUID)
	OpeningShiftID  string    `json:"openingShiftID"`
	POSProfile      string    `json:"posProfile"`
	User            string    `json:"user"`
	Company         string    `json:"company"`
	PeriodStartDate time.Time `json:"periodStartDate"`
	PeriodEndDate   time.Time `json:"periodEndDate"`

	GrandTotal    decimal.Decimal `json:"grandTotal"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`

	PaymentReconciliation []PaymentReconciliationLine `json:"paymentReconciliation"`
	Taxes                 []TaxLine                   `json:"taxes"`
	Transactions          []TransactionLine           `json:"transactions"`

	DocStatus DocStatus `json:"docstatus"`
	AuditFields
}

// POSProfile holds the per-terminal configuration relevant to shift closing.
type POSProfile struct {
	Name               string `json:"name"`
	Company            string `json:"company"`
	CashModeOfPayment  string `json:"cashModeOfPayment"` // Empty means the configured default applies
	AllowInvoiceDelete bool   `json:"allowInvoiceDelete"`
}
