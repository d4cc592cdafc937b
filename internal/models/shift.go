package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus mirrors domain.ShiftStatus in the persistence layer.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "Open"
	ShiftClosed ShiftStatus = "Closed"
)

// OpeningShift maps to the opening_shifts table.
type OpeningShift struct {
	OpeningShiftID  string
	UserID          string
	Company         string
	POSProfile      string
	PeriodStartDate time.Time
	Status          ShiftStatus
	DocStatus       DocStatus
	ClosingShiftID  *string
	AuditFields
}

// OpeningBalance maps to the opening_shift_balances table, ordered by idx.
type OpeningBalance struct {
	OpeningShiftID string
	Idx            int
	ModeOfPayment  string
	Amount         decimal.Decimal
}

// ClosingShift maps to the closing_shifts table.
type ClosingShift struct {
	ClosingShiftID  string
	OpeningShiftID  string
	POSProfile      string
	UserID          string
	Company         string
	PeriodStartDate time.Time
	PeriodEndDate   time.Time
	GrandTotal      decimal.Decimal
	NetTotal        decimal.Decimal
	TotalQuantity   decimal.Decimal
	DocStatus       DocStatus
	AuditFields
}

// PaymentReconciliationLine maps to closing_shift_payments, ordered by idx.
type PaymentReconciliationLine struct {
	ClosingShiftID string
	Idx            int
	ModeOfPayment  string
	OpeningAmount  decimal.Decimal
	ClosingAmount  decimal.Decimal
	ExpectedAmount decimal.Decimal
	Difference     decimal.Decimal
}

// TaxLine maps to closing_shift_taxes, ordered by idx.
type TaxLine struct {
	ClosingShiftID string
	Idx            int
	AccountHead    string
	Rate           decimal.Decimal
	Amount         decimal.Decimal
}

// TransactionLine maps to closing_shift_transactions, ordered by idx.
type TransactionLine struct {
	ClosingShiftID string
	Idx            int
	SalesInvoiceID string
	PostingDate    time.Time
	GrandTotal     decimal.Decimal
	Customer       string
}

// POSProfile maps to the pos_profiles table.
type POSProfile struct {
	Name               string
	Company            string
	CashModeOfPayment  string
	AllowInvoiceDelete bool
}
