package domain

import "github.com/shopspring/decimal"

// ShiftSummary holds the return-adjusted aggregates for one opening shift.
// A shift with no linked orders yields zero-valued aggregates, not nulls.
type ShiftSummary struct {
	SalesAmount      decimal.Decimal `json:"salesAmount"`      // Non-return net item amount
	ReturnAmount     decimal.Decimal `json:"returnAmount"`     // Return net item amount
	CashCollected    decimal.Decimal `json:"cashCollected"`    // Return-adjusted cash totals
	CreditCollected  decimal.Decimal `json:"creditCollected"`  // Return-adjusted credit totals
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"` // Grand total across returns and sales
}
