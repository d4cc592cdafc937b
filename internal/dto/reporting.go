package dto

import (
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftSummaryResponse holds the return-adjusted aggregates for one shift.
type ShiftSummaryResponse struct {
	SalesAmount      decimal.Decimal `json:"salesAmount"`
	ReturnAmount     decimal.Decimal `json:"returnAmount"`
	CashCollected    decimal.Decimal `json:"cashCollected"`
	CreditCollected  decimal.Decimal `json:"creditCollected"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
}

// ShiftDetailsResponse combines the shift summary with the declared opening
// balances, for display on the closing screen.
type ShiftDetailsResponse struct {
	ShiftDetail    ShiftSummaryResponse    `json:"shiftDetail"`
	OpeningBalance []OpeningBalancePayload `json:"openingBalance"`
}

// ToShiftDetailsResponse converts the reporting service output to its API
// shape.
func ToShiftDetailsResponse(summary *domain.ShiftSummary, balances []domain.OpeningBalance) ShiftDetailsResponse {
	rows := make([]OpeningBalancePayload, len(balances))
	for i, b := range balances {
		rows[i] = OpeningBalancePayload{ModeOfPayment: b.ModeOfPayment, Amount: b.Amount}
	}
	return ShiftDetailsResponse{
		ShiftDetail: ShiftSummaryResponse{
			SalesAmount:      summary.SalesAmount,
			ReturnAmount:     summary.ReturnAmount,
			CashCollected:    summary.CashCollected,
			CreditCollected:  summary.CreditCollected,
			TotalSalesAmount: summary.TotalSalesAmount,
		},
		OpeningBalance: rows,
	}
}
