package dto

import (
	"time"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpeningBalancePayload is one declared balance row in an opening shift
// payload.
type OpeningBalancePayload struct {
	ModeOfPayment string          `json:"modeOfPayment" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

// OpeningShiftPayload is the serialized opening shift a POS front end sends
// when requesting a closing draft or shift details.
type OpeningShiftPayload struct {
	OpeningShiftID  string                  `json:"openingShiftID" binding:"required"`
	PeriodStartDate time.Time               `json:"periodStartDate"`
	POSProfile      string                  `json:"posProfile"`
	User            string                  `json:"user"`
	Company         string                  `json:"company"`
	BalanceDetails  []OpeningBalancePayload `json:"balanceDetails" binding:"dive"`
}

// CreateOpeningShiftRequest starts a new cashier session.
type CreateOpeningShiftRequest struct {
	Company         string                  `json:"company" binding:"required"`
	POSProfile      string                  `json:"posProfile" binding:"required"`
	PeriodStartDate *time.Time              `json:"periodStartDate"` // Defaults to now
	BalanceDetails  []OpeningBalancePayload `json:"balanceDetails" binding:"required,dive"`
}

// PaymentReconciliationLinePayload is one payment line of a closing shift
// payload. ClosingAmount carries the cashier's counted actual.
type PaymentReconciliationLinePayload struct {
	ModeOfPayment  string          `json:"modeOfPayment" binding:"required"`
	OpeningAmount  decimal.Decimal `json:"openingAmount"`
	ClosingAmount  decimal.Decimal `json:"closingAmount"`
	ExpectedAmount decimal.Decimal `json:"expectedAmount"`
	Difference     decimal.Decimal `json:"difference"`
}

// TaxLinePayload is one tax line of a closing shift payload.
type TaxLinePayload struct {
	AccountHead string          `json:"accountHead" binding:"required"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// TransactionLinePayload is one invoice audit row of a closing shift payload.
type TransactionLinePayload struct {
	SalesInvoiceID string          `json:"salesInvoice" binding:"required"`
	PostingDate    time.Time       `json:"postingDate"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	Customer       string          `json:"customer"`
}

// ClosingShiftPayload is the closing shift a POS front end submits, usually a
// draft previously returned by the draft endpoint with closing amounts filled
// in.
type ClosingShiftPayload struct {
	OpeningShiftID  string    `json:"openingShiftID" binding:"required"`
	POSProfile      string    `json:"posProfile"`
	User            string    `json:"user" binding:"required"`
	Company         string    `json:"company"`
	PeriodStartDate time.Time `json:"periodStartDate" binding:"required"`
	PeriodEndDate   time.Time `json:"periodEndDate" binding:"required"`

	GrandTotal    decimal.Decimal `json:"grandTotal"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`

	PaymentReconciliation []PaymentReconciliationLinePayload `json:"paymentReconciliation" binding:"dive"`
	Taxes                 []TaxLinePayload                   `json:"taxes" binding:"dive"`
	Transactions          []TransactionLinePayload           `json:"transactions" binding:"dive"`
}

// ToDomainClosingShift converts a submitted payload to a domain ClosingShift.
func (p ClosingShiftPayload) ToDomainClosingShift() domain.ClosingShift {
	d := domain.ClosingShift{
		OpeningShiftID:  p.OpeningShiftID,
		POSProfile:      p.POSProfile,
		User:            p.User,
		Company:         p.Company,
		PeriodStartDate: p.PeriodStartDate,
		PeriodEndDate:   p.PeriodEndDate,
		GrandTotal:      p.GrandTotal,
		NetTotal:        p.NetTotal,
		TotalQuantity:   p.TotalQuantity,
	}
	d.PaymentReconciliation = make([]domain.PaymentReconciliationLine, len(p.PaymentReconciliation))
	for i, l := range p.PaymentReconciliation {
		d.PaymentReconciliation[i] = domain.PaymentReconciliationLine{
			ModeOfPayment:  l.ModeOfPayment,
			OpeningAmount:  l.OpeningAmount,
			ClosingAmount:  l.ClosingAmount,
			ExpectedAmount: l.ExpectedAmount,
			Difference:     l.Difference,
		}
	}
	d.Taxes = make([]domain.TaxLine, len(p.Taxes))
	for i, l := range p.Taxes {
		d.Taxes[i] = domain.TaxLine{
			AccountHead: l.AccountHead,
			Rate:        l.Rate,
			Amount:      l.Amount,
		}
	}
	d.Transactions = make([]domain.TransactionLine, len(p.Transactions))
	for i, l := range p.Transactions {
		d.Transactions[i] = domain.TransactionLine{
			SalesInvoiceID: l.SalesInvoiceID,
			PostingDate:    l.PostingDate,
			GrandTotal:     l.GrandTotal,
			Customer:       l.Customer,
		}
	}
	return d
}

// OpeningShiftResponse is the API shape of an opening shift.
type OpeningShiftResponse struct {
	OpeningShiftID  string                  `json:"openingShiftID"`
	User            string                  `json:"user"`
	Company         string                  `json:"company"`
	POSProfile      string                  `json:"posProfile"`
	PeriodStartDate time.Time               `json:"periodStartDate"`
	Status          string                  `json:"status"`
	DocStatus       int                     `json:"docstatus"`
	ClosingShiftID  *string                 `json:"closingShiftID,omitempty"`
	BalanceDetails  []OpeningBalancePayload `json:"balanceDetails"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// ToOpeningShiftResponse converts a domain OpeningShift to its API shape.
func ToOpeningShiftResponse(o *domain.OpeningShift) OpeningShiftResponse {
	details := make([]OpeningBalancePayload, len(o.BalanceDetails))
	for i, b := range o.BalanceDetails {
		details[i] = OpeningBalancePayload{ModeOfPayment: b.ModeOfPayment, Amount: b.Amount}
	}
	return OpeningShiftResponse{
		OpeningShiftID:  o.OpeningShiftID,
		User:            o.User,
		Company:         o.Company,
		POSProfile:      o.POSProfile,
		PeriodStartDate: o.PeriodStartDate,
		Status:          string(o.Status),
		DocStatus:       int(o.DocStatus),
		ClosingShiftID:  o.ClosingShiftID,
		BalanceDetails:  details,
		CreatedAt:       o.CreatedAt,
	}
}

// ClosingShiftResponse is the API shape of a closing shift, also used for
// unpersisted drafts (empty ID, docstatus 0).
type ClosingShiftResponse struct {
	ClosingShiftID  string    `json:"closingShiftID,omitempty"`
	OpeningShiftID  string    `json:"openingShiftID"`
	POSProfile      string    `json:"posProfile"`
	User            string    `json:"user"`
	Company         string    `json:"company"`
	PeriodStartDate time.Time `json:"periodStartDate"`
	PeriodEndDate   time.Time `json:"periodEndDate"`

	GrandTotal    decimal.Decimal `json:"grandTotal"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`

	PaymentReconciliation []PaymentReconciliationLinePayload `json:"paymentReconciliation"`
	Taxes                 []TaxLinePayload                   `json:"taxes"`
	Transactions          []TransactionLinePayload           `json:"transactions"`

	DocStatus int `json:"docstatus"`
}

// ToClosingShiftResponse converts a domain ClosingShift to its API shape.
func ToClosingShiftResponse(c *domain.ClosingShift) ClosingShiftResponse {
	resp := ClosingShiftResponse{
		ClosingShiftID:  c.ClosingShiftID,
		OpeningShiftID:  c.OpeningShiftID,
		POSProfile:      c.POSProfile,
		User:            c.User,
		Company:         c.Company,
		PeriodStartDate: c.PeriodStartDate,
		PeriodEndDate:   c.PeriodEndDate,
		GrandTotal:      c.GrandTotal,
		NetTotal:        c.NetTotal,
		TotalQuantity:   c.TotalQuantity,
		DocStatus:       int(c.DocStatus),
	}
	resp.PaymentReconciliation = make([]PaymentReconciliationLinePayload, len(c.PaymentReconciliation))
	for i, l := range c.PaymentReconciliation {
		resp.PaymentReconciliation[i] = PaymentReconciliationLinePayload{
			ModeOfPayment:  l.ModeOfPayment,
			OpeningAmount:  l.OpeningAmount,
			ClosingAmount:  l.ClosingAmount,
			ExpectedAmount: l.ExpectedAmount,
			Difference:     l.Difference,
		}
	}
	resp.Taxes = make([]TaxLinePayload, len(c.Taxes))
	for i, l := range c.Taxes {
		resp.Taxes[i] = TaxLinePayload{AccountHead: l.AccountHead, Rate: l.Rate, Amount: l.Amount}
	}
	resp.Transactions = make([]TransactionLinePayload, len(c.Transactions))
	for i, l := range c.Transactions {
		resp.Transactions[i] = TransactionLinePayload{
			SalesInvoiceID: l.SalesInvoiceID,
			PostingDate:    l.PostingDate,
			GrandTotal:     l.GrandTotal,
			Customer:       l.Customer,
		}
	}
	return resp
}
