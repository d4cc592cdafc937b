package dto

import (
	"time"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesInvoiceItemResponse is one invoice line item in API responses.
type SalesInvoiceItemResponse struct {
	ItemCode     string          `json:"itemCode"`
	Qty          decimal.Decimal `json:"qty"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	SalesOrderID *string         `json:"salesOrderID,omitempty"`
}

// SalesInvoiceTaxResponse is one invoice tax row in API responses.
type SalesInvoiceTaxResponse struct {
	AccountHead string          `json:"accountHead"`
	Rate        decimal.Decimal `json:"rate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
}

// SalesInvoicePaymentResponse is one invoice payment row in API responses.
type SalesInvoicePaymentResponse struct {
	ModeOfPayment string          `json:"modeOfPayment"`
	Amount        decimal.Decimal `json:"amount"`
}

// SalesInvoiceResponse is the full invoice record returned to POS front ends.
type SalesInvoiceResponse struct {
	InvoiceID      string          `json:"invoiceID"`
	OpeningShiftID string          `json:"openingShiftID"`
	Customer       string          `json:"customer"`
	PostingDate    time.Time       `json:"postingDate"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	NetTotal       decimal.Decimal `json:"netTotal"`
	TotalQty       decimal.Decimal `json:"totalQty"`
	ChangeAmount   decimal.Decimal `json:"changeAmount"`
	ModeOfPayment  string          `json:"modeOfPayment"`
	IsReturn       bool            `json:"isReturn"`
	IsPrinted      bool            `json:"isPrinted"`
	DocStatus      int             `json:"docstatus"`

	Items    []SalesInvoiceItemResponse    `json:"items"`
	Taxes    []SalesInvoiceTaxResponse     `json:"taxes"`
	Payments []SalesInvoicePaymentResponse `json:"payments"`
}

// ToSalesInvoiceResponse converts a domain SalesInvoice to its API shape.
func ToSalesInvoiceResponse(inv *domain.SalesInvoice) SalesInvoiceResponse {
	resp := SalesInvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		OpeningShiftID: inv.OpeningShiftID,
		Customer:       inv.Customer,
		PostingDate:    inv.PostingDate,
		GrandTotal:     inv.GrandTotal,
		NetTotal:       inv.NetTotal,
		TotalQty:       inv.TotalQty,
		ChangeAmount:   inv.ChangeAmount,
		ModeOfPayment:  inv.ModeOfPayment,
		IsReturn:       inv.IsReturn,
		IsPrinted:      inv.IsPrinted,
		DocStatus:      int(inv.DocStatus),
	}
	resp.Items = make([]SalesInvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		resp.Items[i] = SalesInvoiceItemResponse{
			ItemCode:     it.ItemCode,
			Qty:          it.Qty,
			NetAmount:    it.NetAmount,
			SalesOrderID: it.SalesOrderID,
		}
	}
	resp.Taxes = make([]SalesInvoiceTaxResponse, len(inv.Taxes))
	for i, t := range inv.Taxes {
		resp.Taxes[i] = SalesInvoiceTaxResponse{AccountHead: t.AccountHead, Rate: t.Rate, TaxAmount: t.TaxAmount}
	}
	resp.Payments = make([]SalesInvoicePaymentResponse, len(inv.Payments))
	for i, p := range inv.Payments {
		resp.Payments[i] = SalesInvoicePaymentResponse{ModeOfPayment: p.ModeOfPayment, Amount: p.Amount}
	}
	return resp
}

// ToSalesInvoiceResponses converts a slice of domain invoices.
func ToSalesInvoiceResponses(invs []domain.SalesInvoice) []SalesInvoiceResponse {
	responses := make([]SalesInvoiceResponse, len(invs))
	for i := range invs {
		responses[i] = ToSalesInvoiceResponse(&invs[i])
	}
	return responses
}
