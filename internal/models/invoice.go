package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesInvoice maps to the sales_invoices table.
type SalesInvoice struct {
	InvoiceID      string
	OpeningShiftID string
	Customer       string
	PostingDate    time.Time
	GrandTotal     decimal.Decimal
	NetTotal       decimal.Decimal
	TotalQty       decimal.Decimal
	ChangeAmount   decimal.Decimal
	ModeOfPayment  string
	IsReturn       bool
	IsPrinted      bool
	DocStatus      DocStatus
	AuditFields
}

// SalesInvoiceItem maps to sales_invoice_items, ordered by idx.
type SalesInvoiceItem struct {
	InvoiceID    string
	Idx          int
	ItemCode     string
	Qty          decimal.Decimal
	NetAmount    decimal.Decimal
	SalesOrderID *string
}

// SalesInvoiceTax maps to sales_invoice_taxes, ordered by idx.
type SalesInvoiceTax struct {
	InvoiceID   string
	Idx         int
	AccountHead string
	Rate        decimal.Decimal
	TaxAmount   decimal.Decimal
}

// SalesInvoicePayment maps to sales_invoice_payments, ordered by idx.
type SalesInvoicePayment struct {
	InvoiceID     string
	Idx           int
	ModeOfPayment string
	Amount        decimal.Decimal
}
