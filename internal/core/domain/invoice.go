package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesInvoicePayment is one payment row on a sales invoice.
type SalesInvoicePayment struct {
	ModeOfPayment string          `json:"modeOfPayment"`
	Amount        decimal.Decimal `json:"amount"`
}

// SalesInvoiceTax is one tax row on a sales invoice.
type SalesInvoiceTax struct {
	AccountHead string          `json:"accountHead"`
	Rate        decimal.Decimal `json:"rate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
}

// SalesInvoiceItem is one line item on a sales invoice. The optional sales
// order link feeds the shift summary report.
type SalesInvoiceItem struct {
	ItemCode     string          `json:"itemCode"`
	Qty          decimal.Decimal `json:"qty"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	SalesOrderID *string         `json:"salesOrderID,omitempty"`
}

// SalesInvoice is a POS sale tied to an opening shift.
type SalesInvoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	OpeningShiftID string          `json:"openingShiftID"`
	Customer       string          `json:"customer"`
	PostingDate    time.Time       `json:"postingDate"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	NetTotal       decimal.Decimal `json:"netTotal"`
	TotalQty       decimal.Decimal `json:"totalQty"`
	ChangeAmount   decimal.Decimal `json:"changeAmount"` // Cash handed back to the customer
	ModeOfPayment  string          `json:"modeOfPayment"`
	IsReturn       bool            `json:"isReturn"`
	IsPrinted      bool            `json:"isPrinted"` // Printed drafts are force-submitted before aggregation
	DocStatus      DocStatus       `json:"docstatus"`

	Items    []SalesInvoiceItem    `json:"items"`
	Taxes    []SalesInvoiceTax     `json:"taxes"`
	Payments []SalesInvoicePayment `json:"payments"`

	AuditFields
}
