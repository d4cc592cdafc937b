package mapping

import (
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/retailops/pos_shift_backend/internal/models"
)

// ToDomainSalesInvoice converts a model SalesInvoice plus its child rows to a
// domain SalesInvoice.
func ToDomainSalesInvoice(m models.SalesInvoice, items []models.SalesInvoiceItem, taxes []models.SalesInvoiceTax, payments []models.SalesInvoicePayment) domain.SalesInvoice {
	d := domain.SalesInvoice{
		InvoiceID:      m.InvoiceID,
		OpeningShiftID: m.OpeningShiftID,
		Customer:       m.Customer,
		PostingDate:    m.PostingDate,
		GrandTotal:     m.GrandTotal,
		NetTotal:       m.NetTotal,
		TotalQty:       m.TotalQty,
		ChangeAmount:   m.ChangeAmount,
		ModeOfPayment:  m.ModeOfPayment,
		IsReturn:       m.IsReturn,
		IsPrinted:      m.IsPrinted,
		DocStatus:      domain.DocStatus(m.DocStatus),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	d.Items = make([]domain.SalesInvoiceItem, len(items))
	for i, it := range items {
		d.Items[i] = domain.SalesInvoiceItem{
			ItemCode:     it.ItemCode,
			Qty:          it.Qty,
			NetAmount:    it.NetAmount,
			SalesOrderID: it.SalesOrderID,
		}
	}
	d.Taxes = make([]domain.SalesInvoiceTax, len(taxes))
	for i, t := range taxes {
		d.Taxes[i] = domain.SalesInvoiceTax{
			AccountHead: t.AccountHead,
			Rate:        t.Rate,
			TaxAmount:   t.TaxAmount,
		}
	}
	d.Payments = make([]domain.SalesInvoicePayment, len(payments))
	for i, p := range payments {
		d.Payments[i] = domain.SalesInvoicePayment{
			ModeOfPayment: p.ModeOfPayment,
			Amount:        p.Amount,
		}
	}
	return d
}

// ToDomainUser converts a model User to its domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
