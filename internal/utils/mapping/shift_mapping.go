package mapping

import (
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/retailops/pos_shift_backend/internal/models"
)

// ToModelOpeningShift converts a domain OpeningShift to its model form.
// Balance details are mapped separately into their child table rows.
func ToModelOpeningShift(d domain.OpeningShift) models.OpeningShift {
	return models.OpeningShift{
		OpeningShiftID:  d.OpeningShiftID,
		UserID:          d.User,
		Company:         d.Company,
		POSProfile:      d.POSProfile,
		PeriodStartDate: d.PeriodStartDate,
		Status:          models.ShiftStatus(d.Status),
		DocStatus:       models.DocStatus(d.DocStatus),
		ClosingShiftID:  d.ClosingShiftID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOpeningShift converts a model OpeningShift plus its balance rows to
// a domain OpeningShift.
func ToDomainOpeningShift(m models.OpeningShift, balances []models.OpeningBalance) domain.OpeningShift {
	details := make([]domain.OpeningBalance, len(balances))
	for i, b := range balances {
		details[i] = domain.OpeningBalance{
			ModeOfPayment: b.ModeOfPayment,
			Amount:        b.Amount,
		}
	}
	return domain.OpeningShift{
		OpeningShiftID:  m.OpeningShiftID,
		User:            m.UserID,
		Company:         m.Company,
		POSProfile:      m.POSProfile,
		PeriodStartDate: m.PeriodStartDate,
		Status:          domain.ShiftStatus(m.Status),
		DocStatus:       domain.DocStatus(m.DocStatus),
		ClosingShiftID:  m.ClosingShiftID,
		BalanceDetails:  details,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOpeningBalances converts the ordered balance details of an opening
// shift to child table rows.
func ToModelOpeningBalances(openingShiftID string, details []domain.OpeningBalance) []models.OpeningBalance {
	rows := make([]models.OpeningBalance, len(details))
	for i, d := range details {
		rows[i] = models.OpeningBalance{
			OpeningShiftID: openingShiftID,
			Idx:            i,
			ModeOfPayment:  d.ModeOfPayment,
			Amount:         d.Amount,
		}
	}
	return rows
}

// ToModelClosingShift converts a domain ClosingShift header to its model form.
func ToModelClosingShift(d domain.ClosingShift) models.ClosingShift {
	return models.ClosingShift{
		ClosingShiftID:  d.ClosingShiftID,
		OpeningShiftID:  d.OpeningShiftID,
		POSProfile:      d.POSProfile,
		UserID:          d.User,
		Company:         d.Company,
		PeriodStartDate: d.PeriodStartDate,
		PeriodEndDate:   d.PeriodEndDate,
		GrandTotal:      d.GrandTotal,
		NetTotal:        d.NetTotal,
		TotalQuantity:   d.TotalQuantity,
		DocStatus:       models.DocStatus(d.DocStatus),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClosingShift converts a model ClosingShift plus its child rows to a
// domain ClosingShift.
func ToDomainClosingShift(m models.ClosingShift, payments []models.PaymentReconciliationLine, taxes []models.TaxLine, transactions []models.TransactionLine) domain.ClosingShift {
	d := domain.ClosingShift{
		ClosingShiftID:  m.ClosingShiftID,
		OpeningShiftID:  m.OpeningShiftID,
		POSProfile:      m.POSProfile,
		User:            m.UserID,
		Company:         m.Company,
		PeriodStartDate: m.PeriodStartDate,
		PeriodEndDate:   m.PeriodEndDate,
		GrandTotal:      m.GrandTotal,
		NetTotal:        m.NetTotal,
		TotalQuantity:   m.TotalQuantity,
		DocStatus:       domain.DocStatus(m.DocStatus),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	d.PaymentReconciliation = make([]domain.PaymentReconciliationLine, len(payments))
	for i, p := range payments {
		d.PaymentReconciliation[i] = domain.PaymentReconciliationLine{
			ModeOfPayment:  p.ModeOfPayment,
			OpeningAmount:  p.OpeningAmount,
			ClosingAmount:  p.ClosingAmount,
			ExpectedAmount: p.ExpectedAmount,
			Difference:     p.Difference,
		}
	}
	d.Taxes = make([]domain.TaxLine, len(taxes))
	for i, t := range taxes {
		d.Taxes[i] = domain.TaxLine{
			AccountHead: t.AccountHead,
			Rate:        t.Rate,
			Amount:      t.Amount,
		}
	}
	d.Transactions = make([]domain.TransactionLine, len(transactions))
	for i, t := range transactions {
		d.Transactions[i] = domain.TransactionLine{
			SalesInvoiceID: t.SalesInvoiceID,
			PostingDate:    t.PostingDate,
			GrandTotal:     t.GrandTotal,
			Customer:       t.Customer,
		}
	}
	return d
}

// ToModelPaymentLines converts the ordered payment reconciliation lines of a
// closing shift to child table rows.
func ToModelPaymentLines(closingShiftID string, lines []domain.PaymentReconciliationLine) []models.PaymentReconciliationLine {
	rows := make([]models.PaymentReconciliationLine, len(lines))
	for i, l := range lines {
		rows[i] = models.PaymentReconciliationLine{
			ClosingShiftID: closingShiftID,
			Idx:            i,
			ModeOfPayment:  l.ModeOfPayment,
			OpeningAmount:  l.OpeningAmount,
			ClosingAmount:  l.ClosingAmount,
			ExpectedAmount: l.ExpectedAmount,
			Difference:     l.Difference,
		}
	}
	return rows
}

// ToModelTaxLines converts the ordered tax lines of a closing shift to child
// table rows.
func ToModelTaxLines(closingShiftID string, lines []domain.TaxLine) []models.TaxLine {
	rows := make([]models.TaxLine, len(lines))
	for i, l := range lines {
		rows[i] = models.TaxLine{
			ClosingShiftID: closingShiftID,
			Idx:            i,
			AccountHead:    l.AccountHead,
			Rate:           l.Rate,
			Amount:         l.Amount,
		}
	}
	return rows
}

// ToModelTransactionLines converts the ordered transaction lines of a closing
// shift to child table rows.
func ToModelTransactionLines(closingShiftID string, lines []domain.TransactionLine) []models.TransactionLine {
	rows := make([]models.TransactionLine, len(lines))
	for i, l := range lines {
		rows[i] = models.TransactionLine{
			ClosingShiftID: closingShiftID,
			Idx:            i,
			SalesInvoiceID: l.SalesInvoiceID,
			PostingDate:    l.PostingDate,
			GrandTotal:     l.GrandTotal,
			Customer:       l.Customer,
		}
	}
	return rows
}

// ToDomainPOSProfile converts a model POSProfile to its domain form.
func ToDomainPOSProfile(m models.POSProfile) domain.POSProfile {
	return domain.POSProfile{
		Name:               m.Name,
		Company:            m.Company,
		CashModeOfPayment:  m.CashModeOfPayment,
		AllowInvoiceDelete: m.AllowInvoiceDelete,
	}
}
