package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	"github.com/retailops/pos_shift_backend/internal/models"
	"github.com/retailops/pos_shift_backend/internal/utils/mapping"
)

// PgxInvoiceRepository persists POS sales invoices.
type PgxInvoiceRepository struct {
	BaseRepository
}

// NewInvoiceRepository creates a new repository for sales invoice data.
func NewInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

// FindSubmittedByOpeningShift returns submitted invoices for the shift with
// all child rows populated, ordered by invoice ID for reproducible
// aggregation output.
func (r *PgxInvoiceRepository) FindSubmittedByOpeningShift(ctx context.Context, openingShiftID string) ([]domain.SalesInvoice, error) {
	query := `
		SELECT invoice_id, opening_shift_id, customer, posting_date,
		       grand_total, net_total, total_qty, change_amount,
		       mode_of_payment, is_return, is_printed, docstatus,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sales_invoices
		WHERE opening_shift_id = $1 AND docstatus = 1
		ORDER BY invoice_id;
	`
	rows, err := r.Pool.Query(ctx, query, openingShiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices for shift "+openingShiftID, err)
	}
	defer rows.Close()

	var headers []models.SalesInvoice
	for rows.Next() {
		var m models.SalesInvoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.OpeningShiftID,
			&m.Customer,
			&m.PostingDate,
			&m.GrandTotal,
			&m.NetTotal,
			&m.TotalQty,
			&m.ChangeAmount,
			&m.ModeOfPayment,
			&m.IsReturn,
			&m.IsPrinted,
			&m.DocStatus,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice rows", err)
	}
	if len(headers) == 0 {
		return []domain.SalesInvoice{}, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.InvoiceID
	}

	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	taxes, err := r.findTaxes(ctx, ids)
	if err != nil {
		return nil, err
	}
	payments, err := r.findPayments(ctx, ids)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.SalesInvoice, len(headers))
	for i, h := range headers {
		invoices[i] = mapping.ToDomainSalesInvoice(h, items[h.InvoiceID], taxes[h.InvoiceID], payments[h.InvoiceID])
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) findItems(ctx context.Context, invoiceIDs []string) (map[string][]models.SalesInvoiceItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT invoice_id, idx, item_code, qty, net_amount, sales_order_id
		FROM sales_invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, idx;
	`, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice items", err)
	}
	defer rows.Close()

	result := make(map[string][]models.SalesInvoiceItem)
	for rows.Next() {
		var it models.SalesInvoiceItem
		if err := rows.Scan(&it.InvoiceID, &it.Idx, &it.ItemCode, &it.Qty, &it.NetAmount, &it.SalesOrderID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		result[it.InvoiceID] = append(result[it.InvoiceID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice item rows", err)
	}
	return result, nil
}

func (r *PgxInvoiceRepository) findTaxes(ctx context.Context, invoiceIDs []string) (map[string][]models.SalesInvoiceTax, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT invoice_id, idx, account_head, rate, tax_amount
		FROM sales_invoice_taxes
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, idx;
	`, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice taxes", err)
	}
	defer rows.Close()

	result := make(map[string][]models.SalesInvoiceTax)
	for rows.Next() {
		var t models.SalesInvoiceTax
		if err := rows.Scan(&t.InvoiceID, &t.Idx, &t.AccountHead, &t.Rate, &t.TaxAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice tax row", err)
		}
		result[t.InvoiceID] = append(result[t.InvoiceID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice tax rows", err)
	}
	return result, nil
}

func (r *PgxInvoiceRepository) findPayments(ctx context.Context, invoiceIDs []string) (map[string][]models.SalesInvoicePayment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT invoice_id, idx, mode_of_payment, amount
		FROM sales_invoice_payments
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, idx;
	`, invoiceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice payments", err)
	}
	defer rows.Close()

	result := make(map[string][]models.SalesInvoicePayment)
	for rows.Next() {
		var p models.SalesInvoicePayment
		if err := rows.Scan(&p.InvoiceID, &p.Idx, &p.ModeOfPayment, &p.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice payment row", err)
		}
		result[p.InvoiceID] = append(result[p.InvoiceID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice payment rows", err)
	}
	return result, nil
}

// FindPrintedDraftIDs returns draft invoices already marked printed, ordered
// by invoice ID.
func (r *PgxInvoiceRepository) FindPrintedDraftIDs(ctx context.Context, openingShiftID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT invoice_id
		FROM sales_invoices
		WHERE opening_shift_id = $1 AND docstatus = 0 AND is_printed = TRUE
		ORDER BY invoice_id;
	`, openingShiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query printed draft invoices for shift "+openingShiftID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice ids", err)
	}
	return ids, nil
}

// SubmitInvoice transitions a draft invoice to Submitted. The docstatus guard
// makes resubmission a no-op, so forced submission stays idempotent.
func (r *PgxInvoiceRepository) SubmitInvoice(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	_, err := r.Pool.Exec(ctx, `
		UPDATE sales_invoices
		SET docstatus = 1,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE invoice_id = $1 AND docstatus = 0;
	`, invoiceID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to submit invoice "+invoiceID, err)
	}
	return nil
}

// DeleteUnprintedDrafts removes draft invoices of the shift that were never
// printed, children first.
func (r *PgxInvoiceRepository) DeleteUnprintedDrafts(ctx context.Context, openingShiftID string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	for _, childTable := range []string{"sales_invoice_items", "sales_invoice_taxes", "sales_invoice_payments"} {
		_, err := tx.Exec(ctx, `
			DELETE FROM `+childTable+`
			WHERE invoice_id IN (
				SELECT invoice_id FROM sales_invoices
				WHERE opening_shift_id = $1 AND docstatus = 0 AND is_printed = FALSE
			);
		`, openingShiftID)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to delete draft invoice children from "+childTable, err)
		}
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM sales_invoices
		WHERE opening_shift_id = $1 AND docstatus = 0 AND is_printed = FALSE;
	`, openingShiftID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete draft invoices for shift "+openingShiftID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
