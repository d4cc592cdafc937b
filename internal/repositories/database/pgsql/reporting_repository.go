package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new reporting repository
func NewReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

// GetShiftSummary aggregates sales, returns and collections for an opening
// shift through the shift -> sales order -> invoice item -> invoice join.
// COALESCE keeps the aggregates zero-valued when no orders are linked.
func (r *reportingRepository) GetShiftSummary(ctx context.Context, openingShiftID string) (*domain.ShiftSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN si.is_return = FALSE THEN sii.net_amount ELSE 0 END), 0) AS sales_amount,
			COALESCE(SUM(CASE WHEN si.is_return = TRUE THEN sii.net_amount ELSE 0 END), 0) AS return_amount,
			COALESCE(SUM(CASE WHEN si.mode_of_payment = 'Cash' THEN si.net_total ELSE 0 END), 0) AS cash_collected,
			COALESCE(SUM(CASE WHEN si.mode_of_payment = 'Credit' THEN si.net_total ELSE 0 END), 0) AS credit_collected,
			COALESCE(SUM(si.net_total), 0) AS total_sales_amount
		FROM opening_shifts os
		LEFT JOIN sales_orders so ON so.opening_shift_id = os.opening_shift_id
		LEFT JOIN sales_invoice_items sii ON sii.sales_order_id = so.sales_order_id
		LEFT JOIN sales_invoices si ON si.invoice_id = sii.invoice_id
		WHERE os.opening_shift_id = $1;
	`

	var summary domain.ShiftSummary
	err := r.Pool.QueryRow(ctx, query, openingShiftID).Scan(
		&summary.SalesAmount,
		&summary.ReturnAmount,
		&summary.CashCollected,
		&summary.CreditCollected,
		&summary.TotalSalesAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying shift summary: %w", err)
	}

	return &summary, nil
}
