package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	"github.com/retailops/pos_shift_backend/internal/models"
	"github.com/retailops/pos_shift_backend/internal/utils/mapping"
)

// PgxShiftRepository persists opening and closing shifts.
type PgxShiftRepository struct {
	BaseRepository
}

// NewShiftRepository creates a new repository for shift data.
func NewShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepository {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ShiftRepository = (*PgxShiftRepository)(nil)

// SaveOpeningShift inserts an opening shift and its balance rows atomically.
func (r *PgxShiftRepository) SaveOpeningShift(ctx context.Context, shift domain.OpeningShift) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelOpeningShift(shift)
	query := `
		INSERT INTO opening_shifts (
			opening_shift_id, user_id, company, pos_profile, period_start_date,
			status, docstatus, closing_shift_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.OpeningShiftID,
		m.UserID,
		m.Company,
		m.POSProfile,
		m.PeriodStartDate,
		m.Status,
		m.DocStatus,
		m.ClosingShiftID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert opening shift "+m.OpeningShiftID, err)
	}

	batch := &pgx.Batch{}
	balanceQuery := `
		INSERT INTO opening_shift_balances (opening_shift_id, idx, mode_of_payment, amount)
		VALUES ($1, $2, $3, $4);
	`
	for _, row := range mapping.ToModelOpeningBalances(shift.OpeningShiftID, shift.BalanceDetails) {
		batch.Queue(balanceQuery, row.OpeningShiftID, row.Idx, row.ModeOfPayment, row.Amount)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert opening balances for "+m.OpeningShiftID, err)
	}

	return r.Commit(ctx, tx)
}

// FindOpeningShiftByID retrieves an opening shift with its balance details.
func (r *PgxShiftRepository) FindOpeningShiftByID(ctx context.Context, openingShiftID string) (*domain.OpeningShift, error) {
	query := `
		SELECT opening_shift_id, user_id, company, pos_profile, period_start_date,
		       status, docstatus, closing_shift_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM opening_shifts
		WHERE opening_shift_id = $1;
	`
	var m models.OpeningShift
	err := r.Pool.QueryRow(ctx, query, openingShiftID).Scan(
		&m.OpeningShiftID,
		&m.UserID,
		&m.Company,
		&m.POSProfile,
		&m.PeriodStartDate,
		&m.Status,
		&m.DocStatus,
		&m.ClosingShiftID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find opening shift "+openingShiftID, err)
	}

	balances, err := r.findOpeningBalances(ctx, openingShiftID)
	if err != nil {
		return nil, err
	}

	shift := mapping.ToDomainOpeningShift(m, balances)
	return &shift, nil
}

func (r *PgxShiftRepository) findOpeningBalances(ctx context.Context, openingShiftID string) ([]models.OpeningBalance, error) {
	query := `
		SELECT opening_shift_id, idx, mode_of_payment, amount
		FROM opening_shift_balances
		WHERE opening_shift_id = $1
		ORDER BY idx;
	`
	rows, err := r.Pool.Query(ctx, query, openingShiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query opening balances for "+openingShiftID, err)
	}
	defer rows.Close()

	var balances []models.OpeningBalance
	for rows.Next() {
		var b models.OpeningBalance
		if err := rows.Scan(&b.OpeningShiftID, &b.Idx, &b.ModeOfPayment, &b.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan opening balance row", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate opening balance rows", err)
	}
	return balances, nil
}

// FindClosingShiftByID retrieves a closing shift with all its line tables.
func (r *PgxShiftRepository) FindClosingShiftByID(ctx context.Context, closingShiftID string) (*domain.ClosingShift, error) {
	query := `
		SELECT closing_shift_id, opening_shift_id, pos_profile, user_id, company,
		       period_start_date, period_end_date, grand_total, net_total, total_quantity,
		       docstatus, created_at, created_by, last_updated_at, last_updated_by
		FROM closing_shifts
		WHERE closing_shift_id = $1;
	`
	var m models.ClosingShift
	err := r.Pool.QueryRow(ctx, query, closingShiftID).Scan(
		&m.ClosingShiftID,
		&m.OpeningShiftID,
		&m.POSProfile,
		&m.UserID,
		&m.Company,
		&m.PeriodStartDate,
		&m.PeriodEndDate,
		&m.GrandTotal,
		&m.NetTotal,
		&m.TotalQuantity,
		&m.DocStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find closing shift "+closingShiftID, err)
	}

	payments, taxes, transactions, err := r.findClosingShiftLines(ctx, closingShiftID)
	if err != nil {
		return nil, err
	}

	shift := mapping.ToDomainClosingShift(m, payments, taxes, transactions)
	return &shift, nil
}

func (r *PgxShiftRepository) findClosingShiftLines(ctx context.Context, closingShiftID string) ([]models.PaymentReconciliationLine, []models.TaxLine, []models.TransactionLine, error) {
	paymentRows, err := r.Pool.Query(ctx, `
		SELECT mode_of_payment, opening_amount, closing_amount, expected_amount, difference
		FROM closing_shift_payments
		WHERE closing_shift_id = $1
		ORDER BY idx;
	`, closingShiftID)
	if err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to query payment lines for "+closingShiftID, err)
	}
	defer paymentRows.Close()

	var payments []models.PaymentReconciliationLine
	for paymentRows.Next() {
		var p models.PaymentReconciliationLine
		if err := paymentRows.Scan(&p.ModeOfPayment, &p.OpeningAmount, &p.ClosingAmount, &p.ExpectedAmount, &p.Difference); err != nil {
			return nil, nil, nil, apperrors.NewAppError(500, "failed to scan payment line", err)
		}
		payments = append(payments, p)
	}
	if err := paymentRows.Err(); err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to iterate payment lines", err)
	}

	taxRows, err := r.Pool.Query(ctx, `
		SELECT account_head, rate, amount
		FROM closing_shift_taxes
		WHERE closing_shift_id = $1
		ORDER BY idx;
	`, closingShiftID)
	if err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to query tax lines for "+closingShiftID, err)
	}
	defer taxRows.Close()

	var taxes []models.TaxLine
	for taxRows.Next() {
		var t models.TaxLine
		if err := taxRows.Scan(&t.AccountHead, &t.Rate, &t.Amount); err != nil {
			return nil, nil, nil, apperrors.NewAppError(500, "failed to scan tax line", err)
		}
		taxes = append(taxes, t)
	}
	if err := taxRows.Err(); err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to iterate tax lines", err)
	}

	txnRows, err := r.Pool.Query(ctx, `
		SELECT sales_invoice_id, posting_date, grand_total, customer
		FROM closing_shift_transactions
		WHERE closing_shift_id = $1
		ORDER BY idx;
	`, closingShiftID)
	if err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to query transaction lines for "+closingShiftID, err)
	}
	defer txnRows.Close()

	var transactions []models.TransactionLine
	for txnRows.Next() {
		var t models.TransactionLine
		if err := txnRows.Scan(&t.SalesInvoiceID, &t.PostingDate, &t.GrandTotal, &t.Customer); err != nil {
			return nil, nil, nil, apperrors.NewAppError(500, "failed to scan transaction line", err)
		}
		transactions = append(transactions, t)
	}
	if err := txnRows.Err(); err != nil {
		return nil, nil, nil, apperrors.NewAppError(500, "failed to iterate transaction lines", err)
	}

	return payments, taxes, transactions, nil
}

// HasOverlappingClosingShift reports whether another submitted closing shift
// for the user has a period boundary within [start, end], inclusive.
func (r *PgxShiftRepository) HasOverlappingClosingShift(ctx context.Context, userID string, start, end time.Time, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM closing_shifts
			WHERE user_id = $1
			  AND docstatus = 1
			  AND closing_shift_id <> $4
			  AND (period_start_date BETWEEN $2 AND $3
			    OR period_end_date BETWEEN $2 AND $3)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, start, end, excludeID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check closing shift overlap for user "+userID, err)
	}
	return exists, nil
}

// SubmitClosingShift persists the closing shift as Submitted and closes its
// opening shift in one transaction. A per-user advisory lock serializes
// concurrent submissions so the overlap re-check cannot race.
func (r *PgxShiftRepository) SubmitClosingShift(ctx context.Context, closing domain.ClosingShift) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock is transaction scoped; released automatically on commit/rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, closing.User); err != nil {
		return apperrors.NewAppError(500, "failed to acquire submission lock for user "+closing.User, err)
	}

	var overlaps bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM closing_shifts
			WHERE user_id = $1
			  AND docstatus = 1
			  AND closing_shift_id <> $4
			  AND (period_start_date BETWEEN $2 AND $3
			    OR period_end_date BETWEEN $2 AND $3)
		);
	`, closing.User, closing.PeriodStartDate, closing.PeriodEndDate, closing.ClosingShiftID).Scan(&overlaps)
	if err != nil {
		return apperrors.NewAppError(500, "failed to re-check closing shift overlap", err)
	}
	if overlaps {
		return &apperrors.ShiftOverlapError{User: closing.User}
	}

	m := mapping.ToModelClosingShift(closing)
	headerQuery := `
		INSERT INTO closing_shifts (
			closing_shift_id, opening_shift_id, pos_profile, user_id, company,
			period_start_date, period_end_date, grand_total, net_total, total_quantity,
			docstatus, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.ClosingShiftID,
		m.OpeningShiftID,
		m.POSProfile,
		m.UserID,
		m.Company,
		m.PeriodStartDate,
		m.PeriodEndDate,
		m.GrandTotal,
		m.NetTotal,
		m.TotalQuantity,
		m.DocStatus,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert closing shift "+m.ClosingShiftID, err)
	}

	batch := &pgx.Batch{}
	for _, row := range mapping.ToModelPaymentLines(closing.ClosingShiftID, closing.PaymentReconciliation) {
		batch.Queue(`
			INSERT INTO closing_shift_payments (closing_shift_id, idx, mode_of_payment, opening_amount, closing_amount, expected_amount, difference)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, row.ClosingShiftID, row.Idx, row.ModeOfPayment, row.OpeningAmount, row.ClosingAmount, row.ExpectedAmount, row.Difference)
	}
	for _, row := range mapping.ToModelTaxLines(closing.ClosingShiftID, closing.Taxes) {
		batch.Queue(`
			INSERT INTO closing_shift_taxes (closing_shift_id, idx, account_head, rate, amount)
			VALUES ($1, $2, $3, $4, $5);
		`, row.ClosingShiftID, row.Idx, row.AccountHead, row.Rate, row.Amount)
	}
	for _, row := range mapping.ToModelTransactionLines(closing.ClosingShiftID, closing.Transactions) {
		batch.Queue(`
			INSERT INTO closing_shift_transactions (closing_shift_id, idx, sales_invoice_id, posting_date, grand_total, customer)
			VALUES ($1, $2, $3, $4, $5, $6);
		`, row.ClosingShiftID, row.Idx, row.SalesInvoiceID, row.PostingDate, row.GrandTotal, row.Customer)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert closing shift lines for "+m.ClosingShiftID, err)
	}

	// Closing the opening shift must succeed or the whole submission fails.
	tag, err := tx.Exec(ctx, `
		UPDATE opening_shifts
		SET closing_shift_id = $1,
		    status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE opening_shift_id = $5;
	`, m.ClosingShiftID, models.ShiftClosed, m.LastUpdatedAt, m.LastUpdatedBy, m.OpeningShiftID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close opening shift "+m.OpeningShiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "opening shift "+m.OpeningShiftID+" not found during submission", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
