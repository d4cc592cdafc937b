package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	"github.com/retailops/pos_shift_backend/internal/models"
	"github.com/retailops/pos_shift_backend/internal/utils/mapping"
)

// PgxSettingsRepository reads system and profile level settings.
type PgxSettingsRepository struct {
	BaseRepository
}

// NewSettingsRepository creates a new repository for settings data.
func NewSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetCurrencyPrecision returns the system-wide currency precision, or
// found=false when no value is configured.
func (r *PgxSettingsRepository) GetCurrencyPrecision(ctx context.Context) (int32, bool, error) {
	var value string
	err := r.Pool.QueryRow(ctx, `
		SELECT value FROM system_settings WHERE key = 'currency_precision';
	`).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, apperrors.NewAppError(500, "failed to read currency precision setting", err)
	}

	precision, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, false, apperrors.NewAppError(500, "invalid currency precision setting value "+value, err)
	}
	return int32(precision), true, nil
}

// GetCompanyDefaultCurrency returns the default currency of a company.
func (r *PgxSettingsRepository) GetCompanyDefaultCurrency(ctx context.Context, company string) (string, error) {
	var currency string
	err := r.Pool.QueryRow(ctx, `
		SELECT default_currency FROM companies WHERE name = $1;
	`, company).Scan(&currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to read default currency for company "+company, err)
	}
	return currency, nil
}

// FindPOSProfile retrieves a POS profile by name.
func (r *PgxSettingsRepository) FindPOSProfile(ctx context.Context, name string) (*domain.POSProfile, error) {
	var m models.POSProfile
	err := r.Pool.QueryRow(ctx, `
		SELECT name, company, cash_mode_of_payment, allow_invoice_delete
		FROM pos_profiles
		WHERE name = $1;
	`, name).Scan(&m.Name, &m.Company, &m.CashModeOfPayment, &m.AllowInvoiceDelete)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find POS profile "+name, err)
	}
	profile := mapping.ToDomainPOSProfile(m)
	return &profile, nil
}
