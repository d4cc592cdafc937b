package repositories

import (
	"context"
	"time"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
)

// ShiftRepository defines persistence operations for opening and closing
// shifts. Submitting a closing shift implies updating its opening shift
// atomically.
type ShiftRepository interface {
	SaveOpeningShift(ctx context.Context, shift domain.OpeningShift) error
	FindOpeningShiftByID(ctx context.Context, openingShiftID string) (*domain.OpeningShift, error)
	FindClosingShiftByID(ctx context.Context, closingShiftID string) (*domain.ClosingShift, error)

	// HasOverlappingClosingShift reports whether another submitted closing
	// shift for the user has a period boundary inside [start, end], boundaries
	// inclusive. excludeID is skipped so a record never overlaps itself.
	HasOverlappingClosingShift(ctx context.Context, userID string, start, end time.Time, excludeID string) (bool, error)

	// SubmitClosingShift persists the closing shift as Submitted and closes
	// its opening shift in one database transaction, serialized per user.
	SubmitClosingShift(ctx context.Context, closing domain.ClosingShift) error
}

// InvoiceRepository defines persistence operations for POS sales invoices.
type InvoiceRepository interface {
	// FindSubmittedByOpeningShift returns submitted invoices for the shift
	// with items, taxes and payments populated, ordered by invoice ID.
	FindSubmittedByOpeningShift(ctx context.Context, openingShiftID string) ([]domain.SalesInvoice, error)

	// FindPrintedDraftIDs returns IDs of invoices still in draft but already
	// marked printed, ordered by invoice ID.
	FindPrintedDraftIDs(ctx context.Context, openingShiftID string) ([]string, error)

	// SubmitInvoice transitions a draft invoice to Submitted. Submitting an
	// already-submitted invoice is a no-op.
	SubmitInvoice(ctx context.Context, invoiceID string, userID string, now time.Time) error

	// DeleteUnprintedDrafts removes draft invoices of the shift that were
	// never printed, returning the number deleted.
	DeleteUnprintedDrafts(ctx context.Context, openingShiftID string) (int64, error)
}

// ReportingRepository defines the read-only aggregate queries.
type ReportingRepository interface {
	// GetShiftSummary aggregates sales, returns and collections for an
	// opening shift. Shifts without linked orders yield zero-valued rows.
	GetShiftSummary(ctx context.Context, openingShiftID string) (*domain.ShiftSummary, error)
}

// SettingsRepository defines lookups of system and profile level settings.
type SettingsRepository interface {
	// GetCurrencyPrecision returns the configured currency precision, or
	// found=false when no system-level value is set.
	GetCurrencyPrecision(ctx context.Context) (precision int32, found bool, err error)

	GetCompanyDefaultCurrency(ctx context.Context, company string) (string, error)

	FindPOSProfile(ctx context.Context, name string) (*domain.POSProfile, error)
}

// UserRepository defines persistence operations for users and their POS
// profile memberships.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListCashiers returns the user IDs assigned to a POS profile.
	ListCashiers(ctx context.Context, posProfile string) ([]string, error)
}
