package services

import (
	"context"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/retailops/pos_shift_backend/internal/dto"
)

// OpeningShiftSvcFacade defines operations on opening shifts.
type OpeningShiftSvcFacade interface {
	// CreateOpeningShift starts a cashier session with declared balances.
	CreateOpeningShift(ctx context.Context, req dto.CreateOpeningShiftRequest, creatorUserID string) (*domain.OpeningShift, error)

	// GetOpeningShiftByID retrieves an opening shift with its balance details.
	GetOpeningShiftByID(ctx context.Context, openingShiftID string) (*domain.OpeningShift, error)
}

// ClosingShiftSvcFacade defines the closing shift reconciliation workflow.
type ClosingShiftSvcFacade interface {
	// BuildClosingDraft aggregates the shift's invoices into an unpersisted
	// closing shift draft. Printed draft invoices are force-submitted first.
	BuildClosingDraft(ctx context.Context, opening dto.OpeningShiftPayload) (*domain.ClosingShift, error)

	// SubmitClosingShift validates, persists and submits a closing shift,
	// returning its ID. Runs with service-level authority.
	SubmitClosingShift(ctx context.Context, payload dto.ClosingShiftPayload, submitterUserID string) (string, error)

	// GetClosingShiftByID retrieves a closing shift with all its lines.
	GetClosingShiftByID(ctx context.Context, closingShiftID string) (*domain.ClosingShift, error)
}

// InvoiceSvcFacade defines operations on POS sales invoices. The userID is
// recorded as the actor on any forced submission.
type InvoiceSvcFacade interface {
	// GetPOSInvoices force-submits printed draft invoices for the shift and
	// returns all of its submitted invoices.
	GetPOSInvoices(ctx context.Context, openingShiftID string, userID string) ([]domain.SalesInvoice, error)

	// SubmitPrintedInvoices force-submits printed draft invoices only.
	SubmitPrintedInvoices(ctx context.Context, openingShiftID string, userID string) error

	// DeleteDraftInvoices removes unprinted draft invoices of the shift when
	// the POS profile allows it.
	DeleteDraftInvoices(ctx context.Context, openingShiftID string) (int64, error)
}

// ReportingSvcFacade defines the read-only shift reporting queries.
type ReportingSvcFacade interface {
	// GetShiftDetails returns the aggregated shift summary together with the
	// declared opening balances. Display only; persisted state is untouched.
	GetShiftDetails(ctx context.Context, openingShiftID string) (*domain.ShiftSummary, []domain.OpeningBalance, error)
}
