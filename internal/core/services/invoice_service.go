package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/middleware"
)

// InvoiceService implements POS sales invoice operations around the shift
// closing workflow.
type InvoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepository
	shiftRepo    portsrepo.ShiftRepository
	settingsRepo portsrepo.SettingsRepository
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, shiftRepo portsrepo.ShiftRepository, settingsRepo portsrepo.SettingsRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		shiftRepo:    shiftRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

// SubmitPrintedInvoices force-submits every printed invoice of the shift that
// is still in draft. The operation is idempotent; the first failed submission
// aborts the run so aggregation never proceeds over a partial state.
func (s *InvoiceService) SubmitPrintedInvoices(ctx context.Context, openingShiftID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	ids, err := s.invoiceRepo.FindPrintedDraftIDs(ctx, openingShiftID)
	if err != nil {
		return fmt.Errorf("failed to list printed draft invoices: %w", err)
	}

	now := time.Now().UTC()
	for _, id := range ids {
		if err := s.invoiceRepo.SubmitInvoice(ctx, id, userID, now); err != nil {
			return fmt.Errorf("failed to submit printed invoice %s: %w", id, err)
		}
	}

	if len(ids) > 0 {
		logger.Info("Force-submitted printed draft invoices",
			slog.String("opening_shift_id", openingShiftID),
			slog.Int("count", len(ids)))
	}
	return nil
}

// GetPOSInvoices force-submits printed draft invoices for the shift and then
// returns all of its submitted invoices with lines populated.
func (s *InvoiceService) GetPOSInvoices(ctx context.Context, openingShiftID string, userID string) ([]domain.SalesInvoice, error) {
	if err := s.SubmitPrintedInvoices(ctx, openingShiftID, userID); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindSubmittedByOpeningShift(ctx, openingShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submitted invoices: %w", err)
	}
	return invoices, nil
}

// DeleteDraftInvoices removes the shift's unprinted draft invoices, provided
// the shift's POS profile allows invoice deletion.
func (s *InvoiceService) DeleteDraftInvoices(ctx context.Context, openingShiftID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	opening, err := s.shiftRepo.FindOpeningShiftByID(ctx, openingShiftID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch opening shift %s: %w", openingShiftID, err)
	}

	profile, err := s.settingsRepo.FindPOSProfile(ctx, opening.POSProfile)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch POS profile %s: %w", opening.POSProfile, err)
	}
	if !profile.AllowInvoiceDelete {
		return 0, fmt.Errorf("POS profile %s does not allow invoice deletion: %w", profile.Name, apperrors.ErrForbidden)
	}

	deleted, err := s.invoiceRepo.DeleteUnprintedDrafts(ctx, openingShiftID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete draft invoices: %w", err)
	}

	logger.Info("Deleted unprinted draft invoices",
		slog.String("opening_shift_id", openingShiftID),
		slog.Int64("count", deleted))
	return deleted, nil
}
