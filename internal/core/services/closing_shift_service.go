package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/middleware"
	"github.com/retailops/pos_shift_backend/internal/utils/poscalc"
)

// ClosingShiftService implements the closing shift reconciliation workflow:
// draft aggregation, validation and submission.
type ClosingShiftService struct {
	shiftRepo  portsrepo.ShiftRepository
	invoiceSvc portssvc.InvoiceSvcFacade
	settings   SettingsProvider
}

// NewClosingShiftService creates a new ClosingShiftService.
func NewClosingShiftService(shiftRepo portsrepo.ShiftRepository, invoiceSvc portssvc.InvoiceSvcFacade, settings SettingsProvider) *ClosingShiftService {
	return &ClosingShiftService{
		shiftRepo:  shiftRepo,
		invoiceSvc: invoiceSvc,
		settings:   settings,
	}
}

var _ portssvc.ClosingShiftSvcFacade = (*ClosingShiftService)(nil)

// taxKey identifies a merged tax line. The rate is keyed by its canonical
// string form since decimal.Decimal is not comparable.
type taxKey struct {
	accountHead string
	rate        string
}

// BuildClosingDraft aggregates the opening shift's submitted invoices into an
// unpersisted closing shift draft. Printed draft invoices are force-submitted
// first; any submission failure aborts the aggregation.
func (s *ClosingShiftService) BuildClosingDraft(ctx context.Context, opening dto.OpeningShiftPayload) (*domain.ClosingShift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoices, err := s.invoiceSvc.GetPOSInvoices(ctx, opening.OpeningShiftID, opening.User)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices for opening shift %s: %w", opening.OpeningShiftID, err)
	}

	cashMode := s.settings.CashModeOfPayment(ctx, opening.POSProfile)

	draft := &domain.ClosingShift{
		OpeningShiftID:  opening.OpeningShiftID,
		POSProfile:      opening.POSProfile,
		User:            opening.User,
		Company:         opening.Company,
		PeriodStartDate: opening.PeriodStartDate,
		PeriodEndDate:   time.Now().UTC(),
		DocStatus:       domain.Draft,
	}

	// One payment line per declared opening balance; the balance seeds both
	// the opening and the expected amount.
	paymentIdx := make(map[string]int, len(opening.BalanceDetails))
	for _, b := range opening.BalanceDetails {
		paymentIdx[b.ModeOfPayment] = len(draft.PaymentReconciliation)
		draft.PaymentReconciliation = append(draft.PaymentReconciliation, domain.PaymentReconciliationLine{
			ModeOfPayment:  b.ModeOfPayment,
			OpeningAmount:  b.Amount,
			ExpectedAmount: b.Amount,
		})
	}

	taxIdx := make(map[taxKey]int)

	for _, inv := range invoices {
		draft.GrandTotal = draft.GrandTotal.Add(inv.GrandTotal)
		draft.NetTotal = draft.NetTotal.Add(inv.NetTotal)
		draft.TotalQuantity = draft.TotalQuantity.Add(inv.TotalQty)

		draft.Transactions = append(draft.Transactions, domain.TransactionLine{
			SalesInvoiceID: inv.InvoiceID,
			PostingDate:    inv.PostingDate,
			GrandTotal:     inv.GrandTotal,
			Customer:       inv.Customer,
		})

		for _, tax := range inv.Taxes {
			key := taxKey{accountHead: tax.AccountHead, rate: tax.Rate.String()}
			if i, ok := taxIdx[key]; ok {
				draft.Taxes[i].Amount = draft.Taxes[i].Amount.Add(tax.TaxAmount)
				continue
			}
			taxIdx[key] = len(draft.Taxes)
			draft.Taxes = append(draft.Taxes, domain.TaxLine{
				AccountHead: tax.AccountHead,
				Rate:        tax.Rate,
				Amount:      tax.TaxAmount,
			})
		}

		for _, pay := range inv.Payments {
			if i, ok := paymentIdx[pay.ModeOfPayment]; ok {
				// The change given back is deducted from the cash line only
				// when one exists.
				collected := pay.Amount
				if pay.ModeOfPayment == cashMode {
					collected = collected.Sub(inv.ChangeAmount)
				}
				draft.PaymentReconciliation[i].ExpectedAmount = draft.PaymentReconciliation[i].ExpectedAmount.Add(collected)
				continue
			}
			paymentIdx[pay.ModeOfPayment] = len(draft.PaymentReconciliation)
			draft.PaymentReconciliation = append(draft.PaymentReconciliation, domain.PaymentReconciliationLine{
				ModeOfPayment:  pay.ModeOfPayment,
				ExpectedAmount: pay.Amount,
			})
		}
	}

	poscalc.ComputeDifferences(draft.PaymentReconciliation, s.settings.CurrencyPrecision(ctx))

	logger.Info("Built closing shift draft",
		slog.String("opening_shift_id", opening.OpeningShiftID),
		slog.Int("invoice_count", len(invoices)))
	return draft, nil
}

// validate enforces the closing shift invariants: no submitted closing shift
// of the same user may overlap the period, and the referenced opening shift
// must still be Open.
func (s *ClosingShiftService) validate(ctx context.Context, closing *domain.ClosingShift) error {
	overlaps, err := s.shiftRepo.HasOverlappingClosingShift(ctx, closing.User, closing.PeriodStartDate, closing.PeriodEndDate, closing.ClosingShiftID)
	if err != nil {
		return fmt.Errorf("failed to check for overlapping closing shifts: %w", err)
	}
	if overlaps {
		return &apperrors.ShiftOverlapError{User: closing.User}
	}

	opening, err := s.shiftRepo.FindOpeningShiftByID(ctx, closing.OpeningShiftID)
	if err != nil {
		return fmt.Errorf("failed to fetch opening shift %s: %w", closing.OpeningShiftID, err)
	}
	if opening.Status != domain.ShiftOpen {
		return &apperrors.OpeningShiftNotOpenError{OpeningShiftID: opening.OpeningShiftID}
	}
	return nil
}

// SubmitClosingShift validates the payload, recomputes the payment line
// differences and persists the closing shift as Submitted, closing its
// opening shift in the same transaction. Returns the new closing shift ID.
func (s *ClosingShiftService) SubmitClosingShift(ctx context.Context, payload dto.ClosingShiftPayload, submitterUserID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	closing := payload.ToDomainClosingShift()
	closing.ClosingShiftID = uuid.NewString()
	closing.DocStatus = domain.Submitted

	now := time.Now().UTC()
	closing.CreatedAt = now
	closing.CreatedBy = submitterUserID
	closing.LastUpdatedAt = now
	closing.LastUpdatedBy = submitterUserID

	if err := s.validate(ctx, &closing); err != nil {
		return "", err
	}

	// Differences are never trusted from the client.
	poscalc.ComputeDifferences(closing.PaymentReconciliation, s.settings.CurrencyPrecision(ctx))

	if err := s.shiftRepo.SubmitClosingShift(ctx, closing); err != nil {
		return "", fmt.Errorf("failed to submit closing shift: %w", err)
	}

	logger.Info("Submitted closing shift",
		slog.String("closing_shift_id", closing.ClosingShiftID),
		slog.String("opening_shift_id", closing.OpeningShiftID),
		slog.String("user", closing.User))
	return closing.ClosingShiftID, nil
}

// GetClosingShiftByID retrieves a closing shift with all of its lines.
func (s *ClosingShiftService) GetClosingShiftByID(ctx context.Context, closingShiftID string) (*domain.ClosingShift, error) {
	closing, err := s.shiftRepo.FindClosingShiftByID(ctx, closingShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch closing shift %s: %w", closingShiftID, err)
	}
	return closing, nil
}
