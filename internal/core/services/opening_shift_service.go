package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/middleware"
)

// OpeningShiftService implements opening shift session management.
type OpeningShiftService struct {
	shiftRepo portsrepo.ShiftRepository
}

// NewOpeningShiftService creates a new OpeningShiftService.
func NewOpeningShiftService(shiftRepo portsrepo.ShiftRepository) *OpeningShiftService {
	return &OpeningShiftService{shiftRepo: shiftRepo}
}

var _ portssvc.OpeningShiftSvcFacade = (*OpeningShiftService)(nil)

// CreateOpeningShift starts a cashier session. The shift opens in status Open
// and is submitted immediately; it only mutates again when a closing shift is
// filed against it.
func (s *OpeningShiftService) CreateOpeningShift(ctx context.Context, req dto.CreateOpeningShiftRequest, creatorUserID string) (*domain.OpeningShift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	start := now
	if req.PeriodStartDate != nil {
		start = *req.PeriodStartDate
	}

	shift := domain.OpeningShift{
		OpeningShiftID:  uuid.NewString(),
		User:            creatorUserID,
		Company:         req.Company,
		POSProfile:      req.POSProfile,
		PeriodStartDate: start,
		DocStatus:       domain.Submitted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	shift.BalanceDetails = make([]domain.OpeningBalance, len(req.BalanceDetails))
	for i, b := range req.BalanceDetails {
		shift.BalanceDetails[i] = domain.OpeningBalance{ModeOfPayment: b.ModeOfPayment, Amount: b.Amount}
	}
	shift.SetStatus()

	if err := s.shiftRepo.SaveOpeningShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to save opening shift: %w", err)
	}

	logger.Info("Created opening shift",
		slog.String("opening_shift_id", shift.OpeningShiftID),
		slog.String("user", shift.User),
		slog.String("pos_profile", shift.POSProfile))
	return &shift, nil
}

// GetOpeningShiftByID retrieves an opening shift with its balance details.
func (s *OpeningShiftService) GetOpeningShiftByID(ctx context.Context, openingShiftID string) (*domain.OpeningShift, error) {
	shift, err := s.shiftRepo.FindOpeningShiftByID(ctx, openingShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opening shift %s: %w", openingShiftID, err)
	}
	return shift, nil
}
