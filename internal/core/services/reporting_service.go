package services

import (
	"context"
	"fmt"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
)

// ReportingService implements the read-only shift reporting queries.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	shiftRepo     portsrepo.ShiftRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, shiftRepo portsrepo.ShiftRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo, shiftRepo: shiftRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetShiftDetails returns the aggregated summary for the shift together with
// its declared opening balances. Purely a read; nothing is persisted.
func (s *ReportingService) GetShiftDetails(ctx context.Context, openingShiftID string) (*domain.ShiftSummary, []domain.OpeningBalance, error) {
	summary, err := s.reportingRepo.GetShiftSummary(ctx, openingShiftID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate shift summary: %w", err)
	}

	opening, err := s.shiftRepo.FindOpeningShiftByID(ctx, openingShiftID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch opening shift %s: %w", openingShiftID, err)
	}
	return summary, opening.BalanceDetails, nil
}
