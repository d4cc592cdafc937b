package services

import (
	"context"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/retailops/pos_shift_backend/internal/dto"
)

// UserSvcFacade defines user and cashier operations.
type UserSvcFacade interface {
	// GetCashiers returns the user IDs assigned to a POS profile, for the
	// cashier search field on the front end.
	GetCashiers(ctx context.Context, posProfile string) ([]string, error)

	// Authenticate verifies the credentials and returns the active user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// RegisterUser creates a new active user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
