package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/retailops/pos_shift_backend/internal/apperrors"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	"github.com/retailops/pos_shift_backend/internal/middleware"
	"github.com/retailops/pos_shift_backend/internal/platform/cache"
	"github.com/retailops/pos_shift_backend/internal/utils/poscalc"
)

// SettingsProvider exposes the cached settings lookups the shift workflow
// depends on.
type SettingsProvider interface {
	// CurrencyPrecision returns the configured currency precision, falling
	// back to the default when no system-level value exists.
	CurrencyPrecision(ctx context.Context) int32

	// CashModeOfPayment returns the cash-equivalent mode of payment for a POS
	// profile, falling back to the configured default. Comparison against it
	// is case-sensitive.
	CashModeOfPayment(ctx context.Context, posProfile string) string

	// DefaultCurrency returns the default currency of a company.
	DefaultCurrency(ctx context.Context, company string) (string, error)
}

// settingsService reads settings through a cache-aside layer so repeated
// lookups on the closing path stay off the database.
type settingsService struct {
	settingsRepo    portsrepo.SettingsRepository
	cache           cache.SettingsCache
	cacheTTL        time.Duration
	defaultCashMode string
}

// NewSettingsService creates a new SettingsProvider.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, settingsCache cache.SettingsCache, cacheTTL time.Duration, defaultCashMode string) SettingsProvider {
	return &settingsService{
		settingsRepo:    settingsRepo,
		cache:           settingsCache,
		cacheTTL:        cacheTTL,
		defaultCashMode: defaultCashMode,
	}
}

var _ SettingsProvider = (*settingsService)(nil)

const (
	currencyPrecisionKey  = "settings:currency_precision"
	cashModeKeyPrefix     = "pos_profile:cash_mode:"
	defaultCurrencyPrefix = "company:default_currency:"
)

func (s *settingsService) cachedLookup(ctx context.Context, key string, fetch func(context.Context) (string, error)) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if value, found, err := s.cache.Get(ctx, key); err == nil && found {
		return value, nil
	} else if err != nil {
		// A broken cache must not break the lookup.
		logger.Warn("Settings cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	value, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		logger.Warn("Settings cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return value, nil
}

// CurrencyPrecision returns the system currency precision, defaulting when
// unset or unreadable.
func (s *settingsService) CurrencyPrecision(ctx context.Context) int32 {
	value, err := s.cachedLookup(ctx, currencyPrecisionKey, func(ctx context.Context) (string, error) {
		precision, found, err := s.settingsRepo.GetCurrencyPrecision(ctx)
		if err != nil {
			return "", err
		}
		if !found {
			return strconv.Itoa(int(poscalc.DefaultCurrencyPrecision)), nil
		}
		return strconv.Itoa(int(precision)), nil
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Currency precision lookup failed, using default", slog.String("error", err.Error()))
		return poscalc.DefaultCurrencyPrecision
	}

	precision, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return poscalc.DefaultCurrencyPrecision
	}
	return int32(precision)
}

// CashModeOfPayment returns the POS profile's configured cash mode, or the
// default when the profile has none (or does not exist).
func (s *settingsService) CashModeOfPayment(ctx context.Context, posProfile string) string {
	if posProfile == "" {
		return s.defaultCashMode
	}
	value, err := s.cachedLookup(ctx, cashModeKeyPrefix+posProfile, func(ctx context.Context) (string, error) {
		profile, err := s.settingsRepo.FindPOSProfile(ctx, posProfile)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", nil
			}
			return "", err
		}
		return profile.CashModeOfPayment, nil
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cash mode lookup failed, using default", slog.String("pos_profile", posProfile), slog.String("error", err.Error()))
		return s.defaultCashMode
	}
	if value == "" {
		return s.defaultCashMode
	}
	return value
}

// DefaultCurrency returns the company's default currency.
func (s *settingsService) DefaultCurrency(ctx context.Context, company string) (string, error) {
	return s.cachedLookup(ctx, defaultCurrencyPrefix+company, func(ctx context.Context) (string, error) {
		return s.settingsRepo.GetCompanyDefaultCurrency(ctx, company)
	})
}
