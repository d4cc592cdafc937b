package poscalc

import (
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultCurrencyPrecision applies when no system-level currency precision is
// configured.
const DefaultCurrencyPrecision int32 = 3

// ComputeDifference returns round(opening) + round(closing) - round(expected),
// each operand rounded to precision (half away from zero) before the
// subtraction.
func ComputeDifference(opening, closing, expected decimal.Decimal, precision int32) decimal.Decimal {
	return opening.Round(precision).
		Add(closing.Round(precision)).
		Sub(expected.Round(precision))
}

// ComputeDifferences recalculates the difference on every payment
// reconciliation line in place. It is deterministic and idempotent; callers
// must re-run it whenever opening, closing or expected amounts change.
func ComputeDifferences(lines []domain.PaymentReconciliationLine, precision int32) {
	for i := range lines {
		lines[i].Difference = ComputeDifference(lines[i].OpeningAmount, lines[i].ClosingAmount, lines[i].ExpectedAmount, precision)
	}
}
