package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
)

func TestOpeningShiftSetStatus(t *testing.T) {
	var shift domain.OpeningShift

	shift.SetStatus()
	assert.Equal(t, domain.ShiftOpen, shift.Status)

	empty := ""
	shift.ClosingShiftID = &empty
	shift.SetStatus()
	assert.Equal(t, domain.ShiftOpen, shift.Status, "empty back-reference still counts as open")

	closingID := "closing-1"
	shift.ClosingShiftID = &closingID
	shift.SetStatus()
	assert.Equal(t, domain.ShiftClosed, shift.Status)
}
