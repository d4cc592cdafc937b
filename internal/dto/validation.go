package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations attaches custom validation rules to gin's binding
// validator. Call once at startup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterStructValidation(closingShiftPayloadValidation, ClosingShiftPayload{})
}

// closingShiftPayloadValidation rejects payloads whose period end precedes
// the period start. The overlap check in the service layer assumes an
// ordered range.
func closingShiftPayloadValidation(sl validator.StructLevel) {
	payload := sl.Current().Interface().(ClosingShiftPayload)
	if payload.PeriodEndDate.Before(payload.PeriodStartDate) {
		sl.ReportError(payload.PeriodEndDate, "PeriodEndDate", "periodEndDate", "gtefield", "PeriodStartDate")
	}
}
