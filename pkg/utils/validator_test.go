package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slotRequest struct {
	Date    string `validate:"required,datetime=2006-01-02"`
	Service string `validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	assert.Empty(t, ValidateStruct(slotRequest{Date: "2024-06-01", Service: "nails"}))

	errs := ValidateStruct(slotRequest{Date: "June 1st", Service: "haircut"})
	assert.Equal(t, map[string]string{
		"Date":    "Must match layout 2006-01-02",
		"Service": "Maximum length is 5",
	}, errs)

	errs = ValidateStruct(slotRequest{})
	assert.Equal(t, "This field is required", errs["Date"])
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"time": "bad", "date": "worse"}}

	assert.Equal(t, "validation failed: date: worse; time: bad", err.Error())
}
