package validation

import (
	"fmt"
	"unicode/utf8"

	dErrors "patientdesk/pkg/domain-errors"
)

// Patient field length limits, counted in characters.
const (
	MaxNameLength        = 100
	MaxHometownLength    = 100
	MaxHouseNumberLength = 32
)

// CheckStringLength validates that a string does not exceed max characters.
func CheckStringLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}
