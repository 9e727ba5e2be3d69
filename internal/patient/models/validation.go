package models

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	dErrors "patientdesk/pkg/domain-errors"
	"patientdesk/pkg/platform/validation"
)

// DateOfBirthLayout is the dd-mm-yyyy layout accepted for dates of birth.
const DateOfBirthLayout = "02-01-2006"

// PhoneNumberExample is shown to users as the expected phone format.
const PhoneNumberExample = "024-000-0000"

var (
	dateOfBirthPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	phoneNumberPattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// IsValidName reports whether name is non-empty once spaces are removed and
// contains only letters and spaces.
func IsValidName(name string) bool {
	letters := 0
	for _, r := range name {
		switch {
		case r == ' ':
		case unicode.IsLetter(r):
			letters++
		default:
			return false
		}
	}
	return letters > 0
}

// ValidateName returns a validation error naming field when name is not valid
// or too long.
func ValidateName(field, name string) error {
	if !IsValidName(name) {
		return dErrors.New(dErrors.CodeValidation, field+" may only contain letters and spaces")
	}
	return validation.CheckStringLength(field, name, validation.MaxNameLength)
}

// ParseDateOfBirth parses a strict dd-mm-yyyy date that must exist on the calendar.
func ParseDateOfBirth(dob string) (time.Time, error) {
	if !dateOfBirthPattern.MatchString(dob) {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "date_of_birth must use the dd-mm-yyyy format")
	}
	t, err := time.Parse(DateOfBirthLayout, dob)
	if err != nil {
		return time.Time{}, dErrors.Wrap(err, dErrors.CodeValidation, "date_of_birth is not a valid calendar date")
	}
	if t.Year() < 1 {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "date_of_birth is not a valid calendar date")
	}
	return t, nil
}

func ValidateDateOfBirth(dob string) error {
	_, err := ParseDateOfBirth(dob)
	return err
}

func ValidatePhoneNumber(phone string) error {
	if !phoneNumberPattern.MatchString(phone) {
		return dErrors.New(dErrors.CodeValidation, "phone_number must look like "+PhoneNumberExample)
	}
	return nil
}

// normalize trims surrounding whitespace the way the prompts do.
func normalize(s string) string {
	return strings.TrimSpace(s)
}
