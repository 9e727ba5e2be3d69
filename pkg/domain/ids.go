// Package domain provides type-safe identifiers and calendar helpers shared across modules.
package domain

import (
	"strconv"
	"strings"

	dErrors "patientdesk/pkg/domain-errors"
)

// PatientID is the sequential identifier assigned to a patient record.
type PatientID int

// FirstPatientID is the id handed to the first record a store creates.
const FirstPatientID PatientID = 100

// ParsePatientID parses user input at trust boundaries (menu prompts, URLs).
// Only plain base-10 digits are accepted; signs, spaces and fractions are rejected.
func ParsePatientID(s string) (PatientID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "patient ID cannot be empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, dErrors.New(dErrors.CodeInvalidInput, "patient ID must be numeric")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "patient ID is out of range")
	}
	return PatientID(n), nil
}

func (id PatientID) String() string { return strconv.Itoa(int(id)) }

// IsNil reports whether the id was never assigned.
func (id PatientID) IsNil() bool { return id == 0 }
