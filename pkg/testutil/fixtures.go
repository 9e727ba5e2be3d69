package testutil

import (
	"time"

	"patientdesk/internal/patient/models"
	id "patientdesk/pkg/domain"
)

// FixedNow is the reference instant used by patient fixtures.
var FixedNow = time.Date(2024, time.June, 20, 9, 30, 0, 0, time.UTC)

// PatientBuilder provides a fluent interface for building test patients.
type PatientBuilder struct {
	patient *models.Patient
}

// NewPatient starts from a valid record for John Smith, born 15-06-1990.
func NewPatient() *PatientBuilder {
	return &PatientBuilder{
		patient: &models.Patient{
			FirstName:   "John",
			LastName:    "Smith",
			DateOfBirth: "15-06-1990",
			Age:         34,
			Hometown:    "Accra",
			HouseNumber: "H12",
			PhoneNumber: "024-000-0000",
			CreatedAt:   FixedNow,
			UpdatedAt:   FixedNow,
		},
	}
}

func (b *PatientBuilder) WithID(patientID id.PatientID) *PatientBuilder {
	b.patient.ID = patientID
	return b
}

func (b *PatientBuilder) WithName(first, last string) *PatientBuilder {
	b.patient.FirstName = first
	b.patient.LastName = last
	return b
}

func (b *PatientBuilder) WithPhoneNumber(phone string) *PatientBuilder {
	b.patient.PhoneNumber = phone
	return b
}

func (b *PatientBuilder) Build() *models.Patient {
	return b.patient.Clone()
}

// ValidCreateRequest returns a request that passes every field rule.
func ValidCreateRequest() *models.CreatePatientRequest {
	return &models.CreatePatientRequest{
		FirstName:   "John",
		LastName:    "Smith",
		DateOfBirth: "15-06-1990",
		PhoneNumber: "024-000-0000",
		Hometown:    "Accra",
		HouseNumber: "H12",
	}
}
