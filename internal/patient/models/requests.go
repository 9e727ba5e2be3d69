package models

import (
	dErrors "patientdesk/pkg/domain-errors"
	"patientdesk/pkg/platform/validation"
)

type CreatePatientRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	PhoneNumber string `json:"phone_number"`
	Hometown    string `json:"hometown"`
	HouseNumber string `json:"house_number"`
}

func (r *CreatePatientRequest) Normalize() {
	if r == nil {
		return
	}
	r.FirstName = normalize(r.FirstName)
	r.LastName = normalize(r.LastName)
	r.DateOfBirth = normalize(r.DateOfBirth)
	r.PhoneNumber = normalize(r.PhoneNumber)
	r.Hometown = normalize(r.Hometown)
	r.HouseNumber = normalize(r.HouseNumber)
}

// Validate checks the fields with format rules. Hometown and house number are
// free text, may be empty and are only length checked.
func (r *CreatePatientRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := ValidateName("first_name", r.FirstName); err != nil {
		return err
	}
	if err := ValidateName("last_name", r.LastName); err != nil {
		return err
	}
	if err := ValidateDateOfBirth(r.DateOfBirth); err != nil {
		return err
	}
	if err := ValidatePhoneNumber(r.PhoneNumber); err != nil {
		return err
	}
	return validateFreeText(&r.Hometown, &r.HouseNumber)
}

// UpdatePatientRequest carries a partial update. A nil field keeps the current
// value; Normalize turns blank strings into nil.
type UpdatePatientRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Hometown    *string `json:"hometown,omitempty"`
	HouseNumber *string `json:"house_number,omitempty"`
}

func (r *UpdatePatientRequest) Normalize() {
	if r == nil {
		return
	}
	for _, field := range []**string{
		&r.FirstName, &r.LastName, &r.DateOfBirth,
		&r.PhoneNumber, &r.Hometown, &r.HouseNumber,
	} {
		*field = normalizeOptional(*field)
	}
}

// Validate applies the create rules to every provided field.
func (r *UpdatePatientRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.FirstName != nil {
		if err := ValidateName("first_name", *r.FirstName); err != nil {
			return err
		}
	}
	if r.LastName != nil {
		if err := ValidateName("last_name", *r.LastName); err != nil {
			return err
		}
	}
	if r.DateOfBirth != nil {
		if err := ValidateDateOfBirth(*r.DateOfBirth); err != nil {
			return err
		}
	}
	if r.PhoneNumber != nil {
		if err := ValidatePhoneNumber(*r.PhoneNumber); err != nil {
			return err
		}
	}
	return validateFreeText(r.Hometown, r.HouseNumber)
}

func validateFreeText(hometown, houseNumber *string) error {
	if hometown != nil {
		if err := validation.CheckStringLength("hometown", *hometown, validation.MaxHometownLength); err != nil {
			return err
		}
	}
	if houseNumber != nil {
		return validation.CheckStringLength("house_number", *houseNumber, validation.MaxHouseNumberLength)
	}
	return nil
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdatePatientRequest) IsEmpty() bool {
	return r == nil || (r.FirstName == nil && r.LastName == nil && r.DateOfBirth == nil &&
		r.PhoneNumber == nil && r.Hometown == nil && r.HouseNumber == nil)
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := normalize(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
