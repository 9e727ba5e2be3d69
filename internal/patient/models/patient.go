package models

import (
	"time"

	id "patientdesk/pkg/domain"
)

// Patient is one stored patient record. Age is derived from DateOfBirth and is
// recomputed whenever the date of birth is set.
type Patient struct {
	ID          id.PatientID `json:"id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	DateOfBirth string       `json:"date_of_birth"`
	Age         int          `json:"age"`
	Hometown    string       `json:"hometown"`
	HouseNumber string       `json:"house_number"`
	PhoneNumber string       `json:"phone_number"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewPatient builds a record from an already validated request. The id stays
// unassigned until a store accepts the record.
func NewPatient(req *CreatePatientRequest, now time.Time) (*Patient, error) {
	birthDate, err := ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Age:         id.AgeOn(birthDate, now),
		Hometown:    req.Hometown,
		HouseNumber: req.HouseNumber,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// FullName joins first and last name for display.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Clone returns an independent copy so callers cannot mutate stored state.
func (p *Patient) Clone() *Patient {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// ApplyUpdate copies the provided fields of a request onto the record and returns
// the names of the fields whose value changed, in record order. A new date of
// birth recomputes age against now. On error the record is left untouched.
func (p *Patient) ApplyUpdate(req *UpdatePatientRequest, now time.Time) ([]string, error) {
	dobChanged := req.DateOfBirth != nil && *req.DateOfBirth != p.DateOfBirth
	var birthDate time.Time
	if dobChanged {
		var err error
		if birthDate, err = ParseDateOfBirth(*req.DateOfBirth); err != nil {
			return nil, err
		}
	}

	var changed []string
	set := func(field string, dst *string, src *string) {
		if src != nil && *src != *dst {
			*dst = *src
			changed = append(changed, field)
		}
	}
	set("first_name", &p.FirstName, req.FirstName)
	set("last_name", &p.LastName, req.LastName)
	if dobChanged {
		p.DateOfBirth = *req.DateOfBirth
		p.Age = id.AgeOn(birthDate, now)
		changed = append(changed, "date_of_birth")
	}
	set("hometown", &p.Hometown, req.Hometown)
	set("house_number", &p.HouseNumber, req.HouseNumber)
	set("phone_number", &p.PhoneNumber, req.PhoneNumber)
	if len(changed) > 0 {
		p.UpdatedAt = now
	}
	return changed, nil
}
