package cli

import (
	"context"

	"patientdesk/internal/patient/models"
	dErrors "patientdesk/pkg/domain-errors"
	"patientdesk/pkg/platform/validation"
)

func (m *Menu) addPatient(ctx context.Context) error {
	m.println(headerAdd)

	req := &models.CreatePatientRequest{}
	var err error
	if req.FirstName, err = m.askUntil(ctx, promptFirstName, msgInvalidFirstName, validName("first_name")); err != nil {
		return err
	}
	if req.LastName, err = m.askUntil(ctx, promptLastName, msgInvalidLastName, validName("last_name")); err != nil {
		return err
	}
	if req.DateOfBirth, err = m.askUntil(ctx, promptDateOfBirth, msgInvalidDateOfBirth, validDateOfBirth); err != nil {
		return err
	}
	if req.PhoneNumber, err = m.askUntil(ctx, promptPhoneNumber, msgInvalidPhoneNumber, validPhoneNumber); err != nil {
		return err
	}
	if req.Hometown, err = m.askUntil(ctx, promptHometown, msgInvalidHometown, validHometown); err != nil {
		return err
	}
	if req.HouseNumber, err = m.askUntil(ctx, promptHouseNumber, msgInvalidHouseNumber, validHouseNumber); err != nil {
		return err
	}

	patient, err := m.service.AddPatient(ctx, req)
	if err != nil {
		m.report(ctx, err)
		return nil
	}
	m.println(msgAdded)
	m.printf(msgAssignedID, patient.ID)
	return nil
}

func (m *Menu) listPatients(ctx context.Context) error {
	m.println(headerList)

	patients, err := m.service.ListPatients(ctx)
	if err != nil {
		m.report(ctx, err)
		return nil
	}
	if len(patients) == 0 {
		m.println(msgNoRecords)
		return nil
	}
	for _, p := range patients {
		m.printPatient(p)
	}
	return nil
}

func (m *Menu) searchPatient(ctx context.Context) error {
	patientID, err := m.askPatientID(ctx, promptSearchID)
	if err != nil {
		return err
	}
	m.println(headerSearch)

	patient, err := m.service.GetPatient(ctx, patientID)
	if err != nil {
		m.report(ctx, err)
		return nil
	}
	m.printPatient(patient)
	m.printf(patientDetailLine, patient.DateOfBirth, patient.HouseNumber)
	return nil
}

func (m *Menu) updatePatient(ctx context.Context) error {
	patientID, err := m.askPatientID(ctx, promptUpdateID)
	if err != nil {
		return err
	}
	m.println(headerUpdate)

	patient, err := m.service.GetPatient(ctx, patientID)
	if err != nil {
		m.report(ctx, err)
		return nil
	}
	m.printf(msgUpdating, patient.FullName(), patient.ID)

	var first, last, dob, phone, hometown, house string
	if first, err = m.askUntil(ctx, promptUpdateFirstName, msgInvalidFirstName, blankOr(validName("first_name"))); err != nil {
		return err
	}
	if last, err = m.askUntil(ctx, promptUpdateLastName, msgInvalidLastName, blankOr(validName("last_name"))); err != nil {
		return err
	}
	if dob, err = m.askUntil(ctx, promptUpdateDateOfBirth, msgInvalidDateOfBirth, blankOr(validDateOfBirth)); err != nil {
		return err
	}
	if phone, err = m.askUntil(ctx, promptUpdatePhoneNumber, msgInvalidPhoneNumber, blankOr(validPhoneNumber)); err != nil {
		return err
	}
	if hometown, err = m.askUntil(ctx, promptUpdateHometown, msgInvalidHometown, validHometown); err != nil {
		return err
	}
	if house, err = m.askUntil(ctx, promptUpdateHouseNumber, msgInvalidHouseNumber, validHouseNumber); err != nil {
		return err
	}

	_, err = m.service.UpdatePatient(ctx, patientID, &models.UpdatePatientRequest{
		FirstName:   &first,
		LastName:    &last,
		DateOfBirth: &dob,
		PhoneNumber: &phone,
		Hometown:    &hometown,
		HouseNumber: &house,
	})
	if err != nil {
		m.report(ctx, err)
		return nil
	}
	m.println(msgUpdated)
	return nil
}

func (m *Menu) deletePatient(ctx context.Context) error {
	patientID, err := m.askPatientID(ctx, promptDeleteID)
	if err != nil {
		return err
	}
	m.println(headerDelete)

	if err := m.service.DeletePatient(ctx, patientID); err != nil {
		m.report(ctx, err)
		return nil
	}
	m.printf(msgDeleted, patientID)
	return nil
}

func (m *Menu) printPatient(p *models.Patient) {
	m.printf(patientLine, p.ID, p.FullName(), p.Age, p.Hometown, p.PhoneNumber)
}

// report turns a service error into a user-facing line. Only unexpected
// failures are logged; the menu keeps running either way.
func (m *Menu) report(ctx context.Context, err error) {
	switch {
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		m.println(msgNotFound)
	case dErrors.HasCode(err, dErrors.CodeValidation), dErrors.HasCode(err, dErrors.CodeBadRequest):
		m.printf(msgRejected, dErrors.Message(err))
	default:
		if m.logger != nil {
			m.logger.ErrorContext(ctx, "patient operation failed", "error", err)
		}
		m.printf(msgUnexpected, dErrors.Message(err))
	}
}

// validName applies the same rules the service does, length included.
func validName(field string) func(string) bool {
	return func(s string) bool {
		return models.ValidateName(field, s) == nil
	}
}

func validHometown(s string) bool {
	return validation.CheckStringLength("hometown", s, validation.MaxHometownLength) == nil
}

func validHouseNumber(s string) bool {
	return validation.CheckStringLength("house_number", s, validation.MaxHouseNumberLength) == nil
}

func validDateOfBirth(s string) bool {
	return models.ValidateDateOfBirth(s) == nil
}

func validPhoneNumber(s string) bool {
	return models.ValidatePhoneNumber(s) == nil
}

func blankOr(accept func(string) bool) func(string) bool {
	return func(s string) bool {
		return s == "" || accept(s)
	}
}
