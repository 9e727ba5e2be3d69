package service

import (
	"context"
	"time"

	"patientdesk/internal/patient/models"
	"patientdesk/internal/platform/tracer"
	id "patientdesk/pkg/domain"
	"patientdesk/pkg/platform/audit"
)

// AddPatient validates the request, derives age and stores the record under the
// next sequential id.
func (s *Service) AddPatient(ctx context.Context, req *models.CreatePatientRequest) (_ *models.Patient, err error) {
	defer s.observe(opAdd, time.Now())
	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientAdd)
	defer func() { span.End(err) }()

	if err := requireRequest(req); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.recordValidationFailure(opAdd)
		return nil, err
	}

	patient, err := models.NewPatient(req, s.clock())
	if err != nil {
		s.recordValidationFailure(opAdd)
		return nil, err
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, wrapPatientErr(err, "failed to add patient")
	}
	span.SetAttributes(tracer.Int64(tracer.AttrPatientID, int64(patient.ID)))

	s.auditLogger.Log(ctx, audit.EventPatientCreated, patient.ID, nil)
	if s.metrics != nil {
		s.metrics.IncrementPatientsCreated()
	}
	s.refreshRecordCount(ctx)
	return patient, nil
}

// ListPatients returns every record in insertion order. An empty slice means
// there are no records.
func (s *Service) ListPatients(ctx context.Context) (_ []*models.Patient, err error) {
	defer s.observe(opList, time.Now())
	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientList)
	defer func() { span.End(err) }()

	patients, err := s.patients.ListAll(ctx)
	if err != nil {
		return nil, wrapPatientErr(err, "failed to list patients")
	}
	if patients == nil {
		patients = []*models.Patient{}
	}
	span.SetAttributes(tracer.Int64(tracer.AttrRecordCount, int64(len(patients))))
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, patientID id.PatientID) (_ *models.Patient, err error) {
	defer s.observe(opGet, time.Now())
	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientGet,
		tracer.Int64(tracer.AttrPatientID, int64(patientID)),
	)
	defer func() { span.End(err) }()

	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		err = wrapPatientErr(err, "failed to load patient")
		s.recordMiss(err, opGet)
		return nil, err
	}
	return patient, nil
}

// UpdatePatient applies the provided fields of req to the record. Every provided
// field is validated before anything changes; blank fields keep their value.
func (s *Service) UpdatePatient(ctx context.Context, patientID id.PatientID, req *models.UpdatePatientRequest) (_ *models.Patient, err error) {
	defer s.observe(opUpdate, time.Now())
	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientUpdate,
		tracer.Int64(tracer.AttrPatientID, int64(patientID)),
	)
	defer func() { span.End(err) }()

	if err := requireRequest(req); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.recordValidationFailure(opUpdate)
		return nil, err
	}

	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		err = wrapPatientErr(err, "failed to load patient")
		s.recordMiss(err, opUpdate)
		return nil, err
	}

	changed, err := patient.ApplyUpdate(req, s.clock())
	if err != nil {
		s.recordValidationFailure(opUpdate)
		return nil, err
	}
	if len(changed) == 0 {
		return patient, nil
	}
	if err := s.patients.Update(ctx, patient); err != nil {
		err = wrapPatientErr(err, "failed to update patient")
		s.recordMiss(err, opUpdate)
		return nil, err
	}
	span.SetAttributes(tracer.Attribute{Key: tracer.AttrChangedFields, Value: changed})

	s.auditLogger.Log(ctx, audit.EventPatientUpdated, patient.ID, changed)
	if s.metrics != nil {
		s.metrics.IncrementPatientsUpdated()
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, patientID id.PatientID) (err error) {
	defer s.observe(opDelete, time.Now())
	ctx, span := s.tracer.Start(ctx, tracer.SpanPatientDelete,
		tracer.Int64(tracer.AttrPatientID, int64(patientID)),
	)
	defer func() { span.End(err) }()

	if err := s.patients.Delete(ctx, patientID); err != nil {
		err = wrapPatientErr(err, "failed to delete patient")
		s.recordMiss(err, opDelete)
		return err
	}

	s.auditLogger.Log(ctx, audit.EventPatientDeleted, patientID, nil)
	if s.metrics != nil {
		s.metrics.IncrementPatientsDeleted()
	}
	s.refreshRecordCount(ctx)
	return nil
}

// CountPatients reports how many records are held. Used by readiness checks.
func (s *Service) CountPatients(ctx context.Context) (int, error) {
	n, err := s.patients.Count(ctx)
	if err != nil {
		return 0, wrapPatientErr(err, "failed to count patients")
	}
	return n, nil
}
