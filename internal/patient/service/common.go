package service

import (
	"context"
	"errors"
	"time"

	"patientdesk/internal/patient/models"
	id "patientdesk/pkg/domain"
	dErrors "patientdesk/pkg/domain-errors"
	"patientdesk/pkg/platform/audit"
	"patientdesk/pkg/platform/sentinel"
)

// Store interfaces define persistence contracts.

type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) error
	ListAll(ctx context.Context) ([]*models.Patient, error)
	FindByID(ctx context.Context, patientID id.PatientID) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID id.PatientID) error
	Count(ctx context.Context) (int, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Operation labels shared by metrics and logs.
const (
	opAdd    = "add"
	opList   = "list"
	opGet    = "get"
	opUpdate = "update"
	opDelete = "delete"
)

// wrapPatientErr translates store sentinels to domain errors.
func wrapPatientErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "patient not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func requireRequest[T any](req *T) error {
	if req == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return nil
}

// Metrics helpers tolerate a service built without metrics.

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, start)
	}
}

func (s *Service) recordValidationFailure(operation string) {
	if s.metrics != nil {
		s.metrics.IncrementValidationFailure(operation)
	}
}

func (s *Service) recordMiss(err error, operation string) {
	if s.metrics != nil && dErrors.HasCode(err, dErrors.CodeNotFound) {
		s.metrics.IncrementLookupMiss(operation)
	}
}

func (s *Service) refreshRecordCount(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	n, err := s.patients.Count(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "failed to count patient records", "error", err)
		}
		return
	}
	s.metrics.SetPatientRecords(n)
}
