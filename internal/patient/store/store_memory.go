package store

import (
	"context"
	"fmt"
	"sync"

	"patientdesk/internal/patient/models"
	id "patientdesk/pkg/domain"
	"patientdesk/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested record does not exist
// - Return nil for successful operations
//
// InMemoryStore keeps patient records in insertion order and owns the id
// sequence. Ids start at domain.FirstPatientID and are never reused, even after
// deletions. Records cross the boundary as copies.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []*models.Patient
	nextID  id.PatientID
}

// New constructs an empty in-memory patient store.
func New() *InMemoryStore {
	return &InMemoryStore{nextID: id.FirstPatientID}
}

// Create assigns the next sequential id to patient and appends a copy.
func (s *InMemoryStore) Create(_ context.Context, patient *models.Patient) error {
	if patient == nil {
		return fmt.Errorf("patient is required: %w", sentinel.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	patient.ID = s.nextID
	s.nextID++
	s.records = append(s.records, patient.Clone())
	return nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Patient, 0, len(s.records))
	for _, p := range s.records {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, patientID id.PatientID) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(patientID); i >= 0 {
		return s.records[i].Clone(), nil
	}
	return nil, fmt.Errorf("patient %d not found: %w", patientID, sentinel.ErrNotFound)
}

// Update replaces the stored record carrying the same id.
func (s *InMemoryStore) Update(_ context.Context, patient *models.Patient) error {
	if patient == nil {
		return fmt.Errorf("patient is required: %w", sentinel.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(patient.ID); i >= 0 {
		s.records[i] = patient.Clone()
		return nil
	}
	return fmt.Errorf("patient %d not found: %w", patient.ID, sentinel.ErrNotFound)
}

// Delete removes the first record with the given id.
func (s *InMemoryStore) Delete(_ context.Context, patientID id.PatientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(patientID); i >= 0 {
		s.records = append(s.records[:i], s.records[i+1:]...)
		return nil
	}
	return fmt.Errorf("patient %d not found: %w", patientID, sentinel.ErrNotFound)
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// indexOf scans linearly; callers must hold the lock.
func (s *InMemoryStore) indexOf(patientID id.PatientID) int {
	for i, p := range s.records {
		if p.ID == patientID {
			return i
		}
	}
	return -1
}
