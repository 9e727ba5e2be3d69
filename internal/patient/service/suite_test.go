package service

//go:generate mockgen -source=common.go -destination=mocks/mocks.go -package=mocks PatientStore,AuditPublisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"patientdesk/internal/patient/models"
	"patientdesk/internal/patient/service/mocks"
	id "patientdesk/pkg/domain"
	dErrors "patientdesk/pkg/domain-errors"
	"patientdesk/pkg/platform/audit"
	"patientdesk/pkg/platform/sentinel"
	"patientdesk/pkg/requestcontext"
)

var fixedNow = time.Date(2024, time.June, 20, 9, 30, 0, 0, time.UTC)

// MockStoreSuite drives error paths through a mocked store.
type MockStoreSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockStore          *mocks.MockPatientStore
	mockAuditPublisher *mocks.MockAuditPublisher
	service            *Service
	ctx                context.Context
}

func (s *MockStoreSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockPatientStore(s.ctrl)
	s.mockAuditPublisher = mocks.NewMockAuditPublisher(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.mockStore,
		WithLogger(logger),
		WithAuditPublisher(s.mockAuditPublisher),
		WithClock(func() time.Time { return fixedNow }),
	)
	s.ctx = requestcontext.WithSessionID(context.Background(), "session-1")
}

func (s *MockStoreSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMockStoreSuite(t *testing.T) {
	suite.Run(t, new(MockStoreSuite))
}

func strPtr(v string) *string { return &v }

func validCreateRequest() *models.CreatePatientRequest {
	return &models.CreatePatientRequest{
		FirstName:   "John",
		LastName:    "Smith",
		DateOfBirth: "15-06-1990",
		PhoneNumber: "024-000-0000",
		Hometown:    "Accra",
		HouseNumber: "H12",
	}
}

func (s *MockStoreSuite) TestAddPatient_EmitsAuditEvent() {
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Patient) error {
			p.ID = 100
			return nil
		})
	s.mockAuditPublisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(id.PatientID(100), event.PatientID)
			s.Equal(string(audit.EventPatientCreated), event.Action)
			s.Equal("session-1", event.SessionID)
			return nil
		})

	patient, err := s.service.AddPatient(s.ctx, validCreateRequest())
	s.Require().NoError(err)
	s.Equal(id.PatientID(100), patient.ID)
	s.Equal(34, patient.Age)
	s.Equal(fixedNow, patient.CreatedAt)
}

func (s *MockStoreSuite) TestAddPatient_StoreFailureIsInternal() {
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk on fire"))

	_, err := s.service.AddPatient(s.ctx, validCreateRequest())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *MockStoreSuite) TestAddPatient_InvalidRequestNeverReachesStore() {
	req := validCreateRequest()
	req.PhoneNumber = "0240000000"

	_, err := s.service.AddPatient(s.ctx, req)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service.AddPatient(s.ctx, nil)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *MockStoreSuite) TestListPatients_NilBecomesEmpty() {
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	patients, err := s.service.ListPatients(s.ctx)
	s.Require().NoError(err)
	s.NotNil(patients)
	s.Empty(patients)
}

func (s *MockStoreSuite) TestListPatients_StoreFailure() {
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := s.service.ListPatients(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *MockStoreSuite) TestGetPatient_TranslatesNotFound() {
	s.mockStore.EXPECT().FindByID(gomock.Any(), id.PatientID(404)).
		Return(nil, sentinel.ErrNotFound)

	_, err := s.service.GetPatient(s.ctx, 404)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("patient not found", err.Error())
}

func (s *MockStoreSuite) TestUpdatePatient_NoChangesSkipsStoreWrite() {
	s.mockStore.EXPECT().FindByID(gomock.Any(), id.PatientID(100)).Return(&models.Patient{
		ID: 100, FirstName: "John", LastName: "Smith", DateOfBirth: "15-06-1990",
		PhoneNumber: "024-000-0000",
	}, nil)

	patient, err := s.service.UpdatePatient(s.ctx, 100, &models.UpdatePatientRequest{
		FirstName: strPtr("John"),
		LastName:  strPtr("  "),
	})
	s.Require().NoError(err)
	s.Equal("John", patient.FirstName)
}

func (s *MockStoreSuite) TestUpdatePatient_EmitsChangedFields() {
	s.mockStore.EXPECT().FindByID(gomock.Any(), id.PatientID(100)).Return(&models.Patient{
		ID: 100, FirstName: "John", LastName: "Smith", DateOfBirth: "15-06-1990",
		PhoneNumber: "024-000-0000",
	}, nil)
	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAuditPublisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(string(audit.EventPatientUpdated), event.Action)
			s.Equal([]string{"last_name", "phone_number"}, event.Fields)
			return nil
		})

	_, err := s.service.UpdatePatient(s.ctx, 100, &models.UpdatePatientRequest{
		LastName:    strPtr("Mensah"),
		PhoneNumber: strPtr("020-111-2222"),
	})
	s.Require().NoError(err)
}

func (s *MockStoreSuite) TestUpdatePatient_StoreFailure() {
	s.mockStore.EXPECT().FindByID(gomock.Any(), id.PatientID(100)).Return(&models.Patient{
		ID: 100, FirstName: "John", LastName: "Smith", DateOfBirth: "15-06-1990",
	}, nil)
	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	_, err := s.service.UpdatePatient(s.ctx, 100, &models.UpdatePatientRequest{Hometown: strPtr("Kumasi")})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *MockStoreSuite) TestDeletePatient_AuditFailureDoesNotFailDelete() {
	s.mockStore.EXPECT().Delete(gomock.Any(), id.PatientID(100)).Return(nil)
	s.mockAuditPublisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("sink down"))

	s.NoError(s.service.DeletePatient(s.ctx, 100))
}

func (s *MockStoreSuite) TestCountPatients() {
	s.mockStore.EXPECT().Count(gomock.Any()).Return(3, nil)
	n, err := s.service.CountPatients(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, n)

	s.mockStore.EXPECT().Count(gomock.Any()).Return(0, errors.New("boom"))
	_, err = s.service.CountPatients(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestWrapPatientErr(t *testing.T) {
	err := wrapPatientErr(errors.Join(errors.New("ctx"), sentinel.ErrNotFound), "load")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	err = wrapPatientErr(errors.New("boom"), "load")
	require.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Equal(t, "load", err.Error())
}
