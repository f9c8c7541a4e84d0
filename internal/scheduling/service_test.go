package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// MockSchedulingRepository is a mock implementation of SchedulingRepository
type MockSchedulingRepository struct {
	mock.Mock
}

func (m *MockSchedulingRepository) CreateAppointment(ctx context.Context, apt *types.Appointment) error {
	args := m.Called(ctx, apt)
	return args.Error(0)
}

func (m *MockSchedulingRepository) GetAppointmentByID(ctx context.Context, appointmentID string) (*types.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *MockSchedulingRepository) ListAppointments(ctx context.Context, filters *types.AppointmentFilters) ([]*types.Appointment, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Appointment), args.Error(1)
}

func (m *MockSchedulingRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	args := m.Called(ctx, appointmentID, status)
	return args.Error(0)
}

func (m *MockSchedulingRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockSchedulingRepository) CountAppointmentsOnDate(ctx context.Context, date string) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

// MockPatientDirectory is a mock implementation of PatientDirectory
type MockPatientDirectory struct {
	mock.Mock
}

func (m *MockPatientDirectory) Lookup(ctx context.Context, patientID string) (*types.PatientRef, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PatientRef), args.Error(1)
}

// MockDoctorDirectory is a mock implementation of DoctorDirectory
type MockDoctorDirectory struct {
	mock.Mock
}

func (m *MockDoctorDirectory) GetDoctorByID(ctx context.Context, doctorID string) (*types.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Doctor), args.Error(1)
}

func validAppointment() *types.Appointment {
	return &types.Appointment{
		PatientID: "PAT001",
		DoctorID:  "DOC001",
		Date:      "2026-09-15",
		Time:      "10:30",
		Reason:    "Follow-up",
	}
}

func newTestService(repo *MockSchedulingRepository, patients *MockPatientDirectory, doctors *MockDoctorDirectory) *Service {
	return NewService(repo, patients, doctors, logger.New("error"))
}

func TestScheduleAppointment(t *testing.T) {
	repo := new(MockSchedulingRepository)
	patients := new(MockPatientDirectory)
	doctors := new(MockDoctorDirectory)

	patients.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)
	doctors.On("GetDoctorByID", mock.Anything, "DOC001").
		Return(&types.Doctor{DoctorID: "DOC001", Name: "Dr. Patel"}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*types.Appointment")).Return(nil)

	service := newTestService(repo, patients, doctors)

	apt, err := service.ScheduleAppointment(context.Background(), validAppointment())
	require.NoError(t, err)

	assert.NotEmpty(t, apt.AppointmentID)
	assert.Equal(t, types.AppointmentStatusScheduled, apt.Status)
	repo.AssertExpectations(t)
}

func TestScheduleAppointmentUnknownPatient(t *testing.T) {
	repo := new(MockSchedulingRepository)
	patients := new(MockPatientDirectory)
	doctors := new(MockDoctorDirectory)

	patients.On("Lookup", mock.Anything, "PAT001").
		Return(nil, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found"))

	service := newTestService(repo, patients, doctors)

	_, err := service.ScheduleAppointment(context.Background(), validAppointment())
	require.Error(t, err)
	assert.Equal(t, types.ErrCodePatientNotSelected, types.ErrorCode(err))

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestScheduleAppointmentUnknownDoctor(t *testing.T) {
	repo := new(MockSchedulingRepository)
	patients := new(MockPatientDirectory)
	doctors := new(MockDoctorDirectory)

	patients.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)
	doctors.On("GetDoctorByID", mock.Anything, "DOC001").
		Return(nil, types.NewNotFoundError(types.ErrCodeNotFound, "doctor not found"))

	service := newTestService(repo, patients, doctors)

	_, err := service.ScheduleAppointment(context.Background(), validAppointment())
	require.Error(t, err)
	assert.Equal(t, types.ErrCodeInvalidInput, types.ErrorCode(err))

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestScheduleAppointmentValidation(t *testing.T) {
	repo := new(MockSchedulingRepository)
	patients := new(MockPatientDirectory)
	doctors := new(MockDoctorDirectory)
	service := newTestService(repo, patients, doctors)

	cases := []struct {
		name   string
		mutate func(*types.Appointment)
		code   string
	}{
		{"missing patient", func(a *types.Appointment) { a.PatientID = "" }, types.ErrCodeRequiredField},
		{"missing doctor", func(a *types.Appointment) { a.DoctorID = "" }, types.ErrCodeRequiredField},
		{"missing date", func(a *types.Appointment) { a.Date = "" }, types.ErrCodeRequiredField},
		{"missing time", func(a *types.Appointment) { a.Time = "" }, types.ErrCodeRequiredField},
		{"bad date format", func(a *types.Appointment) { a.Date = "15/09/2026" }, types.ErrCodeInvalidInput},
		{"bad time format", func(a *types.Appointment) { a.Time = "10:30 AM" }, types.ErrCodeInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apt := validAppointment()
			tc.mutate(apt)

			_, err := service.ScheduleAppointment(context.Background(), apt)
			require.Error(t, err)
			assert.Equal(t, tc.code, types.ErrorCode(err))
		})
	}

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCancelAppointment(t *testing.T) {
	repo := new(MockSchedulingRepository)
	patients := new(MockPatientDirectory)
	doctors := new(MockDoctorDirectory)

	repo.On("UpdateAppointmentStatus", mock.Anything, "APT001", types.AppointmentStatusCancelled).Return(nil)

	service := newTestService(repo, patients, doctors)

	require.NoError(t, service.CancelAppointment(context.Background(), "APT001"))
	repo.AssertExpectations(t)
}

func TestTodayAppointments(t *testing.T) {
	repo := new(MockSchedulingRepository)
	patients := new(MockPatientDirectory)
	doctors := new(MockDoctorDirectory)

	repo.On("ListAppointments", mock.Anything, mock.MatchedBy(func(f *types.AppointmentFilters) bool {
		return f.Date != ""
	})).Return([]*types.Appointment{{AppointmentID: "APT001"}}, nil)

	service := newTestService(repo, patients, doctors)

	appointments, err := service.TodayAppointments(context.Background())
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}
