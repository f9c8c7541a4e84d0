package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/monitoring"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// Service manages appointments between registered patients and doctors
type Service struct {
	repository interfaces.SchedulingRepository
	patients   interfaces.PatientDirectory
	doctors    interfaces.DoctorDirectory
	logger     *logger.Logger
}

// NewService creates a new scheduling service
func NewService(repository interfaces.SchedulingRepository, patients interfaces.PatientDirectory, doctors interfaces.DoctorDirectory, log *logger.Logger) *Service {
	return &Service{
		repository: repository,
		patients:   patients,
		doctors:    doctors,
		logger:     log,
	}
}

// ScheduleAppointment validates and stores a new appointment. Both the
// patient and the doctor must resolve in the registry before anything is
// written.
func (s *Service) ScheduleAppointment(ctx context.Context, apt *types.Appointment) (*types.Appointment, error) {
	if err := s.validateAppointment(apt); err != nil {
		return nil, err
	}

	if _, err := s.patients.Lookup(ctx, apt.PatientID); err != nil {
		return nil, types.NewValidationError(
			types.ErrCodePatientNotSelected,
			"a registered patient must be selected",
			map[string]interface{}{"patient_id": apt.PatientID},
		)
	}

	if _, err := s.doctors.GetDoctorByID(ctx, apt.DoctorID); err != nil {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidInput,
			"a registered doctor must be selected",
			map[string]interface{}{"doctor_id": apt.DoctorID},
		)
	}

	apt.AppointmentID = types.NewRecordID(types.PrefixAppointment)
	apt.Status = types.AppointmentStatusScheduled
	apt.CreatedAt = time.Now()

	if err := s.repository.CreateAppointment(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to schedule appointment: %w", err)
	}

	monitoring.RecordCreated("appointments")
	s.logger.WithFields(map[string]interface{}{
		"appointment_id": apt.AppointmentID,
		"patient_id":     apt.PatientID,
		"doctor_id":      apt.DoctorID,
		"date":           apt.Date,
	}).Info("Appointment scheduled")

	return apt, nil
}

// GetAppointment retrieves an appointment by its identifier
func (s *Service) GetAppointment(ctx context.Context, appointmentID string) (*types.Appointment, error) {
	return s.repository.GetAppointmentByID(ctx, appointmentID)
}

// ListAppointments retrieves appointments matching the filters
func (s *Service) ListAppointments(ctx context.Context, filters *types.AppointmentFilters) ([]*types.Appointment, error) {
	return s.repository.ListAppointments(ctx, filters)
}

// TodayAppointments retrieves appointments scheduled for today
func (s *Service) TodayAppointments(ctx context.Context) ([]*types.Appointment, error) {
	today := time.Now().Format("2006-01-02")
	return s.repository.ListAppointments(ctx, &types.AppointmentFilters{Date: today})
}

// CompleteAppointment marks an appointment as completed
func (s *Service) CompleteAppointment(ctx context.Context, appointmentID string) error {
	if err := s.repository.UpdateAppointmentStatus(ctx, appointmentID, types.AppointmentStatusCompleted); err != nil {
		return err
	}
	s.logger.WithField("appointment_id", appointmentID).Info("Appointment completed")
	return nil
}

// CancelAppointment marks an appointment as cancelled. The record is kept
// for history rather than deleted.
func (s *Service) CancelAppointment(ctx context.Context, appointmentID string) error {
	if err := s.repository.UpdateAppointmentStatus(ctx, appointmentID, types.AppointmentStatusCancelled); err != nil {
		return err
	}
	s.logger.WithField("appointment_id", appointmentID).Info("Appointment cancelled")
	return nil
}

// validateAppointment enforces the required appointment form fields
func (s *Service) validateAppointment(apt *types.Appointment) error {
	if strings.TrimSpace(apt.PatientID) == "" || strings.TrimSpace(apt.DoctorID) == "" {
		return types.NewValidationError(
			types.ErrCodeRequiredField,
			"both patient and doctor must be selected",
			nil,
		)
	}

	if apt.Date == "" || apt.Time == "" {
		return types.NewValidationError(
			types.ErrCodeRequiredField,
			"appointment date and time are required",
			nil,
		)
	}

	if _, err := time.Parse("2006-01-02", apt.Date); err != nil {
		return types.NewValidationError(
			types.ErrCodeInvalidInput,
			"appointment date must be in YYYY-MM-DD format",
			map[string]interface{}{"appointment_date": apt.Date},
		)
	}

	if _, err := time.Parse("15:04", apt.Time); err != nil {
		return types.NewValidationError(
			types.ErrCodeInvalidInput,
			"appointment time must be in HH:MM format",
			map[string]interface{}{"appointment_time": apt.Time},
		)
	}

	return nil
}
