package registry

import (
	"context"
	"strings"
	"time"

	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/monitoring"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// Service manages the patient and doctor directories. It also implements
// the PatientDirectory contract the bill finalizer depends on.
type Service struct {
	repository interfaces.RegistryRepository
	logger     *logger.Logger
}

// NewService creates a new registry service
func NewService(repository interfaces.RegistryRepository, log *logger.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     log,
	}
}

// Lookup resolves a patient identifier to its identity snapshot
func (s *Service) Lookup(ctx context.Context, patientID string) (*types.PatientRef, error) {
	patient, err := s.repository.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &types.PatientRef{
		PatientID: patient.PatientID,
		Name:      patient.Name,
	}, nil
}

// RegisterPatient validates and stores a new patient record. Name and phone
// are the form's required fields.
func (s *Service) RegisterPatient(ctx context.Context, patient *types.Patient) (*types.Patient, error) {
	if strings.TrimSpace(patient.Name) == "" || strings.TrimSpace(patient.Phone) == "" {
		return nil, types.NewValidationError(
			types.ErrCodeRequiredField,
			"name and phone are required fields",
			nil,
		)
	}

	now := time.Now()
	patient.PatientID = types.NewRecordID(types.PrefixPatient)
	patient.RegistrationDate = now.Format("2006-01-02")
	patient.LastVisit = now.Format("2006-01-02")
	patient.Status = "Active"
	patient.CreatedAt = now

	if err := s.repository.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("patients")
	s.logger.Audit("create", "patient", patient.PatientID, true, nil)
	return patient, nil
}

// GetPatient retrieves a patient record
func (s *Service) GetPatient(ctx context.Context, patientID string) (*types.Patient, error) {
	return s.repository.GetPatientByID(ctx, patientID)
}

// ListPatients lists patient records
func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*types.Patient, error) {
	return s.repository.ListPatients(ctx, limit, offset)
}

// SearchPatients finds patients matching the search term
func (s *Service) SearchPatients(ctx context.Context, term string) ([]*types.Patient, error) {
	return s.repository.SearchPatients(ctx, term)
}

// RemovePatient deletes a patient record
func (s *Service) RemovePatient(ctx context.Context, patientID string) error {
	if err := s.repository.DeletePatient(ctx, patientID); err != nil {
		return err
	}
	s.logger.Audit("delete", "patient", patientID, true, nil)
	return nil
}

// RegisterDoctor validates and stores a new doctor record. Name and
// specialization are the form's required fields.
func (s *Service) RegisterDoctor(ctx context.Context, doctor *types.Doctor) (*types.Doctor, error) {
	if strings.TrimSpace(doctor.Name) == "" || strings.TrimSpace(doctor.Specialization) == "" {
		return nil, types.NewValidationError(
			types.ErrCodeRequiredField,
			"name and specialization are required fields",
			nil,
		)
	}

	doctor.DoctorID = types.NewRecordID(types.PrefixDoctor)
	doctor.CreatedAt = time.Now()
	if doctor.Availability == "" {
		doctor.Availability = "Available"
	}

	if err := s.repository.CreateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("doctors")
	s.logger.Audit("create", "doctor", doctor.DoctorID, true, nil)
	return doctor, nil
}

// GetDoctor retrieves a doctor record
func (s *Service) GetDoctor(ctx context.Context, doctorID string) (*types.Doctor, error) {
	return s.repository.GetDoctorByID(ctx, doctorID)
}

// ListDoctors lists doctor records
func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*types.Doctor, error) {
	return s.repository.ListDoctors(ctx, limit, offset)
}

// SearchDoctors finds doctors matching the search term
func (s *Service) SearchDoctors(ctx context.Context, term string) ([]*types.Doctor, error) {
	return s.repository.SearchDoctors(ctx, term)
}

// RemoveDoctor deletes a doctor record
func (s *Service) RemoveDoctor(ctx context.Context, doctorID string) error {
	if err := s.repository.DeleteDoctor(ctx, doctorID); err != nil {
		return err
	}
	s.logger.Audit("delete", "doctor", doctorID, true, nil)
	return nil
}
