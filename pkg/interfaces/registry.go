package interfaces

import (
	"context"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// RegistryRepository persists patient and doctor records
type RegistryRepository interface {
	// Patients
	CreatePatient(ctx context.Context, patient *types.Patient) error
	GetPatientByID(ctx context.Context, patientID string) (*types.Patient, error)
	ListPatients(ctx context.Context, limit, offset int) ([]*types.Patient, error)
	SearchPatients(ctx context.Context, term string) ([]*types.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	CountPatients(ctx context.Context) (int, error)

	// Doctors
	CreateDoctor(ctx context.Context, doctor *types.Doctor) error
	GetDoctorByID(ctx context.Context, doctorID string) (*types.Doctor, error)
	ListDoctors(ctx context.Context, limit, offset int) ([]*types.Doctor, error)
	SearchDoctors(ctx context.Context, term string) ([]*types.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	CountDoctors(ctx context.Context) (int, error)
}

// RegistryService manages the patient and doctor directories
type RegistryService interface {
	PatientDirectory

	RegisterPatient(ctx context.Context, patient *types.Patient) (*types.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*types.Patient, error)
	ListPatients(ctx context.Context, limit, offset int) ([]*types.Patient, error)
	SearchPatients(ctx context.Context, term string) ([]*types.Patient, error)
	RemovePatient(ctx context.Context, patientID string) error

	RegisterDoctor(ctx context.Context, doctor *types.Doctor) (*types.Doctor, error)
	GetDoctor(ctx context.Context, doctorID string) (*types.Doctor, error)
	ListDoctors(ctx context.Context, limit, offset int) ([]*types.Doctor, error)
	SearchDoctors(ctx context.Context, term string) ([]*types.Doctor, error)
	RemoveDoctor(ctx context.Context, doctorID string) error
}
