package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/RajFruit/Hospital-Managment-System/pkg/database"
	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

const pqUniqueViolation = "23505"

// Repository implements the RegistryRepository interface on PostgreSQL
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new registry repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.RegistryRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// CreatePatient inserts a new patient record
func (r *Repository) CreatePatient(ctx context.Context, patient *types.Patient) error {
	query := `
		INSERT INTO patients (
			patient_id, name, age, gender, address, phone, email, blood_group,
			emergency_contact, registration_date, last_visit, medical_history,
			allergies, insurance_info, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		patient.PatientID,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Address,
		patient.Phone,
		patient.Email,
		patient.BloodGroup,
		patient.EmergencyContact,
		patient.RegistrationDate,
		patient.LastVisit,
		patient.MedicalHistory,
		patient.Allergies,
		patient.InsuranceInfo,
		patient.Status,
		patient.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return types.NewConflictError(types.ErrCodeDuplicateID,
				fmt.Sprintf("patient %s already exists", patient.PatientID), err)
		}
		r.logger.WithError(err).WithField("patient_id", patient.PatientID).Error("Failed to create patient")
		return fmt.Errorf("failed to create patient: %w", err)
	}

	return nil
}

const patientColumns = `
	patient_id, name, age, gender, address, phone, email, blood_group,
	emergency_contact, registration_date, last_visit, medical_history,
	allergies, insurance_info, status, created_at`

// GetPatientByID retrieves a patient by its record identifier
func (r *Repository) GetPatientByID(ctx context.Context, patientID string) (*types.Patient, error) {
	query := `SELECT` + patientColumns + ` FROM patients WHERE patient_id = $1`

	patient, err := scanPatient(r.db.QueryRowContext(ctx, query, patientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				fmt.Sprintf("patient not found: %s", patientID))
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return patient, nil
}

// ListPatients retrieves patients ordered by registration, newest first
func (r *Repository) ListPatients(ctx context.Context, limit, offset int) ([]*types.Patient, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT` + patientColumns + ` FROM patients ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	return collectPatients(rows)
}

// SearchPatients finds patients whose id, name or phone contains the term
func (r *Repository) SearchPatients(ctx context.Context, term string) ([]*types.Patient, error) {
	query := `SELECT` + patientColumns + ` FROM patients
		WHERE patient_id ILIKE $1 OR name ILIKE $1 OR phone ILIKE $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	defer rows.Close()

	return collectPatients(rows)
}

// DeletePatient removes a patient record
func (r *Repository) DeletePatient(ctx context.Context, patientID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE patient_id = $1`, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("patient not found: %s", patientID))
	}

	return nil
}

// CountPatients returns the number of registered patients
func (r *Repository) CountPatients(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM patients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}

// CreateDoctor inserts a new doctor record
func (r *Repository) CreateDoctor(ctx context.Context, doctor *types.Doctor) error {
	query := `
		INSERT INTO doctors (
			doctor_id, name, specialization, qualification, experience, phone,
			email, schedule, department, consultation_fee, availability, rating,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		doctor.DoctorID,
		doctor.Name,
		doctor.Specialization,
		doctor.Qualification,
		doctor.Experience,
		doctor.Phone,
		doctor.Email,
		doctor.Schedule,
		doctor.Department,
		doctor.ConsultationFee,
		doctor.Availability,
		doctor.Rating,
		doctor.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return types.NewConflictError(types.ErrCodeDuplicateID,
				fmt.Sprintf("doctor %s already exists", doctor.DoctorID), err)
		}
		r.logger.WithError(err).WithField("doctor_id", doctor.DoctorID).Error("Failed to create doctor")
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	return nil
}

const doctorColumns = `
	doctor_id, name, specialization, qualification, experience, phone,
	email, schedule, department, consultation_fee, availability, rating,
	created_at`

// GetDoctorByID retrieves a doctor by its record identifier
func (r *Repository) GetDoctorByID(ctx context.Context, doctorID string) (*types.Doctor, error) {
	query := `SELECT` + doctorColumns + ` FROM doctors WHERE doctor_id = $1`

	doctor, err := scanDoctor(r.db.QueryRowContext(ctx, query, doctorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				fmt.Sprintf("doctor not found: %s", doctorID))
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	return doctor, nil
}

// ListDoctors retrieves doctors ordered by name
func (r *Repository) ListDoctors(ctx context.Context, limit, offset int) ([]*types.Doctor, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT` + doctorColumns + ` FROM doctors ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	return collectDoctors(rows)
}

// SearchDoctors finds doctors whose id, name or specialization contains the term
func (r *Repository) SearchDoctors(ctx context.Context, term string) ([]*types.Doctor, error) {
	query := `SELECT` + doctorColumns + ` FROM doctors
		WHERE doctor_id ILIKE $1 OR name ILIKE $1 OR specialization ILIKE $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}
	defer rows.Close()

	return collectDoctors(rows)
}

// DeleteDoctor removes a doctor record
func (r *Repository) DeleteDoctor(ctx context.Context, doctorID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE doctor_id = $1`, doctorID)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("doctor not found: %s", doctorID))
	}

	return nil
}

// CountDoctors returns the number of registered doctors
func (r *Repository) CountDoctors(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*types.Patient, error) {
	var p types.Patient
	err := row.Scan(
		&p.PatientID, &p.Name, &p.Age, &p.Gender, &p.Address, &p.Phone,
		&p.Email, &p.BloodGroup, &p.EmergencyContact, &p.RegistrationDate,
		&p.LastVisit, &p.MedicalHistory, &p.Allergies, &p.InsuranceInfo,
		&p.Status, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPatients(rows *sql.Rows) ([]*types.Patient, error) {
	var patients []*types.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, patient)
	}
	return patients, rows.Err()
}

func scanDoctor(row rowScanner) (*types.Doctor, error) {
	var d types.Doctor
	err := row.Scan(
		&d.DoctorID, &d.Name, &d.Specialization, &d.Qualification,
		&d.Experience, &d.Phone, &d.Email, &d.Schedule, &d.Department,
		&d.ConsultationFee, &d.Availability, &d.Rating, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectDoctors(rows *sql.Rows) ([]*types.Doctor, error) {
	var doctors []*types.Doctor
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}
	return doctors, rows.Err()
}
