package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

const prescriptionColumns = `
	prescription_id, patient_id, doctor_id, prescription_date, diagnosis,
	medicines, dosage, duration, notes, created_at`

// CreatePrescription inserts a new prescription record
func (r *Repository) CreatePrescription(ctx context.Context, p *types.Prescription) error {
	query := `
		INSERT INTO prescriptions (
			prescription_id, patient_id, doctor_id, prescription_date,
			diagnosis, medicines, dosage, duration, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		p.PrescriptionID, p.PatientID, p.DoctorID, p.PrescriptionDate,
		p.Diagnosis, p.Medicines, p.Dosage, p.Duration, p.Notes, p.CreatedAt,
	)
	if err != nil {
		return r.duplicateOrWrap(err, "prescription", p.PrescriptionID)
	}
	return nil
}

// GetPrescriptionByID retrieves a prescription by identifier
func (r *Repository) GetPrescriptionByID(ctx context.Context, prescriptionID string) (*types.Prescription, error) {
	query := `SELECT` + prescriptionColumns + ` FROM prescriptions WHERE prescription_id = $1`

	var p types.Prescription
	err := r.db.QueryRowContext(ctx, query, prescriptionID).Scan(
		&p.PrescriptionID, &p.PatientID, &p.DoctorID, &p.PrescriptionDate,
		&p.Diagnosis, &p.Medicines, &p.Dosage, &p.Duration, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrWrap(err, "prescription", prescriptionID)
	}
	return &p, nil
}

// ListPrescriptionsByPatient retrieves a patient's prescriptions, newest first
func (r *Repository) ListPrescriptionsByPatient(ctx context.Context, patientID string) ([]*types.Prescription, error) {
	query := `SELECT` + prescriptionColumns + ` FROM prescriptions
		WHERE patient_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	defer rows.Close()

	var prescriptions []*types.Prescription
	for rows.Next() {
		var p types.Prescription
		err := rows.Scan(
			&p.PrescriptionID, &p.PatientID, &p.DoctorID, &p.PrescriptionDate,
			&p.Diagnosis, &p.Medicines, &p.Dosage, &p.Duration, &p.Notes, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prescription: %w", err)
		}
		prescriptions = append(prescriptions, &p)
	}
	return prescriptions, rows.Err()
}

// DeletePrescription removes a prescription record
func (r *Repository) DeletePrescription(ctx context.Context, prescriptionID string) error {
	return r.deleteByID(ctx, "prescriptions", "prescription_id", "prescription", prescriptionID)
}

const labTestColumns = `
	test_id, patient_id, doctor_id, test_name, test_date, test_time,
	sample_type, results, status, technician, report_path, created_at`

// CreateLabTest inserts a new lab test record
func (r *Repository) CreateLabTest(ctx context.Context, test *types.LabTest) error {
	query := `
		INSERT INTO lab_tests (
			test_id, patient_id, doctor_id, test_name, test_date, test_time,
			sample_type, results, status, technician, report_path, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		test.TestID, test.PatientID, test.DoctorID, test.TestName,
		test.TestDate, test.TestTime, test.SampleType, test.Results,
		test.Status, test.Technician, test.ReportPath, test.CreatedAt,
	)
	if err != nil {
		return r.duplicateOrWrap(err, "lab test", test.TestID)
	}
	return nil
}

// GetLabTestByID retrieves a lab test by identifier
func (r *Repository) GetLabTestByID(ctx context.Context, testID string) (*types.LabTest, error) {
	query := `SELECT` + labTestColumns + ` FROM lab_tests WHERE test_id = $1`

	var t types.LabTest
	err := r.db.QueryRowContext(ctx, query, testID).Scan(
		&t.TestID, &t.PatientID, &t.DoctorID, &t.TestName,
		&t.TestDate, &t.TestTime, &t.SampleType, &t.Results,
		&t.Status, &t.Technician, &t.ReportPath, &t.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrWrap(err, "lab test", testID)
	}
	return &t, nil
}

// ListLabTestsByPatient retrieves a patient's lab tests, newest first
func (r *Repository) ListLabTestsByPatient(ctx context.Context, patientID string) ([]*types.LabTest, error) {
	query := `SELECT` + labTestColumns + ` FROM lab_tests
		WHERE patient_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab tests: %w", err)
	}
	defer rows.Close()

	return collectLabTests(rows)
}

// DeleteLabTest removes a lab test record
func (r *Repository) DeleteLabTest(ctx context.Context, testID string) error {
	return r.deleteByID(ctx, "lab_tests", "test_id", "lab test", testID)
}

func collectLabTests(rows *sql.Rows) ([]*types.LabTest, error) {
	var tests []*types.LabTest
	for rows.Next() {
		var t types.LabTest
		err := rows.Scan(
			&t.TestID, &t.PatientID, &t.DoctorID, &t.TestName,
			&t.TestDate, &t.TestTime, &t.SampleType, &t.Results,
			&t.Status, &t.Technician, &t.ReportPath, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lab test: %w", err)
		}
		tests = append(tests, &t)
	}
	return tests, rows.Err()
}

const operationColumns = `
	operation_id, patient_id, doctor_id, operation_name, operation_date,
	operation_time, theater, duration, anesthesiologist, status, notes,
	created_at`

// CreateOperation inserts a new operation record
func (r *Repository) CreateOperation(ctx context.Context, op *types.Operation) error {
	query := `
		INSERT INTO operations (
			operation_id, patient_id, doctor_id, operation_name,
			operation_date, operation_time, theater, duration,
			anesthesiologist, status, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		op.OperationID, op.PatientID, op.DoctorID, op.OperationName,
		op.OperationDate, op.OperationTime, op.Theater, op.Duration,
		op.Anesthesiologist, op.Status, op.Notes, op.CreatedAt,
	)
	if err != nil {
		return r.duplicateOrWrap(err, "operation", op.OperationID)
	}
	return nil
}

// GetOperationByID retrieves an operation by identifier
func (r *Repository) GetOperationByID(ctx context.Context, operationID string) (*types.Operation, error) {
	query := `SELECT` + operationColumns + ` FROM operations WHERE operation_id = $1`

	var op types.Operation
	err := r.db.QueryRowContext(ctx, query, operationID).Scan(
		&op.OperationID, &op.PatientID, &op.DoctorID, &op.OperationName,
		&op.OperationDate, &op.OperationTime, &op.Theater, &op.Duration,
		&op.Anesthesiologist, &op.Status, &op.Notes, &op.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrWrap(err, "operation", operationID)
	}
	return &op, nil
}

// ListOperationsByPatient retrieves a patient's operations, newest first
func (r *Repository) ListOperationsByPatient(ctx context.Context, patientID string) ([]*types.Operation, error) {
	query := `SELECT` + operationColumns + ` FROM operations
		WHERE patient_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var operations []*types.Operation
	for rows.Next() {
		var op types.Operation
		err := rows.Scan(
			&op.OperationID, &op.PatientID, &op.DoctorID, &op.OperationName,
			&op.OperationDate, &op.OperationTime, &op.Theater, &op.Duration,
			&op.Anesthesiologist, &op.Status, &op.Notes, &op.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		operations = append(operations, &op)
	}
	return operations, rows.Err()
}

// DeleteOperation removes an operation record
func (r *Repository) DeleteOperation(ctx context.Context, operationID string) error {
	return r.deleteByID(ctx, "operations", "operation_id", "operation", operationID)
}
