package database

import (
	"context"
	"fmt"
)

// CreateSchema creates the database schema for hospital records
func (db *DB) CreateSchema(ctx context.Context) error {
	db.logger.Info("Creating database schema...")

	tables := []string{
		createPatientsTable,
		createDoctorsTable,
		createAppointmentsTable,
		createStaffTable,
		createInventoryTable,
		createBillingTable,
		createPrescriptionsTable,
		createRoomsTable,
		createAdmissionsTable,
		createLabTestsTable,
		createOperationsTable,
	}

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		createPatientsIndexes,
		createAppointmentsIndexes,
		createBillingIndexes,
	}

	for _, index := range indexes {
		if _, err := db.ExecContext(ctx, index); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}

	db.logger.Info("Database schema created successfully")
	return nil
}

const createPatientsTable = `
CREATE TABLE IF NOT EXISTS patients (
	id SERIAL PRIMARY KEY,
	patient_id TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	age INTEGER,
	gender TEXT,
	address TEXT,
	phone TEXT NOT NULL,
	email TEXT,
	blood_group TEXT,
	emergency_contact TEXT,
	registration_date TEXT,
	last_visit TEXT,
	medical_history TEXT,
	allergies TEXT,
	insurance_info TEXT,
	status TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createDoctorsTable = `
CREATE TABLE IF NOT EXISTS doctors (
	id SERIAL PRIMARY KEY,
	doctor_id TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	specialization TEXT NOT NULL,
	qualification TEXT,
	experience INTEGER,
	phone TEXT,
	email TEXT,
	schedule TEXT,
	department TEXT,
	consultation_fee NUMERIC(12,2),
	availability TEXT,
	rating DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createAppointmentsTable = `
CREATE TABLE IF NOT EXISTS appointments (
	id SERIAL PRIMARY KEY,
	appointment_id TEXT UNIQUE NOT NULL,
	patient_id TEXT NOT NULL,
	doctor_id TEXT NOT NULL,
	appointment_date TEXT NOT NULL,
	appointment_time TEXT NOT NULL,
	reason TEXT,
	status TEXT NOT NULL,
	notes TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createStaffTable = `
CREATE TABLE IF NOT EXISTS staff (
	id SERIAL PRIMARY KEY,
	staff_id TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	role TEXT NOT NULL,
	department TEXT,
	phone TEXT,
	email TEXT,
	salary NUMERIC(12,2),
	hire_date TEXT,
	shift TEXT,
	status TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createInventoryTable = `
CREATE TABLE IF NOT EXISTS inventory (
	id SERIAL PRIMARY KEY,
	item_id TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	quantity INTEGER,
	unit TEXT,
	price NUMERIC(12,2),
	supplier TEXT,
	expiry_date TEXT,
	reorder_level INTEGER,
	location TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createBillingTable = `
CREATE TABLE IF NOT EXISTS billing (
	id SERIAL PRIMARY KEY,
	bill_id TEXT UNIQUE NOT NULL,
	patient_id TEXT NOT NULL,
	patient_name TEXT NOT NULL,
	bill_date TEXT NOT NULL,
	bill_time TEXT NOT NULL,
	items TEXT NOT NULL,
	total_amount NUMERIC(12,2) NOT NULL,
	paid_amount NUMERIC(12,2) NOT NULL,
	due_amount NUMERIC(12,2) NOT NULL,
	payment_method TEXT,
	insurance_covered NUMERIC(12,2) NOT NULL DEFAULT 0,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createPrescriptionsTable = `
CREATE TABLE IF NOT EXISTS prescriptions (
	id SERIAL PRIMARY KEY,
	prescription_id TEXT UNIQUE NOT NULL,
	patient_id TEXT NOT NULL,
	doctor_id TEXT NOT NULL,
	prescription_date TEXT,
	diagnosis TEXT,
	medicines TEXT NOT NULL,
	dosage TEXT,
	duration TEXT,
	notes TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createRoomsTable = `
CREATE TABLE IF NOT EXISTS rooms (
	id SERIAL PRIMARY KEY,
	room_id TEXT UNIQUE NOT NULL,
	room_type TEXT NOT NULL,
	floor INTEGER,
	bed_count INTEGER,
	available_beds INTEGER,
	price_per_day NUMERIC(12,2),
	facilities TEXT,
	status TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createAdmissionsTable = `
CREATE TABLE IF NOT EXISTS admissions (
	id SERIAL PRIMARY KEY,
	admission_id TEXT UNIQUE NOT NULL,
	patient_id TEXT NOT NULL,
	room_id TEXT NOT NULL,
	admission_date TEXT,
	discharge_date TEXT,
	reason TEXT,
	attending_doctor TEXT,
	status TEXT,
	estimated_cost NUMERIC(12,2),
	paid_amount NUMERIC(12,2),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createLabTestsTable = `
CREATE TABLE IF NOT EXISTS lab_tests (
	id SERIAL PRIMARY KEY,
	test_id TEXT UNIQUE NOT NULL,
	patient_id TEXT NOT NULL,
	doctor_id TEXT,
	test_name TEXT NOT NULL,
	test_date TEXT,
	test_time TEXT,
	sample_type TEXT,
	results TEXT,
	status TEXT,
	technician TEXT,
	report_path TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createOperationsTable = `
CREATE TABLE IF NOT EXISTS operations (
	id SERIAL PRIMARY KEY,
	operation_id TEXT UNIQUE NOT NULL,
	patient_id TEXT NOT NULL,
	doctor_id TEXT,
	operation_name TEXT NOT NULL,
	operation_date TEXT,
	operation_time TEXT,
	theater TEXT,
	duration TEXT,
	anesthesiologist TEXT,
	status TEXT,
	notes TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createPatientsIndexes = `
CREATE INDEX IF NOT EXISTS idx_patients_name ON patients (name);
CREATE INDEX IF NOT EXISTS idx_patients_phone ON patients (phone);`

const createAppointmentsIndexes = `
CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments (patient_id);
CREATE INDEX IF NOT EXISTS idx_appointments_doctor ON appointments (doctor_id);
CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments (appointment_date);`

const createBillingIndexes = `
CREATE INDEX IF NOT EXISTS idx_billing_patient ON billing (patient_id);
CREATE INDEX IF NOT EXISTS idx_billing_status ON billing (status);`
