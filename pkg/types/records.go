package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient is a registered patient record
type Patient struct {
	PatientID        string    `json:"patient_id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	BloodGroup       string    `json:"blood_group"`
	EmergencyContact string    `json:"emergency_contact"`
	RegistrationDate string    `json:"registration_date"`
	LastVisit        string    `json:"last_visit"`
	MedicalHistory   string    `json:"medical_history"`
	Allergies        string    `json:"allergies"`
	InsuranceInfo    string    `json:"insurance_info"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Doctor is a registered doctor record
type Doctor struct {
	DoctorID        string          `json:"doctor_id"`
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	Qualification   string          `json:"qualification"`
	Experience      int             `json:"experience"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Schedule        string          `json:"schedule"`
	Department      string          `json:"department"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Availability    string          `json:"availability"`
	Rating          float64         `json:"rating"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AppointmentStatus values follow the scheduling workflow
const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

// Appointment is a scheduled visit between a patient and a doctor.
// Date and Time keep the form's discrete date ("2006-01-02") and
// time ("15:04") fields rather than a combined timestamp.
type Appointment struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id"`
	Date          string    `json:"appointment_date"`
	Time          string    `json:"appointment_time"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// AppointmentFilters narrows appointment listings
type AppointmentFilters struct {
	PatientID string
	DoctorID  string
	Date      string
	Status    string
}

// StaffMember is a non-doctor hospital employee
type StaffMember struct {
	StaffID    string          `json:"staff_id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"`
	Shift      string          `json:"shift"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// InventoryItem is a stocked supply item
type InventoryItem struct {
	ItemID       string          `json:"item_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	Supplier     string          `json:"supplier"`
	ExpiryDate   string          `json:"expiry_date"`
	ReorderLevel int             `json:"reorder_level"`
	Location     string          `json:"location"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Prescription records medicines prescribed to a patient
type Prescription struct {
	PrescriptionID   string    `json:"prescription_id"`
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	PrescriptionDate string    `json:"prescription_date"`
	Diagnosis        string    `json:"diagnosis"`
	Medicines        string    `json:"medicines"`
	Dosage           string    `json:"dosage"`
	Duration         string    `json:"duration"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// RoomStatus values
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// Room is a hospital room with bed availability
type Room struct {
	RoomID        string          `json:"room_id"`
	RoomType      string          `json:"room_type"`
	Floor         int             `json:"floor"`
	BedCount      int             `json:"bed_count"`
	AvailableBeds int             `json:"available_beds"`
	PricePerDay   decimal.Decimal `json:"price_per_day"`
	Facilities    string          `json:"facilities"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Admission records a patient's stay in a room
type Admission struct {
	AdmissionID     string          `json:"admission_id"`
	PatientID       string          `json:"patient_id"`
	RoomID          string          `json:"room_id"`
	AdmissionDate   string          `json:"admission_date"`
	DischargeDate   string          `json:"discharge_date"`
	Reason          string          `json:"reason"`
	AttendingDoctor string          `json:"attending_doctor"`
	Status          string          `json:"status"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LabTest records an ordered laboratory test and its result
type LabTest struct {
	TestID     string    `json:"test_id"`
	PatientID  string    `json:"patient_id"`
	DoctorID   string    `json:"doctor_id"`
	TestName   string    `json:"test_name"`
	TestDate   string    `json:"test_date"`
	TestTime   string    `json:"test_time"`
	SampleType string    `json:"sample_type"`
	Results    string    `json:"results"`
	Status     string    `json:"status"`
	Technician string    `json:"technician"`
	ReportPath string    `json:"report_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// Operation records a scheduled or performed surgery
type Operation struct {
	OperationID      string    `json:"operation_id"`
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	OperationName    string    `json:"operation_name"`
	OperationDate    string    `json:"operation_date"`
	OperationTime    string    `json:"operation_time"`
	Theater          string    `json:"theater"`
	Duration         string    `json:"duration"`
	Anesthesiologist string    `json:"anesthesiologist"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// DashboardStats is the aggregate count card set shown on the dashboard
type DashboardStats struct {
	Patients          int `json:"patients"`
	Doctors           int `json:"doctors"`
	TodayAppointments int `json:"today_appointments"`
	PendingBills      int `json:"pending_bills"`
	AvailableRooms    int `json:"available_rooms"`
	Staff             int `json:"staff"`
}
