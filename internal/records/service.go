package records

import (
	"context"
	"strings"
	"time"

	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/monitoring"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// Service manages the remaining hospital record modules. Clinical records
// (prescriptions, admissions, lab tests, operations) validate their patient
// reference through the directory before anything is stored, the same check
// the bill finalizer performs.
type Service struct {
	repository interfaces.RecordsRepository
	patients   interfaces.PatientDirectory
	doctors    interfaces.DoctorDirectory
	logger     *logger.Logger
}

// NewService creates a new records service
func NewService(
	repository interfaces.RecordsRepository,
	patients interfaces.PatientDirectory,
	doctors interfaces.DoctorDirectory,
	log *logger.Logger,
) *Service {
	return &Service{
		repository: repository,
		patients:   patients,
		doctors:    doctors,
		logger:     log,
	}
}

func requiredFields(message string) error {
	return types.NewValidationError(types.ErrCodeRequiredField, message, nil)
}

func (s *Service) resolvePatient(ctx context.Context, patientID string) error {
	if strings.TrimSpace(patientID) == "" {
		return types.NewValidationError(
			types.ErrCodePatientNotSelected,
			"a patient must be selected",
			nil,
		)
	}
	if _, err := s.patients.Lookup(ctx, patientID); err != nil {
		return types.NewValidationError(
			types.ErrCodePatientNotSelected,
			"patient not found",
			map[string]interface{}{"patient_id": patientID},
		)
	}
	return nil
}

func (s *Service) resolveDoctor(ctx context.Context, doctorID string) error {
	if strings.TrimSpace(doctorID) == "" {
		return types.NewValidationError(
			types.ErrCodeInvalidInput,
			"a doctor must be selected",
			nil,
		)
	}
	if _, err := s.doctors.GetDoctorByID(ctx, doctorID); err != nil {
		return types.NewValidationError(
			types.ErrCodeInvalidInput,
			"doctor not found",
			map[string]interface{}{"doctor_id": doctorID},
		)
	}
	return nil
}

// AddStaffMember validates and stores a new staff record. Name and role
// are the required fields.
func (s *Service) AddStaffMember(ctx context.Context, member *types.StaffMember) (*types.StaffMember, error) {
	if strings.TrimSpace(member.Name) == "" || strings.TrimSpace(member.Role) == "" {
		return nil, requiredFields("name and role are required fields")
	}

	member.StaffID = types.NewRecordID(types.PrefixStaff)
	member.CreatedAt = time.Now()
	if member.Status == "" {
		member.Status = "Active"
	}

	if err := s.repository.CreateStaffMember(ctx, member); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("staff")
	s.logger.Audit("create", "staff", member.StaffID, true, nil)
	return member, nil
}

// GetStaffMember retrieves a staff record
func (s *Service) GetStaffMember(ctx context.Context, staffID string) (*types.StaffMember, error) {
	return s.repository.GetStaffMemberByID(ctx, staffID)
}

// ListStaff lists staff records
func (s *Service) ListStaff(ctx context.Context, limit, offset int) ([]*types.StaffMember, error) {
	return s.repository.ListStaff(ctx, limit, offset)
}

// SearchStaff finds staff matching the search term
func (s *Service) SearchStaff(ctx context.Context, term string) ([]*types.StaffMember, error) {
	return s.repository.SearchStaff(ctx, term)
}

// RemoveStaffMember deletes a staff record
func (s *Service) RemoveStaffMember(ctx context.Context, staffID string) error {
	if err := s.repository.DeleteStaffMember(ctx, staffID); err != nil {
		return err
	}
	s.logger.Audit("delete", "staff", staffID, true, nil)
	return nil
}

// AddInventoryItem validates and stores a new inventory record. Name and
// category are the required fields.
func (s *Service) AddInventoryItem(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error) {
	if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Category) == "" {
		return nil, requiredFields("name and category are required fields")
	}
	if item.Quantity < 0 {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidNumberFormat,
			"quantity cannot be negative",
			nil,
		)
	}

	item.ItemID = types.NewRecordID(types.PrefixInventory)
	item.CreatedAt = time.Now()

	if err := s.repository.CreateInventoryItem(ctx, item); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("inventory")
	s.logger.Audit("create", "inventory", item.ItemID, true, nil)
	return item, nil
}

// GetInventoryItem retrieves an inventory record
func (s *Service) GetInventoryItem(ctx context.Context, itemID string) (*types.InventoryItem, error) {
	return s.repository.GetInventoryItemByID(ctx, itemID)
}

// ListInventory lists inventory records
func (s *Service) ListInventory(ctx context.Context, limit, offset int) ([]*types.InventoryItem, error) {
	return s.repository.ListInventory(ctx, limit, offset)
}

// SearchInventory finds inventory items matching the search term
func (s *Service) SearchInventory(ctx context.Context, term string) ([]*types.InventoryItem, error) {
	return s.repository.SearchInventory(ctx, term)
}

// RemoveInventoryItem deletes an inventory record
func (s *Service) RemoveInventoryItem(ctx context.Context, itemID string) error {
	if err := s.repository.DeleteInventoryItem(ctx, itemID); err != nil {
		return err
	}
	s.logger.Audit("delete", "inventory", itemID, true, nil)
	return nil
}

// WritePrescription validates and stores a new prescription. Both the
// patient and doctor references must resolve, and medicines must be given.
func (s *Service) WritePrescription(ctx context.Context, p *types.Prescription) (*types.Prescription, error) {
	if err := s.resolvePatient(ctx, p.PatientID); err != nil {
		return nil, err
	}
	if err := s.resolveDoctor(ctx, p.DoctorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Medicines) == "" {
		return nil, requiredFields("medicines is a required field")
	}

	now := time.Now()
	p.PrescriptionID = types.NewRecordID(types.PrefixPrescription)
	p.CreatedAt = now
	if p.PrescriptionDate == "" {
		p.PrescriptionDate = now.Format("2006-01-02")
	}

	if err := s.repository.CreatePrescription(ctx, p); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("prescriptions")
	s.logger.Audit("create", "prescription", p.PrescriptionID, true, nil)
	return p, nil
}

// GetPrescription retrieves a prescription record
func (s *Service) GetPrescription(ctx context.Context, prescriptionID string) (*types.Prescription, error) {
	return s.repository.GetPrescriptionByID(ctx, prescriptionID)
}

// GetPatientPrescriptions lists a patient's prescriptions
func (s *Service) GetPatientPrescriptions(ctx context.Context, patientID string) ([]*types.Prescription, error) {
	return s.repository.ListPrescriptionsByPatient(ctx, patientID)
}

// RemovePrescription deletes a prescription record
func (s *Service) RemovePrescription(ctx context.Context, prescriptionID string) error {
	if err := s.repository.DeletePrescription(ctx, prescriptionID); err != nil {
		return err
	}
	s.logger.Audit("delete", "prescription", prescriptionID, true, nil)
	return nil
}

// AddRoom validates and stores a new room record. Room type is required
// and the bed count must be positive.
func (s *Service) AddRoom(ctx context.Context, room *types.Room) (*types.Room, error) {
	if strings.TrimSpace(room.RoomType) == "" {
		return nil, requiredFields("room type is a required field")
	}
	if room.BedCount <= 0 {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidNumberFormat,
			"bed count must be positive",
			nil,
		)
	}

	room.RoomID = types.NewRecordID(types.PrefixRoom)
	room.CreatedAt = time.Now()
	room.AvailableBeds = room.BedCount
	if room.Status == "" {
		room.Status = types.RoomStatusAvailable
	}

	if err := s.repository.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("rooms")
	s.logger.Audit("create", "room", room.RoomID, true, nil)
	return room, nil
}

// GetRoom retrieves a room record
func (s *Service) GetRoom(ctx context.Context, roomID string) (*types.Room, error) {
	return s.repository.GetRoomByID(ctx, roomID)
}

// ListRooms lists all rooms
func (s *Service) ListRooms(ctx context.Context) ([]*types.Room, error) {
	return s.repository.ListRooms(ctx)
}

// SetRoomStatus changes a room's availability status
func (s *Service) SetRoomStatus(ctx context.Context, roomID, status string) error {
	switch status {
	case types.RoomStatusAvailable, types.RoomStatusOccupied, types.RoomStatusMaintenance:
	default:
		return types.NewValidationError(
			types.ErrCodeInvalidInput,
			"unknown room status: "+status,
			nil,
		)
	}

	if err := s.repository.UpdateRoomStatus(ctx, roomID, status); err != nil {
		return err
	}
	s.logger.Audit("update", "room", roomID, true, map[string]interface{}{"status": status})
	return nil
}

// RemoveRoom deletes a room record
func (s *Service) RemoveRoom(ctx context.Context, roomID string) error {
	if err := s.repository.DeleteRoom(ctx, roomID); err != nil {
		return err
	}
	s.logger.Audit("delete", "room", roomID, true, nil)
	return nil
}

// AdmitPatient validates and stores a new admission. The patient reference
// must resolve and the room must exist; admitting marks the room occupied.
func (s *Service) AdmitPatient(ctx context.Context, adm *types.Admission) (*types.Admission, error) {
	if err := s.resolvePatient(ctx, adm.PatientID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(adm.RoomID) == "" {
		return nil, requiredFields("room is a required field")
	}
	room, err := s.repository.GetRoomByID(ctx, adm.RoomID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	adm.AdmissionID = types.NewRecordID(types.PrefixAdmission)
	adm.CreatedAt = now
	adm.Status = "Admitted"
	if adm.AdmissionDate == "" {
		adm.AdmissionDate = now.Format("2006-01-02")
	}

	if err := s.repository.CreateAdmission(ctx, adm); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateRoomStatus(ctx, room.RoomID, types.RoomStatusOccupied); err != nil {
		s.logger.WithError(err).WithField("room_id", room.RoomID).
			Warn("Admission stored but room status update failed")
	}

	monitoring.RecordCreated("admissions")
	s.logger.Audit("create", "admission", adm.AdmissionID, true, nil)
	return adm, nil
}

// GetAdmission retrieves an admission record
func (s *Service) GetAdmission(ctx context.Context, admissionID string) (*types.Admission, error) {
	return s.repository.GetAdmissionByID(ctx, admissionID)
}

// GetPatientAdmissions lists a patient's admissions
func (s *Service) GetPatientAdmissions(ctx context.Context, patientID string) ([]*types.Admission, error) {
	return s.repository.ListAdmissionsByPatient(ctx, patientID)
}

// RemoveAdmission deletes an admission record
func (s *Service) RemoveAdmission(ctx context.Context, admissionID string) error {
	if err := s.repository.DeleteAdmission(ctx, admissionID); err != nil {
		return err
	}
	s.logger.Audit("delete", "admission", admissionID, true, nil)
	return nil
}

// OrderLabTest validates and stores a new lab test. The patient reference
// must resolve and the test name must be given.
func (s *Service) OrderLabTest(ctx context.Context, test *types.LabTest) (*types.LabTest, error) {
	if err := s.resolvePatient(ctx, test.PatientID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(test.TestName) == "" {
		return nil, requiredFields("test name is a required field")
	}

	now := time.Now()
	test.TestID = types.NewRecordID(types.PrefixLabTest)
	test.CreatedAt = now
	if test.Status == "" {
		test.Status = "Pending"
	}
	if test.TestDate == "" {
		test.TestDate = now.Format("2006-01-02")
		test.TestTime = now.Format("15:04")
	}

	if err := s.repository.CreateLabTest(ctx, test); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("lab_tests")
	s.logger.Audit("create", "lab_test", test.TestID, true, nil)
	return test, nil
}

// GetLabTest retrieves a lab test record
func (s *Service) GetLabTest(ctx context.Context, testID string) (*types.LabTest, error) {
	return s.repository.GetLabTestByID(ctx, testID)
}

// GetPatientLabTests lists a patient's lab tests
func (s *Service) GetPatientLabTests(ctx context.Context, patientID string) ([]*types.LabTest, error) {
	return s.repository.ListLabTestsByPatient(ctx, patientID)
}

// RemoveLabTest deletes a lab test record
func (s *Service) RemoveLabTest(ctx context.Context, testID string) error {
	if err := s.repository.DeleteLabTest(ctx, testID); err != nil {
		return err
	}
	s.logger.Audit("delete", "lab_test", testID, true, nil)
	return nil
}

// ScheduleOperation validates and stores a new operation. The patient
// reference must resolve and the operation name must be given.
func (s *Service) ScheduleOperation(ctx context.Context, op *types.Operation) (*types.Operation, error) {
	if err := s.resolvePatient(ctx, op.PatientID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(op.OperationName) == "" {
		return nil, requiredFields("operation name is a required field")
	}

	op.OperationID = types.NewRecordID(types.PrefixOperation)
	op.CreatedAt = time.Now()
	if op.Status == "" {
		op.Status = "Scheduled"
	}

	if err := s.repository.CreateOperation(ctx, op); err != nil {
		return nil, err
	}

	monitoring.RecordCreated("operations")
	s.logger.Audit("create", "operation", op.OperationID, true, nil)
	return op, nil
}

// GetOperation retrieves an operation record
func (s *Service) GetOperation(ctx context.Context, operationID string) (*types.Operation, error) {
	return s.repository.GetOperationByID(ctx, operationID)
}

// GetPatientOperations lists a patient's operations
func (s *Service) GetPatientOperations(ctx context.Context, patientID string) ([]*types.Operation, error) {
	return s.repository.ListOperationsByPatient(ctx, patientID)
}

// RemoveOperation deletes an operation record
func (s *Service) RemoveOperation(ctx context.Context, operationID string) error {
	if err := s.repository.DeleteOperation(ctx, operationID); err != nil {
		return err
	}
	s.logger.Audit("delete", "operation", operationID, true, nil)
	return nil
}
