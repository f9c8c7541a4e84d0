package records

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// MockRecordsRepository is a mock implementation of RecordsRepository
type MockRecordsRepository struct {
	mock.Mock
}

func (m *MockRecordsRepository) CreateStaffMember(ctx context.Context, member *types.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockRecordsRepository) GetStaffMemberByID(ctx context.Context, staffID string) (*types.StaffMember, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.StaffMember), args.Error(1)
}

func (m *MockRecordsRepository) ListStaff(ctx context.Context, limit, offset int) ([]*types.StaffMember, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.StaffMember), args.Error(1)
}

func (m *MockRecordsRepository) SearchStaff(ctx context.Context, term string) ([]*types.StaffMember, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.StaffMember), args.Error(1)
}

func (m *MockRecordsRepository) DeleteStaffMember(ctx context.Context, staffID string) error {
	args := m.Called(ctx, staffID)
	return args.Error(0)
}

func (m *MockRecordsRepository) CountStaff(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordsRepository) CreateInventoryItem(ctx context.Context, item *types.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRecordsRepository) GetInventoryItemByID(ctx context.Context, itemID string) (*types.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.InventoryItem), args.Error(1)
}

func (m *MockRecordsRepository) ListInventory(ctx context.Context, limit, offset int) ([]*types.InventoryItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.InventoryItem), args.Error(1)
}

func (m *MockRecordsRepository) SearchInventory(ctx context.Context, term string) ([]*types.InventoryItem, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.InventoryItem), args.Error(1)
}

func (m *MockRecordsRepository) DeleteInventoryItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockRecordsRepository) CreatePrescription(ctx context.Context, p *types.Prescription) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRecordsRepository) GetPrescriptionByID(ctx context.Context, prescriptionID string) (*types.Prescription, error) {
	args := m.Called(ctx, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Prescription), args.Error(1)
}

func (m *MockRecordsRepository) ListPrescriptionsByPatient(ctx context.Context, patientID string) ([]*types.Prescription, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Prescription), args.Error(1)
}

func (m *MockRecordsRepository) DeletePrescription(ctx context.Context, prescriptionID string) error {
	args := m.Called(ctx, prescriptionID)
	return args.Error(0)
}

func (m *MockRecordsRepository) CreateRoom(ctx context.Context, room *types.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRecordsRepository) GetRoomByID(ctx context.Context, roomID string) (*types.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Room), args.Error(1)
}

func (m *MockRecordsRepository) ListRooms(ctx context.Context) ([]*types.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Room), args.Error(1)
}

func (m *MockRecordsRepository) UpdateRoomStatus(ctx context.Context, roomID, status string) error {
	args := m.Called(ctx, roomID, status)
	return args.Error(0)
}

func (m *MockRecordsRepository) DeleteRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockRecordsRepository) CountAvailableRooms(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordsRepository) CreateAdmission(ctx context.Context, adm *types.Admission) error {
	args := m.Called(ctx, adm)
	return args.Error(0)
}

func (m *MockRecordsRepository) GetAdmissionByID(ctx context.Context, admissionID string) (*types.Admission, error) {
	args := m.Called(ctx, admissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Admission), args.Error(1)
}

func (m *MockRecordsRepository) ListAdmissionsByPatient(ctx context.Context, patientID string) ([]*types.Admission, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Admission), args.Error(1)
}

func (m *MockRecordsRepository) DeleteAdmission(ctx context.Context, admissionID string) error {
	args := m.Called(ctx, admissionID)
	return args.Error(0)
}

func (m *MockRecordsRepository) CreateLabTest(ctx context.Context, test *types.LabTest) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockRecordsRepository) GetLabTestByID(ctx context.Context, testID string) (*types.LabTest, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LabTest), args.Error(1)
}

func (m *MockRecordsRepository) ListLabTestsByPatient(ctx context.Context, patientID string) ([]*types.LabTest, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.LabTest), args.Error(1)
}

func (m *MockRecordsRepository) DeleteLabTest(ctx context.Context, testID string) error {
	args := m.Called(ctx, testID)
	return args.Error(0)
}

func (m *MockRecordsRepository) CreateOperation(ctx context.Context, op *types.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockRecordsRepository) GetOperationByID(ctx context.Context, operationID string) (*types.Operation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Operation), args.Error(1)
}

func (m *MockRecordsRepository) ListOperationsByPatient(ctx context.Context, patientID string) ([]*types.Operation, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Operation), args.Error(1)
}

func (m *MockRecordsRepository) DeleteOperation(ctx context.Context, operationID string) error {
	args := m.Called(ctx, operationID)
	return args.Error(0)
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

func newTestService() (*Service, *MockRecordsRepository, *MockPatientDirectory, *MockDoctorDirectory) {
	repo := new(MockRecordsRepository)
	patients := new(MockPatientDirectory)
	doctors := new(MockDoctorDirectory)
	svc := NewService(repo, patients, doctors, logger.New("error"))
	return svc, repo, patients, doctors
}

func TestAddStaffMember(t *testing.T) {
	svc, repo, _, _ := newTestService()

	repo.On("CreateStaffMember", mock.Anything, mock.AnythingOfType("*types.StaffMember")).Return(nil)

	member, err := svc.AddStaffMember(context.Background(), &types.StaffMember{
		Name:   "Grace Mensah",
		Role:   "Nurse",
		Salary: decimal.NewFromInt(42000),
	})

	require.NoError(t, err)
	assert.Contains(t, member.StaffID, types.PrefixStaff)
	assert.Equal(t, "Active", member.Status)
	repo.AssertExpectations(t)
}

func TestAddStaffMemberMissingRole(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.AddStaffMember(context.Background(), &types.StaffMember{Name: "Grace Mensah"})

	require.Error(t, err)
	assert.Equal(t, types.ErrCodeRequiredField, types.ErrorCode(err))
	repo.AssertNotCalled(t, "CreateStaffMember", mock.Anything, mock.Anything)
}

func TestAddInventoryItem(t *testing.T) {
	svc, repo, _, _ := newTestService()

	repo.On("CreateInventoryItem", mock.Anything, mock.AnythingOfType("*types.InventoryItem")).Return(nil)

	item, err := svc.AddInventoryItem(context.Background(), &types.InventoryItem{
		Name:     "Surgical Gloves",
		Category: "Consumables",
		Quantity: 500,
	})

	require.NoError(t, err)
	assert.Contains(t, item.ItemID, types.PrefixInventory)
	repo.AssertExpectations(t)
}

func TestAddInventoryItemNegativeQuantity(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.AddInventoryItem(context.Background(), &types.InventoryItem{
		Name:     "Surgical Gloves",
		Category: "Consumables",
		Quantity: -5,
	})

	require.Error(t, err)
	assert.Equal(t, types.ErrCodeInvalidNumberFormat, types.ErrorCode(err))
	repo.AssertNotCalled(t, "CreateInventoryItem", mock.Anything, mock.Anything)
}

func TestWritePrescription(t *testing.T) {
	svc, repo, patients, doctors := newTestService()

	patients.On("Lookup", mock.Anything, "PAT11112222").
		Return(&types.PatientRef{PatientID: "PAT11112222", Name: "John Smith"}, nil)
	doctors.On("GetDoctorByID", mock.Anything, "DOC33334444").
		Return(&types.Doctor{DoctorID: "DOC33334444", Name: "Dr. Adams"}, nil)
	repo.On("CreatePrescription", mock.Anything, mock.AnythingOfType("*types.Prescription")).Return(nil)

	p, err := svc.WritePrescription(context.Background(), &types.Prescription{
		PatientID: "PAT11112222",
		DoctorID:  "DOC33334444",
		Medicines: "Amoxicillin 500mg",
	})

	require.NoError(t, err)
	assert.Contains(t, p.PrescriptionID, types.PrefixPrescription)
	assert.NotEmpty(t, p.PrescriptionDate)
	repo.AssertExpectations(t)
}

func TestWritePrescriptionUnknownPatient(t *testing.T) {
	svc, repo, patients, _ := newTestService()

	patients.On("Lookup", mock.Anything, "PATMISSING1").
		Return(nil, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found"))

	_, err := svc.WritePrescription(context.Background(), &types.Prescription{
		PatientID: "PATMISSING1",
		DoctorID:  "DOC33334444",
		Medicines: "Amoxicillin 500mg",
	})

	require.Error(t, err)
	assert.Equal(t, types.ErrCodePatientNotSelected, types.ErrorCode(err))
	repo.AssertNotCalled(t, "CreatePrescription", mock.Anything, mock.Anything)
}

func TestWritePrescriptionMissingMedicines(t *testing.T) {
	svc, repo, patients, doctors := newTestService()

	patients.On("Lookup", mock.Anything, "PAT11112222").
		Return(&types.PatientRef{PatientID: "PAT11112222", Name: "John Smith"}, nil)
	doctors.On("GetDoctorByID", mock.Anything, "DOC33334444").
		Return(&types.Doctor{DoctorID: "DOC33334444"}, nil)

	_, err := svc.WritePrescription(context.Background(), &types.Prescription{
		PatientID: "PAT11112222",
		DoctorID:  "DOC33334444",
	})

	require.Error(t, err)
	assert.Equal(t, types.ErrCodeRequiredField, types.ErrorCode(err))
	repo.AssertNotCalled(t, "CreatePrescription", mock.Anything, mock.Anything)
}

func TestAddRoom(t *testing.T) {
	svc, repo, _, _ := newTestService()

	repo.On("CreateRoom", mock.Anything, mock.AnythingOfType("*types.Room")).Return(nil)

	room, err := svc.AddRoom(context.Background(), &types.Room{
		RoomType:    "General Ward",
		Floor:       2,
		BedCount:    4,
		PricePerDay: decimal.NewFromInt(150),
	})

	require.NoError(t, err)
	assert.Contains(t, room.RoomID, types.PrefixRoom)
	assert.Equal(t, types.RoomStatusAvailable, room.Status)
	assert.Equal(t, 4, room.AvailableBeds)
	repo.AssertExpectations(t)
}

func TestAddRoomInvalidBedCount(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.AddRoom(context.Background(), &types.Room{RoomType: "ICU", BedCount: 0})

	require.Error(t, err)
	assert.Equal(t, types.ErrCodeInvalidNumberFormat, types.ErrorCode(err))
	repo.AssertNotCalled(t, "CreateRoom", mock.Anything, mock.Anything)
}

func TestSetRoomStatusUnknownStatus(t *testing.T) {
	svc, repo, _, _ := newTestService()

	err := svc.SetRoomStatus(context.Background(), "ROOM12345678", "Haunted")

	require.Error(t, err)
	assert.Equal(t, types.ErrCodeInvalidInput, types.ErrorCode(err))
	repo.AssertNotCalled(t, "UpdateRoomStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmitPatient(t *testing.T) {
	svc, repo, patients, _ := newTestService()

	patients.On("Lookup", mock.Anything, "PAT11112222").
		Return(&types.PatientRef{PatientID: "PAT11112222", Name: "John Smith"}, nil)
	repo.On("GetRoomByID", mock.Anything, "ROOM12345678").
		Return(&types.Room{RoomID: "ROOM12345678", RoomType: "General Ward", Status: types.RoomStatusAvailable}, nil)
	repo.On("CreateAdmission", mock.Anything, mock.AnythingOfType("*types.Admission")).Return(nil)
	repo.On("UpdateRoomStatus", mock.Anything, "ROOM12345678", types.RoomStatusOccupied).Return(nil)

	adm, err := svc.AdmitPatient(context.Background(), &types.Admission{
		PatientID: "PAT11112222",
		RoomID:    "ROOM12345678",
		Reason:    "Observation",
	})

	require.NoError(t, err)
	assert.Contains(t, adm.AdmissionID, types.PrefixAdmission)
	assert.Equal(t, "Admitted", adm.Status)
	assert.NotEmpty(t, adm.AdmissionDate)
	repo.AssertExpectations(t)
}

func TestAdmitPatientUnknownRoom(t *testing.T) {
	svc, repo, patients, _ := newTestService()

	patients.On("Lookup", mock.Anything, "PAT11112222").
		Return(&types.PatientRef{PatientID: "PAT11112222"}, nil)
	repo.On("GetRoomByID", mock.Anything, "ROOMMISSING9").
		Return(nil, types.NewNotFoundError(types.ErrCodeNotFound, "room not found"))

	_, err := svc.AdmitPatient(context.Background(), &types.Admission{
		PatientID: "PAT11112222",
		RoomID:    "ROOMMISSING9",
	})

	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.ErrorTypeNotFound))
	repo.AssertNotCalled(t, "CreateAdmission", mock.Anything, mock.Anything)
}

func TestOrderLabTest(t *testing.T) {
	svc, repo, patients, _ := newTestService()

	patients.On("Lookup", mock.Anything, "PAT11112222").
		Return(&types.PatientRef{PatientID: "PAT11112222"}, nil)
	repo.On("CreateLabTest", mock.Anything, mock.AnythingOfType("*types.LabTest")).Return(nil)

	test, err := svc.OrderLabTest(context.Background(), &types.LabTest{
		PatientID: "PAT11112222",
		TestName:  "Complete Blood Count",
	})

	require.NoError(t, err)
	assert.Contains(t, test.TestID, types.PrefixLabTest)
	assert.Equal(t, "Pending", test.Status)
	repo.AssertExpectations(t)
}

func TestOrderLabTestMissingName(t *testing.T) {
	svc, repo, patients, _ := newTestService()

	patients.On("Lookup", mock.Anything, "PAT11112222").
		Return(&types.PatientRef{PatientID: "PAT11112222"}, nil)

	_, err := svc.OrderLabTest(context.Background(), &types.LabTest{PatientID: "PAT11112222"})

	require.Error(t, err)
	assert.Equal(t, types.ErrCodeRequiredField, types.ErrorCode(err))
	repo.AssertNotCalled(t, "CreateLabTest", mock.Anything, mock.Anything)
}

func TestScheduleOperation(t *testing.T) {
	svc, repo, patients, _ := newTestService()

	patients.On("Lookup", mock.Anything, "PAT11112222").
		Return(&types.PatientRef{PatientID: "PAT11112222"}, nil)
	repo.On("CreateOperation", mock.Anything, mock.AnythingOfType("*types.Operation")).Return(nil)

	op, err := svc.ScheduleOperation(context.Background(), &types.Operation{
		PatientID:     "PAT11112222",
		OperationName: "Appendectomy",
	})

	require.NoError(t, err)
	assert.Contains(t, op.OperationID, types.PrefixOperation)
	assert.Equal(t, "Scheduled", op.Status)
	repo.AssertExpectations(t)
}

func TestScheduleOperationBlankPatient(t *testing.T) {
	svc, repo, patients, _ := newTestService()

	_, err := svc.ScheduleOperation(context.Background(), &types.Operation{
		OperationName: "Appendectomy",
	})

	require.Error(t, err)
	assert.Equal(t, types.ErrCodePatientNotSelected, types.ErrorCode(err))
	patients.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateOperation", mock.Anything, mock.Anything)
}
