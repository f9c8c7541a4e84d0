package interfaces

import (
	"context"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// RecordsRepository persists the remaining hospital record modules: staff,
// inventory, prescriptions, rooms, admissions, lab tests and operations.
// Every module follows the same create/get/list/search/delete pattern.
type RecordsRepository interface {
	// Staff
	CreateStaffMember(ctx context.Context, member *types.StaffMember) error
	GetStaffMemberByID(ctx context.Context, staffID string) (*types.StaffMember, error)
	ListStaff(ctx context.Context, limit, offset int) ([]*types.StaffMember, error)
	SearchStaff(ctx context.Context, term string) ([]*types.StaffMember, error)
	DeleteStaffMember(ctx context.Context, staffID string) error
	CountStaff(ctx context.Context) (int, error)

	// Inventory
	CreateInventoryItem(ctx context.Context, item *types.InventoryItem) error
	GetInventoryItemByID(ctx context.Context, itemID string) (*types.InventoryItem, error)
	ListInventory(ctx context.Context, limit, offset int) ([]*types.InventoryItem, error)
	SearchInventory(ctx context.Context, term string) ([]*types.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, itemID string) error

	// Prescriptions
	CreatePrescription(ctx context.Context, p *types.Prescription) error
	GetPrescriptionByID(ctx context.Context, prescriptionID string) (*types.Prescription, error)
	ListPrescriptionsByPatient(ctx context.Context, patientID string) ([]*types.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID string) error

	// Rooms
	CreateRoom(ctx context.Context, room *types.Room) error
	GetRoomByID(ctx context.Context, roomID string) (*types.Room, error)
	ListRooms(ctx context.Context) ([]*types.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID, status string) error
	DeleteRoom(ctx context.Context, roomID string) error
	CountAvailableRooms(ctx context.Context) (int, error)

	// Admissions
	CreateAdmission(ctx context.Context, adm *types.Admission) error
	GetAdmissionByID(ctx context.Context, admissionID string) (*types.Admission, error)
	ListAdmissionsByPatient(ctx context.Context, patientID string) ([]*types.Admission, error)
	DeleteAdmission(ctx context.Context, admissionID string) error

	// Lab tests
	CreateLabTest(ctx context.Context, test *types.LabTest) error
	GetLabTestByID(ctx context.Context, testID string) (*types.LabTest, error)
	ListLabTestsByPatient(ctx context.Context, patientID string) ([]*types.LabTest, error)
	DeleteLabTest(ctx context.Context, testID string) error

	// Operations
	CreateOperation(ctx context.Context, op *types.Operation) error
	GetOperationByID(ctx context.Context, operationID string) (*types.Operation, error)
	ListOperationsByPatient(ctx context.Context, patientID string) ([]*types.Operation, error)
	DeleteOperation(ctx context.Context, operationID string) error
}
