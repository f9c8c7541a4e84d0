package interfaces

import (
	"context"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// PatientDirectory resolves a patient identifier to its identity snapshot.
// Implemented by the registry service; consumed by the bill finalizer.
type PatientDirectory interface {
	Lookup(ctx context.Context, patientID string) (*types.PatientRef, error)
}

// BillStore is the append-only persistence sink for finalized bills.
// There is deliberately no update method: bills are immutable once inserted.
type BillStore interface {
	InsertBill(ctx context.Context, bill *types.Bill) error
	GetBillByID(ctx context.Context, billID string) (*types.Bill, error)
	ListBills(ctx context.Context, filters *types.BillFilters) ([]*types.Bill, error)
	ListBillsByPatient(ctx context.Context, patientID string) ([]*types.Bill, error)
	CountPendingBills(ctx context.Context) (int, error)
}

// BillingService is the billing workflow exposed to the HTTP layer
type BillingService interface {
	AddItem(name, description, quantityInput, priceInput string) (*types.LineItem, error)
	ClearDraft()
	CurrentTotal() string
	DraftItems() []types.LineItem
	GenerateBill(ctx context.Context, patientID string, method types.PaymentMethod, paidInput string) (*types.Bill, error)
	GetBill(ctx context.Context, billID string) (*types.Bill, error)
	ListBills(ctx context.Context, filters *types.BillFilters) ([]*types.Bill, error)
	GetPatientBills(ctx context.Context, patientID string) ([]*types.Bill, error)
}
