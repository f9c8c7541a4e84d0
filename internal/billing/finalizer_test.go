package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

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

// MockBillStore is a mock implementation of BillStore
type MockBillStore struct {
	mock.Mock
}

func (m *MockBillStore) InsertBill(ctx context.Context, bill *types.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillStore) GetBillByID(ctx context.Context, billID string) (*types.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Bill), args.Error(1)
}

func (m *MockBillStore) ListBills(ctx context.Context, filters *types.BillFilters) ([]*types.Bill, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Bill), args.Error(1)
}

func (m *MockBillStore) ListBillsByPatient(ctx context.Context, patientID string) ([]*types.Bill, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Bill), args.Error(1)
}

func (m *MockBillStore) CountPendingBills(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// fixedClock returns a constant time for deterministic stamping
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newTestFinalizer(directory *MockPatientDirectory, store *MockBillStore) *Finalizer {
	clock := fixedClock{t: time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)}
	return NewFinalizer(directory, store, clock, logger.New("error"))
}

func draftWithStandardItems(t *testing.T) *Draft {
	t.Helper()
	draft := NewDraft()
	_, err := draft.AddItem("Consultation", "General checkup", "1", "500.0")
	require.NoError(t, err)
	_, err = draft.AddItem("Medicine", "Antibiotics", "2", "75.0")
	require.NoError(t, err)
	return draft
}

func TestFinalizeFullPayment(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)
	store.On("InsertBill", mock.Anything, mock.AnythingOfType("*types.Bill")).Return(nil)

	finalizer := newTestFinalizer(directory, store)
	draft := draftWithStandardItems(t)

	bill, err := finalizer.Finalize(context.Background(), "BILL0001", "PAT001", draft, types.PaymentMethodCash, "650.0")
	require.NoError(t, err)

	assert.Equal(t, "BILL0001", bill.BillID)
	assert.Equal(t, "PAT001", bill.PatientID)
	assert.Equal(t, "John Smith", bill.PatientName)
	assert.Equal(t, "650.00", bill.TotalAmount.StringFixed(2))
	assert.Equal(t, "650.00", bill.PaidAmount.StringFixed(2))
	assert.True(t, bill.DueAmount.IsZero())
	assert.Equal(t, types.BillStatusPaid, bill.Status)
	assert.Equal(t, "2024-03-15", bill.BillDate)
	assert.Equal(t, "14:30:45", bill.BillTime)
	assert.True(t, bill.InsuranceCovered.IsZero())
	require.Len(t, bill.Items, 2)

	// Draft is reset after a successful finalize
	assert.True(t, draft.Empty())
	assert.True(t, draft.CurrentTotal().IsZero())

	store.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestFinalizeNoPaymentIsPending(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)
	store.On("InsertBill", mock.Anything, mock.AnythingOfType("*types.Bill")).Return(nil)

	finalizer := newTestFinalizer(directory, store)

	// Blank paid amount is treated as zero, not an error
	bill, err := finalizer.Finalize(context.Background(), "BILL0002", "PAT001", draftWithStandardItems(t), "", "")
	require.NoError(t, err)

	assert.Equal(t, types.BillStatusPending, bill.Status)
	assert.True(t, bill.PaidAmount.IsZero())
	assert.Equal(t, "650.00", bill.DueAmount.StringFixed(2))
}

func TestFinalizePartialPayment(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)
	store.On("InsertBill", mock.Anything, mock.AnythingOfType("*types.Bill")).Return(nil)

	finalizer := newTestFinalizer(directory, store)

	bill, err := finalizer.Finalize(context.Background(), "BILL0003", "PAT001", draftWithStandardItems(t), types.PaymentMethodInsurance, "300.0")
	require.NoError(t, err)

	assert.Equal(t, types.BillStatusPartial, bill.Status)
	assert.Equal(t, "350.00", bill.DueAmount.StringFixed(2))
}

func TestFinalizeOverpaymentStaysPartial(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)
	store.On("InsertBill", mock.Anything, mock.AnythingOfType("*types.Bill")).Return(nil)

	finalizer := newTestFinalizer(directory, store)

	// Due goes negative; paid > 0 and due != 0 derives Partial
	bill, err := finalizer.Finalize(context.Background(), "BILL0004", "PAT001", draftWithStandardItems(t), types.PaymentMethodCash, "700")
	require.NoError(t, err)

	assert.Equal(t, types.BillStatusPartial, bill.Status)
	assert.Equal(t, "-50.00", bill.DueAmount.StringFixed(2))
}

func TestFinalizeEmptyDraft(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)

	finalizer := newTestFinalizer(directory, store)

	_, err := finalizer.Finalize(context.Background(), "BILL0005", "PAT001", NewDraft(), types.PaymentMethodCash, "100")
	require.Error(t, err)
	assert.Equal(t, types.ErrCodeEmptyBill, types.ErrorCode(err))

	// Nothing persisted
	store.AssertNotCalled(t, "InsertBill", mock.Anything, mock.Anything)
}

func TestFinalizeUnknownPatient(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT404").
		Return(nil, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found"))

	finalizer := newTestFinalizer(directory, store)
	draft := draftWithStandardItems(t)

	_, err := finalizer.Finalize(context.Background(), "BILL0006", "PAT404", draft, types.PaymentMethodCash, "650")
	require.Error(t, err)
	assert.Equal(t, types.ErrCodePatientNotSelected, types.ErrorCode(err))

	store.AssertNotCalled(t, "InsertBill", mock.Anything, mock.Anything)
	assert.Equal(t, 2, draft.ItemCount())
}

func TestFinalizeNoPatientSelected(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)

	finalizer := newTestFinalizer(directory, store)

	_, err := finalizer.Finalize(context.Background(), "BILL0007", "  ", draftWithStandardItems(t), types.PaymentMethodCash, "650")
	require.Error(t, err)
	assert.Equal(t, types.ErrCodePatientNotSelected, types.ErrorCode(err))

	// Directory is never consulted for a blank selection
	directory.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestFinalizeBadPaidAmount(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)

	finalizer := newTestFinalizer(directory, store)
	draft := draftWithStandardItems(t)

	for _, paid := range []string{"abc", "-10"} {
		_, err := finalizer.Finalize(context.Background(), "BILL0008", "PAT001", draft, types.PaymentMethodCash, paid)
		require.Error(t, err)
		assert.Equal(t, types.ErrCodeInvalidNumberFormat, types.ErrorCode(err))
	}

	store.AssertNotCalled(t, "InsertBill", mock.Anything, mock.Anything)
	assert.Equal(t, 2, draft.ItemCount())
}

func TestFinalizeUnknownPaymentMethod(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)

	finalizer := newTestFinalizer(directory, store)

	_, err := finalizer.Finalize(context.Background(), "BILL0009", "PAT001", draftWithStandardItems(t), "Barter", "650")
	require.Error(t, err)
	assert.Equal(t, types.ErrCodeInvalidInput, types.ErrorCode(err))
}

func TestFinalizePersistenceFailureKeepsDraft(t *testing.T) {
	directory := new(MockPatientDirectory)
	store := new(MockBillStore)
	directory.On("Lookup", mock.Anything, "PAT001").
		Return(&types.PatientRef{PatientID: "PAT001", Name: "John Smith"}, nil)
	store.On("InsertBill", mock.Anything, mock.AnythingOfType("*types.Bill")).
		Return(errors.New("connection refused")).Once()
	store.On("InsertBill", mock.Anything, mock.AnythingOfType("*types.Bill")).
		Return(nil).Once()

	finalizer := newTestFinalizer(directory, store)
	draft := draftWithStandardItems(t)

	_, err := finalizer.Finalize(context.Background(), "BILL0010", "PAT001", draft, types.PaymentMethodCash, "650")
	require.Error(t, err)
	assert.Equal(t, types.ErrCodePersistenceError, types.ErrorCode(err))

	// The entered items survive the failure for retry
	assert.Equal(t, 2, draft.ItemCount())
	assert.Equal(t, "650.00", draft.CurrentTotal().StringFixed(2))

	// Retrying the same call once the store recovers succeeds and resets the draft
	bill, err := finalizer.Finalize(context.Background(), "BILL0010", "PAT001", draft, types.PaymentMethodCash, "650")
	require.NoError(t, err)
	assert.Equal(t, types.BillStatusPaid, bill.Status)
	assert.True(t, draft.Empty())

	store.AssertExpectations(t)
}
