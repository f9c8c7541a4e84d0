package billing

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// Clock supplies the finalization timestamp. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now
func SystemClock() Clock { return systemClock{} }

// Finalizer closes a draft into an immutable persisted bill. It validates the
// draft is finalize-ready, reconciles paid against total and derives the
// payment status.
type Finalizer struct {
	directory interfaces.PatientDirectory
	store     interfaces.BillStore
	clock     Clock
	logger    *logger.Logger
}

// NewFinalizer creates a bill finalizer. A nil clock defaults to the system
// clock.
func NewFinalizer(directory interfaces.PatientDirectory, store interfaces.BillStore, clock Clock, log *logger.Logger) *Finalizer {
	if clock == nil {
		clock = systemClock{}
	}
	return &Finalizer{
		directory: directory,
		store:     store,
		clock:     clock,
		logger:    log,
	}
}

// Finalize validates the draft, computes the payment reconciliation and
// persists one bill record. Preconditions are checked in order and the first
// failure aborts with nothing written:
//
//  1. patientID must resolve through the patient directory
//  2. the draft must contain at least one line item
//  3. paidInput, when present, must parse as a non-negative number
//     (blank means zero, not an error)
//
// On successful persistence the draft is cleared. On a persistence failure
// the draft is left intact so the operator can retry with the same items.
func (f *Finalizer) Finalize(ctx context.Context, billID, patientID string, draft *Draft, method types.PaymentMethod, paidInput string) (*types.Bill, error) {
	patient, err := f.lookupPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if draft.Empty() {
		return nil, types.NewValidationError(
			types.ErrCodeEmptyBill,
			"at least one item is required to generate a bill",
			nil,
		)
	}

	paidAmount, err := parsePaidAmount(paidInput)
	if err != nil {
		return nil, err
	}

	if !method.Valid() {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidInput,
			"unknown payment method",
			map[string]interface{}{"payment_method": string(method)},
		)
	}

	now := f.clock.Now()
	totalAmount := draft.CurrentTotal()

	bill := &types.Bill{
		BillID:           billID,
		PatientID:        patient.PatientID,
		PatientName:      patient.Name,
		BillDate:         now.Format("2006-01-02"),
		BillTime:         now.Format("15:04:05"),
		Items:            draft.Items(),
		TotalAmount:      totalAmount,
		PaidAmount:       paidAmount,
		DueAmount:        totalAmount.Sub(paidAmount),
		PaymentMethod:    method,
		InsuranceCovered: decimal.Zero, // reserved, unused by current logic
		Status:           types.DeriveBillStatus(totalAmount, paidAmount),
		CreatedAt:        now,
	}

	if err := f.store.InsertBill(ctx, bill); err != nil {
		// Draft intentionally not cleared: the entered items survive for retry.
		f.logger.WithError(err).WithField("bill_id", billID).Error("Failed to persist bill")
		return nil, types.NewInternalError(
			types.ErrCodePersistenceError,
			"failed to save bill",
			err,
		)
	}

	draft.Clear()

	f.logger.WithFields(map[string]interface{}{
		"bill_id":      bill.BillID,
		"patient_id":   bill.PatientID,
		"total_amount": bill.TotalAmount.StringFixed(2),
		"status":       bill.Status,
	}).Info("Bill generated")

	return bill, nil
}

// lookupPatient resolves the patient reference or reports that no patient
// was selected
func (f *Finalizer) lookupPatient(ctx context.Context, patientID string) (*types.PatientRef, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, types.NewValidationError(
			types.ErrCodePatientNotSelected,
			"a patient must be selected before generating a bill",
			nil,
		)
	}

	patient, err := f.directory.Lookup(ctx, patientID)
	if err != nil {
		return nil, types.NewValidationError(
			types.ErrCodePatientNotSelected,
			"selected patient was not found",
			map[string]interface{}{"patient_id": patientID},
		)
	}

	return patient, nil
}

// parsePaidAmount treats a blank input as zero; anything else must parse as
// a non-negative number
func parsePaidAmount(paidInput string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(paidInput)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	paid, err := decimal.NewFromString(trimmed)
	if err != nil || paid.IsNegative() {
		return decimal.Zero, types.NewValidationError(
			types.ErrCodeInvalidNumberFormat,
			"paid amount must be a non-negative number",
			map[string]interface{}{"paid_amount": paidInput},
		)
	}

	return paid, nil
}
