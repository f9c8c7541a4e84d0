package billing

import (
	"context"
	"sync"

	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/monitoring"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// Service owns the single active bill draft and the finalizer. The draft
// itself is session-owned state with no internal locking; the service mutex
// serializes HTTP access to it so the accumulator stays a plain value type.
type Service struct {
	mu        sync.Mutex
	draft     *Draft
	finalizer *Finalizer
	store     interfaces.BillStore
	logger    *logger.Logger
}

// NewService creates the billing service
func NewService(directory interfaces.PatientDirectory, store interfaces.BillStore, clock Clock, log *logger.Logger) *Service {
	return &Service{
		draft:     NewDraft(),
		finalizer: NewFinalizer(directory, store, clock, log),
		store:     store,
		logger:    log,
	}
}

// AddItem adds a line item to the active draft
func (s *Service) AddItem(name, description, quantityInput, priceInput string) (*types.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.draft.AddItem(name, description, quantityInput, priceInput)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"item_name":     item.Name,
		"line_total":    item.LineTotal.StringFixed(2),
		"running_total": s.draft.CurrentTotal().StringFixed(2),
	}).Debug("Added line item to draft")

	return item, nil
}

// ClearDraft resets the active draft
func (s *Service) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Clear()
}

// CurrentTotal returns the draft's running total formatted to two decimals
func (s *Service) CurrentTotal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.CurrentTotal().StringFixed(2)
}

// DraftItems returns a copy of the draft's line items
func (s *Service) DraftItems() []types.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Items()
}

// GenerateBill pre-generates a bill identifier and finalizes the active
// draft into a persisted bill. The draft survives any failure and is reset
// only on success.
func (s *Service) GenerateBill(ctx context.Context, patientID string, method types.PaymentMethod, paidInput string) (*types.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	billID := types.NewRecordID(types.PrefixBill)

	bill, err := s.finalizer.Finalize(ctx, billID, patientID, s.draft, method, paidInput)
	if err != nil {
		return nil, err
	}

	monitoring.RecordBillGenerated(string(bill.Status), bill.TotalAmount.InexactFloat64())
	return bill, nil
}

// GetBill retrieves a persisted bill by identifier
func (s *Service) GetBill(ctx context.Context, billID string) (*types.Bill, error) {
	return s.store.GetBillByID(ctx, billID)
}

// ListBills retrieves persisted bills matching the filters
func (s *Service) ListBills(ctx context.Context, filters *types.BillFilters) ([]*types.Bill, error) {
	return s.store.ListBills(ctx, filters)
}

// GetPatientBills retrieves all bills for one patient
func (s *Service) GetPatientBills(ctx context.Context, patientID string) ([]*types.Bill, error) {
	return s.store.ListBillsByPatient(ctx, patientID)
}
