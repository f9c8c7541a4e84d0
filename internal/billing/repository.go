package billing

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/RajFruit/Hospital-Managment-System/pkg/database"
	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// pq error code for unique constraint violations
const pqUniqueViolation = "23505"

// Repository implements the BillStore interface on PostgreSQL. Line items
// are stored as a JSON snapshot in the items column, matching the bill's
// immutable, self-contained record shape.
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new billing repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.BillStore {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// InsertBill appends one finalized bill. A duplicate bill_id surfaces as a
// conflict error; bills are never updated in place.
func (r *Repository) InsertBill(ctx context.Context, bill *types.Bill) error {
	itemsJSON, err := json.Marshal(bill.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal bill items: %w", err)
	}

	query := `
		INSERT INTO billing (
			bill_id, patient_id, patient_name, bill_date, bill_time, items,
			total_amount, paid_amount, due_amount, payment_method,
			insurance_covered, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		bill.BillID,
		bill.PatientID,
		bill.PatientName,
		bill.BillDate,
		bill.BillTime,
		string(itemsJSON),
		bill.TotalAmount,
		bill.PaidAmount,
		bill.DueAmount,
		string(bill.PaymentMethod),
		bill.InsuranceCovered,
		string(bill.Status),
		bill.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return types.NewConflictError(types.ErrCodeDuplicateID,
				fmt.Sprintf("bill %s already exists", bill.BillID), err)
		}
		r.logger.WithError(err).WithField("bill_id", bill.BillID).Error("Failed to insert bill")
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"bill_id":    bill.BillID,
		"patient_id": bill.PatientID,
	}).Info("Inserted bill")
	return nil
}

// GetBillByID retrieves a bill by its identifier
func (r *Repository) GetBillByID(ctx context.Context, billID string) (*types.Bill, error) {
	query := `
		SELECT bill_id, patient_id, patient_name, bill_date, bill_time, items,
			   total_amount, paid_amount, due_amount, payment_method,
			   insurance_covered, status, created_at
		FROM billing
		WHERE bill_id = $1`

	bill, err := scanBill(r.db.QueryRowContext(ctx, query, billID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				fmt.Sprintf("bill not found: %s", billID))
		}
		r.logger.WithError(err).WithField("bill_id", billID).Error("Failed to get bill")
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return bill, nil
}

// ListBills retrieves bills matching the given filters, newest first
func (r *Repository) ListBills(ctx context.Context, filters *types.BillFilters) ([]*types.Bill, error) {
	query := `
		SELECT bill_id, patient_id, patient_name, bill_date, bill_time, items,
			   total_amount, paid_amount, due_amount, payment_method,
			   insurance_covered, status, created_at
		FROM billing
		WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filters != nil {
		if filters.PatientID != "" {
			query += fmt.Sprintf(" AND patient_id = $%d", argIndex)
			args = append(args, filters.PatientID)
			argIndex++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argIndex)
			args = append(args, string(filters.Status))
			argIndex++
		}
		if filters.BillDate != "" {
			query += fmt.Sprintf(" AND bill_date = $%d", argIndex)
			args = append(args, filters.BillDate)
			argIndex++
		}
	}

	query += " ORDER BY created_at DESC"

	if filters != nil && filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to list bills")
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*types.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}

	return bills, rows.Err()
}

// ListBillsByPatient retrieves all bills for one patient, newest first
func (r *Repository) ListBillsByPatient(ctx context.Context, patientID string) ([]*types.Bill, error) {
	return r.ListBills(ctx, &types.BillFilters{PatientID: patientID})
}

// CountPendingBills counts bills with no payment recorded yet
func (r *Repository) CountPendingBills(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM billing WHERE status = $1`,
		string(types.BillStatusPending),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending bills: %w", err)
	}
	return count, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBill(row rowScanner) (*types.Bill, error) {
	var bill types.Bill
	var itemsJSON string
	var paymentMethod, status string

	err := row.Scan(
		&bill.BillID,
		&bill.PatientID,
		&bill.PatientName,
		&bill.BillDate,
		&bill.BillTime,
		&itemsJSON,
		&bill.TotalAmount,
		&bill.PaidAmount,
		&bill.DueAmount,
		&paymentMethod,
		&bill.InsuranceCovered,
		&status,
		&bill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(itemsJSON), &bill.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bill items: %w", err)
	}

	bill.PaymentMethod = types.PaymentMethod(paymentMethod)
	bill.Status = types.BillStatus(status)
	return &bill, nil
}
