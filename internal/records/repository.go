package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/RajFruit/Hospital-Managment-System/pkg/database"
	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

const pqUniqueViolation = "23505"

// Repository implements the RecordsRepository interface on PostgreSQL.
// Staff and inventory live here; clinical records (prescriptions, lab
// tests, operations) and facility records (rooms, admissions) are in
// their sibling files.
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new records repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.RecordsRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// duplicateOrWrap maps a unique violation to a conflict error, anything
// else to a wrapped internal error
func (r *Repository) duplicateOrWrap(err error, recordType, recordID string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return types.NewConflictError(types.ErrCodeDuplicateID,
			fmt.Sprintf("%s %s already exists", recordType, recordID), err)
	}
	r.logger.WithError(err).WithField("record_id", recordID).Error("Failed to insert " + recordType)
	return fmt.Errorf("failed to insert %s: %w", recordType, err)
}

func notFoundOrWrap(err error, recordType, recordID string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("%s not found: %s", recordType, recordID))
	}
	return fmt.Errorf("failed to get %s: %w", recordType, err)
}

// deleteByID deletes one row by its record identifier column
func (r *Repository) deleteByID(ctx context.Context, table, column, recordType, recordID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, column)
	result, err := r.db.ExecContext(ctx, query, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", recordType, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("%s not found: %s", recordType, recordID))
	}

	return nil
}

const staffColumns = `
	staff_id, name, role, department, phone, email, salary, hire_date,
	shift, status, created_at`

// CreateStaffMember inserts a new staff record
func (r *Repository) CreateStaffMember(ctx context.Context, member *types.StaffMember) error {
	query := `
		INSERT INTO staff (
			staff_id, name, role, department, phone, email, salary,
			hire_date, shift, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		member.StaffID, member.Name, member.Role, member.Department,
		member.Phone, member.Email, member.Salary, member.HireDate,
		member.Shift, member.Status, member.CreatedAt,
	)
	if err != nil {
		return r.duplicateOrWrap(err, "staff member", member.StaffID)
	}
	return nil
}

// GetStaffMemberByID retrieves a staff member by identifier
func (r *Repository) GetStaffMemberByID(ctx context.Context, staffID string) (*types.StaffMember, error) {
	query := `SELECT` + staffColumns + ` FROM staff WHERE staff_id = $1`

	var m types.StaffMember
	err := r.db.QueryRowContext(ctx, query, staffID).Scan(
		&m.StaffID, &m.Name, &m.Role, &m.Department, &m.Phone, &m.Email,
		&m.Salary, &m.HireDate, &m.Shift, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrWrap(err, "staff member", staffID)
	}
	return &m, nil
}

// ListStaff retrieves staff members ordered by name
func (r *Repository) ListStaff(ctx context.Context, limit, offset int) ([]*types.StaffMember, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT` + staffColumns + ` FROM staff ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	return collectStaff(rows)
}

// SearchStaff finds staff whose id, name or role contains the term
func (r *Repository) SearchStaff(ctx context.Context, term string) ([]*types.StaffMember, error) {
	query := `SELECT` + staffColumns + ` FROM staff
		WHERE staff_id ILIKE $1 OR name ILIKE $1 OR role ILIKE $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search staff: %w", err)
	}
	defer rows.Close()

	return collectStaff(rows)
}

// DeleteStaffMember removes a staff record
func (r *Repository) DeleteStaffMember(ctx context.Context, staffID string) error {
	return r.deleteByID(ctx, "staff", "staff_id", "staff member", staffID)
}

// CountStaff returns the number of staff records
func (r *Repository) CountStaff(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return count, nil
}

func collectStaff(rows *sql.Rows) ([]*types.StaffMember, error) {
	var staff []*types.StaffMember
	for rows.Next() {
		var m types.StaffMember
		err := rows.Scan(
			&m.StaffID, &m.Name, &m.Role, &m.Department, &m.Phone, &m.Email,
			&m.Salary, &m.HireDate, &m.Shift, &m.Status, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		staff = append(staff, &m)
	}
	return staff, rows.Err()
}

const inventoryColumns = `
	item_id, name, category, quantity, unit, price, supplier, expiry_date,
	reorder_level, location, created_at`

// CreateInventoryItem inserts a new inventory record
func (r *Repository) CreateInventoryItem(ctx context.Context, item *types.InventoryItem) error {
	query := `
		INSERT INTO inventory (
			item_id, name, category, quantity, unit, price, supplier,
			expiry_date, reorder_level, location, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		item.ItemID, item.Name, item.Category, item.Quantity, item.Unit,
		item.Price, item.Supplier, item.ExpiryDate, item.ReorderLevel,
		item.Location, item.CreatedAt,
	)
	if err != nil {
		return r.duplicateOrWrap(err, "inventory item", item.ItemID)
	}
	return nil
}

// GetInventoryItemByID retrieves an inventory item by identifier
func (r *Repository) GetInventoryItemByID(ctx context.Context, itemID string) (*types.InventoryItem, error) {
	query := `SELECT` + inventoryColumns + ` FROM inventory WHERE item_id = $1`

	var item types.InventoryItem
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&item.ItemID, &item.Name, &item.Category, &item.Quantity, &item.Unit,
		&item.Price, &item.Supplier, &item.ExpiryDate, &item.ReorderLevel,
		&item.Location, &item.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrWrap(err, "inventory item", itemID)
	}
	return &item, nil
}

// ListInventory retrieves inventory items ordered by name
func (r *Repository) ListInventory(ctx context.Context, limit, offset int) ([]*types.InventoryItem, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT` + inventoryColumns + ` FROM inventory ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	return collectInventory(rows)
}

// SearchInventory finds items whose id, name or category contains the term
func (r *Repository) SearchInventory(ctx context.Context, term string) ([]*types.InventoryItem, error) {
	query := `SELECT` + inventoryColumns + ` FROM inventory
		WHERE item_id ILIKE $1 OR name ILIKE $1 OR category ILIKE $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search inventory: %w", err)
	}
	defer rows.Close()

	return collectInventory(rows)
}

// DeleteInventoryItem removes an inventory record
func (r *Repository) DeleteInventoryItem(ctx context.Context, itemID string) error {
	return r.deleteByID(ctx, "inventory", "item_id", "inventory item", itemID)
}

func collectInventory(rows *sql.Rows) ([]*types.InventoryItem, error) {
	var items []*types.InventoryItem
	for rows.Next() {
		var item types.InventoryItem
		err := rows.Scan(
			&item.ItemID, &item.Name, &item.Category, &item.Quantity, &item.Unit,
			&item.Price, &item.Supplier, &item.ExpiryDate, &item.ReorderLevel,
			&item.Location, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
