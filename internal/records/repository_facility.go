package records

import (
	"context"
	"fmt"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

const roomColumns = `
	room_id, room_type, floor, bed_count, available_beds, price_per_day,
	facilities, status, created_at`

// CreateRoom inserts a new room record
func (r *Repository) CreateRoom(ctx context.Context, room *types.Room) error {
	query := `
		INSERT INTO rooms (
			room_id, room_type, floor, bed_count, available_beds,
			price_per_day, facilities, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		room.RoomID, room.RoomType, room.Floor, room.BedCount,
		room.AvailableBeds, room.PricePerDay, room.Facilities,
		room.Status, room.CreatedAt,
	)
	if err != nil {
		return r.duplicateOrWrap(err, "room", room.RoomID)
	}
	return nil
}

// GetRoomByID retrieves a room by identifier
func (r *Repository) GetRoomByID(ctx context.Context, roomID string) (*types.Room, error) {
	query := `SELECT` + roomColumns + ` FROM rooms WHERE room_id = $1`

	var room types.Room
	err := r.db.QueryRowContext(ctx, query, roomID).Scan(
		&room.RoomID, &room.RoomType, &room.Floor, &room.BedCount,
		&room.AvailableBeds, &room.PricePerDay, &room.Facilities,
		&room.Status, &room.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrWrap(err, "room", roomID)
	}
	return &room, nil
}

// ListRooms retrieves all rooms ordered by floor and identifier
func (r *Repository) ListRooms(ctx context.Context) ([]*types.Room, error) {
	query := `SELECT` + roomColumns + ` FROM rooms ORDER BY floor, room_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*types.Room
	for rows.Next() {
		var room types.Room
		err := rows.Scan(
			&room.RoomID, &room.RoomType, &room.Floor, &room.BedCount,
			&room.AvailableBeds, &room.PricePerDay, &room.Facilities,
			&room.Status, &room.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, &room)
	}
	return rooms, rows.Err()
}

// UpdateRoomStatus changes a room's availability status
func (r *Repository) UpdateRoomStatus(ctx context.Context, roomID, status string) error {
	query := `UPDATE rooms SET status = $1 WHERE room_id = $2`

	result, err := r.db.ExecContext(ctx, query, status, roomID)
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "room not found: "+roomID)
	}

	return nil
}

// DeleteRoom removes a room record
func (r *Repository) DeleteRoom(ctx context.Context, roomID string) error {
	return r.deleteByID(ctx, "rooms", "room_id", "room", roomID)
}

// CountAvailableRooms returns the number of rooms currently available
func (r *Repository) CountAvailableRooms(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rooms WHERE status = $1`, types.RoomStatusAvailable,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count available rooms: %w", err)
	}
	return count, nil
}

const admissionColumns = `
	admission_id, patient_id, room_id, admission_date, discharge_date,
	reason, attending_doctor, status, estimated_cost, paid_amount,
	created_at`

// CreateAdmission inserts a new admission record
func (r *Repository) CreateAdmission(ctx context.Context, adm *types.Admission) error {
	query := `
		INSERT INTO admissions (
			admission_id, patient_id, room_id, admission_date,
			discharge_date, reason, attending_doctor, status,
			estimated_cost, paid_amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		adm.AdmissionID, adm.PatientID, adm.RoomID, adm.AdmissionDate,
		adm.DischargeDate, adm.Reason, adm.AttendingDoctor, adm.Status,
		adm.EstimatedCost, adm.PaidAmount, adm.CreatedAt,
	)
	if err != nil {
		return r.duplicateOrWrap(err, "admission", adm.AdmissionID)
	}
	return nil
}

// GetAdmissionByID retrieves an admission by identifier
func (r *Repository) GetAdmissionByID(ctx context.Context, admissionID string) (*types.Admission, error) {
	query := `SELECT` + admissionColumns + ` FROM admissions WHERE admission_id = $1`

	var adm types.Admission
	err := r.db.QueryRowContext(ctx, query, admissionID).Scan(
		&adm.AdmissionID, &adm.PatientID, &adm.RoomID, &adm.AdmissionDate,
		&adm.DischargeDate, &adm.Reason, &adm.AttendingDoctor, &adm.Status,
		&adm.EstimatedCost, &adm.PaidAmount, &adm.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOrWrap(err, "admission", admissionID)
	}
	return &adm, nil
}

// ListAdmissionsByPatient retrieves a patient's admissions, newest first
func (r *Repository) ListAdmissionsByPatient(ctx context.Context, patientID string) ([]*types.Admission, error) {
	query := `SELECT` + admissionColumns + ` FROM admissions
		WHERE patient_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", err)
	}
	defer rows.Close()

	var admissions []*types.Admission
	for rows.Next() {
		var adm types.Admission
		err := rows.Scan(
			&adm.AdmissionID, &adm.PatientID, &adm.RoomID, &adm.AdmissionDate,
			&adm.DischargeDate, &adm.Reason, &adm.AttendingDoctor, &adm.Status,
			&adm.EstimatedCost, &adm.PaidAmount, &adm.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admission: %w", err)
		}
		admissions = append(admissions, &adm)
	}
	return admissions, rows.Err()
}

// DeleteAdmission removes an admission record
func (r *Repository) DeleteAdmission(ctx context.Context, admissionID string) error {
	return r.deleteByID(ctx, "admissions", "admission_id", "admission", admissionID)
}
