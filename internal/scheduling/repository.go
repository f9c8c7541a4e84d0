package scheduling

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

// Repository implements the SchedulingRepository interface on PostgreSQL
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new scheduling repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.SchedulingRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// CreateAppointment inserts a new appointment
func (r *Repository) CreateAppointment(ctx context.Context, apt *types.Appointment) error {
	query := `
		INSERT INTO appointments (
			appointment_id, patient_id, doctor_id, appointment_date,
			appointment_time, reason, status, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		apt.AppointmentID,
		apt.PatientID,
		apt.DoctorID,
		apt.Date,
		apt.Time,
		apt.Reason,
		apt.Status,
		apt.Notes,
		apt.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return types.NewConflictError(types.ErrCodeDuplicateID,
				fmt.Sprintf("appointment %s already exists", apt.AppointmentID), err)
		}
		r.logger.WithError(err).WithField("appointment_id", apt.AppointmentID).Error("Failed to create appointment")
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

const appointmentColumns = `
	appointment_id, patient_id, doctor_id, appointment_date,
	appointment_time, reason, status, notes, created_at`

// GetAppointmentByID retrieves an appointment by its identifier
func (r *Repository) GetAppointmentByID(ctx context.Context, appointmentID string) (*types.Appointment, error) {
	query := `SELECT` + appointmentColumns + ` FROM appointments WHERE appointment_id = $1`

	apt := &types.Appointment{}
	err := r.db.QueryRowContext(ctx, query, appointmentID).Scan(
		&apt.AppointmentID, &apt.PatientID, &apt.DoctorID, &apt.Date,
		&apt.Time, &apt.Reason, &apt.Status, &apt.Notes, &apt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound,
				fmt.Sprintf("appointment not found: %s", appointmentID))
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return apt, nil
}

// ListAppointments retrieves appointments matching the filters, ordered by
// date and time
func (r *Repository) ListAppointments(ctx context.Context, filters *types.AppointmentFilters) ([]*types.Appointment, error) {
	query := `SELECT` + appointmentColumns + ` FROM appointments WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filters != nil {
		if filters.PatientID != "" {
			query += fmt.Sprintf(" AND patient_id = $%d", argIndex)
			args = append(args, filters.PatientID)
			argIndex++
		}
		if filters.DoctorID != "" {
			query += fmt.Sprintf(" AND doctor_id = $%d", argIndex)
			args = append(args, filters.DoctorID)
			argIndex++
		}
		if filters.Date != "" {
			query += fmt.Sprintf(" AND appointment_date = $%d", argIndex)
			args = append(args, filters.Date)
			argIndex++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argIndex)
			args = append(args, filters.Status)
			argIndex++
		}
	}

	query += " ORDER BY appointment_date, appointment_time"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*types.Appointment
	for rows.Next() {
		apt := &types.Appointment{}
		err := rows.Scan(
			&apt.AppointmentID, &apt.PatientID, &apt.DoctorID, &apt.Date,
			&apt.Time, &apt.Reason, &apt.Status, &apt.Notes, &apt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, apt)
	}

	return appointments, rows.Err()
}

// UpdateAppointmentStatus sets the status of an appointment
func (r *Repository) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status = $1 WHERE appointment_id = $2`,
		status, appointmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("appointment not found: %s", appointmentID))
	}

	return nil
}

// DeleteAppointment removes an appointment record
func (r *Repository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM appointments WHERE appointment_id = $1`, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound,
			fmt.Sprintf("appointment not found: %s", appointmentID))
	}

	return nil
}

// CountAppointmentsOnDate counts appointments scheduled for the given date
func (r *Repository) CountAppointmentsOnDate(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM appointments WHERE appointment_date = $1`, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
