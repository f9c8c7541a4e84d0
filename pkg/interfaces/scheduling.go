package interfaces

import (
	"context"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// SchedulingRepository persists appointment records
type SchedulingRepository interface {
	CreateAppointment(ctx context.Context, apt *types.Appointment) error
	GetAppointmentByID(ctx context.Context, appointmentID string) (*types.Appointment, error)
	ListAppointments(ctx context.Context, filters *types.AppointmentFilters) ([]*types.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
	CountAppointmentsOnDate(ctx context.Context, date string) (int, error)
}

// SchedulingService manages appointments between patients and doctors
type SchedulingService interface {
	ScheduleAppointment(ctx context.Context, apt *types.Appointment) (*types.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*types.Appointment, error)
	ListAppointments(ctx context.Context, filters *types.AppointmentFilters) ([]*types.Appointment, error)
	TodayAppointments(ctx context.Context) ([]*types.Appointment, error)
	CompleteAppointment(ctx context.Context, appointmentID string) error
	CancelAppointment(ctx context.Context, appointmentID string) error
}

// DoctorDirectory resolves a doctor identifier, used when scheduling
type DoctorDirectory interface {
	GetDoctorByID(ctx context.Context, doctorID string) (*types.Doctor, error)
}
