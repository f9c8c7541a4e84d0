package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
)

// The stubs embed the repository interfaces so only the counter methods
// need implementations; anything else would panic, which is what we want
// since the dashboard must not touch other operations.

type stubRegistry struct {
	interfaces.RegistryRepository
	patients, doctors int
	err               error
}

func (s *stubRegistry) CountPatients(ctx context.Context) (int, error) {
	return s.patients, s.err
}

func (s *stubRegistry) CountDoctors(ctx context.Context) (int, error) {
	return s.doctors, s.err
}

type stubScheduling struct {
	interfaces.SchedulingRepository
	today    int
	lastDate string
}

func (s *stubScheduling) CountAppointmentsOnDate(ctx context.Context, date string) (int, error) {
	s.lastDate = date
	return s.today, nil
}

type stubBilling struct {
	interfaces.BillStore
	pending int
}

func (s *stubBilling) CountPendingBills(ctx context.Context) (int, error) {
	return s.pending, nil
}

type stubRecords struct {
	interfaces.RecordsRepository
	rooms, staff int
}

func (s *stubRecords) CountAvailableRooms(ctx context.Context) (int, error) {
	return s.rooms, nil
}

func (s *stubRecords) CountStaff(ctx context.Context) (int, error) {
	return s.staff, nil
}

func TestDashboardStats(t *testing.T) {
	scheduling := &stubScheduling{today: 7}
	svc := NewService(
		&stubRegistry{patients: 120, doctors: 14},
		scheduling,
		&stubBilling{pending: 9},
		&stubRecords{rooms: 5, staff: 31},
		logger.New("error"),
	)

	stats := svc.Stats(context.Background())

	assert.Equal(t, 120, stats.Patients)
	assert.Equal(t, 14, stats.Doctors)
	assert.Equal(t, 7, stats.TodayAppointments)
	assert.Equal(t, 9, stats.PendingBills)
	assert.Equal(t, 5, stats.AvailableRooms)
	assert.Equal(t, 31, stats.Staff)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, scheduling.lastDate)
}

func TestDashboardStatsCounterFailure(t *testing.T) {
	svc := NewService(
		&stubRegistry{err: errors.New("connection reset")},
		&stubScheduling{today: 3},
		&stubBilling{pending: 2},
		&stubRecords{rooms: 1, staff: 4},
		logger.New("error"),
	)

	stats := svc.Stats(context.Background())

	// failed counters report zero, the rest still populate
	assert.Equal(t, 0, stats.Patients)
	assert.Equal(t, 0, stats.Doctors)
	assert.Equal(t, 3, stats.TodayAppointments)
	assert.Equal(t, 2, stats.PendingBills)
}
