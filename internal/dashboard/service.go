package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/RajFruit/Hospital-Managment-System/pkg/interfaces"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// Service aggregates the count cards shown on the hospital dashboard.
// Each count comes from the owning module's repository; a failing count
// is logged and reported as zero so one bad query does not blank the
// whole dashboard.
type Service struct {
	registry   interfaces.RegistryRepository
	scheduling interfaces.SchedulingRepository
	billing    interfaces.BillStore
	records    interfaces.RecordsRepository
	logger     *logger.Logger
}

// NewService creates a new dashboard service
func NewService(
	registry interfaces.RegistryRepository,
	scheduling interfaces.SchedulingRepository,
	billing interfaces.BillStore,
	records interfaces.RecordsRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		registry:   registry,
		scheduling: scheduling,
		billing:    billing,
		records:    records,
		logger:     log,
	}
}

// Stats collects the dashboard counters
func (s *Service) Stats(ctx context.Context) *types.DashboardStats {
	stats := &types.DashboardStats{}
	today := time.Now().Format("2006-01-02")

	stats.Patients = s.count(ctx, "patients", s.registry.CountPatients)
	stats.Doctors = s.count(ctx, "doctors", s.registry.CountDoctors)
	stats.TodayAppointments = s.count(ctx, "today_appointments", func(ctx context.Context) (int, error) {
		return s.scheduling.CountAppointmentsOnDate(ctx, today)
	})
	stats.PendingBills = s.count(ctx, "pending_bills", s.billing.CountPendingBills)
	stats.AvailableRooms = s.count(ctx, "available_rooms", s.records.CountAvailableRooms)
	stats.Staff = s.count(ctx, "staff", s.records.CountStaff)

	return stats
}

func (s *Service) count(ctx context.Context, name string, fn func(context.Context) (int, error)) int {
	n, err := fn(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("counter", name).Warn("Dashboard counter query failed")
		return 0
	}
	return n
}

// RegisterRoutes configures HTTP routes for the dashboard
func (s *Service) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard/stats", s.statsHandler).Methods("GET")
}

func (s *Service) statsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(s.Stats(r.Context()))
}
