package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheck represents a single health check result
type HealthCheck struct {
	Name        string       `json:"name"`
	Status      HealthStatus `json:"status"`
	Message     string       `json:"message,omitempty"`
	LastChecked time.Time    `json:"last_checked"`
}

// HealthReport represents the overall health report
type HealthReport struct {
	Status    HealthStatus  `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Service   string        `json:"service"`
	Checks    []HealthCheck `json:"checks"`
}

// HealthChecker is one probeable dependency
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// DBHealthChecker probes a pingable database
type DBHealthChecker struct {
	Pinger interface{ Health() error }
}

// Name implements HealthChecker
func (c *DBHealthChecker) Name() string { return "database" }

// Check implements HealthChecker
func (c *DBHealthChecker) Check(ctx context.Context) error {
	return c.Pinger.Health()
}

// HealthHandler serves an aggregate health report over the given checkers.
// Any failing checker makes the report unhealthy and the response a 503.
func HealthHandler(serviceName string, checkers ...HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report := HealthReport{
			Status:    HealthStatusHealthy,
			Timestamp: time.Now(),
			Service:   serviceName,
		}

		for _, checker := range checkers {
			check := HealthCheck{
				Name:        checker.Name(),
				Status:      HealthStatusHealthy,
				LastChecked: time.Now(),
			}
			if err := checker.Check(ctx); err != nil {
				check.Status = HealthStatusUnhealthy
				check.Message = err.Error()
				report.Status = HealthStatusUnhealthy
			}
			report.Checks = append(report.Checks, check)
		}

		w.Header().Set("Content-Type", "application/json")
		if report.Status != HealthStatusHealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(report)
	}
}
