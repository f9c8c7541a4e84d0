package scheduling

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// RegisterRoutes configures HTTP routes for the scheduling service
func (s *Service) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/appointments", s.scheduleAppointmentHandler).Methods("POST")
	router.HandleFunc("/appointments", s.listAppointmentsHandler).Methods("GET")
	router.HandleFunc("/appointments/today", s.todayAppointmentsHandler).Methods("GET")
	router.HandleFunc("/appointments/{id}", s.getAppointmentHandler).Methods("GET")
	router.HandleFunc("/appointments/{id}/complete", s.completeAppointmentHandler).Methods("POST")
	router.HandleFunc("/appointments/{id}", s.cancelAppointmentHandler).Methods("DELETE")
}

func (s *Service) scheduleAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	var apt types.Appointment
	if err := json.NewDecoder(r.Body).Decode(&apt); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.ScheduleAppointment(r.Context(), &apt)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) listAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	filters := &types.AppointmentFilters{
		PatientID: r.URL.Query().Get("patient_id"),
		DoctorID:  r.URL.Query().Get("doctor_id"),
		Date:      r.URL.Query().Get("date"),
		Status:    r.URL.Query().Get("status"),
	}

	appointments, err := s.ListAppointments(r.Context(), filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, appointments)
}

func (s *Service) todayAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	appointments, err := s.TodayAppointments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, appointments)
}

func (s *Service) getAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	apt, err := s.GetAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apt)
}

func (s *Service) completeAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.CompleteAppointment(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment completed"})
}

func (s *Service) cancelAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.CancelAppointment(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment cancelled"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]interface{}{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	writeJSON(w, status, body)
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case types.IsErrorType(err, types.ErrorTypeValidation):
		status = http.StatusBadRequest
	case types.IsErrorType(err, types.ErrorTypeNotFound):
		status = http.StatusNotFound
	case types.IsErrorType(err, types.ErrorTypeConflict):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]interface{}{
		"error": err.Error(),
		"code":  types.ErrorCode(err),
	})
}
