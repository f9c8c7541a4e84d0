package registry

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// RegisterRoutes configures HTTP routes for the registry service
func (s *Service) RegisterRoutes(router *mux.Router) {
	// Patients
	router.HandleFunc("/patients", s.registerPatientHandler).Methods("POST")
	router.HandleFunc("/patients", s.listPatientsHandler).Methods("GET")
	router.HandleFunc("/patients/{id}", s.getPatientHandler).Methods("GET")
	router.HandleFunc("/patients/{id}", s.removePatientHandler).Methods("DELETE")
	router.HandleFunc("/patients/{id}/ref", s.lookupPatientHandler).Methods("GET")

	// Doctors
	router.HandleFunc("/doctors", s.registerDoctorHandler).Methods("POST")
	router.HandleFunc("/doctors", s.listDoctorsHandler).Methods("GET")
	router.HandleFunc("/doctors/{id}", s.getDoctorHandler).Methods("GET")
	router.HandleFunc("/doctors/{id}", s.removeDoctorHandler).Methods("DELETE")
}

func (s *Service) registerPatientHandler(w http.ResponseWriter, r *http.Request) {
	var patient types.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.RegisterPatient(r.Context(), &patient)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// listPatientsHandler lists or, with ?q=, searches patients
func (s *Service) listPatientsHandler(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		patients, err := s.SearchPatients(r.Context(), term)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, patients)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	patients, err := s.ListPatients(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, patients)
}

func (s *Service) getPatientHandler(w http.ResponseWriter, r *http.Request) {
	patient, err := s.GetPatient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (s *Service) removePatientHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemovePatient(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Patient deleted"})
}

// lookupPatientHandler serves the directory lookup used by billing
func (s *Service) lookupPatientHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := s.Lookup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

func (s *Service) registerDoctorHandler(w http.ResponseWriter, r *http.Request) {
	var doctor types.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doctor); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.RegisterDoctor(r.Context(), &doctor)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) listDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		doctors, err := s.SearchDoctors(r.Context(), term)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doctors)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	doctors, err := s.ListDoctors(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doctors)
}

func (s *Service) getDoctorHandler(w http.ResponseWriter, r *http.Request) {
	doctor, err := s.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doctor)
}

func (s *Service) removeDoctorHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemoveDoctor(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Doctor deleted"})
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
