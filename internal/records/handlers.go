package records

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// RegisterRoutes configures HTTP routes for the records service
func (s *Service) RegisterRoutes(router *mux.Router) {
	// Staff
	router.HandleFunc("/staff", s.addStaffHandler).Methods("POST")
	router.HandleFunc("/staff", s.listStaffHandler).Methods("GET")
	router.HandleFunc("/staff/{id}", s.getStaffHandler).Methods("GET")
	router.HandleFunc("/staff/{id}", s.removeStaffHandler).Methods("DELETE")

	// Inventory
	router.HandleFunc("/inventory", s.addInventoryHandler).Methods("POST")
	router.HandleFunc("/inventory", s.listInventoryHandler).Methods("GET")
	router.HandleFunc("/inventory/{id}", s.getInventoryHandler).Methods("GET")
	router.HandleFunc("/inventory/{id}", s.removeInventoryHandler).Methods("DELETE")

	// Prescriptions
	router.HandleFunc("/prescriptions", s.writePrescriptionHandler).Methods("POST")
	router.HandleFunc("/prescriptions/{id}", s.getPrescriptionHandler).Methods("GET")
	router.HandleFunc("/prescriptions/{id}", s.removePrescriptionHandler).Methods("DELETE")
	router.HandleFunc("/patients/{patientId}/prescriptions", s.patientPrescriptionsHandler).Methods("GET")

	// Rooms
	router.HandleFunc("/rooms", s.addRoomHandler).Methods("POST")
	router.HandleFunc("/rooms", s.listRoomsHandler).Methods("GET")
	router.HandleFunc("/rooms/{id}", s.getRoomHandler).Methods("GET")
	router.HandleFunc("/rooms/{id}", s.removeRoomHandler).Methods("DELETE")
	router.HandleFunc("/rooms/{id}/status", s.setRoomStatusHandler).Methods("PUT")

	// Admissions
	router.HandleFunc("/admissions", s.admitPatientHandler).Methods("POST")
	router.HandleFunc("/admissions/{id}", s.getAdmissionHandler).Methods("GET")
	router.HandleFunc("/admissions/{id}", s.removeAdmissionHandler).Methods("DELETE")
	router.HandleFunc("/patients/{patientId}/admissions", s.patientAdmissionsHandler).Methods("GET")

	// Lab tests
	router.HandleFunc("/lab-tests", s.orderLabTestHandler).Methods("POST")
	router.HandleFunc("/lab-tests/{id}", s.getLabTestHandler).Methods("GET")
	router.HandleFunc("/lab-tests/{id}", s.removeLabTestHandler).Methods("DELETE")
	router.HandleFunc("/patients/{patientId}/lab-tests", s.patientLabTestsHandler).Methods("GET")

	// Operations
	router.HandleFunc("/operations", s.scheduleOperationHandler).Methods("POST")
	router.HandleFunc("/operations/{id}", s.getOperationHandler).Methods("GET")
	router.HandleFunc("/operations/{id}", s.removeOperationHandler).Methods("DELETE")
	router.HandleFunc("/patients/{patientId}/operations", s.patientOperationsHandler).Methods("GET")
}

func (s *Service) addStaffHandler(w http.ResponseWriter, r *http.Request) {
	var member types.StaffMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.AddStaffMember(r.Context(), &member)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// listStaffHandler lists or, with ?q=, searches staff
func (s *Service) listStaffHandler(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		staff, err := s.SearchStaff(r.Context(), term)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, staff)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	staff, err := s.ListStaff(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (s *Service) getStaffHandler(w http.ResponseWriter, r *http.Request) {
	member, err := s.GetStaffMember(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (s *Service) removeStaffHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemoveStaffMember(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Staff member deleted"})
}

func (s *Service) addInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var item types.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.AddInventoryItem(r.Context(), &item)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) listInventoryHandler(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		items, err := s.SearchInventory(r.Context(), term)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := s.ListInventory(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Service) getInventoryHandler(w http.ResponseWriter, r *http.Request) {
	item, err := s.GetInventoryItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Service) removeInventoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemoveInventoryItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Inventory item deleted"})
}

func (s *Service) writePrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	var p types.Prescription
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.WritePrescription(r.Context(), &p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) getPrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.GetPrescription(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Service) removePrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemovePrescription(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Prescription deleted"})
}

func (s *Service) patientPrescriptionsHandler(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := s.GetPatientPrescriptions(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prescriptions)
}

func (s *Service) addRoomHandler(w http.ResponseWriter, r *http.Request) {
	var room types.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.AddRoom(r.Context(), &room)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) listRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.ListRooms(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (s *Service) getRoomHandler(w http.ResponseWriter, r *http.Request) {
	room, err := s.GetRoom(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Service) setRoomStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := s.SetRoomStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Room status updated"})
}

func (s *Service) removeRoomHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemoveRoom(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Room deleted"})
}

func (s *Service) admitPatientHandler(w http.ResponseWriter, r *http.Request) {
	var adm types.Admission
	if err := json.NewDecoder(r.Body).Decode(&adm); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.AdmitPatient(r.Context(), &adm)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) getAdmissionHandler(w http.ResponseWriter, r *http.Request) {
	adm, err := s.GetAdmission(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adm)
}

func (s *Service) removeAdmissionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemoveAdmission(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Admission deleted"})
}

func (s *Service) patientAdmissionsHandler(w http.ResponseWriter, r *http.Request) {
	admissions, err := s.GetPatientAdmissions(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admissions)
}

func (s *Service) orderLabTestHandler(w http.ResponseWriter, r *http.Request) {
	var test types.LabTest
	if err := json.NewDecoder(r.Body).Decode(&test); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.OrderLabTest(r.Context(), &test)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) getLabTestHandler(w http.ResponseWriter, r *http.Request) {
	test, err := s.GetLabTest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, test)
}

func (s *Service) removeLabTestHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemoveLabTest(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lab test deleted"})
}

func (s *Service) patientLabTestsHandler(w http.ResponseWriter, r *http.Request) {
	tests, err := s.GetPatientLabTests(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tests)
}

func (s *Service) scheduleOperationHandler(w http.ResponseWriter, r *http.Request) {
	var op types.Operation
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.ScheduleOperation(r.Context(), &op)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) getOperationHandler(w http.ResponseWriter, r *http.Request) {
	op, err := s.GetOperation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (s *Service) removeOperationHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.RemoveOperation(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Operation deleted"})
}

func (s *Service) patientOperationsHandler(w http.ResponseWriter, r *http.Request) {
	operations, err := s.GetPatientOperations(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, operations)
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
