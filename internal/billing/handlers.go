package billing

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// RegisterRoutes configures HTTP routes for the billing service
func (s *Service) RegisterRoutes(router *mux.Router) {
	// Draft (ledger accumulator)
	router.HandleFunc("/bills/draft/items", s.addItemHandler).Methods("POST")
	router.HandleFunc("/bills/draft", s.getDraftHandler).Methods("GET")
	router.HandleFunc("/bills/draft", s.clearDraftHandler).Methods("DELETE")

	// Bills (finalizer + queries)
	router.HandleFunc("/bills", s.generateBillHandler).Methods("POST")
	router.HandleFunc("/bills", s.listBillsHandler).Methods("GET")
	router.HandleFunc("/bills/{id}", s.getBillHandler).Methods("GET")
	router.HandleFunc("/patients/{patientId}/bills", s.getPatientBillsHandler).Methods("GET")
}

type addItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
}

type generateBillRequest struct {
	PatientID     string `json:"patient_id"`
	PaymentMethod string `json:"payment_method"`
	PaidAmount    string `json:"paid_amount"`
}

// addItemHandler adds a line item to the active draft
func (s *Service) addItemHandler(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := s.AddItem(req.Name, req.Description, req.Quantity, req.Price)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"item":          item,
		"display_row":   item.DisplayRow(),
		"running_total": s.CurrentTotal(),
	})
}

// getDraftHandler returns the active draft's items and running total
func (s *Service) getDraftHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":         s.DraftItems(),
		"running_total": s.CurrentTotal(),
	})
}

// clearDraftHandler resets the active draft
func (s *Service) clearDraftHandler(w http.ResponseWriter, r *http.Request) {
	s.ClearDraft()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Draft cleared"})
}

// generateBillHandler finalizes the active draft into a persisted bill
func (s *Service) generateBillHandler(w http.ResponseWriter, r *http.Request) {
	var req generateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	bill, err := s.GenerateBill(r.Context(), req.PatientID, types.PaymentMethod(req.PaymentMethod), req.PaidAmount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, bill)
}

// getBillHandler retrieves a single bill
func (s *Service) getBillHandler(w http.ResponseWriter, r *http.Request) {
	billID := mux.Vars(r)["id"]

	bill, err := s.GetBill(r.Context(), billID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bill)
}

// listBillsHandler lists bills with optional filters
func (s *Service) listBillsHandler(w http.ResponseWriter, r *http.Request) {
	filters := &types.BillFilters{
		PatientID: r.URL.Query().Get("patient_id"),
		Status:    types.BillStatus(r.URL.Query().Get("status")),
		BillDate:  r.URL.Query().Get("date"),
	}

	bills, err := s.ListBills(r.Context(), filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bills)
}

// getPatientBillsHandler lists all bills for one patient
func (s *Service) getPatientBillsHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	bills, err := s.GetPatientBills(r.Context(), patientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bills)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]interface{}{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	writeJSON(w, status, body)
}

// writeServiceError maps structured error types to HTTP status codes
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
