package consultation

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	store StoreInterface
}

func NewHandler(store StoreInterface) *Handler {
	return &Handler{store: store}
}

func (h *Handler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req Consultation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if req.PatientID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Patient ID is required")
		return
	}
	if req.ConsultationDate == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Consultation date is required")
		return
	}
	if req.Specialty == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Specialty is required")
		return
	}

	created := h.store.Add(r.Context(), req)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ConsultationSuccessResponse{
		Success:      true,
		Message:      "Consultation created successfully",
		Consultation: &created,
	})
}

func (h *Handler) ListConsultations(w http.ResponseWriter, r *http.Request) {
	consultations := h.store.Consultations()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConsultationListResponse{
		Success:       true,
		Consultations: consultations,
		Total:         len(consultations),
	})
}

func (h *Handler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Consultation ID is required")
		return
	}

	c, ok := h.store.GetByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "Consultation not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConsultationSuccessResponse{
		Success:      true,
		Message:      "Consultation retrieved successfully",
		Consultation: &c,
	})
}

func (h *Handler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Consultation ID is required")
		return
	}

	var req Consultation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	req.ID = id
	updated, ok := h.store.Update(r.Context(), req)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "Consultation not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConsultationSuccessResponse{
		Success:      true,
		Message:      "Consultation updated successfully",
		Consultation: &updated,
	})
}

func (h *Handler) DeleteConsultation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Consultation ID is required")
		return
	}

	if !h.store.Delete(r.Context(), id) {
		respondError(w, http.StatusNotFound, "not_found", "Consultation not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Consultation deleted successfully",
	})
}

// Calendar serves the month grid. Defaults to the current month; month is
// 1-based in the query string.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "validation_error", "Invalid year")
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			respondError(w, http.StatusBadRequest, "validation_error", "Month must be between 1 and 12")
			return
		}
		month = time.Month(m)
	}

	grid := BuildMonth(year, month, h.store.Consultations())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(grid)
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
