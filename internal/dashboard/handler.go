package dashboard

import (
	"encoding/json"
	"net/http"
	"time"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.Summarize(time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	reports := h.service.Report()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reports)
}
