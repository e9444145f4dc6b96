package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/clinica-vida/clinic-service/internal/consultation"
	"github.com/clinica-vida/clinic-service/internal/dashboard"
	"github.com/clinica-vida/clinic-service/internal/patient"
	"github.com/clinica-vida/clinic-service/internal/settings"
	"github.com/clinica-vida/clinic-service/internal/telemetry"
)

// Stores groups the collaborators the router exposes over HTTP
type Stores struct {
	Patients      patient.StoreInterface
	Consultations consultation.StoreInterface
	Dashboard     *dashboard.Service
	Settings      settings.StoreInterface
}

// SetupRouter initializes all routes for the application
func SetupRouter(stores Stores, metrics *telemetry.Metrics) *mux.Router {
	patientHandler := patient.NewHandler(stores.Patients)
	consultationHandler := consultation.NewHandler(stores.Consultations)
	dashboardHandler := dashboard.NewHandler(stores.Dashboard)
	settingsHandler := settings.NewHandler(stores.Settings)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("clinic-service"))
	r.Use(MetricsMiddleware(metrics))

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"clinic-service"}`))
	}).Methods("GET")

	// Patient routes; /patients/search must register before /patients/{id}
	r.HandleFunc("/patients", patientHandler.CreatePatient).Methods("POST")
	r.HandleFunc("/patients", patientHandler.ListPatients).Methods("GET")
	r.HandleFunc("/patients/search", patientHandler.SearchPatients).Methods("GET")
	r.HandleFunc("/patients/{id}", patientHandler.GetPatient).Methods("GET")
	r.HandleFunc("/patients/{id}", patientHandler.UpdatePatient).Methods("PUT")
	r.HandleFunc("/patients/{id}", patientHandler.DeletePatient).Methods("DELETE")

	// Consultation routes; /consultations/calendar must register before {id}
	r.HandleFunc("/consultations", consultationHandler.CreateConsultation).Methods("POST")
	r.HandleFunc("/consultations", consultationHandler.ListConsultations).Methods("GET")
	r.HandleFunc("/consultations/calendar", consultationHandler.Calendar).Methods("GET")
	r.HandleFunc("/consultations/{id}", consultationHandler.GetConsultation).Methods("GET")
	r.HandleFunc("/consultations/{id}", consultationHandler.UpdateConsultation).Methods("PUT")
	r.HandleFunc("/consultations/{id}", consultationHandler.DeleteConsultation).Methods("DELETE")

	// Dashboard projections
	r.HandleFunc("/dashboard/summary", dashboardHandler.Summary).Methods("GET")
	r.HandleFunc("/dashboard/reports", dashboardHandler.Reports).Methods("GET")

	// Settings record
	r.HandleFunc("/settings", settingsHandler.GetSettings).Methods("GET")
	r.HandleFunc("/settings", settingsHandler.UpdateSettings).Methods("PUT")

	return r
}
