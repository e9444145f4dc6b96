package consultation

// Known specialties. The list is the legacy UI's select options plus
// Endocrinología, which appears in stored data; anything else folds into
// SpecialtyOther.
const (
	SpecialtyGeneral       = "Medicina General"
	SpecialtyCardiology    = "Cardiología"
	SpecialtyDermatology   = "Dermatología"
	SpecialtyNeurology     = "Neurología"
	SpecialtyPediatrics    = "Pediatría"
	SpecialtyGynecology    = "Ginecología"
	SpecialtyOphthalmology = "Oftalmología"
	SpecialtyOrthopedics   = "Ortopedia"
	SpecialtyPsychology    = "Psicología"
	SpecialtyEndocrinology = "Endocrinología"
	SpecialtyOther         = "Otra"
)

var knownSpecialties = map[string]bool{
	SpecialtyGeneral:       true,
	SpecialtyCardiology:    true,
	SpecialtyDermatology:   true,
	SpecialtyNeurology:     true,
	SpecialtyPediatrics:    true,
	SpecialtyGynecology:    true,
	SpecialtyOphthalmology: true,
	SpecialtyOrthopedics:   true,
	SpecialtyPsychology:    true,
	SpecialtyEndocrinology: true,
	SpecialtyOther:         true,
}

// NormalizeSpecialty maps free-form input onto the closed specialty set,
// with SpecialtyOther as the escape value. Empty input stays empty.
func NormalizeSpecialty(specialty string) string {
	if specialty == "" || knownSpecialties[specialty] {
		return specialty
	}
	return SpecialtyOther
}

// Consultation is one scheduled visit. PatientID is a weak reference: it is
// never validated against the patient collection, and deleting a patient
// leaves the consultation behind with a stale snapshot. PatientName is that
// snapshot, stamped at create/update time and never refreshed afterwards.
type Consultation struct {
	ID               string `json:"id"`
	PatientID        string `json:"patientId"`
	PatientName      string `json:"patientName"`
	ConsultationDate string `json:"consultationDate"` // ISO date-time
	Specialty        string `json:"specialty"`
	Notes            string `json:"notes"`
	Document         string `json:"document,omitempty"` // data URI, PDF or image
}

// ConsultationSuccessResponse wraps a single consultation for clients
type ConsultationSuccessResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Consultation *Consultation `json:"consultation,omitempty"`
}

// ConsultationListResponse wraps the consultation collection for clients
type ConsultationListResponse struct {
	Success       bool           `json:"success"`
	Consultations []Consultation `json:"consultations"`
	Total         int            `json:"total"`
}
