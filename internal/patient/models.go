package patient

import "github.com/clinica-vida/clinic-service/internal/pagination"

// Known gender values. Input outside this set is folded into GenderOther;
// the legacy UI's select list suggested a closed set that was never enforced.
const (
	GenderMale   = "Masculino"
	GenderFemale = "Femenino"
	GenderOther  = "Otro"
)

// Condition labels the dashboard tracks.
const (
	ConditionDiabetes     = "Diabetes"
	ConditionHypertension = "Hipertensión"
	ConditionOther        = "Otros"
)

var knownGenders = map[string]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

// NormalizeGender maps free-form input onto the closed gender set, with
// GenderOther as the escape value. Empty input stays empty.
func NormalizeGender(gender string) string {
	if gender == "" || knownGenders[gender] {
		return gender
	}
	return GenderOther
}

// Patient is one clinical record. JSON field names mirror the legacy
// localStorage payload so an exported slot round-trips unchanged.
type Patient struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	BirthDate   string   `json:"birthDate"` // Format: YYYY-MM-DD
	Gender      string   `json:"gender"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	PostalCode  string   `json:"postalCode"`
	Country     string   `json:"country"`
	Allergies   string   `json:"allergies"`
	Conditions  []string `json:"conditions"`
	Medications string   `json:"medications"`
	Image       string   `json:"image,omitempty"` // data URI
}

// PatientSuccessResponse wraps a single patient for clients
type PatientSuccessResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Patient *Patient `json:"patient,omitempty"`
}

// PatientListResponse wraps a page of patients for clients
type PatientListResponse struct {
	Success  bool             `json:"success"`
	Patients []Patient        `json:"patients"`
	Total    int              `json:"total"`
	Meta     *pagination.Meta `json:"meta,omitempty"`
}
