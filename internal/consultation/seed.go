package consultation

import "time"

// SeedConsultations is the first-run demo collection: one visit now and one
// tomorrow, referencing the two seed patients.
func SeedConsultations() []Consultation {
	now := time.Now()
	return []Consultation{
		{
			ID:               "1",
			PatientID:        "1",
			PatientName:      "María García",
			ConsultationDate: now.Format(time.RFC3339),
			Specialty:        SpecialtyCardiology,
			Notes:            "Control de hipertensión arterial",
		},
		{
			ID:               "2",
			PatientID:        "2",
			PatientName:      "Juan Rodríguez",
			ConsultationDate: now.Add(24 * time.Hour).Format(time.RFC3339),
			Specialty:        SpecialtyEndocrinology,
			Notes:            "Revisión de nivel de glucosa",
		},
	}
}
