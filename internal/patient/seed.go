package patient

// SeedPatients is the first-run demo collection. It is used only when the
// durable slot is empty or unreadable; it never overwrites stored data.
func SeedPatients() []Patient {
	return []Patient{
		{
			ID:          "1",
			Name:        "María García",
			BirthDate:   "1985-05-12",
			Gender:      GenderFemale,
			Phone:       "612345678",
			Email:       "maria.garcia@example.com",
			Address:     "Calle Principal 123",
			City:        "Madrid",
			PostalCode:  "28001",
			Country:     "España",
			Allergies:   "Penicilina",
			Conditions:  []string{ConditionHypertension},
			Medications: "Losartán 50mg",
		},
		{
			ID:          "2",
			Name:        "Juan Rodríguez",
			BirthDate:   "1976-09-23",
			Gender:      GenderMale,
			Phone:       "623456789",
			Email:       "juan.rodriguez@example.com",
			Address:     "Avenida Central 45",
			City:        "Barcelona",
			PostalCode:  "08001",
			Country:     "España",
			Allergies:   "Ninguna",
			Conditions:  []string{ConditionDiabetes},
			Medications: "Metformina 850mg",
		},
	}
}
