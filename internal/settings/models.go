package settings

// Settings is the single clinic profile + preferences record. JSON field
// names mirror the legacy localStorage payload.
type Settings struct {
	ClinicName    string `json:"clinicName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"darkMode"`
	AutoSave      bool   `json:"autoSave"`
}

// Defaults returns the record used when the slot has never been written
func Defaults() Settings {
	return Settings{
		ClinicName:    "Clínica Vida",
		Email:         "admin@clinicavida.com",
		Phone:         "+34 912345678",
		Notifications: true,
		DarkMode:      false,
		AutoSave:      true,
	}
}

// SettingsResponse wraps the record for clients
type SettingsResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Settings *Settings `json:"settings"`
}
