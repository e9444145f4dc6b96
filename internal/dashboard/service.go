package dashboard

import (
	"sort"
	"time"

	"github.com/clinica-vida/clinic-service/internal/consultation"
	"github.com/clinica-vida/clinic-service/internal/patient"
)

// PatientSource provides the patient snapshot the projections read
type PatientSource interface {
	Patients() []patient.Patient
}

// ConsultationSource provides the consultation snapshot the projections read
type ConsultationSource interface {
	Consultations() []consultation.Consultation
}

// Service computes read-only projections over the two collections. Nothing
// here is persisted; every call recomputes from the current snapshots.
type Service struct {
	patients      PatientSource
	consultations ConsultationSource
}

func NewService(patients PatientSource, consultations ConsultationSource) *Service {
	return &Service{patients: patients, consultations: consultations}
}

// Summary holds the headline counters
type Summary struct {
	TotalPatients        int `json:"totalPatients"`
	TotalConsultations   int `json:"totalConsultations"`
	ConsultationsToday   int `json:"consultationsToday"`
	DiabetesPatients     int `json:"diabetesPatients"`
	HypertensionPatients int `json:"hypertensionPatients"`
}

// Distribution is one labelled bucket of a report chart
type Distribution struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthBucket is one bar of the consultations-per-month histogram
type MonthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Reports bundles everything the reports view renders
type Reports struct {
	Genders        []Distribution              `json:"genders"`
	Conditions     []Distribution              `json:"conditions"`
	Specialties    []Distribution              `json:"specialties"`
	MonthlyVolume  []MonthBucket               `json:"monthlyVolume"`
	RecentActivity []consultation.Consultation `json:"recentActivity"`
}

// Spanish month labels, indexed by time.Month-1
var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Summarize builds the headline counters. "Today" compares calendar dates in
// local time against the provided reference moment.
func (s *Service) Summarize(now time.Time) Summary {
	patients := s.patients.Patients()
	consultations := s.consultations.Consultations()

	summary := Summary{
		TotalPatients:      len(patients),
		TotalConsultations: len(consultations),
	}

	for _, p := range patients {
		for _, cond := range p.Conditions {
			switch cond {
			case patient.ConditionDiabetes:
				summary.DiabetesPatients++
			case patient.ConditionHypertension:
				summary.HypertensionPatients++
			}
		}
	}

	ty, tm, td := now.Date()
	for _, c := range consultations {
		when, ok := consultation.ParseDate(c.ConsultationDate)
		if !ok {
			continue
		}
		y, m, d := when.Date()
		if y == ty && m == tm && d == td {
			summary.ConsultationsToday++
		}
	}

	return summary
}

// Report builds the chart projections. Gender buckets with a zero count are
// omitted; condition buckets always cover the three known labels; specialty
// buckets are sorted by label so the output is deterministic.
func (s *Service) Report() Reports {
	patients := s.patients.Patients()
	consultations := s.consultations.Consultations()

	genderCounts := map[string]int{}
	for _, p := range patients {
		genderCounts[patient.NormalizeGender(p.Gender)]++
	}
	var genders []Distribution
	for _, label := range []string{patient.GenderMale, patient.GenderFemale, patient.GenderOther} {
		if genderCounts[label] > 0 {
			genders = append(genders, Distribution{Label: label, Count: genderCounts[label]})
		}
	}

	conditions := []Distribution{
		{Label: patient.ConditionDiabetes},
		{Label: patient.ConditionHypertension},
		{Label: patient.ConditionOther},
	}
	for _, p := range patients {
		for _, cond := range p.Conditions {
			switch cond {
			case patient.ConditionDiabetes:
				conditions[0].Count++
			case patient.ConditionHypertension:
				conditions[1].Count++
			default:
				conditions[2].Count++
			}
		}
	}

	specialtyCounts := map[string]int{}
	for _, c := range consultations {
		specialtyCounts[consultation.NormalizeSpecialty(c.Specialty)]++
	}
	specialties := make([]Distribution, 0, len(specialtyCounts))
	for label, count := range specialtyCounts {
		specialties = append(specialties, Distribution{Label: label, Count: count})
	}
	sort.Slice(specialties, func(i, j int) bool {
		return specialties[i].Label < specialties[j].Label
	})

	monthly := make([]MonthBucket, 12)
	for i := range monthly {
		monthly[i].Month = monthNames[i]
	}
	for _, c := range consultations {
		when, ok := consultation.ParseDate(c.ConsultationDate)
		if !ok {
			continue
		}
		// Buckets fold by month of year; the year is ignored.
		monthly[int(when.Month())-1].Count++
	}

	recent := consultations
	if len(recent) > 3 {
		recent = recent[:3]
	}
	if recent == nil {
		recent = []consultation.Consultation{}
	}

	return Reports{
		Genders:        genders,
		Conditions:     conditions,
		Specialties:    specialties,
		MonthlyVolume:  monthly,
		RecentActivity: recent,
	}
}
