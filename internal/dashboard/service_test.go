package dashboard

import (
	"testing"
	"time"

	"github.com/clinica-vida/clinic-service/internal/consultation"
	"github.com/clinica-vida/clinic-service/internal/patient"
)

type mockPatientSource struct {
	patients []patient.Patient
}

func (m *mockPatientSource) Patients() []patient.Patient { return m.patients }

type mockConsultationSource struct {
	consultations []consultation.Consultation
}

func (m *mockConsultationSource) Consultations() []consultation.Consultation {
	return m.consultations
}

func newTestService(patients []patient.Patient, consultations []consultation.Consultation) *Service {
	return NewService(
		&mockPatientSource{patients: patients},
		&mockConsultationSource{consultations: consultations},
	)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)

	svc := newTestService(
		[]patient.Patient{
			{ID: "1", Conditions: []string{patient.ConditionHypertension}},
			{ID: "2", Conditions: []string{patient.ConditionDiabetes}},
			{ID: "3", Conditions: []string{patient.ConditionDiabetes, patient.ConditionHypertension}},
			{ID: "4"},
		},
		[]consultation.Consultation{
			{ID: "a", ConsultationDate: "2024-03-15T10:00"},
			{ID: "b", ConsultationDate: "2024-03-15T16:45"},
			{ID: "c", ConsultationDate: "2024-03-16T10:00"},
			{ID: "d", ConsultationDate: "not-a-date"},
		},
	)

	summary := svc.Summarize(now)

	if summary.TotalPatients != 4 {
		t.Errorf("Expected 4 patients, got %d", summary.TotalPatients)
	}
	if summary.TotalConsultations != 4 {
		t.Errorf("Expected 4 consultations, got %d", summary.TotalConsultations)
	}
	if summary.ConsultationsToday != 2 {
		t.Errorf("Expected 2 consultations today, got %d", summary.ConsultationsToday)
	}
	if summary.DiabetesPatients != 2 {
		t.Errorf("Expected 2 diabetes patients, got %d", summary.DiabetesPatients)
	}
	if summary.HypertensionPatients != 2 {
		t.Errorf("Expected 2 hypertension patients, got %d", summary.HypertensionPatients)
	}
}

func TestReport_GenderBucketsOmitZero(t *testing.T) {
	svc := newTestService(
		[]patient.Patient{
			{ID: "1", Gender: patient.GenderFemale},
			{ID: "2", Gender: patient.GenderFemale},
			{ID: "3", Gender: "no binario"}, // folds into the escape bucket
		},
		nil,
	)

	reports := svc.Report()

	if len(reports.Genders) != 2 {
		t.Fatalf("Expected 2 gender buckets, got %d: %+v", len(reports.Genders), reports.Genders)
	}
	if reports.Genders[0].Label != patient.GenderFemale || reports.Genders[0].Count != 2 {
		t.Errorf("Unexpected first bucket: %+v", reports.Genders[0])
	}
	if reports.Genders[1].Label != patient.GenderOther || reports.Genders[1].Count != 1 {
		t.Errorf("Unexpected second bucket: %+v", reports.Genders[1])
	}
}

func TestReport_ConditionBucketsAlwaysPresent(t *testing.T) {
	svc := newTestService(
		[]patient.Patient{
			{ID: "1", Conditions: []string{patient.ConditionDiabetes, "Asma"}},
		},
		nil,
	)

	reports := svc.Report()

	if len(reports.Conditions) != 3 {
		t.Fatalf("Expected 3 condition buckets, got %d", len(reports.Conditions))
	}
	want := map[string]int{
		patient.ConditionDiabetes:     1,
		patient.ConditionHypertension: 0,
		patient.ConditionOther:        1,
	}
	for _, bucket := range reports.Conditions {
		if bucket.Count != want[bucket.Label] {
			t.Errorf("Bucket %s: expected %d, got %d", bucket.Label, want[bucket.Label], bucket.Count)
		}
	}
}

func TestReport_SpecialtiesSorted(t *testing.T) {
	svc := newTestService(nil, []consultation.Consultation{
		{ID: "a", Specialty: consultation.SpecialtyPediatrics},
		{ID: "b", Specialty: consultation.SpecialtyCardiology},
		{ID: "c", Specialty: consultation.SpecialtyCardiology},
	})

	reports := svc.Report()

	if len(reports.Specialties) != 2 {
		t.Fatalf("Expected 2 specialty buckets, got %d", len(reports.Specialties))
	}
	if reports.Specialties[0].Label != consultation.SpecialtyCardiology || reports.Specialties[0].Count != 2 {
		t.Errorf("Unexpected first bucket: %+v", reports.Specialties[0])
	}
	if reports.Specialties[1].Label != consultation.SpecialtyPediatrics || reports.Specialties[1].Count != 1 {
		t.Errorf("Unexpected second bucket: %+v", reports.Specialties[1])
	}
}

func TestReport_MonthlyVolumeFoldsYears(t *testing.T) {
	svc := newTestService(nil, []consultation.Consultation{
		{ID: "a", ConsultationDate: "2023-03-01T10:00"},
		{ID: "b", ConsultationDate: "2024-03-20T10:00"},
		{ID: "c", ConsultationDate: "2024-11-05T10:00"},
		{ID: "d", ConsultationDate: "garbage"},
	})

	reports := svc.Report()

	if len(reports.MonthlyVolume) != 12 {
		t.Fatalf("Expected 12 month buckets, got %d", len(reports.MonthlyVolume))
	}
	if reports.MonthlyVolume[0].Month != "Enero" || reports.MonthlyVolume[11].Month != "Diciembre" {
		t.Errorf("Unexpected month labels: %s ... %s", reports.MonthlyVolume[0].Month, reports.MonthlyVolume[11].Month)
	}
	if reports.MonthlyVolume[2].Count != 2 {
		t.Errorf("Expected Marzo count 2 across years, got %d", reports.MonthlyVolume[2].Count)
	}
	if reports.MonthlyVolume[10].Count != 1 {
		t.Errorf("Expected Noviembre count 1, got %d", reports.MonthlyVolume[10].Count)
	}
	total := 0
	for _, bucket := range reports.MonthlyVolume {
		total += bucket.Count
	}
	if total != 3 {
		t.Errorf("Expected 3 bucketed consultations, got %d", total)
	}
}

func TestReport_RecentActivity(t *testing.T) {
	consultations := []consultation.Consultation{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}
	svc := newTestService(nil, consultations)

	reports := svc.Report()

	if len(reports.RecentActivity) != 3 {
		t.Fatalf("Expected 3 recent entries, got %d", len(reports.RecentActivity))
	}
	for i, id := range []string{"a", "b", "c"} {
		if reports.RecentActivity[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, reports.RecentActivity[i].ID)
		}
	}
}

func TestReport_Empty(t *testing.T) {
	svc := newTestService(nil, nil)

	reports := svc.Report()

	if len(reports.Genders) != 0 {
		t.Errorf("Expected no gender buckets, got %d", len(reports.Genders))
	}
	if len(reports.Specialties) != 0 {
		t.Errorf("Expected no specialty buckets, got %d", len(reports.Specialties))
	}
	if reports.RecentActivity == nil || len(reports.RecentActivity) != 0 {
		t.Errorf("Expected empty recent activity slice, got %v", reports.RecentActivity)
	}
}
