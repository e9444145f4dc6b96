package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// mockStore implements StoreInterface for testing
type mockStore struct {
	addFunc           func(ctx context.Context, p Patient) Patient
	updateFunc        func(ctx context.Context, p Patient) (Patient, bool)
	deleteFunc        func(ctx context.Context, id string) bool
	getByIDFunc       func(id string) (Patient, bool)
	searchFunc        func(ctx context.Context, term string) []Patient
	patientsFunc      func() []Patient
	searchResultsFunc func() []Patient
}

func (m *mockStore) Add(ctx context.Context, p Patient) Patient {
	if m.addFunc != nil {
		return m.addFunc(ctx, p)
	}
	return p
}

func (m *mockStore) Update(ctx context.Context, p Patient) (Patient, bool) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return Patient{}, false
}

func (m *mockStore) Delete(ctx context.Context, id string) bool {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false
}

func (m *mockStore) GetByID(id string) (Patient, bool) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return Patient{}, false
}

func (m *mockStore) Search(ctx context.Context, term string) []Patient {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, term)
	}
	return nil
}

func (m *mockStore) Patients() []Patient {
	if m.patientsFunc != nil {
		return m.patientsFunc()
	}
	return nil
}

func (m *mockStore) SearchResults() []Patient {
	if m.searchResultsFunc != nil {
		return m.searchResultsFunc()
	}
	return nil
}

func TestCreatePatient_Success(t *testing.T) {
	store := &mockStore{
		addFunc: func(_ context.Context, p Patient) Patient {
			p.ID = "generated-id"
			return p
		},
	}
	handler := NewHandler(store)

	body, _ := json.Marshal(Patient{Name: "Ana López", Gender: GenderFemale})
	r := httptest.NewRequest("POST", "/patients", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreatePatient(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp PatientSuccessResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Patient == nil || resp.Patient.ID != "generated-id" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestCreatePatient_ValidationError(t *testing.T) {
	handler := NewHandler(&mockStore{})

	body, _ := json.Marshal(Patient{Email: "sin.nombre@example.com"})
	r := httptest.NewRequest("POST", "/patients", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreatePatient(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestCreatePatient_InvalidJSON(t *testing.T) {
	handler := NewHandler(&mockStore{})

	r := httptest.NewRequest("POST", "/patients", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	handler.CreatePatient(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestListPatients_Paginated(t *testing.T) {
	patients := []Patient{
		{ID: "1", Name: "Uno"},
		{ID: "2", Name: "Dos"},
		{ID: "3", Name: "Tres"},
	}
	handler := NewHandler(&mockStore{
		patientsFunc: func() []Patient { return patients },
	})

	r := httptest.NewRequest("GET", "/patients?page=2&limit=2", nil)
	w := httptest.NewRecorder()

	handler.ListPatients(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp PatientListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Expected total 3, got %d", resp.Total)
	}
	if len(resp.Patients) != 1 || resp.Patients[0].ID != "3" {
		t.Errorf("Expected second page [3], got %+v", resp.Patients)
	}
	if resp.Meta == nil || resp.Meta.TotalPages != 2 {
		t.Errorf("Unexpected pagination meta: %+v", resp.Meta)
	}
}

func TestSearchPatients(t *testing.T) {
	var gotTerm string
	handler := NewHandler(&mockStore{
		searchFunc: func(_ context.Context, term string) []Patient {
			gotTerm = term
			return []Patient{{ID: "1", Name: "María García"}}
		},
	})

	r := httptest.NewRequest("GET", "/patients/search?q=Mar%C3%ADa", nil)
	w := httptest.NewRecorder()

	handler.SearchPatients(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if gotTerm != "María" {
		t.Errorf("Expected search term 'María', got %q", gotTerm)
	}
	var resp PatientListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Expected 1 result, got %d", resp.Total)
	}
}

func TestGetPatient_NotFound(t *testing.T) {
	handler := NewHandler(&mockStore{})

	r := httptest.NewRequest("GET", "/patients/999", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "999"})
	w := httptest.NewRecorder()

	handler.GetPatient(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}

func TestUpdatePatient_PathIDWins(t *testing.T) {
	var gotID string
	handler := NewHandler(&mockStore{
		updateFunc: func(_ context.Context, p Patient) (Patient, bool) {
			gotID = p.ID
			return p, true
		},
	})

	body, _ := json.Marshal(Patient{ID: "spoofed", Name: "María García"})
	r := httptest.NewRequest("PUT", "/patients/1", bytes.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	handler.UpdatePatient(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotID != "1" {
		t.Errorf("Expected path id to win, store saw %q", gotID)
	}
}

func TestUpdatePatient_NotFound(t *testing.T) {
	handler := NewHandler(&mockStore{})

	body, _ := json.Marshal(Patient{Name: "Nadie"})
	r := httptest.NewRequest("PUT", "/patients/999", bytes.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"id": "999"})
	w := httptest.NewRecorder()

	handler.UpdatePatient(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}

func TestDeletePatient(t *testing.T) {
	deleted := map[string]bool{"1": true}
	handler := NewHandler(&mockStore{
		deleteFunc: func(_ context.Context, id string) bool { return deleted[id] },
	})

	r := httptest.NewRequest("DELETE", "/patients/1", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	handler.DeletePatient(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	r = httptest.NewRequest("DELETE", "/patients/2", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "2"})
	w = httptest.NewRecorder()
	handler.DeletePatient(w, r)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}
