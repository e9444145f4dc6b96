package patient

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/clinica-vida/clinic-service/internal/notify"
	"github.com/clinica-vida/clinic-service/internal/storage"
	"github.com/clinica-vida/clinic-service/internal/telemetry"
)

// Store is the sole owner of the in-memory patient collection and its
// search-results projection. Every mutation ends with a synchronous save of
// the full collection; a failed save is reported but never fatal, and the
// in-memory collection stays authoritative for the rest of the session.
type Store struct {
	mu       sync.RWMutex
	records  []Patient
	results  []Patient
	bridge   *Bridge
	notifier notify.Publisher
	metrics  *telemetry.Metrics
}

// NewStore loads the initial collection through the bridge, falling back to
// the demo seed when the slot has never been written.
func NewStore(ctx context.Context, bridge *Bridge, notifier notify.Publisher, metrics *telemetry.Metrics) *Store {
	records := bridge.Load(ctx, SeedPatients())
	return &Store{
		records:  records,
		results:  append([]Patient(nil), records...),
		bridge:   bridge,
		notifier: notifier,
		metrics:  metrics,
	}
}

// Add appends the patient unconditionally; there is no duplicate-id check.
// A record arriving without an id gets a timestamp-derived one.
func (s *Store) Add(ctx context.Context, p Patient) Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = newID()
	}
	p.Gender = NormalizeGender(p.Gender)
	s.records = append(s.records, p)
	s.afterMutation(ctx, "add")
	return p
}

// Update replaces the record whose id matches. A missing id leaves the
// collection untouched; the second return value reports whether a record
// was replaced.
func (s *Store) Update(ctx context.Context, p Patient) (Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == p.ID {
			p.Gender = NormalizeGender(p.Gender)
			s.records[i] = p
			s.afterMutation(ctx, "update")
			return p, true
		}
	}
	return Patient{}, false
}

// Delete removes the record with the matching id; absent ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.afterMutation(ctx, "delete")
			return true
		}
	}
	return false
}

// GetByID is a pure read with no side effects.
func (s *Store) GetByID(id string) (Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.records {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}

// Search replaces the search-results projection. A blank term resets it to
// the full collection. Matching is case-insensitive over name and email and
// case-sensitive over phone. An empty result publishes a non-blocking
// notification; it is informational, not an error.
func (s *Store) Search(ctx context.Context, term string) []Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(term) == "" {
		s.results = append([]Patient(nil), s.records...)
		return append([]Patient(nil), s.results...)
	}

	lower := strings.ToLower(term)
	results := []Patient{}
	for _, p := range s.records {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Email), lower) ||
			strings.Contains(p.Phone, term) {
			results = append(results, p)
		}
	}
	s.results = results

	if len(results) == 0 {
		s.metrics.RecordEmptySearch(ctx)
		s.notifier.Publish(ctx, notify.New(
			notify.EventEmptySearch,
			"No se encontraron resultados",
			fmt.Sprintf("No hay pacientes que coincidan con %q", term),
		))
	}
	return append([]Patient(nil), results...)
}

// Patients returns a snapshot of the full collection.
func (s *Store) Patients() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Patient(nil), s.records...)
}

// SearchResults returns a snapshot of the current search projection.
func (s *Store) SearchResults() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Patient(nil), s.results...)
}

// afterMutation mirrors the collection to the durable slot and resets the
// search projection to the full collection. Callers hold the write lock.
func (s *Store) afterMutation(ctx context.Context, op string) {
	s.results = append([]Patient(nil), s.records...)
	s.metrics.RecordPatientOperation(ctx, op)

	start := time.Now()
	if err := s.bridge.Save(ctx, s.records); err != nil {
		log.Printf("Warning: patient save failed, in-memory state is ahead of storage: %v", err)
		s.metrics.RecordStorageFailure(ctx, storage.SlotPatients)
		s.notifier.Publish(ctx, notify.New(
			notify.EventStorageFailure,
			"No se pudo guardar",
			"Los cambios de pacientes no se pudieron escribir en el almacenamiento local.",
		))
		return
	}
	s.metrics.RecordStorageSave(ctx, storage.SlotPatients, float64(time.Since(start).Microseconds())/1000.0)
}

func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
