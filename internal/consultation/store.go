package consultation

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/clinica-vida/clinic-service/internal/notify"
	"github.com/clinica-vida/clinic-service/internal/patient"
	"github.com/clinica-vida/clinic-service/internal/storage"
	"github.com/clinica-vida/clinic-service/internal/telemetry"
)

// PatientDirectory resolves the denormalized patient-name snapshot at write
// time. A dangling patientId is not an error; the caller-supplied name is
// kept as is.
type PatientDirectory interface {
	GetByID(id string) (patient.Patient, bool)
}

// Store owns the in-memory consultation collection. Same contract shape as
// the patient store, without the search projection.
type Store struct {
	mu        sync.RWMutex
	records   []Consultation
	bridge    *Bridge
	directory PatientDirectory
	notifier  notify.Publisher
	metrics   *telemetry.Metrics
}

func NewStore(ctx context.Context, bridge *Bridge, directory PatientDirectory, notifier notify.Publisher, metrics *telemetry.Metrics) *Store {
	return &Store{
		records:   bridge.Load(ctx, SeedConsultations()),
		bridge:    bridge,
		directory: directory,
		notifier:  notifier,
		metrics:   metrics,
	}
}

// Add appends the consultation unconditionally and stamps the patient-name
// snapshot from the directory when the referenced patient exists.
func (s *Store) Add(ctx context.Context, c Consultation) Consultation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = newID()
	}
	s.stamp(&c)
	s.records = append(s.records, c)
	s.afterMutation(ctx, "add")
	return c
}

// Update replaces the record whose id matches; a missing id leaves the
// collection untouched. The name snapshot is re-stamped from the directory,
// so an update after a patient rename picks up the new name. Nothing ever
// rewrites snapshots in place when the patient changes.
func (s *Store) Update(ctx context.Context, c Consultation) (Consultation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == c.ID {
			s.stamp(&c)
			s.records[i] = c
			s.afterMutation(ctx, "update")
			return c, true
		}
	}
	return Consultation{}, false
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
func (s *Store) GetByID(id string) (Consultation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.records {
		if c.ID == id {
			return c, true
		}
	}
	return Consultation{}, false
}

// Consultations returns a snapshot of the full collection in insertion order.
func (s *Store) Consultations() []Consultation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Consultation(nil), s.records...)
}

func (s *Store) stamp(c *Consultation) {
	c.Specialty = NormalizeSpecialty(c.Specialty)
	if s.directory == nil {
		return
	}
	if p, ok := s.directory.GetByID(c.PatientID); ok {
		c.PatientName = p.Name
	}
}

func (s *Store) afterMutation(ctx context.Context, op string) {
	s.metrics.RecordConsultationOperation(ctx, op)

	start := time.Now()
	if err := s.bridge.Save(ctx, s.records); err != nil {
		log.Printf("Warning: consultation save failed, in-memory state is ahead of storage: %v", err)
		s.metrics.RecordStorageFailure(ctx, storage.SlotConsultations)
		s.notifier.Publish(ctx, notify.New(
			notify.EventStorageFailure,
			"No se pudo guardar",
			"Los cambios de consultas no se pudieron escribir en el almacenamiento local.",
		))
		return
	}
	s.metrics.RecordStorageSave(ctx, storage.SlotConsultations, float64(time.Since(start).Microseconds())/1000.0)
}

func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
