package settings

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/clinica-vida/clinic-service/internal/notify"
	"github.com/clinica-vida/clinic-service/internal/storage"
	"github.com/clinica-vida/clinic-service/internal/telemetry"
)

// Store owns the single settings record. Update replaces the whole record
// and saves it synchronously; a failed save is reported but never fatal.
type Store struct {
	mu       sync.RWMutex
	current  Settings
	bridge   *Bridge
	notifier notify.Publisher
	metrics  *telemetry.Metrics
}

// NewStore loads the record through the bridge, falling back to the defaults
// when the slot has never been written.
func NewStore(ctx context.Context, bridge *Bridge, notifier notify.Publisher, metrics *telemetry.Metrics) *Store {
	return &Store{
		current:  bridge.Load(ctx),
		bridge:   bridge,
		notifier: notifier,
		metrics:  metrics,
	}
}

// Get returns the current record.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces the record wholesale and mirrors it to the slot.
func (s *Store) Update(ctx context.Context, next Settings) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = next

	start := time.Now()
	if err := s.bridge.Save(ctx, s.current); err != nil {
		log.Printf("Warning: settings save failed, in-memory state is ahead of storage: %v", err)
		s.metrics.RecordStorageFailure(ctx, storage.SlotSettings)
		s.notifier.Publish(ctx, notify.New(
			notify.EventStorageFailure,
			"No se pudo guardar",
			"La configuración no se pudo escribir en el almacenamiento local.",
		))
		return s.current
	}
	s.metrics.RecordStorageSave(ctx, storage.SlotSettings, float64(time.Since(start).Microseconds())/1000.0)
	return s.current
}
