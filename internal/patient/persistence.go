package patient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/clinica-vida/clinic-service/internal/storage"
)

// Bridge keeps the patients slot equal to the serialized collection. It never
// mutates store state; it only loads it once and mirrors it afterwards.
type Bridge struct {
	store storage.Store
	slot  string
}

func NewBridge(store storage.Store) *Bridge {
	return &Bridge{store: store, slot: storage.SlotPatients}
}

// Load reads the slot once at store construction. An empty, unreadable or
// malformed slot falls back to the supplied seed collection.
func (b *Bridge) Load(ctx context.Context, seed []Patient) []Patient {
	payload, err := b.store.Load(ctx, b.slot)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotEmpty) {
			log.Printf("Warning: failed to load patients slot, reseeding: %v", err)
		}
		return append([]Patient(nil), seed...)
	}

	var patients []Patient
	if err := json.Unmarshal(payload, &patients); err != nil {
		log.Printf("Warning: malformed patients slot, reseeding: %v", err)
		return append([]Patient(nil), seed...)
	}
	return patients
}

// Save serializes the entire collection and overwrites the slot. This is an
// unconditional full rewrite, acceptable at single-clinic scale.
func (b *Bridge) Save(ctx context.Context, patients []Patient) error {
	payload, err := json.Marshal(patients)
	if err != nil {
		return fmt.Errorf("failed to encode patients: %w", err)
	}
	if err := b.store.Save(ctx, b.slot, payload); err != nil {
		return fmt.Errorf("failed to save patients slot: %w", err)
	}
	return nil
}
