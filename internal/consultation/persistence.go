package consultation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/clinica-vida/clinic-service/internal/storage"
)

// Bridge mirrors the consultation collection into its durable slot. It is
// fully independent of the patient bridge; there is no cross-slot
// transaction and no cross-store invariant that would need one.
type Bridge struct {
	store storage.Store
	slot  string
}

func NewBridge(store storage.Store) *Bridge {
	return &Bridge{store: store, slot: storage.SlotConsultations}
}

// Load reads the slot once at store construction, falling back to the seed
// when the slot is empty, unreadable or malformed.
func (b *Bridge) Load(ctx context.Context, seed []Consultation) []Consultation {
	payload, err := b.store.Load(ctx, b.slot)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotEmpty) {
			log.Printf("Warning: failed to load consultations slot, reseeding: %v", err)
		}
		return append([]Consultation(nil), seed...)
	}

	var consultations []Consultation
	if err := json.Unmarshal(payload, &consultations); err != nil {
		log.Printf("Warning: malformed consultations slot, reseeding: %v", err)
		return append([]Consultation(nil), seed...)
	}
	return consultations
}

// Save serializes the entire collection and overwrites the slot.
func (b *Bridge) Save(ctx context.Context, consultations []Consultation) error {
	payload, err := json.Marshal(consultations)
	if err != nil {
		return fmt.Errorf("failed to encode consultations: %w", err)
	}
	if err := b.store.Save(ctx, b.slot, payload); err != nil {
		return fmt.Errorf("failed to save consultations slot: %w", err)
	}
	return nil
}
