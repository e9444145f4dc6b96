package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/clinica-vida/clinic-service/internal/storage"
)

// Bridge mirrors the settings record into its slot. Unlike the collection
// bridges this slot holds a single object, not an array.
type Bridge struct {
	store storage.Store
	slot  string
}

func NewBridge(store storage.Store) *Bridge {
	return &Bridge{store: store, slot: storage.SlotSettings}
}

// Load reads the slot once at store construction. An empty, unreadable or
// malformed slot falls back to the defaults.
func (b *Bridge) Load(ctx context.Context) Settings {
	payload, err := b.store.Load(ctx, b.slot)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotEmpty) {
			log.Printf("Warning: failed to load settings slot, using defaults: %v", err)
		}
		return Defaults()
	}

	var s Settings
	if err := json.Unmarshal(payload, &s); err != nil {
		log.Printf("Warning: malformed settings slot, using defaults: %v", err)
		return Defaults()
	}
	return s
}

// Save serializes the record and overwrites the slot
func (b *Bridge) Save(ctx context.Context, s Settings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := b.store.Save(ctx, b.slot, payload); err != nil {
		return fmt.Errorf("failed to save settings slot: %w", err)
	}
	return nil
}
