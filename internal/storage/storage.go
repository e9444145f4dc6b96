package storage

import (
	"context"
	"errors"
	"fmt"
)

// Store is the durable key-value contract behind every persistence bridge:
// one named slot per collection, holding that collection's full serialized
// form. Saves are unconditional full rewrites of the slot.
type Store interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, payload []byte) error
	Close() error
}

// ErrSlotEmpty is returned by Load when the named slot has never been written.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot names used by the service.
const (
	SlotPatients      = "patients"
	SlotConsultations = "consultations"
	SlotSettings      = "settings"
)

// Slots lists every slot the service owns, in display order.
var Slots = []string{SlotPatients, SlotConsultations, SlotSettings}

// Open constructs the store selected by the configured driver.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "sqlite", "":
		return OpenSQLite(path)
	case "file":
		return NewFileStore(path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
