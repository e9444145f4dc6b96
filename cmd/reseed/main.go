package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/clinica-vida/clinic-service/internal/config"
	"github.com/clinica-vida/clinic-service/internal/consultation"
	"github.com/clinica-vida/clinic-service/internal/patient"
	"github.com/clinica-vida/clinic-service/internal/settings"
	"github.com/clinica-vida/clinic-service/internal/storage"
)

// Reseed job: reports what each slot currently holds, then overwrites every
// slot with the demo seed. Destructive by design; it exists for demos and
// local resets.
func main() {
	log.Println("Clinic Reseed Job - Starting")

	godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slotStore, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer slotStore.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, slot := range storage.Slots {
		payload, err := slotStore.Load(ctx, slot)
		switch {
		case errors.Is(err, storage.ErrSlotEmpty):
			log.Printf("Slot %s: empty", slot)
		case err != nil:
			log.Printf("Slot %s: unreadable: %v", slot, err)
		default:
			log.Printf("Slot %s: %d bytes", slot, len(payload))
		}
	}

	seeds := map[string]interface{}{
		storage.SlotPatients:      patient.SeedPatients(),
		storage.SlotConsultations: consultation.SeedConsultations(),
		storage.SlotSettings:      settings.Defaults(),
	}

	for _, slot := range storage.Slots {
		payload, err := json.Marshal(seeds[slot])
		if err != nil {
			log.Fatalf("Failed to encode seed for slot %s: %v", slot, err)
		}
		if err := slotStore.Save(ctx, slot, payload); err != nil {
			log.Fatalf("Failed to write slot %s: %v", slot, err)
		}
		log.Printf("✓ Slot %s reseeded (%d bytes)", slot, len(payload))
	}

	log.Println("Reseed Job - Finished")
}
