package consultation

import "context"

// StoreInterface defines the consultation operations the HTTP layer consumes
type StoreInterface interface {
	Add(ctx context.Context, c Consultation) Consultation
	Update(ctx context.Context, c Consultation) (Consultation, bool)
	Delete(ctx context.Context, id string) bool
	GetByID(id string) (Consultation, bool)
	Consultations() []Consultation
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)
