package patient

import "context"

// StoreInterface defines the patient operations the HTTP layer consumes
type StoreInterface interface {
	Add(ctx context.Context, p Patient) Patient
	Update(ctx context.Context, p Patient) (Patient, bool)
	Delete(ctx context.Context, id string) bool
	GetByID(id string) (Patient, bool)
	Search(ctx context.Context, term string) []Patient
	Patients() []Patient
	SearchResults() []Patient
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)
