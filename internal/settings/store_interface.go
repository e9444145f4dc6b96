package settings

import "context"

// StoreInterface defines the settings operations the HTTP layer consumes
type StoreInterface interface {
	Get() Settings
	Update(ctx context.Context, next Settings) Settings
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)
