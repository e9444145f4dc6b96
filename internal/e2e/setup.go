package e2e

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/clinica-vida/clinic-service/internal/consultation"
	"github.com/clinica-vida/clinic-service/internal/dashboard"
	httpserver "github.com/clinica-vida/clinic-service/internal/http"
	"github.com/clinica-vida/clinic-service/internal/notify"
	"github.com/clinica-vida/clinic-service/internal/patient"
	"github.com/clinica-vida/clinic-service/internal/settings"
	"github.com/clinica-vida/clinic-service/internal/storage"
	"github.com/clinica-vida/clinic-service/internal/testutil"
)

// CapturePublisher records every published notification in memory
type CapturePublisher struct {
	mu     sync.Mutex
	events []notify.Notification
}

func (p *CapturePublisher) Publish(_ context.Context, n notify.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, n)
}

// CountByType returns how many captured notifications carry the event type
func (p *CapturePublisher) CountByType(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, n := range p.events {
		if n.EventType == eventType {
			count++
		}
	}
	return count
}

var _ notify.Publisher = (*CapturePublisher)(nil)

// TestServer represents a complete test environment: in-memory storage, real
// stores and the full router behind an httptest server.
type TestServer struct {
	Server    *httptest.Server
	Storage   storage.Store
	Publisher *CapturePublisher
}

// SetupE2ETest wires the whole service against in-memory storage
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	ctx := context.Background()
	slotStore := storage.NewMemoryStore()
	publisher := &CapturePublisher{}

	patients := patient.NewStore(ctx, patient.NewBridge(slotStore), publisher, nil)
	consultations := consultation.NewStore(ctx, consultation.NewBridge(slotStore), patients, publisher, nil)
	settingsStore := settings.NewStore(ctx, settings.NewBridge(slotStore), publisher, nil)

	router := httpserver.SetupRouter(httpserver.Stores{
		Patients:      patients,
		Consultations: consultations,
		Dashboard:     dashboard.NewService(patients, consultations),
		Settings:      settingsStore,
	}, nil)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:    server,
		Storage:   slotStore,
		Publisher: publisher,
	}
}

// NewClient creates a new HTTP test client for this server
func (ts *TestServer) NewClient() *testutil.HTTPTestClient {
	return testutil.NewHTTPTestClient(ts.Server.URL)
}
