package store

import (
	"context"
	"sync"

	"github.com/mark3labs/dnvquote/internal/form"
)

func testDraft() form.Draft {
	d := form.New()
	d.Identity.LegalEntityName = "Acme General Hospital"
	d.Identity.SetSameAsLegal(true)
	d.Identity.Primary = form.PrimaryContact{FirstName: "Jane", LastName: "Doe", Email: "jane@acme.example", WorkPhone: "555-0100", Title: "Administrator"}
	d.Facility.Type = form.FacilityCriticalAccess
	d.Leadership.CEO.SetSameAsPrimary(true, d.Identity.Primary)
	d.Leadership.Billing = form.Address{Street: "1 Main St", City: "Austin", State: "TX", ZIP: "73301"}
	d.Sites.Mode = form.SiteMultiple
	d.Sites.Files.Add(form.FileDescriptor{Name: "sites.xlsx", Size: 2048})
	d.Services.ToggleService("Cardiac Services", "Open Heart")
	d.Services.AddOther("Telemetry")
	d.Services.ToggleStandard("Action1")
	_, _ = d.Services.AddThrombolytic("2026-09-01")
	return d
}

// memStore counts saves and keeps the last draft.
type memStore struct {
	mu     sync.Mutex
	saved  *form.Draft
	saves  int
	closed bool
	err    error
}

func (m *memStore) Load(context.Context) (form.Draft, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return form.Draft{}, false, nil
	}
	return *m.saved, true, nil
}

func (m *memStore) Save(_ context.Context, d form.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.saved = &d
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	return nil
}

func (m *memStore) Close() error {
	m.closed = true
	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
