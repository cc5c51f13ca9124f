package models

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo is an in-process implementation of TenantRepo and EventsRepo.
// It backs the datastore-free demo mode and the service tests. All values are
// copied on the way in and out so callers can't mutate stored state.
type MemoryRepo struct {
	mu      sync.RWMutex
	tenants []Tenant
	events  []Event
}

func NewMemoryRepo(tenants []Tenant, events []Event) *MemoryRepo {
	r := &MemoryRepo{}
	r.tenants = append(r.tenants, tenants...)
	r.events = append(r.events, events...)
	return r
}

func (m *MemoryRepo) GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.tenants {
		if m.tenants[i].Slug == slug {
			t := m.tenants[i]
			return &t, nil
		}
	}
	return nil, ErrTenantNotFound
}

func (m *MemoryRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].TenantID == event.TenantID && m.events[i].Slug == event.Slug {
			return nil, ErrSlugTaken
		}
	}

	m.events = append(m.events, *event)
	stored := *event
	return &stored, nil
}

func (m *MemoryRepo) GetEventByID(ctx context.Context, tenantID, id uuid.UUID) (*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.events {
		if m.events[i].ID == id && m.events[i].TenantID == tenantID {
			e := m.events[i]
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}

func (m *MemoryRepo) GetEventBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.events {
		if m.events[i].TenantID == tenantID && m.events[i].Slug == slug {
			e := m.events[i]
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}

func (m *MemoryRepo) ListEvents(ctx context.Context, tenantID uuid.UUID, status EventStatus, offset, limit int) ([]*Event, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []*Event{}
	for i := range m.events {
		if m.events[i].TenantID != tenantID {
			continue
		}
		if status != "" && m.events[i].Status != status {
			continue
		}
		e := m.events[i]
		matched = append(matched, &e)
	}

	total := len(matched)
	if offset >= total {
		return []*Event{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *MemoryRepo) UpdateEvent(ctx context.Context, event *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == event.ID && m.events[i].TenantID == event.TenantID {
			m.events[i] = *event
			stored := *event
			return &stored, nil
		}
	}
	return nil, ErrEventNotFound
}

func (m *MemoryRepo) DeleteEvent(ctx context.Context, tenantID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == id && m.events[i].TenantID == tenantID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}
