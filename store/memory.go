package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/campus-clubs-go/models"
)

// Memory is an in-process Store. Documents are kept in insertion order so
// name lookups return the oldest match, like a natural-order Mongo scan.
type Memory struct {
	mu     sync.RWMutex
	orgs   []models.Organization
	events []models.Event
	users  map[string]models.User
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

func (m *Memory) CreateOrganization(_ context.Context, org *models.Organization) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := *org
	doc.ID = primitive.NewObjectID()
	m.orgs = append(m.orgs, doc)
	return doc.ID, nil
}

func (m *Memory) ListOrganizations(_ context.Context) ([]models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Organization, len(m.orgs))
	copy(out, m.orgs)
	return out, nil
}

func (m *Memory) FindOrganizationByName(_ context.Context, name string) (*models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, org := range m.orgs {
		if org.Name == name {
			found := org
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateOrganization(_ context.Context, id primitive.ObjectID, org *models.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orgs {
		if m.orgs[i].ID == id {
			m.orgs[i].Name = org.Name
			m.orgs[i].Description = org.Description
			m.orgs[i].Admin = org.Admin
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteOrganization(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orgs {
		if m.orgs[i].ID == id {
			m.orgs = append(m.orgs[:i], m.orgs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) CreateEvent(_ context.Context, ev *models.Event) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := *ev
	doc.ID = primitive.NewObjectID()
	m.events = append(m.events, doc)
	return doc.ID, nil
}

func (m *Memory) ListEvents(_ context.Context) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Event, len(m.events))
	copy(out, m.events)
	return out, nil
}

func (m *Memory) ListEventsByOrganization(_ context.Context, orgID primitive.ObjectID) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Event{}
	for _, ev := range m.events {
		if ev.OrgID == orgID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *Memory) SetSelectedCourses(_ context.Context, userID string, courses []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	selected := make([]string, len(courses))
	copy(selected, courses)
	m.users[userID] = models.User{ID: userID, SelectedCourses: selected}
	return nil
}

// User returns a copy of the stored user document.
func (m *Memory) User(userID string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	return u, ok
}

func (m *Memory) Close(context.Context) error { return nil }
