package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/campus-clubs-go/models"
)

func TestMemoryFindByNameReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.CreateOrganization(ctx, &models.Organization{Name: "Chess Club", Admin: "alice"})
	require.NoError(t, err)
	_, err = m.CreateOrganization(ctx, &models.Organization{Name: "Chess Club", Admin: "bob"})
	require.NoError(t, err)

	org, err := m.FindOrganizationByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, first, org.ID)
	assert.Equal(t, "alice", org.Admin)

	_, err = m.FindOrganizationByName(ctx, "Go Club")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.CreateOrganization(ctx, &models.Organization{Name: "Chess Club"})
	require.NoError(t, err)

	require.NoError(t, m.UpdateOrganization(ctx, id, &models.Organization{Name: "Chess Society", Description: "d", Admin: "a"}))
	org, err := m.FindOrganizationByName(ctx, "Chess Society")
	require.NoError(t, err)
	assert.Equal(t, "d", org.Description)

	require.NoError(t, m.DeleteOrganization(ctx, id))
	assert.ErrorIs(t, m.DeleteOrganization(ctx, id), ErrNotFound)
	assert.ErrorIs(t, m.UpdateOrganization(ctx, id, org), ErrNotFound)
}

func TestMemoryEventsByOrganization(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	chess, other := primitive.NewObjectID(), primitive.NewObjectID()

	_, err := m.CreateEvent(ctx, &models.Event{OrgID: chess, EventName: "Blitz Night"})
	require.NoError(t, err)
	_, err = m.CreateEvent(ctx, &models.Event{OrgID: other, EventName: "Bake Sale"})
	require.NoError(t, err)

	events, err := m.ListEventsByOrganization(ctx, chess)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Blitz Night", events[0].EventName)

	none, err := m.ListEventsByOrganization(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := m.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemorySelectedCoursesAreReplaced(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.SetSelectedCourses(ctx, "uid-1", []string{"CS 101", "MATH 221"}))
	require.NoError(t, m.SetSelectedCourses(ctx, "uid-1", []string{"PHYS 151"}))

	u, ok := m.User("uid-1")
	require.True(t, ok)
	assert.Equal(t, []string{"PHYS 151"}, u.SelectedCourses)
}
