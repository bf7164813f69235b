// Package store is the document store behind the club directory. Lookups by
// name and the writes that follow them are separate round trips; nothing here
// wraps them in a transaction.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/campus-clubs-go/models"
)

// Collection names.
const (
	OrganizationsCollection = "organizations"
	EventsCollection        = "events"
	UsersCollection         = "users"
)

// ErrNotFound is returned when no document matches a lookup or a write target.
var ErrNotFound = errors.New("document not found")

// Store is implemented by Mongo and Memory.
type Store interface {
	CreateOrganization(ctx context.Context, org *models.Organization) (primitive.ObjectID, error)
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	// FindOrganizationByName returns the first organization whose name equals name.
	FindOrganizationByName(ctx context.Context, name string) (*models.Organization, error)
	// UpdateOrganization overwrites name, description and admin of the organization with the given ID.
	UpdateOrganization(ctx context.Context, id primitive.ObjectID, org *models.Organization) error
	DeleteOrganization(ctx context.Context, id primitive.ObjectID) error

	CreateEvent(ctx context.Context, ev *models.Event) (primitive.ObjectID, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]models.Event, error)

	// SetSelectedCourses replaces the user's selected courses, creating the user document if needed.
	SetSelectedCourses(ctx context.Context, userID string, courses []string) error

	Close(ctx context.Context) error
}
