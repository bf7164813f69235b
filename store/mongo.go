package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/phillip/campus-clubs-go/models"
)

// Connect dials MongoDB and pings it, retrying with exponential backoff for up to maxElapsed.
func Connect(uri string, maxElapsed time.Duration, log logrus.FieldLogger) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("database connection URI is empty")
	}
	// A zero MaxElapsedTime would retry forever.
	if maxElapsed <= 0 {
		return nil, fmt.Errorf("connect retry window must be positive, got %s", maxElapsed)
	}

	clientOptions := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = maxElapsed

	var client *mongo.Client
	err := backoff.RetryNotify(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			return err
		}
		if err := c.Ping(ctx, nil); err != nil {
			_ = c.Disconnect(context.Background())
			return err
		}
		client = c
		return nil
	}, bo, func(err error, next time.Duration) {
		log.WithError(err).WithField("retry_in", next.String()).Warn("MongoDB not reachable, retrying")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	log.Info("Successfully connected to MongoDB")
	return client, nil
}

// Mongo is the MongoDB backed Store.
type Mongo struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// NewMongo returns a Store over dbName; timeout bounds each call.
func NewMongo(client *mongo.Client, dbName string, timeout time.Duration) *Mongo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Mongo{
		client:  client,
		db:      client.Database(dbName),
		timeout: timeout,
	}
}

func (m *Mongo) col(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// ---------------- ORGANIZATIONS ----------------

func (m *Mongo) CreateOrganization(ctx context.Context, org *models.Organization) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	doc := *org
	doc.ID = primitive.NewObjectID()
	if _, err := m.col(OrganizationsCollection).InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert organization: %w", err)
	}
	return doc.ID, nil
}

func (m *Mongo) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	cursor, err := m.col(OrganizationsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find organizations: %w", err)
	}

	orgs := []models.Organization{}
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, fmt.Errorf("decode organizations: %w", err)
	}
	return orgs, nil
}

func (m *Mongo) FindOrganizationByName(ctx context.Context, name string) (*models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var org models.Organization
	err := m.col(OrganizationsCollection).FindOne(ctx, bson.M{"name": name}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find organization %q: %w", name, err)
	}
	return &org, nil
}

func (m *Mongo) UpdateOrganization(ctx context.Context, id primitive.ObjectID, org *models.Organization) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	update := bson.M{
		"name":        org.Name,
		"description": org.Description,
		"admin":       org.Admin,
	}
	res, err := m.col(OrganizationsCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("update organization %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteOrganization(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := m.col(OrganizationsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete organization %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------- EVENTS ----------------

func (m *Mongo) CreateEvent(ctx context.Context, ev *models.Event) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	doc := *ev
	doc.ID = primitive.NewObjectID()
	if _, err := m.col(EventsCollection).InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert event: %w", err)
	}
	return doc.ID, nil
}

func (m *Mongo) ListEvents(ctx context.Context) ([]models.Event, error) {
	return m.findEvents(ctx, bson.M{})
}

func (m *Mongo) ListEventsByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]models.Event, error) {
	return m.findEvents(ctx, bson.M{"orgId": orgID})
}

func (m *Mongo) findEvents(ctx context.Context, filter bson.M) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	cursor, err := m.col(EventsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// ---------------- USERS ----------------

func (m *Mongo) SetSelectedCourses(ctx context.Context, userID string, courses []string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	_, err := m.col(UsersCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"selectedCourses": courses}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("update selected courses for %s: %w", userID, err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
