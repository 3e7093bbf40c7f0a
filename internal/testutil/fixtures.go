package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/mahmudul-dev/bloodlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role and status.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role, userStatus string) models.User {
	f.t.Helper()

	user := models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      email,
		BloodGroup: "O+",
		District:   "Dhaka",
		Upazila:    "Savar",
		Role:       role,
		Status:     userStatus,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDonor inserts an active donor.
func (f *Fixtures) CreateDonor(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, "donor", "active")
}

// CreateDonationRequest inserts a donation request with the given status and
// creation time.
func (f *Fixtures) CreateDonationRequest(ctx context.Context, requesterEmail, reqStatus string, createdAt time.Time) models.DonationRequest {
	f.t.Helper()

	req := models.DonationRequest{
		ID:             primitive.NewObjectID(),
		RequesterEmail: requesterEmail,
		RecipientName:  "Test Recipient",
		BloodGroup:     "A+",
		District:       "Dhaka",
		Upazila:        "Savar",
		Status:         reqStatus,
		CreatedAt:      createdAt,
	}

	if _, err := f.db.Collection("donationRequests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test donation request: %v", err)
	}
	return req
}
