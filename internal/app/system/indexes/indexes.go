// Package indexes creates the MongoDB indexes this service relies on.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll is called at startup. Index creation is idempotent; errors are
// aggregated so any problem is visible and startup can fail fast.
//
// The unique index on users.email is load-bearing: registration relies on it
// to close the find-then-insert race between concurrent registrations for
// the same address.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureDonationRequests(ctx, db); err != nil {
		problems = append(problems, "donationRequests: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		// Donor search filters on role+status and optionally bloodGroup.
		{
			Keys: bson.D{
				{Key: "role", Value: 1},
				{Key: "status", Value: 1},
				{Key: "bloodGroup", Value: 1},
			},
			Options: options.Index().SetName("donor_search"),
		},
	}
	return createIndexes(ctx, db.Collection("users"), models)
}

func ensureDonationRequests(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		// Owner listing filters by requesterEmail and optionally status.
		{
			Keys: bson.D{
				{Key: "requesterEmail", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("requester_status"),
		},
		// Pending queue reads status=pending sorted by createdAt desc.
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("status_created"),
		},
	}
	return createIndexes(ctx, db.Collection("donationRequests"), models)
}

func createIndexes(ctx context.Context, c *mongo.Collection, models []mongo.IndexModel) error {
	_, err := c.Indexes().CreateMany(ctx, models)
	if err != nil && isOptionsConflictErr(err) {
		// An index with the same keys already exists under a different name
		// or options. Leave it alone; reconciliation is a manual operation.
		return nil
	}
	return err
}

// Mongo/DocDB returns IndexOptionsConflict when an index with the same keys
// already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
