// Package testutil provides helpers for tests that need a live MongoDB.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/indexes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// EnvTestMongoURI names the environment variable that points store and
// handler tests at a MongoDB instance. Tests that need a database skip
// when it is unset.
const EnvTestMongoURI = "BLOODLINK_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB instance and returns a database
// with a unique name, with this service's indexes created. The database is
// dropped and the client disconnected when the test finishes.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(EnvTestMongoURI)
	if uri == "" {
		t.Skipf("%s not set; skipping test that needs MongoDB", EnvTestMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to test MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("failed to ping test MongoDB: %v", err)
	}

	db := client.Database(fmt.Sprintf("bloodlink_test_%d", time.Now().UnixNano()))

	// Create the production indexes so duplicate-key behavior in tests
	// matches the real deployment.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("failed to create test indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("failed to drop test database %s: %v", db.Name(), err)
		}
		_ = client.Disconnect(ctx)
	})

	return db
}

// TestContext returns a context with a generous timeout for test operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}
