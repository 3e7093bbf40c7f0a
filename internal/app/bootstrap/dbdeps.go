package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database dependencies for the app. One client is created at
// startup and shared by every handler for the lifetime of the process.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
