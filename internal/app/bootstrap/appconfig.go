package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP port, logging
// level and format, request body limits, database connection timeouts).
// AppConfig carries everything specific to this service: the MongoDB
// connection target and pool sizing.
type AppConfig struct {
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size
}
