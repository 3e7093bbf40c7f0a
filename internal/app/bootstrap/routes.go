package bootstrap

import (
	"net/http"

	donationsfeature "github.com/mahmudul-dev/bloodlink/internal/app/features/donations"
	healthfeature "github.com/mahmudul-dev/bloodlink/internal/app/features/health"
	homefeature "github.com/mahmudul-dev/bloodlink/internal/app/features/home"
	usersfeature "github.com/mahmudul-dev/bloodlink/internal/app/features/users"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection and schema setup have
// completed. The API is consumed by a browser frontend on a different
// origin, so permissive CORS is applied at the root, matching how the
// service has always been deployed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Liveness string for uptime checks
	homeHandler := homefeature.NewHandler(logger)
	r.Get("/", homeHandler.Serve)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// User registration, lookup, role administration, donor search
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	usersfeature.Routes(r, usersHandler)

	// Donation request lifecycle
	donationsHandler := donationsfeature.NewHandler(deps.MongoDatabase, logger)
	donationsfeature.Routes(r, donationsHandler)

	return r, nil
}
