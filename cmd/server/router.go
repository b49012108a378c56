package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/selfqa-api/internal/api"
	apiMiddleware "github.com/phrazzld/selfqa-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	selfQAHandler := api.NewSelfQAHandler(app.selfQAService, app.logger)
	modelConfigHandler := api.NewModelConfigHandler(app.modelConfigService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Generation endpoint; synchronous, returns the finished batch.
			r.Post("/selfqa/generate", selfQAHandler.GenerateSelfQA)

			// Model configuration management
			r.Post("/model-configs", modelConfigHandler.CreateModelConfig)
			r.Get("/model-configs/active", modelConfigHandler.GetActiveModelConfig)
			r.Get("/model-configs/{id}", modelConfigHandler.GetModelConfigByID)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
