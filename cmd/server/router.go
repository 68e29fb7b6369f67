package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/postcraft/postcraft-api/internal/api"
	apiMiddleware "github.com/postcraft/postcraft-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		&app.config.Auth,
	)
	blueprintHandler := api.NewBlueprintHandler(app.blueprintService, app.logger)
	postHandler := api.NewPostHandler(app.postService, app.logger)
	assistHandler := api.NewAssistHandler(app.generationService, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Brand blueprint endpoints
			r.Put("/onboarding/brand-blueprint", blueprintHandler.SaveBlueprint)
			r.Get("/onboarding/brand-blueprint", blueprintHandler.GetBlueprint)

			// Post draft endpoints
			r.Post("/posts", postHandler.CreatePost)
			r.Get("/posts", postHandler.ListPosts)
			r.Get("/posts/{id}", postHandler.GetPost)
			r.Put("/posts/{id}", postHandler.UpdatePost)
			r.Delete("/posts/{id}", postHandler.DeletePost)
			r.Post("/posts/{id}/schedule", postHandler.SchedulePost)
			r.Post("/posts/{id}/publish", postHandler.PublishPost)
			r.Post("/posts/{id}/image", postHandler.UploadImage)

			// AI writing assistant endpoint
			r.Post("/ai/assist", assistHandler.Assist)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
