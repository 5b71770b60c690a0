package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkurosawa/kotoba-api/internal/api"
	apiMiddleware "github.com/mkurosawa/kotoba-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userRegistrar,
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	quizHandler := api.NewQuizHandler(app.quizService, app.logger)
	progressHandler := api.NewProgressHandler(app.progressStore, app.catalog, app.logger)
	contentHandler := api.NewContentHandler(app.progressStore, app.catalog, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Catalog and reference content
			r.Get("/catalog/{category}", contentHandler.GetCategory)
			r.Get("/grammar", contentHandler.GetGrammar)
			r.Get("/lookup", contentHandler.Lookup)

			// Quiz session lifecycle
			r.Post("/quiz/sessions", quizHandler.StartSession)
			r.Get("/quiz/sessions/current", quizHandler.CurrentSession)
			r.Delete("/quiz/sessions/current", quizHandler.Abandon)
			r.Get("/quiz/sessions/current/question", quizHandler.CurrentQuestion)
			r.Post("/quiz/sessions/current/answer", quizHandler.SubmitAnswer)
			r.Post("/quiz/sessions/current/next", quizHandler.Advance)
			r.Get("/quiz/sessions/current/hint", quizHandler.Hint)

			// Per-item progress
			r.Get("/progress/{itemID}", progressHandler.GetItemProgress)
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
