package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lessonup/lessonup-api/internal/api/handlers"
	"github.com/lessonup/lessonup-api/internal/api/middleware"
	"github.com/lessonup/lessonup-api/internal/config"
	"github.com/lessonup/lessonup-api/internal/service"
	"github.com/lessonup/lessonup-api/internal/translate"
	"github.com/lessonup/lessonup-api/internal/validation"
)

// NewRouter wires the public and session-guarded routes. Paths and response
// vocabularies are frozen; existing clients match on them.
func NewRouter(services *service.Services, translateClient *translate.Client, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	validator := validation.New()

	authHandler := handlers.NewAuthHandler(services.Auth, validator, cfg)
	requestHandler := handlers.NewRequestHandler(services.Request, validator)
	messageHandler := handlers.NewMessageHandler(services.Message, validator)
	translateHandler := handlers.NewTranslateHandler(translateClient, validator)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Public routes
	r.Get("/unauthenticated", handlers.Unauthenticated)
	r.Post("/login", authHandler.Login)
	r.Post("/register", authHandler.Register)
	r.Get("/logout", authHandler.Logout)
	r.Get("/getlanguages", translateHandler.GetLanguages)
	r.Post("/translate", translateHandler.Translate)

	// Session-guarded routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(services.Auth))

		r.Post("/new-request", requestHandler.Create)
		r.Get("/all-requests", requestHandler.List)
		r.Delete("/delete-request/{id}", requestHandler.Delete)

		r.Post("/new-message", messageHandler.Post)
		r.Get("/conversations", messageHandler.Conversations)
		r.Get("/messages", messageHandler.Messages)
		r.Delete("/delete-message/{id}", messageHandler.Delete)
	})

	return r
}
