package main

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-health/internal/config"
	"github.com/Dan9191/finance-health/internal/handler"
	"github.com/Dan9191/finance-health/internal/middleware"
)

func newRouter(cfg *config.Config, logger *logrus.Logger, h *handler.Handler) *mux.Router {
	requestLogger := middleware.RequestLogger(logger)

	r := mux.NewRouter()
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// Router middleware only wraps matched routes
	r.NotFoundHandler = requestLogger(http.NotFoundHandler())
	r.MethodNotAllowedHandler = requestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))

	r.HandleFunc("/health", h.Health).Methods("GET")

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))
	api.HandleFunc("/analyze", h.Analyze).Methods("POST", "OPTIONS")
	api.HandleFunc("/fields", h.Fields).Methods("GET", "OPTIONS")

	return r
}
