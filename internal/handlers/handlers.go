package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"levelgen.dev/internal/middleware"
	"levelgen.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(levelService *services.LevelService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize handlers
	levelHandler := NewLevelHandler(levelService)
	streamHandler := NewStreamHandler(levelService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Level endpoints
		r.Get("/levels", levelHandler.ListLevels)
		r.Post("/levels", levelHandler.CreateLevel)
		r.Get("/levels/stream", streamHandler.Stream)
		r.Get("/levels/{id}", levelHandler.GetLevel)
		r.Get("/levels/{id}/cells/{x}/{y}", levelHandler.GetCell)
		r.Get("/levels/{id}/viewport", levelHandler.GetViewport)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// parseIntParam parses an integer query parameter with a default
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
