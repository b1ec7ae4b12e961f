package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"levelgen.dev/internal/models"
	"levelgen.dev/internal/services"
)

// LevelHandler handles level generation and lookup endpoints
type LevelHandler struct {
	levelService *services.LevelService
}

// NewLevelHandler creates a new LevelHandler
func NewLevelHandler(ls *services.LevelService) *LevelHandler {
	return &LevelHandler{levelService: ls}
}

// ListLevels handles GET /api/levels - returns the level index
func (h *LevelHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.levelService.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, levels)
}

// CreateLevel handles POST /api/levels - generates and stores a level
func (h *LevelHandler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.levelService.Generate(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, summary)
}

// GetLevel handles GET /api/levels/{id} - returns the full export
func (h *LevelHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	level, err := h.levelService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, level)
}

// GetCell handles GET /api/levels/{id}/cells/{x}/{y} - returns one cell
func (h *LevelHandler) GetCell(w http.ResponseWriter, r *http.Request) {
	xStr := chi.URLParam(r, "x")
	yStr := chi.URLParam(r, "y")

	x, err := strconv.Atoi(xStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}

	y, err := strconv.Atoi(yStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	cell, err := h.levelService.Cell(r.Context(), chi.URLParam(r, "id"), x, y)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cell)
}

// GetViewport handles GET /api/levels/{id}/viewport - returns the tiles
// around x, y
func (h *LevelHandler) GetViewport(w http.ResponseWriter, r *http.Request) {
	center := models.Position{
		X: parseIntParam(r, "x", 0),
		Y: parseIntParam(r, "y", 0),
	}

	// Clamp to reasonable values
	width := clamp(parseIntParam(r, "width", 40), 10, 200)
	height := clamp(parseIntParam(r, "height", 20), 10, 100)

	viewport, err := h.levelService.Viewport(r.Context(), chi.URLParam(r, "id"), center, width, height)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, viewport)
}

// respondServiceError maps service errors onto status codes
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrLevelNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOutOfBounds):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
