package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"litflix/internal/platform/qloo"
	"litflix/internal/recommend"
)

// Recommender is the slice of the recommendation service this handler
// needs.
type Recommender interface {
	BuildRecommendations(ctx context.Context, explicit recommend.PreferenceSet, userID string) (recommend.Result, error)
	SearchEntities(ctx context.Context, query string, entityType qloo.EntityType) []recommend.Entity
}

type RecommendHandler struct {
	svc Recommender
}

func NewRecommendHandler(svc Recommender) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

type recommendationReq struct {
	BookName  string `json:"book_name" validate:"max=200"`
	MovieName string `json:"movie_name" validate:"max=200"`
	PlaceName string `json:"place_name" validate:"max=200"`
	Age       string `json:"age" validate:"omitempty,age_bucket"`
	Gender    string `json:"gender" validate:"omitempty,gender"`
}

// @Summary Build recommendations
// @Description Assemble personalized book, popular-book, movie, and TV show lists
// @Tags recommendations
// @Accept json
// @Produce json
// @Param preferences body recommendationReq true "Explicit preference overrides (all optional)"
// @Success 200 {object} recommend.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/recommendations [post]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	explicit := recommend.PreferenceSet{
		BookName:  strings.TrimSpace(req.BookName),
		MovieName: strings.TrimSpace(req.MovieName),
		PlaceName: strings.TrimSpace(req.PlaceName),
		Age:       req.Age,
		Gender:    req.Gender,
	}

	// UserIDFrom is empty for anonymous requests; the service falls back
	// to default signals in that case.
	result, err := h.svc.BuildRecommendations(r.Context(), explicit, UserIDFrom(r))
	if err != nil {
		if errors.Is(err, recommend.ErrNoSignals) {
			JSONError(w, http.StatusBadRequest, "NO_SIGNALS", "No valid entity IDs found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	// The raw payload shape (four lists at the top level) is the wire
	// contract clients already depend on, so no success envelope here.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

type searchReq struct {
	Query      string `json:"query" validate:"required,max=200"`
	EntityType string `json:"entity_type" validate:"required,entity_type"`
}

// @Summary Search entities
// @Description Resolve a free-text name to canonical provider entities
// @Tags recommendations
// @Accept json
// @Produce json
// @Param search body searchReq true "Search query"
// @Success 200 {object} map[string][]recommend.Entity
// @Failure 400 {object} ErrorResponse
// @Router /api/search [post]
func (h *RecommendHandler) SearchEntities(w http.ResponseWriter, r *http.Request) {
	var req searchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	entityType, _ := qloo.ParseEntityType(req.EntityType)
	entities := h.svc.SearchEntities(r.Context(), strings.TrimSpace(req.Query), entityType)
	if entities == nil {
		entities = []recommend.Entity{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]recommend.Entity{"results": entities})
}
