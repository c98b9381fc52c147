package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"litflix/internal/entity"
	"litflix/internal/usecase"
)

type PreferenceHandler struct {
	repo usecase.PreferenceRepository
}

func NewPreferenceHandler(repo usecase.PreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{repo: repo}
}

type preferenceReq struct {
	BookName  string `json:"book_name" validate:"max=200"`
	MovieName string `json:"movie_name" validate:"max=200"`
	PlaceName string `json:"place_name" validate:"max=200"`
	Age       string `json:"age" validate:"omitempty,age_bucket"`
	Gender    string `json:"gender" validate:"omitempty,gender"`
}

// @Summary Update preferences
// @Description Store the user's taste preferences (full replace)
// @Tags preferences
// @Accept json
// @Produce json
// @Security Bearer
// @Param preferences body preferenceReq true "Preference values"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/preferences [put]
func (h *PreferenceHandler) UpsertPreferences(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req preferenceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	pref := &entity.Preference{
		UserID:    userID,
		BookName:  strings.TrimSpace(req.BookName),
		MovieName: strings.TrimSpace(req.MovieName),
		PlaceName: strings.TrimSpace(req.PlaceName),
		Age:       req.Age,
		Gender:    req.Gender,
	}
	if err := h.repo.Upsert(r.Context(), pref); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, pref, nil)
}

// @Summary Get preferences
// @Description Get the user's stored taste preferences
// @Tags preferences
// @Produce json
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/preferences [get]
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	pref, err := h.repo.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "No preferences stored", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, pref, nil)
}
