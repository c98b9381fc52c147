package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"litflix/internal/entity"
	"litflix/internal/usecase"
)

type SavedItemHandler struct {
	repo usecase.SavedItemRepository
}

func NewSavedItemHandler(repo usecase.SavedItemRepository) *SavedItemHandler {
	return &SavedItemHandler{repo: repo}
}

type saveItemReq struct {
	ItemID      string `json:"item_id" validate:"required"`
	ItemName    string `json:"item_name" validate:"required"`
	ItemType    string `json:"item_type" validate:"required,entity_type"`
	ItemImage   string `json:"item_image"`
	Description string `json:"item_description"`
	Favorited   bool   `json:"favorited"`
}

// @Summary Save an item
// @Description Save a provider entity for the user; saving again updates the favorited flag
// @Tags saved-items
// @Accept json
// @Produce json
// @Security Bearer
// @Param item body saveItemReq true "Item to save"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/saved/save [post]
func (h *SavedItemHandler) SaveItem(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req saveItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	item := &entity.SavedItem{
		UserID:      userID,
		ItemID:      req.ItemID,
		ItemName:    req.ItemName,
		ItemType:    req.ItemType,
		ItemImage:   req.ItemImage,
		Description: req.Description,
		Favorited:   req.Favorited,
	}
	if err := h.repo.Upsert(r.Context(), item); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, item, nil)
}

// @Summary List saved items
// @Description List everything the user has saved, favorited or not
// @Tags saved-items
// @Produce json
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/saved/list [get]
func (h *SavedItemHandler) ListSavedItems(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	items, err := h.repo.ListByUserID(r.Context(), userID)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if items == nil {
		items = []entity.SavedItem{}
	}

	JSONSuccess(w, items, map[string]any{"total": len(items)})
}

// @Summary Remove saved item
// @Description Remove an item from the user's saved list
// @Tags saved-items
// @Produce json
// @Security Bearer
// @Param id path string true "Provider entity id"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/saved/remove/{id} [delete]
func (h *SavedItemHandler) RemoveSavedItem(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	itemID := strings.TrimPrefix(r.URL.Path, "/api/saved/remove/")
	if itemID == "" || strings.Contains(itemID, "/") {
		http.NotFound(w, r)
		return
	}

	if err := h.repo.Delete(r.Context(), userID, itemID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Saved item not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]string{"message": "Item removed from saved list"}, nil)
}

// @Summary Check saved state
// @Description Report whether the user has saved a given item
// @Tags saved-items
// @Produce json
// @Security Bearer
// @Param id path string true "Provider entity id"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/saved/check/{id} [get]
func (h *SavedItemHandler) CheckSavedItem(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	itemID := strings.TrimPrefix(r.URL.Path, "/api/saved/check/")
	if itemID == "" || strings.Contains(itemID, "/") {
		http.NotFound(w, r)
		return
	}

	saved, err := h.repo.Exists(r.Context(), userID, itemID)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]bool{"is_saved": saved}, nil)
}
