package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"litflix/internal/entity"
	"litflix/internal/store/mocks"
	"litflix/internal/testutil"
	"litflix/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSavedItemRepository(ctrl)
	handler := NewSavedItemHandler(repo)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item *entity.SavedItem) error {
			assert.Equal(t, "user-1", item.UserID)
			assert.Equal(t, "ent_123", item.ItemID)
			assert.Equal(t, "book", item.ItemType)
			assert.True(t, item.Favorited)
			return nil
		})

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodPost, "/api/saved/save", map[string]any{
		"item_id":   "ent_123",
		"item_name": "Dune",
		"item_type": "book",
		"favorited": true,
	}, "user-1")
	handler.SaveItem(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].(map[string]any)
	assert.Equal(t, "ent_123", data["item_id"])
	assert.Equal(t, true, data["favorited"])
}

func TestSaveItem_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing item id", map[string]any{"item_name": "Dune", "item_type": "book"}},
		{"missing item name", map[string]any{"item_id": "ent_123", "item_type": "book"}},
		{"bad item type", map[string]any{"item_id": "ent_123", "item_name": "Dune", "item_type": "song"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := NewSavedItemHandler(mocks.NewMockSavedItemRepository(ctrl))
			w := httptest.NewRecorder()
			r := authedRequest(http.MethodPost, "/api/saved/save", tt.body, "user-1")
			handler.SaveItem(w, r)

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestSaveItem_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewSavedItemHandler(mocks.NewMockSavedItemRepository(ctrl))

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodPost, "/api/saved/save", map[string]any{
		"item_id":   "ent_123",
		"item_name": "Dune",
		"item_type": "book",
	})
	handler.SaveItem(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSavedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSavedItemRepository(ctrl)
	handler := NewSavedItemHandler(repo)

	repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entity.SavedItem{
		{ItemID: "ent_1", ItemName: "Dune", ItemType: "book", Favorited: true},
		{ItemID: "ent_2", ItemName: "Arrival", ItemType: "movie"},
	}, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodGet, "/api/saved/list", nil, "user-1")
	handler.ListSavedItems(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)

	data := resp.Body["data"].([]any)
	require.Len(t, data, 2)
	meta := resp.Body["meta"].(map[string]any)
	assert.EqualValues(t, 2, meta["total"])
}

func TestListSavedItems_EmptyListNotNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSavedItemRepository(ctrl)
	handler := NewSavedItemHandler(repo)

	repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(nil, nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodGet, "/api/saved/list", nil, "user-1")
	handler.ListSavedItems(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data, ok := resp.Body["data"].([]any)
	require.True(t, ok, "data must be an empty array, not null")
	assert.Empty(t, data)
}

func TestRemoveSavedItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSavedItemRepository(ctrl)
	handler := NewSavedItemHandler(repo)

	repo.EXPECT().Delete(gomock.Any(), "user-1", "ent_123").Return(nil)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodDelete, "/api/saved/remove/ent_123", nil, "user-1")
	handler.RemoveSavedItem(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRemoveSavedItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSavedItemRepository(ctrl)
	handler := NewSavedItemHandler(repo)

	repo.EXPECT().Delete(gomock.Any(), "user-1", "ent_999").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodDelete, "/api/saved/remove/ent_999", nil, "user-1")
	handler.RemoveSavedItem(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusNotFound, resp.Code)
	errBody := resp.Body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
}

func TestRemoveSavedItem_BadPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewSavedItemHandler(mocks.NewMockSavedItemRepository(ctrl))

	for _, path := range []string{"/api/saved/remove/", "/api/saved/remove/a/b"} {
		w := httptest.NewRecorder()
		r := authedRequest(http.MethodDelete, path, nil, "user-1")
		handler.RemoveSavedItem(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestCheckSavedItem(t *testing.T) {
	tests := []struct {
		name  string
		saved bool
	}{
		{"saved", true},
		{"not saved", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSavedItemRepository(ctrl)
			handler := NewSavedItemHandler(repo)
			repo.EXPECT().Exists(gomock.Any(), "user-1", "ent_123").Return(tt.saved, nil)

			w := httptest.NewRecorder()
			r := authedRequest(http.MethodGet, "/api/saved/check/ent_123", nil, "user-1")
			handler.CheckSavedItem(w, r)

			resp := testutil.RecordHTTPResponse(w)
			require.Equal(t, http.StatusOK, resp.Code)
			data := resp.Body["data"].(map[string]any)
			assert.Equal(t, tt.saved, data["is_saved"])
		})
	}
}

func TestCheckSavedItem_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSavedItemRepository(ctrl)
	handler := NewSavedItemHandler(repo)
	repo.EXPECT().Exists(gomock.Any(), "user-1", "ent_123").Return(false, errors.New("db down"))

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodGet, "/api/saved/check/ent_123", nil, "user-1")
	handler.CheckSavedItem(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
