package usecase

import (
	"context"

	"litflix/internal/entity"
)

type SavedItemRepository interface {
	// Upsert inserts the item or, when (user, item) already exists,
	// updates its favorited flag.
	Upsert(ctx context.Context, item *entity.SavedItem) error
	ListByUserID(ctx context.Context, userID string) ([]entity.SavedItem, error)
	// ListFavoriteItemIDs returns provider entity ids of favorited items
	// in saved order. Only these feed recommendation signals.
	ListFavoriteItemIDs(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, userID, itemID string) error
	Exists(ctx context.Context, userID, itemID string) (bool, error)
}
