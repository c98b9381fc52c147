package store

import (
	"context"
	"errors"

	"litflix/internal/entity"
	"litflix/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SavedItemPG struct {
	db *pgxpool.Pool
}

func NewSavedItemPG(db *pgxpool.Pool) *SavedItemPG {
	return &SavedItemPG{db: db}
}

// Upsert: saving an already-saved item only flips its favorited flag,
// it never duplicates the row.
func (r *SavedItemPG) Upsert(ctx context.Context, item *entity.SavedItem) error {
	const query = `
	INSERT INTO saved_items (id, user_id, item_id, item_name, item_type, item_image, item_description, favorited, saved_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW())
	ON CONFLICT (user_id, item_id)
	DO UPDATE SET favorited = EXCLUDED.favorited
	RETURNING id, favorited, saved_at
	`
	return r.db.QueryRow(ctx, query,
		item.UserID, item.ItemID, item.ItemName, item.ItemType, item.ItemImage, item.Description, item.Favorited,
	).Scan(&item.ID, &item.Favorited, &item.SavedAt)
}

func (r *SavedItemPG) ListByUserID(ctx context.Context, userID string) ([]entity.SavedItem, error) {
	const query = `
	SELECT id, user_id, item_id, item_name, item_type, item_image, item_description, favorited, saved_at
	FROM saved_items
	WHERE user_id = $1
	ORDER BY saved_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.SavedItem
	for rows.Next() {
		var item entity.SavedItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ItemID, &item.ItemName, &item.ItemType,
			&item.ItemImage, &item.Description, &item.Favorited, &item.SavedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListFavoriteItemIDs returns only the favorited subset, in saved order.
// Saved-but-not-favorited items deliberately do not feed recommendation
// signals.
func (r *SavedItemPG) ListFavoriteItemIDs(ctx context.Context, userID string) ([]string, error) {
	const query = `
	SELECT item_id
	FROM saved_items
	WHERE user_id = $1 AND favorited = TRUE AND item_id <> ''
	ORDER BY saved_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SavedItemPG) Delete(ctx context.Context, userID, itemID string) error {
	const query = `
	DELETE FROM saved_items
	WHERE user_id = $1 AND item_id = $2
	`
	tag, err := r.db.Exec(ctx, query, userID, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *SavedItemPG) Exists(ctx context.Context, userID, itemID string) (bool, error) {
	const query = `
	SELECT 1 FROM saved_items
	WHERE user_id = $1 AND item_id = $2
	LIMIT 1
	`
	var one int
	err := r.db.QueryRow(ctx, query, userID, itemID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
