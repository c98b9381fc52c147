package store

import (
	"context"
	"errors"

	"litflix/internal/entity"
	"litflix/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferencePG struct {
	db *pgxpool.Pool
}

func NewPreferencePG(db *pgxpool.Pool) *PreferencePG {
	return &PreferencePG{db: db}
}

func (r *PreferencePG) Upsert(ctx context.Context, p *entity.Preference) error {
	const query = `
	INSERT INTO user_preferences (user_id, book_name, movie_name, place_name, age, gender, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	ON CONFLICT (user_id)
	DO UPDATE SET
		book_name = EXCLUDED.book_name,
		movie_name = EXCLUDED.movie_name,
		place_name = EXCLUDED.place_name,
		age = EXCLUDED.age,
		gender = EXCLUDED.gender,
		updated_at = NOW()
	RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, p.UserID, p.BookName, p.MovieName, p.PlaceName, p.Age, p.Gender).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PreferencePG) GetByUserID(ctx context.Context, userID string) (entity.Preference, error) {
	const query = `
	SELECT user_id, book_name, movie_name, place_name, age, gender, created_at, updated_at
	FROM user_preferences
	WHERE user_id = $1
	LIMIT 1
	`
	var p entity.Preference
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.BookName, &p.MovieName, &p.PlaceName, &p.Age, &p.Gender, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Preference{}, usecase.ErrNotFound
		}
		return entity.Preference{}, err
	}
	return p, nil
}
