package usecase

import (
	"context"

	"litflix/internal/entity"
)

type PreferenceRepository interface {
	// Upsert writes the full preference row for (user), replacing any
	// previous values.
	Upsert(ctx context.Context, p *entity.Preference) error
	GetByUserID(ctx context.Context, userID string) (entity.Preference, error)
}
