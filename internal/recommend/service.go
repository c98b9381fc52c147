package recommend

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"litflix/internal/platform/qloo"
	"litflix/internal/usecase"
)

// Provider is the slice of the Qloo client this package depends on.
// All methods absorb transport and shape failures into empty results.
type Provider interface {
	SearchEntityID(ctx context.Context, name string, entityType qloo.EntityType) (string, bool)
	SearchEntities(ctx context.Context, name string, entityType qloo.EntityType) []qloo.RawEntity
	FetchInsights(ctx context.Context, entityIDs []string, age, gender string, domain qloo.EntityType) []qloo.RawEntity
	FetchPopularBooks(ctx context.Context) []qloo.RawEntity
	FetchEntityDetails(ctx context.Context, entityID string, entityType qloo.EntityType) (qloo.RawEntity, bool)
}

// Result is the composite recommendation payload: four independent
// lists, each degrading to empty on provider failure.
type Result struct {
	BookRecs     []Entity `json:"book_recs"`
	PopularBooks []Entity `json:"popular_books"`
	MovieRecs    []Entity `json:"movie_recs"`
	TVShowRecs   []Entity `json:"tv_show_recs"`
}

type Service struct {
	provider Provider
	prefs    usecase.PreferenceRepository
	saved    usecase.SavedItemRepository
	fallback PreferenceSet
}

func NewService(provider Provider, prefs usecase.PreferenceRepository, saved usecase.SavedItemRepository) *Service {
	return &Service{
		provider: provider,
		prefs:    prefs,
		saved:    saved,
		fallback: DefaultPreferences,
	}
}

// BuildRecommendations resolves the request's preference signals,
// merges in the user's favorited items, and fans out one insights query
// per content domain. userID is empty for anonymous requests, which
// proceed on fallback defaults with no favorites signal. The only error
// returned is ErrNoSignals; everything the provider gets wrong collapses
// to empty lists.
func (s *Service) BuildRecommendations(ctx context.Context, explicit PreferenceSet, userID string) (Result, error) {
	stored, favorites := s.loadUserSignals(ctx, userID)

	resolved := ResolvePreferences(explicit, stored, s.fallback)

	signalIDs, err := s.buildSignalIDs(ctx, resolved, favorites)
	if err != nil {
		return Result{}, err
	}

	// The four queries are mutually independent read-only calls, so run
	// them concurrently. None of them returns an error.
	var result Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raws := s.provider.FetchInsights(gctx, signalIDs, resolved.Age, resolved.Gender, qloo.TypeBook)
		result.BookRecs = NormalizeAll(raws, qloo.TypeBook, resolved.BookName)
		return nil
	})
	g.Go(func() error {
		// Popularity is global, not personal: this list ignores the
		// fused signal ids on purpose.
		raws := s.provider.FetchPopularBooks(gctx)
		result.PopularBooks = NormalizeAll(raws, qloo.TypeBook, "")
		return nil
	})
	g.Go(func() error {
		raws := s.provider.FetchInsights(gctx, signalIDs, resolved.Age, resolved.Gender, qloo.TypeMovie)
		result.MovieRecs = NormalizeAll(raws, qloo.TypeMovie, resolved.MovieName)
		return nil
	})
	g.Go(func() error {
		raws := s.provider.FetchInsights(gctx, signalIDs, resolved.Age, resolved.Gender, qloo.TypeTVShow)
		result.TVShowRecs = NormalizeAll(raws, qloo.TypeTVShow, "")
		return nil
	})
	_ = g.Wait()

	return result, nil
}

// loadUserSignals fetches stored preferences and favorited item ids for
// an authenticated user. Persistence failures degrade to the anonymous
// path rather than failing the request.
func (s *Service) loadUserSignals(ctx context.Context, userID string) (PreferenceSet, []string) {
	if userID == "" {
		return PreferenceSet{}, nil
	}

	var stored PreferenceSet
	pref, err := s.prefs.GetByUserID(ctx, userID)
	if err == nil {
		stored = PreferenceSet{
			BookName:  pref.BookName,
			MovieName: pref.MovieName,
			PlaceName: pref.PlaceName,
			Age:       pref.Age,
			Gender:    pref.Gender,
		}
	} else if !errors.Is(err, usecase.ErrNotFound) {
		return PreferenceSet{}, nil
	}

	favorites, err := s.saved.ListFavoriteItemIDs(ctx, userID)
	if err != nil {
		return stored, nil
	}
	return stored, favorites
}

// buildSignalIDs resolves each named preference to an entity id and
// appends the favorites in stored order. Names that do not resolve are
// skipped silently; duplicates between the two sources are tolerated
// (they just widen the signal downstream).
func (s *Service) buildSignalIDs(ctx context.Context, resolved PreferenceSet, favorites []string) ([]string, error) {
	lookups := []struct {
		name       string
		entityType qloo.EntityType
	}{
		{resolved.BookName, qloo.TypeBook},
		{resolved.MovieName, qloo.TypeMovie},
		{resolved.PlaceName, qloo.TypePlace},
	}

	var ids []string
	for _, l := range lookups {
		if l.name == "" {
			continue
		}
		if id, ok := s.provider.SearchEntityID(ctx, l.name, l.entityType); ok {
			ids = append(ids, id)
		}
	}
	ids = append(ids, favorites...)

	if len(ids) == 0 {
		return nil, ErrNoSignals
	}
	return ids, nil
}

// SearchEntities resolves a free-text query to canonical entities. When
// the query resolves to one entity id, the full insights record for it
// is returned; otherwise up to five raw search hits are enriched with
// details where possible.
func (s *Service) SearchEntities(ctx context.Context, query string, entityType qloo.EntityType) []Entity {
	if id, ok := s.provider.SearchEntityID(ctx, query, entityType); ok {
		if raw, ok := s.provider.FetchEntityDetails(ctx, id, entityType); ok {
			return NormalizeAll([]qloo.RawEntity{raw}, entityType, query)
		}
	}

	hits := s.provider.SearchEntities(ctx, query, entityType)
	if len(hits) > 5 {
		hits = hits[:5]
	}

	entities := make([]Entity, 0, len(hits))
	for _, hit := range hits {
		raw := hit
		if id, ok := hit["entity_id"].(string); ok && id != "" {
			if details, ok := s.provider.FetchEntityDetails(ctx, id, entityType); ok {
				raw = details
			}
		}
		e := Normalize(raw, entityType, query)
		if e.EntityID == "" {
			continue
		}
		entities = append(entities, e)
	}
	return entities
}
