// ABOUTME: Exercise catalog service merging the remote API with the local cache.
// ABOUTME: Remote results refresh the cache; any remote failure falls back to cached data.
package catalog

import (
	"context"
	"io"
	"log/slog"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/repository"
	"github.com/harperreed/fittrack/internal/search"
)

// Service is the catalog facade consumed by the UI layer. Every remote
// path degrades to the cache; remote errors never reach the caller.
type Service struct {
	cache  repository.ExerciseStore
	remote Remote
	log    *slog.Logger
}

// NewService creates a catalog service. remote may be nil for a fully
// offline configuration; log may be nil to discard fallback warnings.
func NewService(cache repository.ExerciseStore, remote Remote, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{cache: cache, remote: remote, log: log}
}

// ByBodyPart lists exercises for a body part, preferring fresh remote data.
func (s *Service) ByBodyPart(ctx context.Context, bodyPart string) ([]*models.Exercise, error) {
	return s.listWithFallback(ctx, bodyPart,
		func(ctx context.Context) ([]*models.Exercise, error) {
			if s.remote == nil {
				return nil, ErrRemoteUnavailable
			}
			return s.remote.FetchByBodyPart(ctx, bodyPart)
		},
		func() ([]*models.Exercise, error) { return s.cache.ListByBodyPart(bodyPart) },
	)
}

// ByTarget lists exercises for a target muscle, preferring remote data.
func (s *Service) ByTarget(ctx context.Context, target string) ([]*models.Exercise, error) {
	return s.listWithFallback(ctx, target,
		func(ctx context.Context) ([]*models.Exercise, error) {
			if s.remote == nil {
				return nil, ErrRemoteUnavailable
			}
			return s.remote.FetchByTarget(ctx, target)
		},
		func() ([]*models.Exercise, error) { return s.cache.ListByTarget(target) },
	)
}

// ByEquipment lists exercises for an equipment type, preferring remote data.
func (s *Service) ByEquipment(ctx context.Context, equipment string) ([]*models.Exercise, error) {
	return s.listWithFallback(ctx, equipment,
		func(ctx context.Context) ([]*models.Exercise, error) {
			if s.remote == nil {
				return nil, ErrRemoteUnavailable
			}
			return s.remote.FetchByEquipment(ctx, equipment)
		},
		func() ([]*models.Exercise, error) { return s.cache.ListByEquipment(equipment) },
	)
}

// ByID retrieves one exercise, trying the cache first since catalog ids
// are stable, then the remote.
func (s *Service) ByID(ctx context.Context, id string) (*models.Exercise, error) {
	if ex, err := s.cache.GetByID(id); err == nil {
		return ex, nil
	}
	if s.remote == nil {
		return nil, repository.ErrNotFound
	}

	ex, err := s.remote.FetchByID(ctx, id)
	if err != nil {
		s.log.Warn("catalog fetch failed", "id", id, "err", err)
		return nil, repository.ErrNotFound
	}
	if err := s.cache.BulkUpsert([]*models.Exercise{ex}); err != nil {
		return nil, err
	}
	return ex, nil
}

// Search interprets the query (Korean aliases, choseong abbreviations,
// verbatim fallback) and runs each resolved term against the cache.
// Results are deduped by id, preserving resolution order.
func (s *Service) Search(query string) ([]*models.Exercise, error) {
	if !search.Ready(query) {
		return nil, nil
	}

	var out []*models.Exercise
	seen := make(map[string]bool)
	for _, res := range search.Interpret(query) {
		var (
			exs []*models.Exercise
			err error
		)
		switch res.Field {
		case search.FieldBodyPart:
			exs, err = s.cache.ListByBodyPart(res.Term)
		case search.FieldTarget:
			exs, err = s.cache.ListByTarget(res.Term)
		case search.FieldEquipment:
			exs, err = s.cache.ListByEquipment(res.Term)
		default:
			exs, err = s.cache.SearchText(res.Term)
		}
		if err != nil {
			return nil, err
		}
		for _, ex := range exs {
			if !seen[ex.ID] {
				seen[ex.ID] = true
				out = append(out, ex)
			}
		}
	}
	return out, nil
}

// listWithFallback runs the remote fetch and degrades to the cache on
// any failure; successful remote results are upserted into the cache.
func (s *Service) listWithFallback(ctx context.Context, what string,
	fetch func(context.Context) ([]*models.Exercise, error),
	cached func() ([]*models.Exercise, error),
) ([]*models.Exercise, error) {
	exs, err := fetch(ctx)
	if err != nil {
		s.log.Warn("catalog fetch failed, using cache", "query", what, "err", err)
		return cached()
	}
	if err := s.cache.BulkUpsert(exs); err != nil {
		return nil, err
	}
	return exs, nil
}
