package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dishlens/backend/internal/domain"
	"go.uber.org/zap"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
	Search   SearchConfig
}

// CatalogService serves the deduplicated dish catalog and normalized dish views
type CatalogService struct {
	repo     domain.DishRepository
	cache    domain.CacheRepository
	search   *DishSearch
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService creates a catalog service. cache may be nil, in which case
// the dataset is loaded on every call.
func NewCatalogService(
	repo domain.DishRepository,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
	logger *zap.Logger,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogService{
		repo:     repo,
		cache:    cache,
		search:   NewDishSearch(config.Search, logger),
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Dishes returns the catalog in source order with duplicate names removed.
// Flow: check cache -> load dataset -> deduplicate -> cache -> return
func (s *CatalogService) Dishes(ctx context.Context) ([]domain.DishRecord, error) {
	key := s.cacheKey()

	if cached, ok := s.getFromCache(ctx, key); ok {
		return cached, nil
	}

	records, err := s.repo.LoadDishes(ctx)
	if err != nil {
		return nil, err
	}

	dishes := DeduplicateDishes(records)
	if dropped := len(records) - len(dishes); dropped > 0 {
		s.logger.Info("dropped duplicate dishes",
			zap.String("source", s.repo.Source()),
			zap.Int("duplicates", dropped))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, dishes, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache dish catalog", zap.Error(err))
		}
	}

	return dishes, nil
}

// DishNames returns all dish names sorted alphabetically
func (s *CatalogService) DishNames(ctx context.Context) ([]string, error) {
	dishes, err := s.Dishes(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(dishes))
	for i, d := range dishes {
		names[i] = d.Name
	}
	sort.Strings(names)
	return names, nil
}

// GetDish returns the normalized view of the dish with the given name
func (s *CatalogService) GetDish(ctx context.Context, name string) (*domain.NormalizedDish, error) {
	if name == "" {
		return nil, domain.ErrInvalidRequest
	}

	dishes, err := s.Dishes(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range dishes {
		if d.Name == name {
			normalized := NormalizeDish(d)
			if normalized.InstructionWarning != "" {
				s.logger.Warn("unexpected instructions format",
					zap.String("dish", name),
					zap.String("field", normalized.InstructionField))
			}
			return &normalized, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrDishNotFound, name)
}

// SearchDishes ranks dish names against a free-text query
func (s *CatalogService) SearchDishes(ctx context.Context, query string, limit int) ([]domain.DishMatch, error) {
	names, err := s.DishNames(ctx)
	if err != nil {
		return nil, err
	}
	return s.search.Search(ctx, query, names, limit)
}

// Refresh drops the memoized catalog so the next call reloads the dataset
func (s *CatalogService) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, s.cacheKey())
}

// cacheKey identifies the catalog of the current dataset. Format: "catalog:{source}"
func (s *CatalogService) cacheKey() string {
	return "catalog:" + s.repo.Source()
}

func (s *CatalogService) getFromCache(ctx context.Context, key string) ([]domain.DishRecord, bool) {
	if s.cache == nil {
		return nil, false
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	dishes, ok := value.([]domain.DishRecord)
	return dishes, ok
}
