package source

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"neuro-site/internal/cache"
	"neuro-site/internal/domain"
	"neuro-site/internal/logger"

	"go.uber.org/zap"
)

// CatalogCacheKey is where the serialized exercise document lives.
var CatalogCacheKey = cache.GenerateCacheKey("catalog", "document", "exercises")

// CachedSource puts a shared cache in front of another source, so several
// instances share one upstream read per TTL. Cache failures are logged and
// never fail the fetch.
type CachedSource struct {
	next  domain.CatalogSource
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedSource(next domain.CatalogSource, c domain.Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{next: next, cache: c, ttl: ttl}
}

func (s *CachedSource) Fetch(ctx context.Context) (domain.Dataset, error) {
	if ds, ok := s.fromCache(ctx); ok {
		return ds, nil
	}

	ds, err := s.next.Fetch(ctx)
	if err != nil {
		return domain.Dataset{}, err
	}
	s.store(ctx, ds)
	return ds, nil
}

func (s *CachedSource) fromCache(ctx context.Context) (domain.Dataset, bool) {
	raw, err := s.cache.Get(ctx, CatalogCacheKey)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Catalog cache read failed", zap.String("key", CatalogCacheKey), zap.Error(err))
		}
		return domain.Dataset{}, false
	}

	ds, err := DecodeDataset(strings.NewReader(raw), CatalogCacheKey)
	if err != nil {
		logger.Get().Warn("Discarding unreadable catalog cache entry", zap.String("key", CatalogCacheKey), zap.Error(err))
		if delErr := s.cache.Delete(ctx, CatalogCacheKey); delErr != nil {
			logger.Get().Warn("Catalog cache delete failed", zap.Error(delErr))
		}
		return domain.Dataset{}, false
	}
	logger.Get().Debug("Catalog served from cache", zap.String("key", CatalogCacheKey))
	return ds, true
}

func (s *CachedSource) store(ctx context.Context, ds domain.Dataset) {
	payload, err := json.Marshal(ds)
	if err != nil {
		logger.Get().Warn("Failed to encode catalog for caching", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, CatalogCacheKey, string(payload), s.ttl); err != nil {
		logger.Get().Warn("Catalog cache write failed", zap.String("key", CatalogCacheKey), zap.Error(err))
	}
}
