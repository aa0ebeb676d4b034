package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/partscout/backend/internal/domain"
)

var storeIDRegex = regexp.MustCompile(`^\d+$`)

// LookupServiceConfig holds configuration for the lookup service
type LookupServiceConfig struct {
	CacheTTL       time.Duration
	DefaultStoreID string
}

// LookupService is the caller-side collaborator around the resolver: it
// classifies input, picks the store, and keeps a pull-through cache of found
// records. The resolver itself stays stateless.
type LookupService struct {
	cache          domain.CacheRepository
	resolver       *Resolver
	metrics        domain.MetricsRecorder
	cacheTTL       time.Duration
	defaultStoreID string
}

// NewLookupService creates a new lookup service with dependencies.
// cache and metrics may be nil.
func NewLookupService(
	cache domain.CacheRepository,
	resolver *Resolver,
	metrics domain.MetricsRecorder,
	config LookupServiceConfig,
) *LookupService {
	cacheTTL := config.CacheTTL
	if cacheTTL < 0 {
		cacheTTL = 0
	}

	return &LookupService{
		cache:          cache,
		resolver:       resolver,
		metrics:        metrics,
		cacheTTL:       cacheTTL,
		defaultStoreID: config.DefaultStoreID,
	}
}

// Lookup resolves raw input for a store.
// Flow: validate -> classify -> check cache -> resolve -> cache found record -> return
func (s *LookupService) Lookup(ctx context.Context, request *domain.LookupRequest) (domain.Outcome, error) {
	if request == nil || strings.TrimSpace(request.Input) == "" {
		return domain.Outcome{}, domain.ErrInvalidRequest
	}
	if !request.Decision.Valid() {
		return domain.Outcome{}, fmt.Errorf("%w: decision %q needs a known action and, for reject, the found SKU", domain.ErrInvalidRequest, request.Decision.Action)
	}

	store := domain.StoreContext{StoreID: strings.TrimSpace(request.StoreID)}
	if store.StoreID == "" {
		store.StoreID = s.defaultStoreID
	}
	if store.StoreID != "" && !storeIDRegex.MatchString(store.StoreID) {
		return domain.Outcome{}, fmt.Errorf("%w: store id %q is not numeric", domain.ErrInvalidRequest, store.StoreID)
	}

	id := Classify(request.Input)
	if id.Value == "" {
		return domain.Outcome{}, domain.ErrInvalidRequest
	}

	start := time.Now()

	if sku, ok := id.NominalSKU(); ok && request.Decision == nil {
		if record, err := s.getFromCache(ctx, generateCacheKey(sku, store)); err == nil {
			log.Printf("[LOOKUP] Cache hit for %s at store %s", sku, store.StoreID)
			if s.metrics != nil {
				s.metrics.ObserveCacheHit()
			}
			outcome := domain.FoundOutcome(id, record)
			s.observe(id, outcome, start)
			return outcome, nil
		}
	}

	outcome := s.resolver.Resolve(ctx, id, store, request.Decision)

	if outcome.Kind == domain.OutcomeFound && outcome.Record != nil && outcome.Record.SKU != "" {
		if err := s.setInCache(ctx, generateCacheKey(outcome.Record.SKU, store), outcome.Record); err != nil {
			log.Printf("[LOOKUP] Failed to cache %s: %v", outcome.Record.SKU, err)
		}
	}

	s.observe(id, outcome, start)
	return outcome, nil
}

func (s *LookupService) observe(id domain.Identifier, outcome domain.Outcome, start time.Time) {
	log.Printf("[LOOKUP] %s %q -> %s (%s)", id.Kind, id.Value, outcome.Kind, time.Since(start).Round(time.Millisecond))
	if s.metrics != nil {
		s.metrics.ObserveLookup(id.Kind, outcome.Kind, time.Since(start))
	}
}

// generateCacheKey builds the product cache key.
// Format: "product:{sku}:{store}"
func generateCacheKey(sku string, store domain.StoreContext) string {
	return fmt.Sprintf("product:%s:%s", sku, store.StoreID)
}

// getFromCache retrieves a product record from cache
func (s *LookupService) getFromCache(ctx context.Context, key string) (*domain.ProductRecord, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	var record domain.ProductRecord
	if err := s.cache.Get(ctx, key, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// setInCache stores a product record in cache
func (s *LookupService) setInCache(ctx context.Context, key string, record *domain.ProductRecord) error {
	if s.cache == nil {
		return nil
	}
	record.CachedAt = time.Now()
	return s.cache.Set(ctx, key, record, s.cacheTTL)
}
