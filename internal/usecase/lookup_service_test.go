package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/partscout/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string][]byte
	getError  error
	setError  error
	getCalled bool
	setCalled bool
	lastTTL   time.Duration
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string][]byte),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	m.getCalled = true
	if m.getError != nil {
		return m.getError
	}
	if value, ok := m.data[key]; ok {
		return json.Unmarshal(value, dest)
	}
	return domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalled = true
	m.lastTTL = ttl
	if m.setError != nil {
		return m.setError
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = encoded
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockMetricsRecorder is a mock implementation of domain.MetricsRecorder
type MockMetricsRecorder struct {
	outcomes  map[domain.OutcomeKind]int
	cacheHits int
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{outcomes: make(map[domain.OutcomeKind]int)}
}

func (m *MockMetricsRecorder) ObserveLookup(kind domain.IdentifierKind, outcome domain.OutcomeKind, d time.Duration) {
	m.outcomes[outcome]++
}

func (m *MockMetricsRecorder) ObserveCacheHit() { m.cacheHits++ }

type lookupFixture struct {
	client  *MockCatalogClient
	cache   *MockCacheRepository
	metrics *MockMetricsRecorder
	service *LookupService
}

func newLookupFixture() *lookupFixture {
	f := &lookupFixture{
		client:  NewMockCatalogClient(),
		cache:   NewMockCacheRepository(),
		metrics: NewMockMetricsRecorder(),
	}
	f.client.searchPages["679294"] = searchPage("12345")
	f.client.detailPages["12345"] = detailPage("12345", "679294", "Example CPU", "399.99")
	f.service = NewLookupService(f.cache, NewResolver(f.client, ResolverConfig{}), f.metrics, LookupServiceConfig{
		CacheTTL:       15 * time.Minute,
		DefaultStoreID: "131",
	})
	return f
}

func TestLookup_InvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.LookupRequest
	}{
		{name: "nil request", request: nil},
		{name: "empty input", request: &domain.LookupRequest{Input: ""}},
		{name: "whitespace input", request: &domain.LookupRequest{Input: "   "}},
		{name: "control characters only", request: &domain.LookupRequest{Input: "\x02\x03"}},
		{name: "non numeric store", request: &domain.LookupRequest{Input: "679294", StoreID: "tustin"}},
		{
			name: "unknown decision",
			request: &domain.LookupRequest{
				Input:    "679294",
				Decision: &domain.PriorDecision{Action: "maybe"},
			},
		},
		{
			name: "reject without found sku",
			request: &domain.LookupRequest{
				Input:    "100000",
				Decision: &domain.PriorDecision{Action: domain.DecisionReject},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLookupFixture()

			_, err := f.service.Lookup(context.Background(), tt.request)

			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			assert.Zero(t, f.client.fetchCount())
		})
	}
}

func TestLookup_FoundIsCached(t *testing.T) {
	f := newLookupFixture()
	ctx := context.Background()

	outcome, err := f.service.Lookup(ctx, &domain.LookupRequest{Input: "679294"})
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeFound, outcome.Kind)
	assert.True(t, f.cache.setCalled)
	assert.Equal(t, 15*time.Minute, f.cache.lastTTL)
	assert.Contains(t, f.cache.data, "product:679294:131")

	cached, err := f.service.Lookup(ctx, &domain.LookupRequest{Input: "679294"})
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeFound, cached.Kind)
	assert.Equal(t, "Example CPU", cached.Record.Name)
	assert.False(t, cached.Record.CachedAt.IsZero())

	assert.Len(t, f.client.searchQueries, 1)
	assert.Equal(t, 1, f.metrics.cacheHits)
	assert.Equal(t, 2, f.metrics.outcomes[domain.OutcomeFound])
}

func TestLookup_DefaultAndExplicitStore(t *testing.T) {
	f := newLookupFixture()
	ctx := context.Background()

	_, err := f.service.Lookup(ctx, &domain.LookupRequest{Input: "679294"})
	require.NoError(t, err)
	_, err = f.service.Lookup(ctx, &domain.LookupRequest{Input: "679294", StoreID: "101"})
	require.NoError(t, err)

	require.Len(t, f.client.stores, 2)
	assert.Equal(t, "131", f.client.stores[0].StoreID)
	assert.Equal(t, "101", f.client.stores[1].StoreID)
	assert.Contains(t, f.cache.data, "product:679294:101")
}

func TestLookup_DecisionBypassesCache(t *testing.T) {
	f := newLookupFixture()
	f.cache.getError = errors.New("must not be read")

	outcome, err := f.service.Lookup(context.Background(), &domain.LookupRequest{
		Input:    "679294",
		Decision: &domain.PriorDecision{Action: domain.DecisionAcceptRedirect},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFound, outcome.Kind)
	assert.False(t, f.cache.getCalled)
}

func TestLookup_UpcCachedUnderActualSku(t *testing.T) {
	f := newLookupFixture()
	f.client.searchPages["012345678905"] = searchPage("12345")

	outcome, err := f.service.Lookup(context.Background(), &domain.LookupRequest{Input: "012345678905"})

	require.NoError(t, err)
	require.Equal(t, domain.OutcomeFound, outcome.Kind)
	assert.False(t, f.cache.getCalled)
	assert.Contains(t, f.cache.data, "product:679294:131")
}

func TestLookup_CacheWriteFailureIsIgnored(t *testing.T) {
	f := newLookupFixture()
	f.cache.setError = errors.New("cache full")

	outcome, err := f.service.Lookup(context.Background(), &domain.LookupRequest{Input: "679294"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFound, outcome.Kind)
}

func TestLookup_NonFoundOutcomesAreNotCached(t *testing.T) {
	f := newLookupFixture()
	f.client.searchPages["999999"] = &domain.Page{Body: "No matches found"}

	outcome, err := f.service.Lookup(context.Background(), &domain.LookupRequest{Input: "999999"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoResults, outcome.Kind)
	assert.False(t, f.cache.setCalled)
	assert.Equal(t, 1, f.metrics.outcomes[domain.OutcomeNoResults])
}

func TestLookup_WithoutCacheOrMetrics(t *testing.T) {
	client := NewMockCatalogClient()
	client.searchPages["679294"] = searchPage("12345")
	client.detailPages["12345"] = detailPage("12345", "679294", "Example CPU", "399.99")
	service := NewLookupService(nil, NewResolver(client, ResolverConfig{}), nil, LookupServiceConfig{})

	outcome, err := service.Lookup(context.Background(), &domain.LookupRequest{Input: "679294"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFound, outcome.Kind)
	assert.Equal(t, "", client.stores[0].StoreID)
}
