package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/infrastructure/microcenter"
	"github.com/partscout/backend/internal/infrastructure/scrape"
)

// ResolverConfig holds configuration for the resolver
type ResolverConfig struct {
	ImageBaseURL       string
	EnableDebugLogging bool
}

// Resolver turns a classified identifier into a product record using two
// sequential fetches: a catalog search (or the pasted URL) and the canonical
// detail page. It holds no per-lookup state.
type Resolver struct {
	client    domain.CatalogClient
	extractor *scrape.Extractor
	images    microcenter.ImageSet
	debug     bool
}

// NewResolver creates a resolver backed by the given catalog client
func NewResolver(client domain.CatalogClient, config ResolverConfig) *Resolver {
	return &Resolver{
		client:    client,
		extractor: scrape.NewExtractor(config.EnableDebugLogging),
		images:    microcenter.ImageSet{BaseURL: config.ImageBaseURL},
		debug:     config.EnableDebugLogging,
	}
}

// Resolve runs one resolution. decision is nil on a first attempt and carries
// the caller's answer when repeating a lookup that ended in a mismatch.
// Flow: decision shortcut -> search -> canonical id -> detail -> sku check -> extract
func (r *Resolver) Resolve(
	ctx context.Context,
	id domain.Identifier,
	store domain.StoreContext,
	decision *domain.PriorDecision,
) domain.Outcome {
	if outcome, done := r.applyDecision(ctx, id, store, decision); done {
		return outcome
	}

	productID, outcome := r.locateProduct(ctx, id, store)
	if outcome != nil {
		return *outcome
	}

	if err := ctx.Err(); err != nil {
		return domain.TransientErrorOutcome(id, err)
	}

	detail, err := r.client.ProductDetail(ctx, productID, store)
	if outcome := inspectDetail(id, detail, err); outcome != nil {
		return *outcome
	}

	sku, ok := scrape.ActualSKU(detail.Body)
	nominal, hasNominal := id.NominalSKU()
	if !ok {
		sku = nominal
	}

	if hasNominal && ok && sku != nominal {
		if id.Kind == domain.KindSKU && !accepts(decision) {
			log.Printf("[RESOLVE] SKU mismatch: searched %s, found %s", nominal, sku)
			return domain.MismatchOutcome(id, nominal, sku)
		}
		if r.debug {
			log.Printf("[RESOLVE] Accepting redirect %s -> %s for %s input", nominal, sku, id.Kind)
		}
	}

	record := r.buildRecord(detail, productID, sku, store)
	if r.debug {
		log.Printf("[RESOLVE] Found %s (id %s): %s", record.SKU, productID, record.Name)
	}
	return domain.FoundOutcome(id, record)
}

// applyDecision handles a repeated call that already knows the mismatched SKU.
// A rejection ends without fetching; an acceptance resolves the found SKU.
func (r *Resolver) applyDecision(
	ctx context.Context,
	id domain.Identifier,
	store domain.StoreContext,
	decision *domain.PriorDecision,
) (domain.Outcome, bool) {
	if decision == nil || decision.Found == "" || id.Kind != domain.KindSKU || decision.Found == id.Value {
		return domain.Outcome{}, false
	}

	switch decision.Action {
	case domain.DecisionReject:
		return domain.MismatchOutcome(id, id.Value, decision.Found), true
	case domain.DecisionAcceptRedirect:
		redirected := Classify(decision.Found)
		if redirected.Kind != domain.KindSKU {
			return domain.TransientErrorOutcome(id, fmt.Errorf("%w: redirect target %q is not a SKU", domain.ErrInvalidRequest, decision.Found)), true
		}
		return r.Resolve(ctx, redirected, store, &domain.PriorDecision{Action: domain.DecisionAcceptRedirect}), true
	}
	return domain.Outcome{}, false
}

// locateProduct runs the first fetch and finds the canonical product id.
// A pasted link on a foreign host is never fetched; its /product/N path is
// used directly when present.
func (r *Resolver) locateProduct(ctx context.Context, id domain.Identifier, store domain.StoreContext) (string, *domain.Outcome) {
	entry, err := r.fetchEntry(ctx, id, store)
	if errors.Is(err, domain.ErrForeignHost) {
		if productID, ok := scrape.ProductIDFromURL(id.Value); ok {
			log.Printf("[RESOLVE] Using product id %s from foreign link path", productID)
			return productID, nil
		}
		outcome := domain.TransientErrorOutcome(id, err)
		return "", &outcome
	}
	if outcome := inspectEntry(id, entry, err); outcome != nil {
		return "", outcome
	}

	productID, ok := scrape.CanonicalProductID(entry.Body)
	if !ok {
		productID, ok = scrape.ProductIDFromURL(entry.URL)
	}
	if !ok && id.Kind == domain.KindProductURL {
		productID, ok = scrape.ProductIDFromURL(id.Value)
	}
	if !ok {
		log.Printf("[RESOLVE] No product id for %s %q", id.Kind, id.Value)
		outcome := domain.TransientErrorOutcome(id, domain.ErrProductIDNotFound)
		return "", &outcome
	}
	return productID, nil
}

func (r *Resolver) fetchEntry(ctx context.Context, id domain.Identifier, store domain.StoreContext) (*domain.Page, error) {
	if id.Kind == domain.KindProductURL {
		return r.client.FetchURL(ctx, id.Value, store)
	}
	return r.client.Search(ctx, id.SearchText(), store)
}

func (r *Resolver) buildRecord(detail *domain.Page, productID, sku string, store domain.StoreContext) *domain.ProductRecord {
	images := r.images.URLs(productID, sku)
	return &domain.ProductRecord{
		SKU:                sku,
		CanonicalProductID: productID,
		StoreID:            store.StoreID,
		URL:                detail.URL,
		ImageURL:           images[0],
		Images:             images,
		ProductFields:      r.extractor.Extract(detail.Body, sku, store),
	}
}

// inspectEntry checks the search (or pasted URL) response. The no-results
// marker is checked before blocked markers.
func inspectEntry(id domain.Identifier, page *domain.Page, err error) *domain.Outcome {
	if page != nil && scrape.HasNoResults(page.Body) {
		outcome := domain.NoResultsOutcome(id)
		return &outcome
	}
	return inspectDetail(id, page, err)
}

func inspectDetail(id domain.Identifier, page *domain.Page, err error) *domain.Outcome {
	if errors.Is(err, domain.ErrBlocked) || (page != nil && scrape.IsBlocked(page.Body)) {
		log.Printf("[RESOLVE] Blocked while resolving %s %q", id.Kind, id.Value)
		outcome := domain.BlockedOutcome(id)
		return &outcome
	}
	if err != nil {
		log.Printf("[RESOLVE] Fetch failed for %s %q: %v", id.Kind, id.Value, err)
		outcome := domain.TransientErrorOutcome(id, err)
		return &outcome
	}
	if page == nil {
		outcome := domain.TransientErrorOutcome(id, domain.ErrEmptyResponse)
		return &outcome
	}
	return nil
}

func accepts(decision *domain.PriorDecision) bool {
	return decision != nil && decision.Action == domain.DecisionAcceptRedirect
}
