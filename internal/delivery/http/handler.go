package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/usecase"
)

// LookupService resolves raw input into an outcome
type LookupService interface {
	Lookup(ctx context.Context, request *domain.LookupRequest) (domain.Outcome, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lookup  LookupService
	metrics http.Handler
}

// NewHandler creates a new HTTP handler. metrics may be nil.
func NewHandler(lookup LookupService, metrics http.Handler) *Handler {
	return &Handler{lookup: lookup, metrics: metrics}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "partscout-backend",
		"version": "1.0.0",
	})
}

// Classify reports how raw input would be interpreted, without fetching anything
func (h *Handler) Classify(c *gin.Context) {
	q := c.Query("q")
	if strings.TrimSpace(q) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	c.JSON(http.StatusOK, usecase.Classify(q))
}

// Lookup resolves raw input against the retailer catalog
func (h *Handler) Lookup(c *gin.Context) {
	if h.lookup == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "lookup service not configured"})
		return
	}

	var request domain.LookupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	outcome, err := h.lookup.Lookup(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] Lookup failed (request %s): %v", c.GetString(requestIDKey), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(statusForOutcome(outcome.Kind), outcome)
}

// Metrics serves the Prometheus exposition
func (h *Handler) Metrics(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "metrics disabled"})
		return
	}
	h.metrics.ServeHTTP(c.Writer, c.Request)
}

// statusForOutcome maps an outcome to an HTTP status. Mismatch is a normal
// answer that asks the caller for a decision.
func statusForOutcome(kind domain.OutcomeKind) int {
	switch kind {
	case domain.OutcomeBlocked, domain.OutcomeTransientError:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
