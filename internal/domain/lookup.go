package domain

import "time"

// LookupRequest is a caller's request to resolve raw input against a store
type LookupRequest struct {
	Input    string         `json:"input"`
	StoreID  string         `json:"storeId,omitempty"`
	Decision *PriorDecision `json:"decision,omitempty"`
}

// MetricsRecorder receives lookup measurements
type MetricsRecorder interface {
	ObserveLookup(kind IdentifierKind, outcome OutcomeKind, duration time.Duration)
	ObserveCacheHit()
}
