package domain

// OutcomeKind tags the terminal state of a resolution
type OutcomeKind string

const (
	OutcomeFound          OutcomeKind = "found"
	OutcomeNoResults      OutcomeKind = "no_results"
	OutcomeMismatch       OutcomeKind = "mismatch"
	OutcomeBlocked        OutcomeKind = "blocked"
	OutcomeTransientError OutcomeKind = "transient_error"
)

// Outcome is the result of one resolution call. Record is set only for
// OutcomeFound; Searched/Found only for OutcomeMismatch; Message only for
// OutcomeTransientError.
type Outcome struct {
	Kind       OutcomeKind    `json:"kind"`
	Identifier Identifier     `json:"identifier"`
	Record     *ProductRecord `json:"record,omitempty"`
	Searched   string         `json:"searched,omitempty"`
	Found      string         `json:"found,omitempty"`
	Message    string         `json:"message,omitempty"`
}

func FoundOutcome(id Identifier, record *ProductRecord) Outcome {
	return Outcome{Kind: OutcomeFound, Identifier: id, Record: record}
}

func NoResultsOutcome(id Identifier) Outcome {
	return Outcome{Kind: OutcomeNoResults, Identifier: id, Searched: id.SearchText()}
}

func MismatchOutcome(id Identifier, searched, found string) Outcome {
	return Outcome{Kind: OutcomeMismatch, Identifier: id, Searched: searched, Found: found}
}

func BlockedOutcome(id Identifier) Outcome {
	return Outcome{Kind: OutcomeBlocked, Identifier: id}
}

func TransientErrorOutcome(id Identifier, err error) Outcome {
	return Outcome{Kind: OutcomeTransientError, Identifier: id, Message: err.Error()}
}

// DecisionAction is the caller's answer to a mismatch prompt
type DecisionAction string

const (
	DecisionAcceptRedirect DecisionAction = "accept-redirect"
	DecisionReject         DecisionAction = "reject"
)

// PriorDecision is passed back by the caller after a Mismatch outcome.
// Found echoes the SKU reported in that outcome.
type PriorDecision struct {
	Action DecisionAction `json:"action"`
	Found  string         `json:"found,omitempty"`
}

// Valid reports whether the action is one of the known decisions. A
// rejection must name the SKU it rejects.
func (d *PriorDecision) Valid() bool {
	if d == nil {
		return true
	}
	switch d.Action {
	case DecisionAcceptRedirect:
		return true
	case DecisionReject:
		return d.Found != ""
	}
	return false
}
