package models

import "encoding/json"

// Status is the terminal state of one ecosystem check
type Status int

const (
	StatusNotChecked Status = iota
	StatusSkipped           // no manifest present
	StatusSatisfied         // nothing missing
	StatusInstalled         // missing found, install succeeded
	StatusFailed            // install or prerequisite check failed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusSatisfied:
		return "satisfied"
	case StatusInstalled:
		return "installed"
	case StatusFailed:
		return "failed"
	default:
		return "not_checked"
	}
}

// MarshalJSON renders the status by name
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// EcosystemResult is the outcome of checking one ecosystem
type EcosystemResult struct {
	Ecosystem Ecosystem `json:"ecosystem"`
	Status    Status    `json:"status"`
	Manifest  string    `json:"manifest,omitempty"`
	Required  []string  `json:"required,omitempty"`
	Missing   []string  `json:"missing,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// OK reports whether the ecosystem ended without a hard failure
func (r EcosystemResult) OK() bool {
	return r.Status != StatusFailed
}
