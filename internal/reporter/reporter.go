package reporter

import "github.com/ethanolivertroy/depcheck/internal/models"

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates the run summary for the given ecosystem results
	Report(results []models.EcosystemResult) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	default:
		return &TerminalReporter{}
	}
}

// allOK reports whether every ecosystem finished without a hard failure
func allOK(results []models.EcosystemResult) bool {
	for _, r := range results {
		if !r.OK() {
			return false
		}
	}
	return true
}
