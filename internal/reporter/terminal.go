package reporter

import "github.com/ethanolivertroy/depcheck/internal/models"

// TerminalReporter prints the closing line of a successful run. Progress
// lines are written by the checker as it goes.
type TerminalReporter struct{}

// Report generates terminal output for the given results
func (r *TerminalReporter) Report(results []models.EcosystemResult) ([]byte, error) {
	if !allOK(results) {
		return nil, nil
	}
	return []byte("All dependencies are present.\n"), nil
}
