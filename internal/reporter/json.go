package reporter

import (
	"encoding/json"

	"github.com/ethanolivertroy/depcheck/internal/models"
)

// JSONReporter outputs results in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	OK         bool                     `json:"ok"`
	Ecosystems []models.EcosystemResult `json:"ecosystems"`
}

// Report generates JSON output for the given results
func (r *JSONReporter) Report(results []models.EcosystemResult) ([]byte, error) {
	if results == nil {
		results = []models.EcosystemResult{}
	}
	output := jsonOutput{
		OK:         allOK(results),
		Ecosystems: results,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
