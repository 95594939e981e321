package checker

import "sort"

// Missing returns the required names absent from installed, sorted and
// deduplicated. It returns nil when nothing is missing.
func Missing(required []string, installed map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, name := range required {
		if _, ok := installed[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing
}
