// Package parsers extracts required dependency names from project manifests.
package parsers

import "sort"

// sortedKeys returns the keys of a name set in ascending order
func sortedKeys(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
