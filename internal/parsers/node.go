package parsers

import "encoding/json"

// packageJSON represents the parts of package.json we read. Only the names
// matter, so version values are left undecoded.
type packageJSON struct {
	Dependencies    map[string]json.RawMessage `json:"dependencies"`
	DevDependencies map[string]json.RawMessage `json:"devDependencies"`
}

// ParseNodeManifest returns the union of dependency and devDependency names
// from package.json content, sorted and without duplicates.
func ParseNodeManifest(content []byte) ([]string, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, err
	}

	required := make(map[string]struct{}, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		required[name] = struct{}{}
	}
	for name := range pkg.DevDependencies {
		required[name] = struct{}{}
	}

	return sortedKeys(required), nil
}

// npmList is the shape of `npm ls --depth=0 --json` output
type npmList struct {
	Dependencies map[string]json.RawMessage `json:"dependencies"`
}

// ParseNpmList returns the top-level package names reported by npm ls.
// Empty or malformed output yields an empty set rather than an error.
func ParseNpmList(output []byte) map[string]struct{} {
	installed := make(map[string]struct{})
	if len(output) == 0 {
		return installed
	}

	var list npmList
	if err := json.Unmarshal(output, &list); err != nil {
		return installed
	}
	for name := range list.Dependencies {
		installed[name] = struct{}{}
	}
	return installed
}
