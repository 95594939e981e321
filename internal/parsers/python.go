package parsers

import (
	"regexp"
	"strings"
)

// namePattern matches the leading distribution name of a requirement line
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+`)

// skipPrefixes are requirement lines that do not name an installable package
var skipPrefixes = []string{
	"-r",
	"--requirement",
	"-e",
	"--editable",
	"git+",
	"http://",
	"https://",
}

// ParseRequirements extracts package names from requirements.txt content
// in file order. Malformed lines are skipped; it never fails.
func ParseRequirements(content []byte) []string {
	var names []string

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Remove inline comments
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" || hasSkipPrefix(line) {
			continue
		}

		if name := namePattern.FindString(line); name != "" {
			names = append(names, name)
		}
	}

	return names
}

func hasSkipPrefix(line string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
