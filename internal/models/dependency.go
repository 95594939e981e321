package models

// Ecosystem represents a package ecosystem
type Ecosystem string

const (
	EcosystemNpm Ecosystem = "npm"
	EcosystemPip Ecosystem = "pip"
)

// Label returns the bracketed prefix used on progress lines
func (e Ecosystem) Label() string {
	return "[" + string(e) + "]"
}
