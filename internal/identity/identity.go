// Package identity issues stable, prefixed identifiers for curriculum entities.
package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator issues unique entity identifiers
type Generator struct{}

// NewGenerator creates a new identifier generator
func NewGenerator() *Generator {
	return &Generator{}
}

// NewID returns a new identifier of the form "<kind>-<uuid>", e.g.
// "topic-9b1deb4d-...". The kind prefix makes identifiers self-describing
// in logs and payloads; equality and lookups always use the full string.
func (g *Generator) NewID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}
