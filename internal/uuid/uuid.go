// uuid simple generator that allows mocking
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// RequestIDGenerator produces the short ids that tag each quick roll request in logs
type RequestIDGenerator struct {
	source Generator
}

// NewRequestIDGenerator wraps a Generator. A nil source uses Google's UUID package.
func NewRequestIDGenerator(source Generator) *RequestIDGenerator {
	if source == nil {
		source = NewGoogleUUIDGenerator()
	}
	return &RequestIDGenerator{source: source}
}

// New returns the first block of a generated id
func (g *RequestIDGenerator) New() string {
	id := g.source.New()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Sequence is a deterministic Generator for tests
type Sequence struct {
	IDs  []string
	next int
}

// New returns the next id, cycling when the list is exhausted
func (s *Sequence) New() string {
	if len(s.IDs) == 0 {
		return ""
	}
	id := s.IDs[s.next%len(s.IDs)]
	s.next++
	return id
}
