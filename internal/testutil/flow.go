package testutil

// FixedIDGenerator returns the same invocation id every time.
//
// Reports carry the invocation id as trace_id, so tests that compare output
// against golden files need it fixed.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a new fixed invocation id generator.
//
// If id is empty, Generate() returns "00000000-0000-0000-0000-000000000000".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "00000000-0000-0000-0000-000000000000"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
