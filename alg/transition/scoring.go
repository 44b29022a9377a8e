package transition

import "github.com/habeanf/nap/alg/vec"

// Contracts for the scoring collaborators the parsing core calls out to.
// Implementations live outside the core; the core validates vector widths
// at the call sites and nothing else.

// Embedder maps a single token to a representation vector of width Dim.
type Embedder interface {
	Embed(token string) vec.Vector
	Dim() int
}

// SequenceEmbedder maps a sentence to one vector per token, each of width
// Dim. Implementations may carry sequential state within a sentence;
// ClearState resets it at sentence boundaries.
type SequenceEmbedder interface {
	EmbedSequence(tokens []string) []vec.Vector
	ClearState()
	Dim() int
}

// Combiner folds head and modifier representations into one vector of the
// same width, pushed back on the stack by a reduction. May be stateful
// within a sentence; ClearState resets.
type Combiner interface {
	Combine(head, modifier vec.Vector) vec.Vector
	ClearState()
	Dim() int
}

// ActionModel scores actions given extracted features: one score per
// action, higher preferred. The result must have NumActions entries.
type ActionModel interface {
	ScoreActions(features []vec.Vector) []float64
}
