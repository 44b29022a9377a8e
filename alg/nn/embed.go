package nn

import (
	"math/rand"

	"github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
	"github.com/habeanf/nap/util"
)

// LookupEmbedder is an embedding table over a vocabulary; unknown tokens
// share one vector. Construction freezes the vocabulary so the table width
// stays stable. Stateless, so it doubles as a sequence embedder.
type LookupEmbedder struct {
	vocab *util.Vocab
	table []vec.Vector
	unk   vec.Vector
	dim   int
}

var _ transition.Embedder = &LookupEmbedder{}
var _ transition.SequenceEmbedder = &LookupEmbedder{}

func NewLookupEmbedder(vocab *util.Vocab, dim int, seed int64) *LookupEmbedder {
	vocab.Freeze()
	rng := rand.New(rand.NewSource(seed))
	table := make([]vec.Vector, vocab.Len())
	for i := range table {
		table[i] = randomVector(rng, dim)
	}
	return &LookupEmbedder{
		vocab: vocab,
		table: table,
		unk:   randomVector(rng, dim),
		dim:   dim,
	}
}

func (e *LookupEmbedder) Embed(token string) vec.Vector {
	if id, exists := e.vocab.IndexOf(token); exists {
		return e.table[id]
	}
	return e.unk
}

func (e *LookupEmbedder) EmbedSequence(tokens []string) []vec.Vector {
	vectors := make([]vec.Vector, len(tokens))
	for i, token := range tokens {
		vectors[i] = e.Embed(token)
	}
	return vectors
}

func (e *LookupEmbedder) ClearState() {}

func (e *LookupEmbedder) Dim() int {
	return e.dim
}

// RecurrentSequenceEmbedder runs a bidirectional LSTM over the token
// embeddings; each token's representation is the concatenation of the
// forward and backward hidden states at its position. Direction states
// persist across calls until ClearState.
type RecurrentSequenceEmbedder struct {
	lookup   transition.Embedder
	forward  *lstmCell
	backward *lstmCell
	dim      int

	fwHidden, fwCell vec.Vector
	bwHidden, bwCell vec.Vector
}

var _ transition.SequenceEmbedder = &RecurrentSequenceEmbedder{}

func NewRecurrentSequenceEmbedder(lookup transition.Embedder, dim int, seed int64) *RecurrentSequenceEmbedder {
	if dim%2 != 0 {
		panic("Bidirectional embedder needs an even output dimension")
	}
	rng := rand.New(rand.NewSource(seed))
	half := dim / 2
	e := &RecurrentSequenceEmbedder{
		lookup:   lookup,
		forward:  newLSTMCell(rng, lookup.Dim(), half),
		backward: newLSTMCell(rng, lookup.Dim(), half),
		dim:      dim,
	}
	e.ClearState()
	return e
}

func (e *RecurrentSequenceEmbedder) EmbedSequence(tokens []string) []vec.Vector {
	n := len(tokens)
	inputs := make([]vec.Vector, n)
	for i, token := range tokens {
		inputs[i] = e.lookup.Embed(token)
	}
	forward := make([]vec.Vector, n)
	for i := 0; i < n; i++ {
		e.fwHidden, e.fwCell = e.forward.Step(inputs[i], e.fwHidden, e.fwCell)
		forward[i] = e.fwHidden
	}
	backward := make([]vec.Vector, n)
	for i := n - 1; i >= 0; i-- {
		e.bwHidden, e.bwCell = e.backward.Step(inputs[i], e.bwHidden, e.bwCell)
		backward[i] = e.bwHidden
	}
	vectors := make([]vec.Vector, n)
	for i := 0; i < n; i++ {
		vectors[i] = vec.Concat(forward[i], backward[i])
	}
	return vectors
}

func (e *RecurrentSequenceEmbedder) ClearState() {
	half := e.dim / 2
	e.fwHidden, e.fwCell = vec.Zeros(half), vec.Zeros(half)
	e.bwHidden, e.bwCell = vec.Zeros(half), vec.Zeros(half)
}

func (e *RecurrentSequenceEmbedder) Dim() int {
	return e.dim
}
