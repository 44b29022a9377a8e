package nn

import (
	"math/rand"

	"github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
)

// MLPCombiner folds head and modifier through a two layer perceptron: tanh
// hidden layer, linear output of the input width. Stateless.
type MLPCombiner struct {
	hidden *affine
	out    *affine
	dim    int
}

var _ transition.Combiner = &MLPCombiner{}

func NewMLPCombiner(dim int, seed int64) *MLPCombiner {
	rng := rand.New(rand.NewSource(seed))
	return &MLPCombiner{
		hidden: newAffine(rng, 2*dim, dim),
		out:    newAffine(rng, dim, dim),
		dim:    dim,
	}
}

func (m *MLPCombiner) Combine(head, modifier vec.Vector) vec.Vector {
	return m.out.Apply(tanh(m.hidden.Apply(vec.Concat(head, modifier))))
}

func (m *MLPCombiner) ClearState() {}

func (m *MLPCombiner) Dim() int {
	return m.dim
}

// RecurrentCombiner advances an LSTM one step per reduction, so reductions
// within a sentence share evolving state. ClearState starts a fresh
// sentence.
type RecurrentCombiner struct {
	cell *lstmCell
	dim  int

	hidden vec.Vector
	state  vec.Vector
}

var _ transition.Combiner = &RecurrentCombiner{}

func NewRecurrentCombiner(dim int, seed int64) *RecurrentCombiner {
	rng := rand.New(rand.NewSource(seed))
	r := &RecurrentCombiner{
		cell: newLSTMCell(rng, 2*dim, dim),
		dim:  dim,
	}
	r.ClearState()
	return r
}

func (r *RecurrentCombiner) Combine(head, modifier vec.Vector) vec.Vector {
	r.hidden, r.state = r.cell.Step(vec.Concat(head, modifier), r.hidden, r.state)
	return r.hidden
}

func (r *RecurrentCombiner) ClearState() {
	r.hidden, r.state = vec.Zeros(r.dim), vec.Zeros(r.dim)
}

func (r *RecurrentCombiner) Dim() int {
	return r.dim
}
