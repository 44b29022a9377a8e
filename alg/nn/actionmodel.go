package nn

import (
	"fmt"
	"math/rand"

	"github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
)

// MLPActionModel scores the actions from the concatenated feature window:
// ReLU hidden layer, linear map to one score per action, log-softmax
// normalized.
type MLPActionModel struct {
	hidden *affine
	out    *affine
	slots  int
	dim    int
}

var _ transition.ActionModel = &MLPActionModel{}

// NewMLPActionModel sizes the network for feature windows of exactly slots
// vectors of width dim.
func NewMLPActionModel(slots, dim int, seed int64) *MLPActionModel {
	rng := rand.New(rand.NewSource(seed))
	width := slots * dim
	return &MLPActionModel{
		hidden: newAffine(rng, width, width),
		out:    newAffine(rng, width, transition.NumActions),
		slots:  slots,
		dim:    dim,
	}
}

func (m *MLPActionModel) ScoreActions(features []vec.Vector) []float64 {
	if len(features) != m.slots {
		panic(fmt.Sprintf("Got %d features, model built for %d", len(features), m.slots))
	}
	return logSoftmax(m.out.Apply(relu(m.hidden.Apply(vec.Concat(features...)))))
}
