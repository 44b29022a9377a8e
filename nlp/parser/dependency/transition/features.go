package transition

import (
	"math/rand"

	. "github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
)

// WindowExtractor returns the representation vectors of the top StackN
// stack entries (closest to the top first) followed by the front BufferN
// buffer entries, padded by the peek sentinels. Output length is fixed at
// StackN+BufferN regardless of parse state.
type WindowExtractor struct {
	StackN  int
	BufferN int
}

var _ FeatureExtractor = &WindowExtractor{}

// NewWindowExtractor returns the reference policy: top-2 stack, front-1
// buffer.
func NewWindowExtractor() *WindowExtractor {
	return &WindowExtractor{StackN: 2, BufferN: 1}
}

func (x *WindowExtractor) Features(conf Configuration, ctx Context) ([]vec.Vector, error) {
	c, ok := conf.(*VectorConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	features := make([]vec.Vector, 0, x.Slots())
	for _, node := range c.StackPeekN(x.StackN) {
		features = append(features, node.Vector)
	}
	for _, node := range c.BufferPeekN(x.BufferN) {
		features = append(features, node.Vector)
	}
	return features, nil
}

func (x *WindowExtractor) Slots() int {
	return x.StackN + x.BufferN
}

// HistoryWindowExtractor extends WindowExtractor with the last HistoryN
// actions, each mapped to a fixed per-action vector. The action history is
// read from the "history" context capability; a missing or short history
// pads with zero vectors, so output length stays fixed.
type HistoryWindowExtractor struct {
	WindowExtractor
	HistoryN int

	dim        int
	actionVecs [NumActions]vec.Vector
	padVec     vec.Vector
}

var _ FeatureExtractor = &HistoryWindowExtractor{}

func NewHistoryWindowExtractor(stackN, bufferN, historyN, dim int, seed int64) *HistoryWindowExtractor {
	x := &HistoryWindowExtractor{
		WindowExtractor: WindowExtractor{StackN: stackN, BufferN: bufferN},
		HistoryN:        historyN,
		dim:             dim,
		padVec:          vec.Zeros(dim),
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range x.actionVecs {
		v := make(vec.Vector, dim)
		for j := range v {
			v[j] = rng.Float64() - 0.5
		}
		x.actionVecs[i] = v
	}
	return x
}

func (x *HistoryWindowExtractor) Features(conf Configuration, ctx Context) ([]vec.Vector, error) {
	c, ok := conf.(*VectorConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	if c.Dim() != x.dim {
		return nil, &DimensionMismatchError{Op: "history features", Want: x.dim, Got: c.Dim()}
	}
	features, err := x.WindowExtractor.Features(conf, ctx)
	if err != nil {
		return nil, err
	}
	// the "history" capability holds applied actions, most recent first
	history, _ := ctx["history"].([]Action)
	for i := 0; i < x.HistoryN; i++ {
		if i < len(history) {
			features = append(features, x.actionVecs[history[i]])
		} else {
			features = append(features, x.padVec)
		}
	}
	return features, nil
}

func (x *HistoryWindowExtractor) Slots() int {
	return x.WindowExtractor.Slots() + x.HistoryN
}
