package transition

import (
	. "github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
	nlp "github.com/habeanf/nap/nlp/types"
)

var TEST_SENT nlp.BasicSentence = nlp.BasicSentence{
	"Economic",  // 0
	"news",      // 1
	"had",       // 2
	"little",    // 3
	"effect",    // 4
	"on",        // 5
	"financial", // 6
	"markets",   // 7
	".",         // 8
}

var rawArcs []BasicDepArc = []BasicDepArc{
	{Head: 1, Modifier: 0},
	{Head: 2, Modifier: 1},
	{Head: 4, Modifier: 3},
	{Head: 7, Modifier: 6},
	{Head: 5, Modifier: 7},
	{Head: 4, Modifier: 5},
	{Head: 2, Modifier: 4},
	{Head: 2, Modifier: 8},
}

// the canonical derivation of rawArcs
var TEST_STANDARD_ACTIONS []Action = []Action{
	Shift,
	Shift,
	ReduceLeft,
	Shift,
	ReduceLeft,
	Shift,
	Shift,
	ReduceLeft,
	Shift,
	Shift,
	Shift,
	ReduceLeft,
	ReduceRight,
	ReduceRight,
	ReduceRight,
	Shift,
	ReduceRight,
}

const TEST_DIM = 4

// averageCombiner is a deterministic, stateless combiner for tests.
type averageCombiner struct {
	dim int
}

var _ Combiner = &averageCombiner{}

func (c *averageCombiner) Combine(head, modifier vec.Vector) vec.Vector {
	combined := make(vec.Vector, c.dim)
	for i := range combined {
		combined[i] = (head[i] + modifier[i]) / 2
	}
	return combined
}

func (c *averageCombiner) ClearState() {}

func (c *averageCombiner) Dim() int {
	return c.dim
}

// badWidthCombiner returns vectors one entry too wide.
type badWidthCombiner struct {
	averageCombiner
}

func (c *badWidthCombiner) Combine(head, modifier vec.Vector) vec.Vector {
	return vec.Zeros(c.dim + 1)
}

func testEmbed(i int) vec.Vector {
	v := vec.Zeros(TEST_DIM)
	v[0] = float64(i + 1)
	v[1] = float64(i+1) / 2
	return v
}

func GetTestEmbedded(sent nlp.BasicSentence) *EmbeddedSentence {
	vectors := make([]vec.Vector, len(sent))
	for i := range sent {
		vectors[i] = testEmbed(i)
	}
	return &EmbeddedSentence{Sentence: sent, Vectors: vectors}
}

func GetTestDepGraph() nlp.DependencyGraph {
	var (
		nodes []nlp.DepNode  = make([]nlp.DepNode, len(TEST_SENT))
		arcs  []*BasicDepArc = make([]*BasicDepArc, len(rawArcs))
	)
	for i, form := range TEST_SENT.Tokens() {
		nodes[i] = nlp.DepNode(&VecNode{Id: i, Form: form, Vector: testEmbed(i)})
	}
	for i, rawArc := range rawArcs {
		// make sure to get a heap pointer with it's own copy
		// otherwise &rawArc will be constant
		newArcPtr := new(BasicDepArc)
		*newArcPtr = rawArc
		arcs[i] = newArcPtr
	}
	return nlp.DependencyGraph(&BasicDepGraph{nodes, arcs})
}

func GetTestConfiguration() *VectorConfiguration {
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		panic(err)
	}
	// [Economic news had little effect on financial markets .]
	//     0      1    2    3      4    5      6       7     8
	// Setup configuration:
	// C=(	[had,effect], [.], A)
	// A={	(effect,little)
	//		(effect,on)}

	// S=[had,effect]
	// stack should be empty
	if _, sExists := conf.Stack().Peek(); sExists {
		panic("Initialized configuration should have empty stack")
	}
	conf.Stack().Push(2)
	conf.Stack().Push(4)

	// B=[.]
	conf.Queue().Clear()
	conf.Queue().Enqueue(8)

	// A = {...}
	conf.Arcs().Add(&BasicDepArc{Head: 4, Modifier: 3})
	conf.Arcs().Add(&BasicDepArc{Head: 4, Modifier: 5})

	return conf
}
