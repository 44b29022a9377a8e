package transition

import (
	. "github.com/habeanf/nap/alg"
	. "github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
	nlp "github.com/habeanf/nap/nlp/types"
	"github.com/habeanf/nap/util"

	"fmt"
	"strings"
)

// Sentinel forms padding peeks past the actual stack/buffer depth. Both
// carry zero vectors.
const (
	NullStackToken  = "<NULL-STACK>"
	EndOfInputToken = "<END-OF-INPUT>"
)

// EmbeddedSentence pairs a sentence with one representation vector per
// token. It is the problem type VectorConfiguration initializes from.
type EmbeddedSentence struct {
	Sentence nlp.Sentence
	Vectors  []vec.Vector
}

// VectorConfiguration is a parse state over vector-carrying nodes: a stack
// and buffer of node ids into an append-only node table, plus the arcs
// built so far. Reductions call the external combiner and append the
// combined node; nodes already in the table are never mutated.
type VectorConfiguration struct {
	InternalStack Stack[int]
	InternalQueue Queue[int]
	InternalArcs  ArcSet
	Nodes         []*VecNode

	ExternalCombiner Combiner

	InternalPrevious *VectorConfiguration
	Last             Action

	numTokens  int
	dim        int
	nullStack  *VecNode
	endOfInput *VecNode
}

var _ DependencyConfiguration = &VectorConfiguration{}

func NewVectorConfiguration(combiner Combiner) *VectorConfiguration {
	return &VectorConfiguration{ExternalCombiner: combiner, Last: NoAction}
}

func (c *VectorConfiguration) Init(abstractSentence interface{}) error {
	embedded, ok := abstractSentence.(*EmbeddedSentence)
	if !ok {
		panic("Can't initialize VectorConfiguration from unknown problem type")
	}
	tokens := embedded.Sentence.Tokens()
	sentLength := len(tokens)
	if len(embedded.Vectors) != sentLength {
		return &DimensionMismatchError{Op: "Init vectors", Want: sentLength, Got: len(embedded.Vectors)}
	}
	if c.ExternalCombiner != nil {
		c.dim = c.ExternalCombiner.Dim()
	} else if sentLength > 0 {
		c.dim = embedded.Vectors[0].Dim()
	}
	for i, v := range embedded.Vectors {
		if v.Dim() != c.dim {
			return &DimensionMismatchError{Op: fmt.Sprintf("Init vector %d", i), Want: c.dim, Got: v.Dim()}
		}
	}

	c.numTokens = sentLength
	// combined nodes are appended past sentLength
	c.Nodes = make([]*VecNode, 0, 2*sentLength)
	for i, token := range tokens {
		c.Nodes = append(c.Nodes, &VecNode{Id: i, Form: token, Vector: embedded.Vectors[i]})
	}

	c.InternalStack = NewStackArray[int](sentLength)
	c.InternalQueue = NewQueueSlice[int](sentLength)
	c.InternalArcs = NewArcSetSimple(sentLength)

	for i := 0; i < sentLength; i++ {
		c.Queue().Enqueue(i)
	}

	c.nullStack = &VecNode{Id: -1, Form: NullStackToken, Vector: vec.Zeros(c.dim)}
	c.endOfInput = &VecNode{Id: -1, Form: EndOfInputToken, Vector: vec.Zeros(c.dim)}

	c.Last = NoAction
	c.InternalPrevious = nil
	return nil
}

func (c *VectorConfiguration) Clear() {
	c.InternalStack = nil
	c.InternalQueue = nil
	c.InternalArcs = nil
	c.Nodes = nil
	c.InternalPrevious = nil
	c.Last = NoAction
	c.numTokens = 0
}

func (c *VectorConfiguration) Terminal() bool {
	return c.Queue().Size() == 0 && c.Stack().Size() <= 1
}

func (c *VectorConfiguration) Stack() Stack[int] {
	return c.InternalStack
}

func (c *VectorConfiguration) Queue() Queue[int] {
	return c.InternalQueue
}

func (c *VectorConfiguration) Arcs() ArcSet {
	return c.InternalArcs
}

// NumTokens is the original sentence length, excluding combined nodes.
func (c *VectorConfiguration) NumTokens() int {
	return c.numTokens
}

func (c *VectorConfiguration) Dim() int {
	return c.dim
}

// Shift moves the front buffer node onto the top of the stack.
func (c *VectorConfiguration) Shift() error {
	if c.Queue().Size() == 0 {
		return &IllegalActionError{Action: Shift, Reason: "buffer is empty"}
	}
	nodeID, _ := c.Queue().Dequeue()
	c.Stack().Push(nodeID)
	return nil
}

// ReduceLeft pops the top two stack nodes, records an arc with the top as
// head and the second as modifier, and pushes their combination.
func (c *VectorConfiguration) ReduceLeft() error {
	return c.reduce(ReduceLeft)
}

// ReduceRight is symmetric: the second is the head, the top the modifier.
func (c *VectorConfiguration) ReduceRight() error {
	return c.reduce(ReduceRight)
}

func (c *VectorConfiguration) reduce(action Action) error {
	if c.Stack().Size() < 2 {
		return &IllegalActionError{Action: action, Reason: "stack has fewer than two entries"}
	}
	if c.ExternalCombiner == nil {
		panic("Can't reduce without a combiner")
	}
	topID, _ := c.Stack().Index(0)
	secondID, _ := c.Stack().Index(1)
	var head, modifier *VecNode
	if action == ReduceLeft {
		head, modifier = c.Nodes[topID], c.Nodes[secondID]
	} else {
		head, modifier = c.Nodes[secondID], c.Nodes[topID]
	}
	combined := c.ExternalCombiner.Combine(head.Vector, modifier.Vector)
	if combined.Dim() != c.dim {
		return &DimensionMismatchError{Op: "Combine", Want: c.dim, Got: combined.Dim()}
	}
	c.Stack().Pop()
	c.Stack().Pop()
	combinedID := len(c.Nodes)
	c.Nodes = append(c.Nodes, &VecNode{Id: head.Id, Form: head.Form, Vector: combined})
	c.Stack().Push(combinedID)
	c.AddArc(&BasicDepArc{Head: head.Id, Modifier: modifier.Id})
	return nil
}

func (c *VectorConfiguration) AddArc(arc *BasicDepArc) {
	c.Arcs().Add(arc)
}

// StackPeekN returns exactly n entries, closest to the top first, padding
// past the actual depth with the null stack sentinel. Read only.
func (c *VectorConfiguration) StackPeekN(n int) []*VecNode {
	entries := make([]*VecNode, 0, n)
	for i := 0; i < n; i++ {
		if nodeID, exists := c.Stack().Index(i); exists {
			entries = append(entries, c.Nodes[nodeID])
		} else {
			entries = append(entries, c.nullStack)
		}
	}
	return entries
}

// BufferPeekN returns exactly n entries, front of the buffer first,
// padding past the actual depth with the end of input sentinel. Read only.
func (c *VectorConfiguration) BufferPeekN(n int) []*VecNode {
	entries := make([]*VecNode, 0, n)
	for i := 0; i < n; i++ {
		if nodeID, exists := c.Queue().Index(i); exists {
			entries = append(entries, c.Nodes[nodeID])
		} else {
			entries = append(entries, c.endOfInput)
		}
	}
	return entries
}

func (c *VectorConfiguration) Copy() Configuration {
	newConf := new(VectorConfiguration)
	c.CopyTo(newConf)
	return newConf
}

func (c *VectorConfiguration) CopyTo(target Configuration) {
	newConf, ok := target.(*VectorConfiguration)
	if !ok {
		panic("Can't copy into non *VectorConfiguration")
	}

	if c.Stack() != nil {
		newConf.InternalStack = c.Stack().Copy()
	}
	if c.Queue() != nil {
		newConf.InternalQueue = c.Queue().Copy()
	}
	if c.Arcs() != nil {
		newConf.InternalArcs = c.Arcs().Copy()
	}
	newConf.Nodes = make([]*VecNode, len(c.Nodes), cap(c.Nodes))
	copy(newConf.Nodes, c.Nodes)

	newConf.Last = c.Last
	newConf.ExternalCombiner = c.ExternalCombiner
	newConf.numTokens = c.numTokens
	newConf.dim = c.dim
	newConf.nullStack = c.nullStack
	newConf.endOfInput = c.endOfInput
	// store a pointer to the previous configuration
	newConf.InternalPrevious = c
}

func (c *VectorConfiguration) Equal(otherEq util.Equaler) bool {
	if c == nil || otherEq == nil {
		return c == nil && otherEq == nil
	}
	other, ok := otherEq.(*VectorConfiguration)
	if !ok {
		return false
	}
	if c.Last != other.Last || len(c.Nodes) != len(other.Nodes) {
		return false
	}
	if (c.Stack() == nil) != (other.Stack() == nil) {
		return false
	}
	if c.Stack() != nil && !c.Stack().Equal(other.Stack()) {
		return false
	}
	if (c.Queue() == nil) != (other.Queue() == nil) {
		return false
	}
	if c.Queue() != nil && !c.Queue().Equal(other.Queue()) {
		return false
	}
	if (c.Arcs() == nil) != (other.Arcs() == nil) {
		return false
	}
	if c.Arcs() != nil && !c.Arcs().Equal(other.Arcs()) {
		return false
	}
	for i := range c.Nodes {
		if !c.Nodes[i].Equal(other.Nodes[i]) {
			return false
		}
	}
	return true
}

func (c *VectorConfiguration) Previous() Configuration {
	if c.InternalPrevious == nil {
		return nil
	}
	return c.InternalPrevious
}

func (c *VectorConfiguration) SetPrevious(prev Configuration) {
	c.InternalPrevious = prev.(*VectorConfiguration)
}

func (c *VectorConfiguration) SetLastAction(a Action) {
	c.Last = a
}

func (c *VectorConfiguration) GetLastAction() Action {
	return c.Last
}

func (c *VectorConfiguration) GetSequence() ConfigurationSequence {
	if c.Arcs() == nil {
		return make(ConfigurationSequence, 0)
	}
	retval := make(ConfigurationSequence, 0, c.Arcs().Size())
	currentConf := c
	for currentConf != nil {
		retval = append(retval, currentConf)
		currentConf = currentConf.InternalPrevious
	}
	return retval
}

func (c *VectorConfiguration) Len() int {
	if c == nil {
		return 0
	}
	if c.Previous() != nil {
		return 1 + c.Previous().Len()
	}
	return 1
}

// Graph returns the dependency graph over the original token nodes;
// combined nodes stay internal to the configuration.
func (c *VectorConfiguration) Graph() nlp.DependencyGraph {
	nodes := make([]nlp.DepNode, c.numTokens)
	for i := 0; i < c.numTokens; i++ {
		nodes[i] = c.Nodes[i]
	}
	arcs := make([]*BasicDepArc, 0, c.Arcs().Size())
	for i := 0; i < c.Arcs().Size(); i++ {
		arcs = append(arcs, c.Arcs().Index(i).(*BasicDepArc))
	}
	return &BasicDepGraph{Nodes: nodes, Arcs: arcs}
}

// OUTPUT FUNCTIONS

func (c *VectorConfiguration) String() string {
	return fmt.Sprintf("%s\t=>([%s],\t[%s],\t%s)",
		c.Last, c.StringStack(), c.StringQueue(), c.StringArcs())
}

func (c *VectorConfiguration) StringStack() string {
	stackSize := c.Stack().Size()
	switch {
	case stackSize > 0 && stackSize <= 3:
		stackStrings := make([]string, 0, 3)
		for i := c.Stack().Size() - 1; i >= 0; i-- {
			atI, _ := c.Stack().Index(i)
			stackStrings = append(stackStrings, c.Nodes[atI].Form)
		}
		return strings.Join(stackStrings, ",")
	case stackSize > 3:
		headID, _ := c.Stack().Index(0)
		tailID, _ := c.Stack().Index(c.Stack().Size() - 1)
		return strings.Join([]string{c.Nodes[tailID].Form, "...", c.Nodes[headID].Form}, ",")
	default:
		return ""
	}
}

func (c *VectorConfiguration) StringQueue() string {
	queueSize := c.Queue().Size()
	switch {
	case queueSize > 0 && queueSize <= 3:
		queueStrings := make([]string, 0, 3)
		for i := 0; i < c.Queue().Size(); i++ {
			atI, _ := c.Queue().Index(i)
			queueStrings = append(queueStrings, c.Nodes[atI].Form)
		}
		return strings.Join(queueStrings, ",")
	case queueSize > 3:
		headID, _ := c.Queue().Index(0)
		tailID, _ := c.Queue().Index(c.Queue().Size() - 1)
		return strings.Join([]string{c.Nodes[headID].Form, "...", c.Nodes[tailID].Form}, ",")
	default:
		return ""
	}
}

func (c *VectorConfiguration) StringArcs() string {
	switch c.Last {
	case ReduceLeft, ReduceRight:
		lastArc := c.Arcs().Last()
		head := c.Nodes[lastArc.GetHead()]
		mod := c.Nodes[lastArc.GetModifier()]
		arcStr := fmt.Sprintf("(%s,%s)", head.Form, mod.Form)
		return fmt.Sprintf("A%d=A%d+{%s}", c.Arcs().Size(), c.Arcs().Size()-1, arcStr)
	default:
		return fmt.Sprintf("A%d", c.Arcs().Size())
	}
}
