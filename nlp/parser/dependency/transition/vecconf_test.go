package transition

import (
	"errors"
	"testing"

	. "github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
	nlp "github.com/habeanf/nap/nlp/types"
)

func TestVectorConfigurationInit(t *testing.T) {
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	if conf.Stack() == nil || conf.Queue() == nil || conf.Arcs() == nil {
		t.Error("After initialization got nil Stack/Queue/Arcs")
	}
	if _, stackExists := conf.Stack().Peek(); stackExists {
		t.Error("Initialized configuration does not have an empty stack")
	}
	if conf.Queue().Size() != len(TEST_SENT) {
		t.Error("Initialized configuration does not have the full sentence on the buffer")
	}
	if qPeek, qPeekExists := conf.Queue().Peek(); !qPeekExists || qPeek != 0 {
		t.Error("Wrong buffer front after initialization")
	}
	if conf.Arcs().Size() != 0 {
		t.Error("Initialized configuration has arcs")
	}
	if conf.NumTokens() != len(TEST_SENT) {
		t.Error("Got wrong number of tokens")
	}
	if conf.Dim() != TEST_DIM {
		t.Error("Got wrong vector dimension")
	}
	if len(conf.Nodes) != len(TEST_SENT) {
		t.Error("Got wrong number of initial nodes")
	}
	for i, token := range TEST_SENT.Tokens() {
		if conf.Nodes[i].Form != token || conf.Nodes[i].Id != i {
			t.Error("Wrong node at position", i)
		}
	}
	if conf.Terminal() {
		t.Error("Freshly initialized configuration is terminal")
	}
	if conf.GetLastAction() != NoAction {
		t.Error("Fresh configuration has a last action")
	}
}

func TestVectorConfigurationInitDimension(t *testing.T) {
	embedded := GetTestEmbedded(TEST_SENT)
	embedded.Vectors = embedded.Vectors[:len(embedded.Vectors)-1]
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	err := conf.Init(embedded)
	var dimErr *DimensionMismatchError
	if err == nil || !errors.As(err, &dimErr) {
		t.Error("Expected dimension mismatch for missing token vector, got", err)
	}

	embedded = GetTestEmbedded(TEST_SENT)
	embedded.Vectors[3] = vec.Zeros(TEST_DIM + 1)
	err = conf.Init(embedded)
	if err == nil || !errors.As(err, &dimErr) {
		t.Error("Expected dimension mismatch for wrong width vector, got", err)
	}

	panicked := func() (panicked bool) {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		conf.Init(42)
		return
	}()
	if !panicked {
		t.Error("Expected panic initializing from unknown problem type")
	}
}

func TestVectorConfigurationTerminal(t *testing.T) {
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	empty := nlp.BasicSentence{}
	if err := conf.Init(GetTestEmbedded(empty)); err != nil {
		t.Fatal("Init failed:", err)
	}
	if !conf.Terminal() {
		t.Error("Empty sentence is not immediately terminal")
	}

	single := nlp.BasicSentence{"word"}
	if err := conf.Init(GetTestEmbedded(single)); err != nil {
		t.Fatal("Init failed:", err)
	}
	if conf.Terminal() {
		t.Error("Single token sentence is terminal before shifting")
	}
	if err := conf.Shift(); err != nil {
		t.Error("Shift of single token failed:", err)
	}
	if !conf.Terminal() {
		t.Error("Single token sentence is not terminal after shifting")
	}
}

func TestShiftReduceLeft(t *testing.T) {
	sent := nlp.BasicSentence{"The", "dog"}
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(sent)); err != nil {
		t.Fatal("Init failed:", err)
	}
	if err := conf.Shift(); err != nil {
		t.Error("First shift failed:", err)
	}
	if err := conf.Shift(); err != nil {
		t.Error("Second shift failed:", err)
	}
	if sPeek, sPeekExists := conf.Stack().Peek(); !sPeekExists || sPeek != 1 {
		t.Error("Wrong stack top after two shifts")
	}
	if err := conf.ReduceLeft(); err != nil {
		t.Error("Reduce left failed:", err)
	}
	if !conf.Terminal() {
		t.Error("Configuration is not terminal after full derivation")
	}
	if conf.Arcs().Size() != 1 || !conf.Arcs().HasArc(1, 0) {
		t.Error("Reduce left did not record arc (1,0)")
	}
	combinedID, _ := conf.Stack().Peek()
	combined := conf.Nodes[combinedID]
	if combined.Id != 1 || combined.Form != "dog" {
		t.Error("Combined node did not take the head's position and form")
	}
	expected := vec.Vector{1.5, 0.75, 0, 0}
	if !combined.Vector.Equal(expected) {
		t.Error("Combined node has wrong vector:", combined.Vector)
	}
	// original nodes are untouched
	if !conf.Nodes[0].Vector.Equal(testEmbed(0)) || !conf.Nodes[1].Vector.Equal(testEmbed(1)) {
		t.Error("Reduction mutated an existing node")
	}
}

func TestShiftReduceRight(t *testing.T) {
	sent := nlp.BasicSentence{"The", "dog"}
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(sent)); err != nil {
		t.Fatal("Init failed:", err)
	}
	conf.Shift()
	conf.Shift()
	if err := conf.ReduceRight(); err != nil {
		t.Error("Reduce right failed:", err)
	}
	if conf.Arcs().Size() != 1 || !conf.Arcs().HasArc(0, 1) {
		t.Error("Reduce right did not record arc (0,1)")
	}
	combinedID, _ := conf.Stack().Peek()
	combined := conf.Nodes[combinedID]
	if combined.Id != 0 || combined.Form != "The" {
		t.Error("Combined node did not take the head's position and form")
	}
}

func TestIllegalActions(t *testing.T) {
	conf := GetTestConfiguration()
	var illegal *IllegalActionError

	// drain the buffer, then shift must fail and leave the state intact
	conf.Queue().Clear()
	snapshot := conf.Copy().(*VectorConfiguration)
	err := conf.Shift()
	if err == nil || !errors.As(err, &illegal) {
		t.Error("Expected illegal action error shifting an empty buffer, got", err)
	}
	if !conf.Equal(snapshot) {
		t.Error("Failed shift changed the configuration")
	}

	// a single stack entry cannot reduce
	conf.Stack().Pop()
	snapshot = conf.Copy().(*VectorConfiguration)
	err = conf.ReduceLeft()
	if err == nil || !errors.As(err, &illegal) {
		t.Error("Expected illegal action error reducing a short stack, got", err)
	}
	if !conf.Equal(snapshot) {
		t.Error("Failed reduce left changed the configuration")
	}
	err = conf.ReduceRight()
	if err == nil || !errors.As(err, &illegal) {
		t.Error("Expected illegal action error reducing a short stack, got", err)
	}
	if !conf.Equal(snapshot) {
		t.Error("Failed reduce right changed the configuration")
	}
}

func TestCombinerErrors(t *testing.T) {
	conf := NewVectorConfiguration(&badWidthCombiner{averageCombiner{dim: TEST_DIM}})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	conf.Shift()
	conf.Shift()
	snapshot := conf.Copy().(*VectorConfiguration)
	err := conf.ReduceLeft()
	var dimErr *DimensionMismatchError
	if err == nil || !errors.As(err, &dimErr) {
		t.Error("Expected dimension mismatch from bad combiner, got", err)
	}
	if !conf.Equal(snapshot) {
		t.Error("Failed combine changed the configuration")
	}

	noCombiner := NewVectorConfiguration(nil)
	if err := noCombiner.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	noCombiner.Shift()
	noCombiner.Shift()
	panicked := func() (panicked bool) {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		noCombiner.ReduceLeft()
		return
	}()
	if !panicked {
		t.Error("Expected panic reducing without a combiner")
	}
}

func TestPeekPadding(t *testing.T) {
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	stackPeek := conf.StackPeekN(2)
	if len(stackPeek) != 2 {
		t.Fatal("StackPeekN did not return exactly n entries")
	}
	for _, node := range stackPeek {
		if node.Form != NullStackToken || node.Id != -1 || !node.Vector.IsZero() {
			t.Error("Empty stack peek entry is not the null stack sentinel")
		}
	}
	bufferPeek := conf.BufferPeekN(3)
	if len(bufferPeek) != 3 {
		t.Fatal("BufferPeekN did not return exactly n entries")
	}
	for i, form := range []string{"Economic", "news", "had"} {
		if bufferPeek[i].Form != form {
			t.Error("Wrong buffer peek entry at", i)
		}
	}
	if len(conf.StackPeekN(0)) != 0 || len(conf.BufferPeekN(0)) != 0 {
		t.Error("Peek of zero width returned entries")
	}

	midParse := GetTestConfiguration()
	stackPeek = midParse.StackPeekN(3)
	if stackPeek[0].Form != "effect" || stackPeek[1].Form != "had" {
		t.Error("Wrong stack peek order, top of stack must come first")
	}
	if stackPeek[2].Form != NullStackToken {
		t.Error("Stack peek past depth is not the null stack sentinel")
	}
	bufferPeek = midParse.BufferPeekN(2)
	if bufferPeek[0].Form != "." {
		t.Error("Wrong buffer peek front")
	}
	if bufferPeek[1].Form != EndOfInputToken || bufferPeek[1].Id != -1 || !bufferPeek[1].Vector.IsZero() {
		t.Error("Buffer peek past depth is not the end of input sentinel")
	}
}

func TestTokenConservation(t *testing.T) {
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	check := func(step int) {
		total := conf.Stack().Size() + conf.Queue().Size() + conf.Arcs().Size()
		if total != len(TEST_SENT) {
			t.Error("Token conservation violated at step", step, "got", total)
		}
	}
	check(-1)
	for i, action := range TEST_STANDARD_ACTIONS {
		var err error
		switch action {
		case Shift:
			err = conf.Shift()
		case ReduceLeft:
			err = conf.ReduceLeft()
		case ReduceRight:
			err = conf.ReduceRight()
		}
		if err != nil {
			t.Fatal("Derivation failed at step", i, ":", err)
		}
		check(i)
	}
	if !conf.Terminal() {
		t.Error("Configuration is not terminal after the full derivation")
	}
	if len(conf.Nodes) != 2*len(TEST_SENT)-1 {
		t.Error("Got wrong node table size after full derivation")
	}
	if !conf.Graph().Equal(GetTestDepGraph()) {
		t.Error("Derived graph does not equal the gold graph")
	}
}

func TestVectorConfigurationCopy(t *testing.T) {
	conf := GetTestConfiguration()
	copied := conf.Copy().(*VectorConfiguration)
	if !conf.Equal(copied) {
		t.Error("Copy is not equal to its source")
	}
	if copied.InternalPrevious != conf {
		t.Error("Copy did not record its source as previous")
	}
	copied.Stack().Push(7)
	if conf.Stack().Size() == copied.Stack().Size() {
		t.Error("Copy shares its stack with the source")
	}
	if conf.Equal(copied) {
		t.Error("Mutated copy still equals its source")
	}
}

func TestGraphProjection(t *testing.T) {
	conf := GetTestConfiguration()
	graph := conf.Graph()
	if graph.NumberOfNodes() != len(TEST_SENT) {
		t.Error("Graph has wrong number of nodes")
	}
	if graph.NumberOfArcs() != conf.Arcs().Size() {
		t.Error("Graph has wrong number of arcs")
	}
	if graph.GetNode(4).String() != "effect" {
		t.Error("Graph node mismatch")
	}
}
