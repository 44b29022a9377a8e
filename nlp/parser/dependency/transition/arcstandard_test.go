package transition

import (
	"errors"
	"testing"

	. "github.com/habeanf/nap/alg/transition"
	nlp "github.com/habeanf/nap/nlp/types"
)

func TestArcStandardTransitions(t *testing.T) {
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	arcStd := &ArcStandard{}

	next, err := arcStd.Transition(conf, Shift)
	if err != nil {
		t.Fatal("Shift failed:", err)
	}
	shConf := next.(*VectorConfiguration)
	if qPeek, qPeekExists := shConf.Queue().Peek(); !qPeekExists || qPeek != 1 {
		t.Error("Got wrong buffer front after shift")
	}
	if sPeek, sPeekExists := shConf.Stack().Peek(); !sPeekExists || sPeek != 0 {
		t.Error("Got wrong stack top after shift")
	}
	if shConf.GetLastAction() != Shift {
		t.Error("Shift was not recorded as the last action")
	}
	// the transition operates on a copy
	if qPeek, _ := conf.Queue().Peek(); qPeek != 0 {
		t.Error("Transition changed the source configuration buffer")
	}
	if conf.Stack().Size() != 0 {
		t.Error("Transition changed the source configuration stack")
	}

	current := next
	for i, action := range TEST_STANDARD_ACTIONS[1:] {
		current, err = arcStd.Transition(current, action)
		if err != nil {
			t.Fatal("Derivation failed at step", i+1, ":", err)
		}
	}
	final := current.(*VectorConfiguration)
	if !final.Terminal() {
		t.Error("Configuration is not terminal after the full derivation")
	}
	expectedArcSet := NewArcSetSimpleFromGraph(GetTestDepGraph())
	if !expectedArcSet.Equal(final.Arcs()) {
		t.Error("Derivation did not produce the expected arc set")
	}
	if final.Len() != len(TEST_STANDARD_ACTIONS)+1 {
		t.Error("Got wrong configuration chain length")
	}
	if len(final.GetSequence()) != len(TEST_STANDARD_ACTIONS)+1 {
		t.Error("Got wrong configuration sequence length")
	}
}

func TestArcStandardLegal(t *testing.T) {
	arcStd := &ArcStandard{}
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	legal := arcStd.Legal(conf)
	if !legal.Has(Shift) || legal.Has(ReduceLeft) || legal.Has(ReduceRight) {
		t.Error("Fresh configuration should only allow shift, got", legal.String())
	}
	if legal.Len() != 1 {
		t.Error("Got wrong legal set size for fresh configuration")
	}

	midParse := GetTestConfiguration()
	legal = arcStd.Legal(midParse)
	if !legal.Has(Shift) || !legal.Has(ReduceLeft) || !legal.Has(ReduceRight) {
		t.Error("Mid-parse configuration should allow all actions, got", legal.String())
	}

	midParse.Queue().Clear()
	legal = arcStd.Legal(midParse)
	if legal.Has(Shift) || !legal.Has(ReduceLeft) || !legal.Has(ReduceRight) {
		t.Error("Exhausted buffer should only allow reduces, got", legal.String())
	}

	single := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := single.Init(GetTestEmbedded(nlp.BasicSentence{"word"})); err != nil {
		t.Fatal("Init failed:", err)
	}
	terminal, err := arcStd.Transition(single, Shift)
	if err != nil {
		t.Fatal("Shift failed:", err)
	}
	legal = arcStd.Legal(terminal)
	if !legal.Empty() {
		t.Error("Terminal configuration has legal actions:", legal.String())
	}
	if !terminal.Terminal() {
		t.Error("Configuration with empty legal set is not terminal")
	}
}

func TestArcStandardYieldTransitions(t *testing.T) {
	arcStd := &ArcStandard{}
	midParse := GetTestConfiguration()
	yielded := make([]Action, 0, 3)
	for action := range arcStd.YieldTransitions(midParse) {
		yielded = append(yielded, action)
	}
	expected := []Action{Shift, ReduceLeft, ReduceRight}
	if len(yielded) != len(expected) {
		t.Fatal("Got wrong number of yielded actions")
	}
	for i, action := range expected {
		if yielded[i] != action {
			t.Error("Actions yielded out of priority order")
		}
	}
}

func TestArcStandardIllegal(t *testing.T) {
	arcStd := &ArcStandard{}
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	next, err := arcStd.Transition(conf, ReduceLeft)
	var illegal *IllegalActionError
	if err == nil || !errors.As(err, &illegal) {
		t.Error("Expected illegal action error, got", err)
	}
	if next != nil {
		t.Error("Failed transition returned a configuration")
	}

	panicked := func() (panicked bool) {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		arcStd.Transition(conf, Action(12))
		return
	}()
	if !panicked {
		t.Error("Expected panic transitioning with an unknown action")
	}
}

func TestArcStandardOracle(t *testing.T) {
	goldGraph := GetTestDepGraph()
	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	arcStd := &ArcStandard{}
	arcStd.AddDefaultOracle()
	oracle := arcStd.Oracle()
	oracle.SetGold(goldGraph)

	current := Configuration(conf)
	for i, expected := range TEST_STANDARD_ACTIONS {
		action, err := oracle.Transition(current)
		if err != nil {
			t.Fatal("Oracle failed at step", i, ":", err)
		}
		if action != expected {
			t.Fatal("Oracle chose", action.String(), "at step", i, "expected", expected.String())
		}
		current, err = arcStd.Transition(current, action)
		if err != nil {
			t.Fatal("Transition failed at step", i, ":", err)
		}
	}
	final := current.(*VectorConfiguration)
	if !final.Terminal() {
		t.Error("Oracle derivation did not end in a terminal configuration")
	}
	expectedArcSet := NewArcSetSimpleFromGraph(goldGraph)
	if !expectedArcSet.Equal(final.Arcs()) {
		t.Error("Oracle derivation did not reproduce the gold arcs")
	}
}

func TestArcStandardOracleFromArcSet(t *testing.T) {
	arcStd := &ArcStandard{}
	arcStd.AddDefaultOracle()
	oracle := arcStd.Oracle()
	oracle.SetGold(NewArcSetSimpleFromGraph(GetTestDepGraph()))

	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(TEST_SENT)); err != nil {
		t.Fatal("Init failed:", err)
	}
	action, err := oracle.Transition(conf)
	if err != nil || action != Shift {
		t.Error("Oracle over an arc set did not shift on a fresh configuration")
	}
}

func TestArcStandardOracleNoGold(t *testing.T) {
	oracle := &ArcStandardOracle{}
	conf := GetTestConfiguration()
	panicked := func() (panicked bool) {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		oracle.Transition(conf)
		return
	}()
	if !panicked {
		t.Error("Expected panic using the oracle without gold")
	}
}

func TestArcStandardOracleMalformedGold(t *testing.T) {
	// crossing arcs cannot be derived
	sent := nlp.BasicSentence{"a", "b", "c", "d"}
	nodes := make([]nlp.DepNode, len(sent))
	for i, form := range sent.Tokens() {
		nodes[i] = &VecNode{Id: i, Form: form, Vector: testEmbed(i)}
	}
	crossing := &BasicDepGraph{
		Nodes: nodes,
		Arcs:  []*BasicDepArc{{2, 0}, {3, 1}, {2, 3}},
	}

	arcStd := &ArcStandard{}
	arcStd.AddDefaultOracle()
	oracle := arcStd.Oracle()
	oracle.SetGold(crossing)

	conf := NewVectorConfiguration(&averageCombiner{dim: TEST_DIM})
	if err := conf.Init(GetTestEmbedded(sent)); err != nil {
		t.Fatal("Init failed:", err)
	}
	current := Configuration(conf)
	for i := 0; !current.Terminal(); i++ {
		action, err := oracle.Transition(current)
		if err != nil {
			var malformed *MalformedGoldDerivationError
			if !errors.As(err, &malformed) {
				t.Error("Expected malformed gold derivation error, got", err)
			} else if malformed.Legal.Has(Shift) {
				t.Error("Dead end error reports shift as legal")
			}
			return
		}
		current, err = arcStd.Transition(current, action)
		if err != nil {
			t.Fatal("Transition failed at step", i, ":", err)
		}
	}
	t.Error("Crossing gold arcs produced a full derivation")
}
