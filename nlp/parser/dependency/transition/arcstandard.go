package transition

import (
	"fmt"

	. "github.com/habeanf/nap/alg/transition"
	nlp "github.com/habeanf/nap/nlp/types"
)

type ArcStandard struct {
	oracle Oracle
}

// Verify that ArcStandard is a TransitionSystem
var _ TransitionSystem = &ArcStandard{}

func (a *ArcStandard) Transition(from Configuration, action Action) (Configuration, error) {
	conf, ok := from.Copy().(*VectorConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	// Transition System:
	// RL	(S|wj|wi,	B,	A) => (S|combine(wi,wj),	B,	A+{(wi,wj)})
	// RR	(S|wj|wi,	B,	A) => (S|combine(wj,wi),	B,	A+{(wj,wi)})
	// SH	(S,	wi|B,	A) => (S|wi,	B,	A)
	var err error
	switch action {
	case Shift:
		err = conf.Shift()
	case ReduceLeft:
		err = conf.ReduceLeft()
	case ReduceRight:
		err = conf.ReduceRight()
	default:
		panic(fmt.Sprintf("Unknown action %v", action))
	}
	if err != nil {
		return nil, err
	}
	conf.SetLastAction(action)
	return conf, nil
}

// Legal returns the actions whose preconditions hold: Shift iff the buffer
// is non-empty, the reduces iff the stack holds at least two entries. The
// empty set means the configuration is terminal.
func (a *ArcStandard) Legal(from Configuration) ActionSet {
	conf, ok := from.(*VectorConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	var legal ActionSet
	if conf.Queue().Size() > 0 {
		legal = legal.Add(Shift)
	}
	if conf.Stack().Size() >= 2 {
		legal = legal.Add(ReduceLeft)
		legal = legal.Add(ReduceRight)
	}
	return legal
}

func (a *ArcStandard) possibleTransitions(from Configuration, transitions chan Action) {
	legal := a.Legal(from)
	for _, action := range AllActions() {
		if legal.Has(action) {
			transitions <- action
		}
	}
	close(transitions)
}

// YieldTransitions sends the legal actions in priority order.
func (a *ArcStandard) YieldTransitions(from Configuration) chan Action {
	transitions := make(chan Action)
	go a.possibleTransitions(from, transitions)
	return transitions
}

func (a *ArcStandard) TransitionTypes() []string {
	return []string{"SH", "RL", "RR"}
}

func (a *ArcStandard) Oracle() Oracle {
	return a.oracle
}

func (a *ArcStandard) AddDefaultOracle() {
	a.oracle = Oracle(&ArcStandardOracle{})
}

func (a *ArcStandard) Name() string {
	return "Arc Standard"
}

// ArcStandardOracle produces the canonical gold action for a configuration
// given a gold arc set.
type ArcStandardOracle struct {
	gold   nlp.DependencyGraph
	arcSet *ArcSetSimple
}

var _ Oracle = &ArcStandardOracle{}

func (o *ArcStandardOracle) SetGold(g interface{}) {
	switch gold := g.(type) {
	case nlp.DependencyGraph:
		o.gold = gold
		o.arcSet = NewArcSetSimpleFromGraph(gold)
	case *ArcSetSimple:
		o.gold = nil
		o.arcSet = gold.Copy().(*ArcSetSimple)
	default:
		panic("Gold is not a dependency graph or arc set")
	}
}

func (o *ArcStandardOracle) Transition(conf Configuration) (Action, error) {
	c := conf.(*VectorConfiguration)

	if o.arcSet == nil {
		panic("Oracle needs gold reference, use SetGold")
	}
	// Given Gd=(Vd,Ad) # gold dependencies
	// o(c = (S,B,A)) =
	// RL	if	(S[0],S[1]) in Ad and S[1] collected all its gold modifiers in A
	// RR	if	(S[1],S[0]) in Ad and S[0] collected all its gold modifiers in A
	// SH	otherwise, if B is non-empty
	sTop, sExists := c.Stack().Index(0)
	sSecond, secondExists := c.Stack().Index(1)
	if sExists && secondExists {
		top, second := c.Nodes[sTop].Id, c.Nodes[sSecond].Id
		if len(o.arcSet.Get(&BasicDepArc{top, second})) > 0 && o.collected(c, second) {
			return ReduceLeft, nil
		}
		if len(o.arcSet.Get(&BasicDepArc{second, top})) > 0 && o.collected(c, top) {
			return ReduceRight, nil
		}
	}
	if c.Queue().Size() > 0 {
		return Shift, nil
	}
	// buffer exhausted with no gold-consistent reduce: the gold arcs are
	// not derivable (non-projective or not a tree)
	var legal ActionSet
	if secondExists {
		legal = legal.Add(ReduceLeft).Add(ReduceRight)
	}
	return NoAction, &MalformedGoldDerivationError{Step: c.Len() - 1, Action: NoAction, Legal: legal}
}

// collected reports whether every gold modifier of node is already in the
// built arc set.
func (o *ArcStandardOracle) collected(c *VectorConfiguration, node int) bool {
	goldMods := o.arcSet.Get(&BasicDepArc{node, -1})
	for _, arc := range goldMods {
		if len(c.Arcs().Get(arc)) == 0 {
			return false
		}
	}
	return true
}

func (o *ArcStandardOracle) Name() string {
	return "Arc Standard"
}
