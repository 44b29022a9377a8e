package transition

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/habeanf/nap/alg/vec"
	"github.com/habeanf/nap/util"
)

// Action is a parser transition. The constant order is also the fixed
// priority order for score ties: Shift wins over ReduceLeft wins over
// ReduceRight.
type Action int

const (
	Shift Action = iota
	ReduceLeft
	ReduceRight

	NumActions = 3
)

// NoAction marks a configuration with no transition applied yet.
const NoAction Action = -1

var actionNames = [NumActions]string{"SH", "RL", "RR"}

func (a Action) String() string {
	if a == NoAction {
		return "-"
	}
	if a < 0 || int(a) >= NumActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

func (a Action) Equal(other Action) bool {
	return a == other
}

func ActionFromString(name string) (Action, error) {
	for i, actionName := range actionNames {
		if actionName == name {
			return Action(i), nil
		}
	}
	return NoAction, fmt.Errorf("unknown action %q", name)
}

// AllActions lists the actions in priority order.
func AllActions() []Action {
	return []Action{Shift, ReduceLeft, ReduceRight}
}

// ActionSet is a bit set of legal actions.
type ActionSet uint8

func (s ActionSet) Has(a Action) bool {
	return a >= 0 && int(a) < NumActions && s&(1<<uint(a)) != 0
}

func (s ActionSet) Add(a Action) ActionSet {
	return s | (1 << uint(a))
}

func (s ActionSet) Empty() bool {
	return s == 0
}

func (s ActionSet) Len() int {
	count := 0
	for _, a := range AllActions() {
		if s.Has(a) {
			count++
		}
	}
	return count
}

// Actions returns the members in priority order.
func (s ActionSet) Actions() []Action {
	actions := make([]Action, 0, NumActions)
	for _, a := range AllActions() {
		if s.Has(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (s ActionSet) String() string {
	names := make([]string, 0, NumActions)
	for _, a := range s.Actions() {
		names = append(names, a.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

type Configuration interface {
	Init(interface{}) error
	Terminal() bool

	Copy() Configuration
	CopyTo(Configuration)
	Clear()

	Len() int
	Previous() Configuration
	SetPrevious(Configuration)
	GetSequence() ConfigurationSequence
	SetLastAction(Action)
	GetLastAction() Action
	String() string
	Equal(otherEq util.Equaler) bool
}

type ConfigurationSequence []Configuration

// TransitionSystem declares which actions are legal in a configuration and
// applies them.
type TransitionSystem interface {
	Transition(from Configuration, action Action) (Configuration, error)

	TransitionTypes() []string

	Legal(conf Configuration) ActionSet
	YieldTransitions(conf Configuration) chan Action

	Oracle() Oracle
	AddDefaultOracle()

	Name() string
}

type Decision interface {
	Transition(Configuration) (Action, error)
}

type Oracle interface {
	Decision
	SetGold(interface{})
	Name() string
}

// Context carries optional capabilities a feature extractor may consult,
// keyed by capability name (e.g. "history"). Extractors ignore keys they
// do not understand.
type Context map[string]interface{}

// FeatureExtractor turns a configuration into a fixed number of feature
// vectors. Slots() is the exact length of the Features result.
type FeatureExtractor interface {
	Features(conf Configuration, ctx Context) ([]vec.Vector, error)
	Slots() int
}

// StepRecord chains per-step decoding records, most recent first.
type StepRecord struct {
	Features []vec.Vector
	Scores   []float64
	Action   Action
	Previous *StepRecord
}

func (r *StepRecord) String() string {
	retval := make([]string, 0, 100)
	for cur := r; cur != nil; cur = cur.Previous {
		retval = append(retval, fmt.Sprintf("%v\t%v", cur.Action, cur.Scores))
	}
	return strings.Join(retval, "\n")
}

func (seq ConfigurationSequence) String() string {
	var buf bytes.Buffer
	w := new(tabwriter.Writer)
	w.Init(&buf, 0, 8, 0, '\t', 0)
	seqLength := len(seq)
	for i := range seq {
		conf := seq[seqLength-i-1]
		w.Write([]byte(conf.String()))
		if i < seqLength-1 {
			w.Write([]byte{'\n'})
		}
	}
	w.Flush()
	return buf.String()
}

func (seq ConfigurationSequence) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(ConfigurationSequence)
	if !ok {
		return false
	}
	if len(seq) != len(other) {
		return false
	}
	for i, val := range seq {
		if !other[i].Equal(val) {
			return false
		}
	}
	return true
}

// SharedTransitions counts the length of the common action prefix of two
// sequences, both ordered most recent first.
func (seq ConfigurationSequence) SharedTransitions(other ConfigurationSequence) int {
	lenOther := len(other)
	lenSeq := len(seq)
	sharedSeq := 0
	for i := range seq {
		if lenOther <= i {
			break
		}
		if other[lenOther-i-1].GetLastAction() != seq[lenSeq-i-1].GetLastAction() {
			break
		}
		sharedSeq++
	}
	return sharedSeq
}
