package search

import (
	"github.com/habeanf/nap/alg/transition"
)

// Problem is an opaque parse input; the configuration's Init decides what
// it accepts.
type Problem interface{}

// ParseResult carries the decoding byproducts callers may ask for. Steps
// chains per-step records most recent first; Actions is the applied
// sequence in order.
type ParseResult struct {
	Actions  []transition.Action
	Steps    *transition.StepRecord
	Sequence transition.ConfigurationSequence
}

// Parser produces a terminal configuration for a problem.
type Parser interface {
	Parse(Problem) (transition.Configuration, *ParseResult, error)
}
