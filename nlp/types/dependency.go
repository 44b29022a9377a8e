package types

import (
	"github.com/habeanf/nap/alg/graph"
	"github.com/habeanf/nap/util"
)

type DepNode interface {
	graph.Vertex
	String() string
}

// DepArc is an unlabeled head->modifier attachment between sentence
// positions.
type DepArc interface {
	graph.DirectedEdge
	GetModifier() int
	GetHead() int
	String() string
}

type DependencyGraph interface {
	graph.DirectedGraph
	GetNode(int) DepNode
	GetArc(int) DepArc
	NumberOfNodes() int
	NumberOfArcs() int
	Equal(otherEq util.Equaler) bool
	Sentence() Sentence
}
