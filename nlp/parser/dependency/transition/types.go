package transition

import (
	"fmt"
	"strings"

	"github.com/habeanf/nap/alg/graph"
	"github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
	nlp "github.com/habeanf/nap/nlp/types"
	"github.com/habeanf/nap/util"
)

type ArcSet interface {
	Clear()
	Add(nlp.DepArc)
	Get(nlp.DepArc) []nlp.DepArc
	Size() int
	Last() nlp.DepArc
	Index(int) nlp.DepArc

	HasHead(int) bool
	HasModifiers(int) bool
	HasArc(int, int) bool

	Copy() ArcSet
	Equal(ArcSet) bool
}

type DependencyConfiguration interface {
	transition.Configuration
	Arcs() ArcSet
	Graph() nlp.DependencyGraph
}

// VecNode is a stack/buffer entry: a surface form, its sentence position
// and its representation vector. Reductions append fresh combined nodes
// reusing the head's form and position; existing nodes are never mutated.
type VecNode struct {
	Id     int
	Form   string
	Vector vec.Vector
}

var _ nlp.DepNode = &VecNode{}

func (n *VecNode) ID() int {
	return n.Id
}

func (n *VecNode) String() string {
	return n.Form
}

func (n *VecNode) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*VecNode)
	return ok && n.Id == other.Id && n.Form == other.Form && n.Vector.Equal(other.Vector)
}

type BasicDepArc struct {
	Head     int
	Modifier int
}

var _ nlp.DepArc = &BasicDepArc{}

func (arc *BasicDepArc) ID() int {
	return arc.Modifier
}

func (arc *BasicDepArc) Vertices() []int {
	return []int{arc.Head, arc.Modifier}
}

func (arc *BasicDepArc) From() int {
	return arc.Modifier
}

func (arc *BasicDepArc) To() int {
	return arc.Head
}

func (arc *BasicDepArc) GetHead() int {
	return arc.Head
}

func (arc *BasicDepArc) GetModifier() int {
	return arc.Modifier
}

func (arc *BasicDepArc) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*BasicDepArc)
	return ok && arc.Head == other.Head && arc.Modifier == other.Modifier
}

func (arc *BasicDepArc) String() string {
	return fmt.Sprintf("(%d,%d)", arc.GetHead(), arc.GetModifier())
}

type BasicDepGraph struct {
	Nodes []nlp.DepNode
	Arcs  []*BasicDepArc
}

var _ nlp.DependencyGraph = &BasicDepGraph{}

func (g *BasicDepGraph) GetVertices() []int {
	vertices := make([]int, len(g.Nodes))
	for i := range g.Nodes {
		vertices[i] = i
	}
	return vertices
}

func (g *BasicDepGraph) GetEdges() []int {
	edges := make([]int, len(g.Arcs))
	for i := range g.Arcs {
		edges[i] = i
	}
	return edges
}

func (g *BasicDepGraph) GetVertex(n int) graph.Vertex {
	if n < 0 || n >= len(g.Nodes) {
		return nil
	}
	return graph.Vertex(g.Nodes[n])
}

func (g *BasicDepGraph) GetEdge(n int) graph.Edge {
	if n < 0 || n >= len(g.Arcs) {
		return nil
	}
	return graph.Edge(g.Arcs[n])
}

func (g *BasicDepGraph) GetDirectedEdge(n int) graph.DirectedEdge {
	return graph.DirectedEdge(g.Arcs[n])
}

func (g *BasicDepGraph) NumberOfVertices() int {
	return len(g.Nodes)
}

func (g *BasicDepGraph) NumberOfEdges() int {
	return len(g.Arcs)
}

func (g *BasicDepGraph) GetNode(n int) nlp.DepNode {
	if n < 0 || n >= len(g.Nodes) {
		return nil
	}
	return g.Nodes[n]
}

func (g *BasicDepGraph) GetArc(n int) nlp.DepArc {
	if n < 0 || n >= len(g.Arcs) {
		return nil
	}
	return nlp.DepArc(g.Arcs[n])
}

func (g *BasicDepGraph) NumberOfNodes() int {
	return g.NumberOfVertices()
}

func (g *BasicDepGraph) NumberOfArcs() int {
	return g.NumberOfEdges()
}

// Root returns the position with no head, -1 if every node has one.
func (g *BasicDepGraph) Root() int {
	arcSet := NewArcSetSimpleFromGraph(g)
	for i := range g.Nodes {
		if !arcSet.HasHead(i) {
			return i
		}
	}
	return -1
}

func (g *BasicDepGraph) StringEdges() string {
	arcs := make([]string, len(g.Arcs))
	for i, arc := range g.Arcs {
		arcs[i] = arc.String()
	}
	return strings.Join(arcs, "\n")
}

func (g *BasicDepGraph) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(nlp.DependencyGraph)
	if !ok {
		return false
	}
	if g.NumberOfNodes() != other.NumberOfNodes() || g.NumberOfArcs() != other.NumberOfArcs() {
		return false
	}
	for i := range g.Nodes {
		if !g.Nodes[i].Equal(other.GetNode(i)) {
			return false
		}
	}
	otherArcSet := NewArcSetSimpleFromGraph(other)
	gArcSet := NewArcSetSimpleFromGraph(g)
	return gArcSet.Equal(otherArcSet)
}

func (g *BasicDepGraph) Sentence() nlp.Sentence {
	tokens := make([]string, g.NumberOfNodes())
	for i, node := range g.Nodes {
		tokens[i] = node.String()
	}
	return nlp.NewBasicSentence(tokens)
}
