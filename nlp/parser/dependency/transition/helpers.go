package transition

import (
	"fmt"
	"sort"
	"strings"

	nlp "github.com/habeanf/nap/nlp/types"
)

// ArcSetSimple is an append-only arc record. Get treats negative query
// positions as wildcards.
type ArcSetSimple struct {
	Arcs []nlp.DepArc
}

var _ ArcSet = &ArcSetSimple{}
var _ sort.Interface = &ArcSetSimple{}

func NewArcSetSimple(size int) *ArcSetSimple {
	return &ArcSetSimple{
		Arcs: make([]nlp.DepArc, 0, size),
	}
}

func NewArcSetSimpleFromGraph(graph nlp.DependencyGraph) *ArcSetSimple {
	arcSet := NewArcSetSimple(graph.NumberOfArcs())
	for _, edgeNum := range graph.GetEdges() {
		arcSet.Add(graph.GetArc(edgeNum))
	}
	return arcSet
}

func compareArcs(left, right nlp.DepArc) int {
	if left.GetHead() != right.GetHead() {
		return left.GetHead() - right.GetHead()
	}
	return left.GetModifier() - right.GetModifier()
}

func (s *ArcSetSimple) Less(i, j int) bool {
	return compareArcs(s.Arcs[i], s.Arcs[j]) < 0
}

func (s *ArcSetSimple) Swap(i, j int) {
	s.Arcs[i], s.Arcs[j] = s.Arcs[j], s.Arcs[i]
}

func (s *ArcSetSimple) Len() int {
	return s.Size()
}

func (s *ArcSetSimple) Equal(other ArcSet) bool {
	if s.Size() == 0 && other.Size() == 0 {
		return true
	}
	if s.Size() != other.Size() {
		return false
	}
	copyThis := s.Sorted()
	copyOther := other.Copy().(*ArcSetSimple).Sorted()
	for i := range copyThis.Arcs {
		if compareArcs(copyThis.Arcs[i], copyOther.Arcs[i]) != 0 {
			return false
		}
	}
	return true
}

func (s *ArcSetSimple) Sorted() *ArcSetSimple {
	copyThis := s.Copy().(*ArcSetSimple)
	sort.Sort(copyThis)
	return copyThis
}

// Diff returns the arcs only in s and the arcs only in other.
func (s *ArcSetSimple) Diff(other ArcSet) (ArcSet, ArcSet) {
	copyThis := s.Sorted()
	copyOther := other.Copy().(*ArcSetSimple).Sorted()

	leftOnly := NewArcSetSimple(copyThis.Len())
	rightOnly := NewArcSetSimple(copyOther.Len())
	i, j := 0, 0
	for i < copyThis.Len() && j < copyOther.Len() {
		comp := compareArcs(copyThis.Arcs[i], copyOther.Arcs[j])
		switch {
		case comp == 0:
			i++
			j++
		case comp < 0:
			leftOnly.Add(copyThis.Arcs[i])
			i++
		default:
			rightOnly.Add(copyOther.Arcs[j])
			j++
		}
	}
	for ; i < copyThis.Len(); i++ {
		leftOnly.Add(copyThis.Arcs[i])
	}
	for ; j < copyOther.Len(); j++ {
		rightOnly.Add(copyOther.Arcs[j])
	}
	return leftOnly, rightOnly
}

func (s *ArcSetSimple) Copy() ArcSet {
	newArcs := make([]nlp.DepArc, len(s.Arcs), cap(s.Arcs))
	copy(newArcs, s.Arcs)
	return ArcSet(&ArcSetSimple{Arcs: newArcs})
}

func (s *ArcSetSimple) Clear() {
	s.Arcs = s.Arcs[0:0]
}

func (s *ArcSetSimple) Index(i int) nlp.DepArc {
	if i < 0 || i >= len(s.Arcs) {
		return nil
	}
	return s.Arcs[i]
}

func (s *ArcSetSimple) Add(arc nlp.DepArc) {
	s.Arcs = append(s.Arcs, arc)
}

func (s *ArcSetSimple) Get(query nlp.DepArc) []nlp.DepArc {
	var results []nlp.DepArc
	head := query.GetHead()
	modifier := query.GetModifier()
	for _, arc := range s.Arcs {
		if head >= 0 && head != arc.GetHead() {
			continue
		}
		if modifier >= 0 && modifier != arc.GetModifier() {
			continue
		}
		results = append(results, arc)
	}
	return results
}

func (s *ArcSetSimple) Size() int {
	return len(s.Arcs)
}

func (s *ArcSetSimple) Last() nlp.DepArc {
	if s.Size() == 0 {
		return nil
	}
	return s.Arcs[len(s.Arcs)-1]
}

func (s *ArcSetSimple) String() string {
	arcs := make([]string, s.Size())
	for i, arc := range s.Arcs {
		arcs[i] = fmt.Sprintf("%d %v", i, arc.String())
	}
	return strings.Join(arcs, "\n")
}

func (s *ArcSetSimple) HasHead(modifier int) bool {
	return len(s.Get(&BasicDepArc{-1, modifier})) > 0
}

func (s *ArcSetSimple) HasModifiers(head int) bool {
	return len(s.Get(&BasicDepArc{head, -1})) > 0
}

func (s *ArcSetSimple) HasArc(head, modifier int) bool {
	return len(s.Get(&BasicDepArc{head, modifier})) > 0
}
