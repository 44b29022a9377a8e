package eval

import (
	dep "github.com/habeanf/nap/nlp/parser/dependency/transition"
	nlp "github.com/habeanf/nap/nlp/types"
)

func Precision(truePositives, testPositives int) float64 {
	return float64(truePositives) / float64(testPositives)
}

func Recall(truePositives, conditionPositives int) float64 {
	return float64(truePositives) / float64(conditionPositives)
}

func F1(precision, recall float64) float64 {
	return 2.0 * (precision * recall) / (precision + recall)
}

// Result is the arc tally for a single parsed sentence. Attachment has no
// true negatives: every non-root position gets exactly one head.
type Result struct {
	TP, FP, FN int
}

func (r *Result) TestPositives() int {
	return r.TP + r.FP
}

func (r *Result) ConditionPositives() int {
	return r.TP + r.FN
}

func (r *Result) Incorrect() int {
	return r.FP + r.FN
}

func (r *Result) Precision() float64 {
	return Precision(r.TP, r.TestPositives())
}

func (r *Result) Recall() float64 {
	return Recall(r.TP, r.ConditionPositives())
}

func (r *Result) F1() float64 {
	return F1(r.Precision(), r.Recall())
}

// AttachmentScore is the share of gold arcs recovered. Trees over the same
// sentence carry the same arc count, so this equals precision there.
func (r *Result) AttachmentScore() float64 {
	return Recall(r.TP, r.ConditionPositives())
}

// Arcs tallies a parsed arc set against gold, matching on (head, modifier).
func Arcs(test, gold dep.ArcSet) *Result {
	result := new(Result)
	for i := 0; i < test.Size(); i++ {
		arc := test.Index(i)
		if gold.HasArc(arc.GetHead(), arc.GetModifier()) {
			result.TP++
		} else {
			result.FP++
		}
	}
	result.FN = gold.Size() - result.TP
	return result
}

// Graphs tallies a parsed dependency graph against a gold graph.
func Graphs(test, gold nlp.DependencyGraph) *Result {
	return Arcs(dep.NewArcSetSimpleFromGraph(test), dep.NewArcSetSimpleFromGraph(gold))
}

// Total accumulates per-sentence results over a corpus.
type Total struct {
	Result
	Exact, Population int
}

func (t *Total) Add(r *Result) {
	t.TP += r.TP
	t.FP += r.FP
	t.FN += r.FN
	if r.Incorrect() == 0 {
		t.Exact++
	}
	t.Population++
}

// ExactMatch is the share of sentences parsed with no arc errors.
func (t *Total) ExactMatch() float64 {
	return float64(t.Exact) / float64(t.Population)
}
