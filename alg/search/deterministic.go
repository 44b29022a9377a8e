package search

import (
	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/alg/vec"
	dep "github.com/habeanf/nap/nlp/parser/dependency/transition"
	nlp "github.com/habeanf/nap/nlp/types"
)

// Deterministic decodes greedily: at every configuration it scores the
// legal actions and applies the best one, committing immediately. No
// backtracking. Termination follows from the transition system itself,
// every action strictly shrinks stack+buffer.
type Deterministic struct {
	TransFunc     transition.TransitionSystem
	FeatExtractor transition.FeatureExtractor
	Model         transition.ActionModel
	Embedder      transition.SequenceEmbedder
	Combiner      transition.Combiner
	Base          transition.Configuration

	ReturnSequence     bool
	ShowConsiderations bool
	Logger             log.Logger
}

var _ Parser = &Deterministic{}

// start embeds the problem's tokens and initializes a fresh configuration
// from the base. Stateful collaborators are reset here, at the sentence
// boundary, never mid-sentence.
func (d *Deterministic) start(problem Problem) (transition.Configuration, error) {
	sent, ok := problem.(nlp.Sentence)
	if !ok {
		panic("Can't parse unknown problem type")
	}
	if d.Embedder == nil {
		panic("Can't parse without a sequence embedder")
	}
	d.Embedder.ClearState()
	if d.Combiner != nil {
		d.Combiner.ClearState()
	}
	vectors := d.Embedder.EmbedSequence(sent.Tokens())
	c := d.Base.Copy()
	c.Clear()
	if err := c.Init(&dep.EmbeddedSentence{Sentence: sent, Vectors: vectors}); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	return c, nil
}

func (d *Deterministic) score(c transition.Configuration, history []transition.Action) ([]vec.Vector, []float64, error) {
	features, err := d.FeatExtractor.Features(c, transition.Context{"history": history})
	if err != nil {
		return nil, nil, err
	}
	scores := d.Model.ScoreActions(features)
	if len(scores) != transition.NumActions {
		return nil, nil, &transition.DimensionMismatchError{Op: "action scores", Want: transition.NumActions, Got: len(scores)}
	}
	return features, scores, nil
}

// chooseAction picks the highest-scoring member of the legal set. Actions
// iterates in priority order and the comparison is strictly-greater, so
// ties go to the earlier action.
func (d *Deterministic) chooseAction(legal transition.ActionSet, scores []float64) transition.Action {
	best := transition.NoAction
	bestScore := 0.0
	for _, action := range legal.Actions() {
		if best == transition.NoAction || scores[action] > bestScore {
			best = action
			bestScore = scores[action]
		}
	}
	return best
}

// Parse greedily decodes the problem to a terminal configuration.
func (d *Deterministic) Parse(problem Problem) (transition.Configuration, *ParseResult, error) {
	if d.TransFunc == nil {
		panic("Can't parse without a transition system")
	}
	if d.FeatExtractor == nil {
		panic("Can't parse without a feature extractor")
	}
	if d.Model == nil {
		panic("Can't parse without an action model")
	}
	c, err := d.start(problem)
	if err != nil {
		return nil, nil, err
	}
	logger := d.logger()
	result := new(ParseResult)
	var history []transition.Action
	for !c.Terminal() {
		step := c.Len() - 1
		legal := d.TransFunc.Legal(c)
		features, scores, err := d.score(c, history)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "scoring step %d", step)
		}
		best := d.chooseAction(legal, scores)
		if d.ShowConsiderations {
			for _, action := range legal.Actions() {
				logger.Log("step", step, "consider", action.String(), "score", scores[action])
			}
			logger.Log("step", step, "chose", best.String())
		}
		result.Steps = &transition.StepRecord{
			Features: features,
			Scores:   scores,
			Action:   best,
			Previous: result.Steps,
		}
		c, err = d.TransFunc.Transition(c, best)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "applying %s at step %d", best, step)
		}
		result.Actions = append(result.Actions, best)
		history = append([]transition.Action{best}, history...)
	}
	if d.ReturnSequence {
		result.Sequence = c.GetSequence()
	}
	return c, result, nil
}

// ParseOracle decodes the problem by following the transition system's
// oracle against gold. When a model and extractor are set each step is
// scored and recorded alongside the oracle action; decoding still follows
// the oracle regardless of the scores.
func (d *Deterministic) ParseOracle(problem Problem, gold interface{}) (transition.Configuration, *ParseResult, error) {
	if d.TransFunc == nil {
		panic("Can't parse without a transition system")
	}
	oracle := d.TransFunc.Oracle()
	if oracle == nil {
		panic("Transition system has no oracle")
	}
	oracle.SetGold(gold)
	c, err := d.start(problem)
	if err != nil {
		return nil, nil, err
	}
	result := new(ParseResult)
	var history []transition.Action
	for !c.Terminal() {
		step := c.Len() - 1
		action, err := oracle.Transition(c)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "oracle step %d", step)
		}
		var features []vec.Vector
		var scores []float64
		if d.Model != nil && d.FeatExtractor != nil {
			features, scores, err = d.score(c, history)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "scoring step %d", step)
			}
		}
		result.Steps = &transition.StepRecord{
			Features: features,
			Scores:   scores,
			Action:   action,
			Previous: result.Steps,
		}
		c, err = d.TransFunc.Transition(c, action)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "applying %s at step %d", action, step)
		}
		result.Actions = append(result.Actions, action)
		history = append([]transition.Action{action}, history...)
	}
	if d.ReturnSequence {
		result.Sequence = c.GetSequence()
	}
	return c, result, nil
}

// ParseGold replays a given action sequence, checking each action against
// the legal set before applying it. An out-of-set action fails the whole
// sentence. The final configuration is returned as reached, terminal or
// not; the caller decides whether a non-terminal end is acceptable.
func (d *Deterministic) ParseGold(problem Problem, actions []transition.Action) (transition.Configuration, *ParseResult, error) {
	if d.TransFunc == nil {
		panic("Can't parse without a transition system")
	}
	c, err := d.start(problem)
	if err != nil {
		return nil, nil, err
	}
	result := new(ParseResult)
	var history []transition.Action
	for i, action := range actions {
		legal := d.TransFunc.Legal(c)
		if !legal.Has(action) {
			return nil, nil, &transition.MalformedGoldDerivationError{Step: i, Action: action, Legal: legal}
		}
		var features []vec.Vector
		var scores []float64
		if d.Model != nil && d.FeatExtractor != nil {
			features, scores, err = d.score(c, history)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "scoring step %d", i)
			}
		}
		result.Steps = &transition.StepRecord{
			Features: features,
			Scores:   scores,
			Action:   action,
			Previous: result.Steps,
		}
		c, err = d.TransFunc.Transition(c, action)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "applying %s at step %d", action, i)
		}
		result.Actions = append(result.Actions, action)
		history = append([]transition.Action{action}, history...)
	}
	if d.ReturnSequence {
		result.Sequence = c.GetSequence()
	}
	return c, result, nil
}

func (d *Deterministic) logger() log.Logger {
	if d.Logger == nil {
		return log.NewNopLogger()
	}
	return d.Logger
}
