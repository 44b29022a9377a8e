package nn

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/habeanf/nap/alg/vec"
)

// affine is a fully connected layer, y = Wx + b.
type affine struct {
	weights *mat.Dense
	bias    *mat.VecDense
	in, out int
}

func newAffine(rng *rand.Rand, in, out int) *affine {
	scale := 1.0 / math.Sqrt(float64(in))
	weights := make([]float64, in*out)
	for i := range weights {
		weights[i] = (rng.Float64()*2 - 1) * scale
	}
	bias := make([]float64, out)
	for i := range bias {
		bias[i] = (rng.Float64()*2 - 1) * scale
	}
	return &affine{
		weights: mat.NewDense(out, in, weights),
		bias:    mat.NewVecDense(out, bias),
		in:      in,
		out:     out,
	}
}

func (a *affine) Apply(x vec.Vector) vec.Vector {
	if x.Dim() != a.in {
		panic(fmt.Sprintf("Affine layer got input of width %d, built for %d", x.Dim(), a.in))
	}
	y := mat.NewVecDense(a.out, nil)
	y.MulVec(a.weights, mat.NewVecDense(a.in, x))
	y.AddVec(y, a.bias)
	return vec.Vector(y.RawVector().Data)
}

func randomVector(rng *rand.Rand, dim int) vec.Vector {
	scale := 1.0 / math.Sqrt(float64(dim))
	v := make(vec.Vector, dim)
	for i := range v {
		v[i] = (rng.Float64()*2 - 1) * scale
	}
	return v
}

func tanh(v vec.Vector) vec.Vector {
	for i := range v {
		v[i] = math.Tanh(v[i])
	}
	return v
}

func sigmoid(v vec.Vector) vec.Vector {
	for i := range v {
		v[i] = 1 / (1 + math.Exp(-v[i]))
	}
	return v
}

func relu(v vec.Vector) vec.Vector {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}
	return v
}

// logSoftmax normalizes scores into log-probabilities.
func logSoftmax(v vec.Vector) vec.Vector {
	norm := floats.LogSumExp(v)
	out := v.Copy()
	for i := range out {
		out[i] -= norm
	}
	return out
}

// lstmCell is a standard LSTM step; each gate is an affine layer over the
// concatenated input and previous hidden state.
type lstmCell struct {
	inputGate  *affine
	forgetGate *affine
	cellGate   *affine
	outputGate *affine
	hiddenDim  int
}

func newLSTMCell(rng *rand.Rand, inDim, hiddenDim int) *lstmCell {
	joint := inDim + hiddenDim
	return &lstmCell{
		inputGate:  newAffine(rng, joint, hiddenDim),
		forgetGate: newAffine(rng, joint, hiddenDim),
		cellGate:   newAffine(rng, joint, hiddenDim),
		outputGate: newAffine(rng, joint, hiddenDim),
		hiddenDim:  hiddenDim,
	}
}

// Step advances the cell, returning fresh hidden and cell state vectors.
func (l *lstmCell) Step(x, hidden, cell vec.Vector) (vec.Vector, vec.Vector) {
	joint := vec.Concat(x, hidden)
	input := sigmoid(l.inputGate.Apply(joint))
	forget := sigmoid(l.forgetGate.Apply(joint))
	update := tanh(l.cellGate.Apply(joint))
	output := sigmoid(l.outputGate.Apply(joint))
	newCell := make(vec.Vector, l.hiddenDim)
	newHidden := make(vec.Vector, l.hiddenDim)
	for i := range newCell {
		newCell[i] = forget[i]*cell[i] + input[i]*update[i]
		newHidden[i] = output[i] * math.Tanh(newCell[i])
	}
	return newHidden, newCell
}
