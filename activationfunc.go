package brain

import (
	"math/rand"

	"github.com/goki/mat32"
)

// ActivationFunc is a function that turns a given net input into an activation value.
// It contains the actual activation function (Func) and its derivative (Derivative).
// Derivative is expressed in terms of the activation value, not the net input,
// so backpropagation can use the output stored on a node directly.
type ActivationFunc struct {
	Func       func(x float32) float32
	Derivative func(act float32) float32
}

// Logistic is the standard logistic / Sigmoid activation function (1 / (1 + e^-x))
var Logistic = ActivationFunc{
	Func:       LogisticFunc,
	Derivative: LogisticDerivative,
}

// LogisticFunc returns the value of the standard logistic / Sigmoid activation function at the given point (1 / (1 + e^-x))
func LogisticFunc(x float32) float32 {
	return 1 / (1 + mat32.Exp(-x))
}

// LogisticDerivative returns the derivative of the logistic function given its value act (act * (1 - act))
func LogisticDerivative(act float32) float32 {
	return act * (1 - act)
}

// weightRange is the half-width of the interval new weights and biases are drawn from
const weightRange = 0.2

// RandomWeight returns a uniformly random weight in [-0.2, 0.2) drawn from rng
func RandomWeight(rng *rand.Rand) float32 {
	return rng.Float32()*2*weightRange - weightRange
}
