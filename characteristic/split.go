package characteristic

import "math"

// Splitter selects the eigenvalue-splitting rule (spec §4.3).
type Splitter int

const (
	LaxFriedrichs Splitter = iota
	StegerWarming
)

// swEpsilon is the Steger-Warming smoothing parameter.
const swEpsilon = 1e-3

// Split returns (Lambda+, Lambda-) with Lambda+ + Lambda- = Lambda
// componentwise (exactly, for Lax-Friedrichs; within swEpsilon's
// smoothing for Steger-Warming).
func Split(lambda [5]float64, splitter Splitter) (plus, minus [5]float64) {
	switch splitter {
	case LaxFriedrichs:
		// lambda* = |u_s| + c - ... reusing lambda[1]=u_s, lambda[4]=u_s+c.
		lambdaStar := math.Abs(lambda[1]) + lambda[4] - lambda[2]
		for i := range lambda {
			plus[i] = 0.5 * (lambda[i] + lambdaStar)
			minus[i] = 0.5 * (lambda[i] - lambdaStar)
		}
	case StegerWarming:
		for i := range lambda {
			root := math.Sqrt(lambda[i]*lambda[i] + swEpsilon*swEpsilon)
			plus[i] = 0.5 * (lambda[i] + root)
			minus[i] = 0.5 * (lambda[i] - root)
		}
	}
	return plus, minus
}
