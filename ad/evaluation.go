// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ad implements forward-mode automatic differentiation for the local residual
//
//   An Evaluation holds a value f and the gradient ∂f/∂y of f with respect to the primary
//   variables y of ONE degree of freedom (the focus DOF). Quantities that do not depend on
//   the focus DOF are "decayed" to plain constants (no gradient) so that no time is spent
//   on arithmetic with zeros.
package ad

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MaxDerivs is the capacity of the derivative buffer; i.e. the max number of primary
// variables per DOF
const MaxDerivs = 8

// Evaluation holds a value and its derivatives with respect to the focus primary variables
type Evaluation struct {
	Value  float64            // f
	derivs [MaxDerivs]float64 // ∂f/∂y[i] for i < n
	n      int                // number of active derivatives; 0 => constant (decayed)
}

// Constant returns an evaluation without derivatives
func Constant(v float64) Evaluation {
	return Evaluation{Value: v}
}

// Variable returns an evaluation representing the primary variable i out of n
//  Output: e = v  with  ∂e/∂y[j] = δij
func Variable(v float64, n, i int) Evaluation {
	if n < 1 || n > MaxDerivs {
		chk.Panic("number of derivatives n=%d is invalid. 1 ≤ n ≤ %d", n, MaxDerivs)
	}
	if i < 0 || i >= n {
		chk.Panic("index of primary variable i=%d is out of range [0, %d)", i, n)
	}
	e := Evaluation{Value: v, n: n}
	e.derivs[i] = 1
	return e
}

// New returns an evaluation with given value and derivatives
func New(v float64, derivs ...float64) Evaluation {
	if len(derivs) > MaxDerivs {
		chk.Panic("too many derivatives: %d > %d", len(derivs), MaxDerivs)
	}
	e := Evaluation{Value: v, n: len(derivs)}
	copy(e.derivs[:], derivs)
	return e
}

// Zero returns a zero evaluation compatible with the n derivatives of e
func (e Evaluation) Zero() Evaluation {
	return Evaluation{n: e.n}
}

// IsConstant tells whether e carries no derivatives
func (e Evaluation) IsConstant() bool { return e.n == 0 }

// NumDerivs returns the number of active derivatives
func (e Evaluation) NumDerivs() int { return e.n }

// Deriv returns ∂e/∂y[i]. Constants return zero for all i
func (e Evaluation) Deriv(i int) float64 {
	if i >= e.n {
		return 0
	}
	return e.derivs[i]
}

// Derivs returns a copy of the active derivatives
func (e Evaluation) Derivs() []float64 {
	res := make([]float64, e.n)
	copy(res, e.derivs[:e.n])
	return res
}

// Decay returns the value of e as a constant
func (e Evaluation) Decay() Evaluation {
	return Evaluation{Value: e.Value}
}

// Select returns e itself if keep is true; otherwise its decayed (constant) version
//  Note: used with keep = (dofIdx == focusDofIdx) to implement the focus rule
func Select(e Evaluation, keep bool) Evaluation {
	if keep {
		return e
	}
	return Evaluation{Value: e.Value}
}

// String returns a string representation of e
func (e Evaluation) String() string {
	if e.n == 0 {
		return io.Sf("%g", e.Value)
	}
	return io.Sf("%g %v", e.Value, e.derivs[:e.n])
}

// arithmetic ///////////////////////////////////////////////////////////////////////////////////////

// nderivs returns the number of derivatives of a combination of a and b
func nderivs(a, b Evaluation) int {
	if a.n == b.n || b.n == 0 {
		return a.n
	}
	if a.n == 0 {
		return b.n
	}
	chk.Panic("cannot combine evaluations with different number of derivatives: %d != %d", a.n, b.n)
	return 0
}

// Add returns a + b
func (a Evaluation) Add(b Evaluation) (c Evaluation) {
	c.n = nderivs(a, b)
	c.Value = a.Value + b.Value
	for i := 0; i < c.n; i++ {
		c.derivs[i] = a.derivs[i] + b.derivs[i]
	}
	return
}

// Sub returns a - b
func (a Evaluation) Sub(b Evaluation) (c Evaluation) {
	c.n = nderivs(a, b)
	c.Value = a.Value - b.Value
	for i := 0; i < c.n; i++ {
		c.derivs[i] = a.derivs[i] - b.derivs[i]
	}
	return
}

// Mul returns a・b
func (a Evaluation) Mul(b Evaluation) (c Evaluation) {
	c.n = nderivs(a, b)
	c.Value = a.Value * b.Value
	for i := 0; i < c.n; i++ {
		c.derivs[i] = a.derivs[i]*b.Value + a.Value*b.derivs[i]
	}
	return
}

// Div returns a / b
func (a Evaluation) Div(b Evaluation) (c Evaluation) {
	c.n = nderivs(a, b)
	c.Value = a.Value / b.Value
	bb := b.Value * b.Value
	for i := 0; i < c.n; i++ {
		c.derivs[i] = (a.derivs[i]*b.Value - a.Value*b.derivs[i]) / bb
	}
	return
}

// Neg returns -a
func (a Evaluation) Neg() (c Evaluation) {
	c.n = a.n
	c.Value = -a.Value
	for i := 0; i < c.n; i++ {
		c.derivs[i] = -a.derivs[i]
	}
	return
}

// Inv returns 1/a
func (a Evaluation) Inv() (c Evaluation) {
	c.n = a.n
	c.Value = 1.0 / a.Value
	d := -1.0 / (a.Value * a.Value)
	for i := 0; i < c.n; i++ {
		c.derivs[i] = d * a.derivs[i]
	}
	return
}

// Scale returns s・a
func (a Evaluation) Scale(s float64) (c Evaluation) {
	c.n = a.n
	c.Value = s * a.Value
	for i := 0; i < c.n; i++ {
		c.derivs[i] = s * a.derivs[i]
	}
	return
}

// AddScalar returns a + s
func (a Evaluation) AddScalar(s float64) Evaluation {
	a.Value += s
	return a
}

// Square returns a²
func (a Evaluation) Square() Evaluation {
	return a.Mul(a)
}

// chain returns f(a) with derivative df = f'(a)
func (a Evaluation) chain(f, df float64) (c Evaluation) {
	c.n = a.n
	c.Value = f
	for i := 0; i < c.n; i++ {
		c.derivs[i] = df * a.derivs[i]
	}
	return
}

// functions ////////////////////////////////////////////////////////////////////////////////////////

// Chain returns f(a) given the value f = f(a.Value) and the derivative df = f'(a.Value)
func Chain(a Evaluation, f, df float64) Evaluation {
	return a.chain(f, df)
}

// Exp returns exp(a)
func Exp(a Evaluation) Evaluation {
	f := math.Exp(a.Value)
	return a.chain(f, f)
}

// Log returns ln(a)
func Log(a Evaluation) Evaluation {
	return a.chain(math.Log(a.Value), 1.0/a.Value)
}

// Sqrt returns √a
func Sqrt(a Evaluation) Evaluation {
	f := math.Sqrt(a.Value)
	return a.chain(f, 0.5/f)
}

// Pow returns aᵖ for constant p
func Pow(a Evaluation, p float64) Evaluation {
	if p == 0 {
		return Evaluation{Value: 1, n: a.n}
	}
	return a.chain(math.Pow(a.Value, p), p*math.Pow(a.Value, p-1))
}

// Abs returns |a|. The derivative at zero is taken from the positive branch
func Abs(a Evaluation) Evaluation {
	if a.Value < 0 {
		return a.Neg()
	}
	return a
}

// Max returns the evaluation with the largest value. Ties return a
func Max(a, b Evaluation) Evaluation {
	if b.Value > a.Value {
		return b
	}
	return a
}

// Min returns the evaluation with the smallest value. Ties return a
func Min(a, b Evaluation) Evaluation {
	if b.Value < a.Value {
		return b
	}
	return a
}

// Sum returns the sum of all values
func Sum(vals ...Evaluation) (res Evaluation) {
	for _, v := range vals {
		res = res.Add(v)
	}
	return
}

// definedness //////////////////////////////////////////////////////////////////////////////////////

// CheckDefined returns an error if the value or any derivative of e is NaN or infinite
func CheckDefined(name string, e Evaluation) error {
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return chk.Err("%s is not defined: value = %v", name, e.Value)
	}
	for i := 0; i < e.n; i++ {
		if math.IsNaN(e.derivs[i]) || math.IsInf(e.derivs[i], 0) {
			return chk.Err("%s is not defined: derivative %d = %v", name, i, e.derivs[i])
		}
	}
	return nil
}
