// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/dual"
)

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. constants and variables")

	c := Constant(3.5)
	chk.Float64(tst, "c", 1e-17, c.Value, 3.5)
	chk.Int(tst, "c: n", c.NumDerivs(), 0)
	if !c.IsConstant() {
		tst.Errorf("constant must have no derivatives\n")
		return
	}

	x := Variable(2, 3, 1)
	chk.Int(tst, "x: n", x.NumDerivs(), 3)
	chk.Array(tst, "x: derivs", 1e-17, x.Derivs(), []float64{0, 1, 0})
	chk.Float64(tst, "x: deriv beyond n", 1e-17, x.Deriv(5), 0)

	d := x.Decay()
	chk.Float64(tst, "decayed value", 1e-17, d.Value, 2)
	if !d.IsConstant() {
		tst.Errorf("decayed evaluation must be constant\n")
		return
	}

	chk.Int(tst, "select keep", Select(x, true).NumDerivs(), 3)
	chk.Int(tst, "select drop", Select(x, false).NumDerivs(), 0)

	// constant with variable => variable
	y := c.Mul(x).Add(c)
	io.Pforan("y = %v\n", y)
	chk.Float64(tst, "y", 1e-15, y.Value, 3.5*2+3.5)
	chk.Array(tst, "dy", 1e-15, y.Derivs(), []float64{0, 3.5, 0})
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. rules versus dual numbers")

	// one direction is enough to compare with dual numbers
	for _, a := range utl.LinSpace(0.5, 3.0, 6) {
		for _, b := range utl.LinSpace(-2.0, 2.5, 4) {
			x := Variable(a, 1, 0)
			y := Constant(b)
			xd := dual.Number{Real: a, Emag: 1}
			yd := dual.Number{Real: b, Emag: 0}

			// product and quotient
			p := x.Mul(x).Mul(y)
			pd := dual.Mul(dual.Mul(xd, xd), yd)
			chk.Float64(tst, "x²y", 1e-14, p.Value, pd.Real)
			chk.Float64(tst, "d(x²y)", 1e-14, p.Deriv(0), pd.Emag)

			q := y.Div(x.AddScalar(1))
			qd := dual.Mul(yd, dual.Inv(dual.Number{Real: a + 1, Emag: 1}))
			chk.Float64(tst, "y/(x+1)", 1e-14, q.Value, qd.Real)
			chk.Float64(tst, "d(y/(x+1))", 1e-14, q.Deriv(0), qd.Emag)

			// functions
			e := Exp(x.Scale(0.5))
			ed := dual.Exp(dual.Number{Real: 0.5 * a, Emag: 0.5})
			chk.Float64(tst, "exp", 1e-14, e.Value, ed.Real)
			chk.Float64(tst, "dexp", 1e-14, e.Deriv(0), ed.Emag)

			l := Log(x)
			ld := dual.Log(xd)
			chk.Float64(tst, "dlog", 1e-14, l.Deriv(0), ld.Emag)

			s := Sqrt(x)
			sd := dual.Sqrt(xd)
			chk.Float64(tst, "dsqrt", 1e-14, s.Deriv(0), sd.Emag)

			w := Pow(x, 2.5)
			wd := dual.PowReal(xd, 2.5)
			chk.Float64(tst, "dpow", 1e-13, w.Deriv(0), wd.Emag)
		}
	}
}

func Test_eval03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval03. gradients versus finite differences")

	// f(y0,y1,y2) = y0・exp(y1) / (1 + y2²) - √y0 + |y1 - y2|
	f := func(y0, y1, y2 Evaluation) Evaluation {
		num := y0.Mul(Exp(y1))
		den := y2.Square().AddScalar(1)
		return num.Div(den).Sub(Sqrt(y0)).Add(Abs(y1.Sub(y2)))
	}
	fval := func(y []float64) float64 {
		return f(Constant(y[0]), Constant(y[1]), Constant(y[2])).Value
	}

	y := []float64{1.3, 0.4, -0.7}
	res := f(Variable(y[0], 3, 0), Variable(y[1], 3, 1), Variable(y[2], 3, 2))
	chk.Float64(tst, "value", 1e-15, res.Value, fval(y))

	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for i := 0; i < 3; i++ {
		num := fd.Derivative(func(x float64) float64 {
			tmp := make([]float64, 3)
			copy(tmp, y)
			tmp[i] = x
			return fval(tmp)
		}, y[i], settings)
		io.Pforan("df/dy%d: ana = %v  num = %v\n", i, res.Deriv(i), num)
		chk.Float64(tst, io.Sf("df/dy%d", i), 1e-8, res.Deriv(i), num)
	}
}

func Test_eval04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval04. associativity and consistency")

	a := Variable(1.7, 2, 0)
	b := Variable(-0.3, 2, 1)
	c := New(2.2, 0.5, -1.5)

	lhs := a.Add(b).Add(c)
	rhs := a.Add(b.Add(c))
	chk.Float64(tst, "(a+b)+c", 1e-15, lhs.Value, rhs.Value)
	chk.Array(tst, "d[(a+b)+c]", 1e-15, lhs.Derivs(), rhs.Derivs())

	lhs = a.Mul(b).Mul(c)
	rhs = a.Mul(b.Mul(c))
	chk.Float64(tst, "(ab)c", 1e-15, lhs.Value, rhs.Value)
	chk.Array(tst, "d[(ab)c]", 1e-14, lhs.Derivs(), rhs.Derivs())

	// a/b == a・(1/b)
	lhs = a.Div(b)
	rhs = a.Mul(b.Inv())
	chk.Array(tst, "a/b", 1e-13, lhs.Derivs(), rhs.Derivs())

	// a - a == 0
	z := a.Sub(a)
	chk.Float64(tst, "a-a", 1e-17, z.Value, 0)
	chk.Array(tst, "d(a-a)", 1e-17, z.Derivs(), []float64{0, 0})

	// neg, scale, sum
	chk.Array(tst, "-a", 1e-17, a.Neg().Derivs(), []float64{-1, 0})
	chk.Array(tst, "3a", 1e-17, a.Scale(3).Derivs(), []float64{3, 0})
	s := Sum(a, b, c)
	chk.Float64(tst, "sum", 1e-15, s.Value, 1.7-0.3+2.2)
	chk.Array(tst, "dsum", 1e-15, s.Derivs(), []float64{1.5, -0.5})

	// max/min keep the derivatives of the selected branch
	chk.Array(tst, "max", 1e-17, Max(a, b).Derivs(), []float64{1, 0})
	chk.Array(tst, "min", 1e-17, Min(a, b).Derivs(), []float64{0, 1})

	// pow with zero exponent
	p := Pow(a, 0)
	chk.Float64(tst, "a⁰", 1e-17, p.Value, 1)
	chk.Array(tst, "d(a⁰)", 1e-17, p.Derivs(), []float64{0, 0})
}

func Test_eval05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval05. logic errors and definedness")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("combining 2 and 3 derivatives should have panicked\n")
		}
	}()

	err := CheckDefined("ok", Variable(1, 2, 0))
	if err != nil {
		tst.Errorf("CheckDefined failed: %v\n", err)
		return
	}
	err = CheckDefined("nan", Constant(math.NaN()))
	if err == nil {
		tst.Errorf("NaN must be detected\n")
		return
	}
	err = CheckDefined("inf-deriv", Variable(0, 1, 0).Inv())
	if err == nil {
		tst.Errorf("infinite derivative must be detected\n")
		return
	}

	Variable(1, 2, 0).Add(Variable(1, 3, 0))
}
