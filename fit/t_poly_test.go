// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_poly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly01. exact cubic recovery")

	pref := []float64{1.0, -2.0, 0.5, -0.25}
	X := utl.LinSpace(-2, 3, 11)
	Y := PolyVals(pref, X)

	p, err := PolyFit(X, Y, 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("p = %v\n", p)
	chk.Array(tst, "p", 1e-10, p, pref)
	chk.Float64(tst, "R2", 1e-12, R2(Y, PolyVals(p, X)), 1.0)
	chk.Float64(tst, "PolyVal(1.5)", 1e-12, PolyVal(pref, 1.5), 1.0-2.0*1.5+0.5*2.25-0.25*3.375)
}

func Test_poly02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly02. linear fit and R2")

	// exact line through 2 points
	p, err := PolyFit([]float64{1, 3}, []float64{2, 8}, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "p", 1e-13, p, []float64{-1.0, 3.0})

	// residuals present => R2 < 1
	X := []float64{0, 1, 2, 3}
	Y := []float64{0.1, 0.9, 2.1, 2.9}
	p, err = PolyFit(X, Y, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := R2(Y, PolyVals(p, X))
	io.Pforan("p = %v  R2 = %v\n", p, r)
	if r <= 0.9 || r >= 1.0 {
		tst.Errorf("R2 = %v is out of expected interval (0.9, 1.0)\n", r)
	}

	// constant observed series
	chk.Float64(tst, "R2 cte exact", 1e-17, R2([]float64{2, 2}, []float64{2, 2}), 1.0)
	chk.Float64(tst, "R2 cte wrong", 1e-17, R2([]float64{2, 2}, []float64{2, 3}), 0.0)
}

func Test_poly03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly03. error conditions")

	// mismatched lengths
	_, err := PolyFit([]float64{1, 2}, []float64{1}, 1)
	if err == nil {
		tst.Errorf("error expected for mismatched lengths\n")
		return
	}
	io.Pfgrey("OK: %v\n", err)

	// insufficient points
	_, err = PolyFit([]float64{1, 2, 3}, []float64{1, 2, 3}, 3)
	if err == nil {
		tst.Errorf("error expected for insufficient points\n")
		return
	}
	io.Pfgrey("OK: %v\n", err)

	// coincident abscissae => singular normal equations
	_, err = PolyFit([]float64{2, 2, 2}, []float64{1, 2, 3}, 2)
	if err == nil {
		tst.Errorf("error expected for coincident abscissae\n")
		return
	}
	io.Pfgrey("OK: %v\n", err)
}

func Test_poly04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly04. noisy linear data")

	rnd.Init(1234)
	X := utl.LinSpace(0, 10, 101)
	Y := make([]float64, len(X))
	for i, x := range X {
		Y[i] = 2.0 + 3.0*x + rnd.Float64(-0.01, 0.01)
	}

	p, err := PolyFit(X, Y, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := R2(Y, PolyVals(p, X))
	io.Pforan("p = %v  R2 = %v\n", p, r)
	chk.Float64(tst, "intercept", 1e-2, p[0], 2.0)
	chk.Float64(tst, "slope", 1e-2, p[1], 3.0)
	if r < 0.999 {
		tst.Errorf("R2 = %v is too small\n", r)
	}
}
