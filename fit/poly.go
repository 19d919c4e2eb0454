// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fit implements least-squares polynomial regression over
// small data series from laboratory tests
package fit

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// PolyFit fits a polynomial of degree deg to (x, y) by least squares and
// returns the deg+1 coefficients in increasing order:
//  y(x) = p[0] + p[1]*x + p[2]*x² + ...
// The normal equations are assembled from power sums and solved densely.
func PolyFit(x, y []float64, deg int) (p []float64, err error) {

	// check
	if len(x) != len(y) {
		return nil, chk.Err("series lengths are different. %d != %d", len(x), len(y))
	}
	n := deg + 1
	if len(x) < n {
		return nil, chk.Err("cannot fit degree %d polynomial to %d points (need at least %d)", deg, len(x), n)
	}

	// normal equations: N*p = b with N[i][j] = Σ x^(i+j) and b[i] = Σ y*x^i
	s := make([]float64, 2*n-1) // power sums
	b := la.NewVector(n)
	for k := 0; k < len(x); k++ {
		xp := 1.0
		for i := 0; i < 2*n-1; i++ {
			s[i] += xp
			if i < n {
				b[i] += y[k] * xp
			}
			xp *= x[k]
		}
	}
	N := la.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			N.Set(i, j, s[i+j])
		}
	}

	// solve; the solver panics on singular systems, e.g. coincident abscissae
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, chk.Err("cannot solve normal equations of degree %d fit: %v", deg, r)
		}
	}()
	u := la.NewVector(n)
	la.DenSolve(u, N, b, false)
	p = u
	return
}

// PolyVal evaluates the polynomial with coefficients p (increasing order) at x
func PolyVal(p []float64, x float64) (y float64) {
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return
}

// PolyVals evaluates the polynomial with coefficients p at all stations in x
func PolyVals(p []float64, x []float64) (y []float64) {
	y = make([]float64, len(x))
	for i, xi := range x {
		y[i] = PolyVal(p, xi)
	}
	return
}

// R2 computes the coefficient of determination of predicted values against
// observed ones:
//  R² = 1 - Σ(yObs-yPrd)² / Σ(yObs-ȳ)²
// A constant observed series gives 1 if the prediction is exact, 0 otherwise.
func R2(yObs, yPrd []float64) float64 {
	ybar := 0.0
	for _, v := range yObs {
		ybar += v
	}
	ybar /= float64(len(yObs))
	num, den := 0.0, 0.0
	for i, v := range yObs {
		num += (v - yPrd[i]) * (v - yPrd[i])
		den += (v - ybar) * (v - ybar)
	}
	if den == 0 {
		if num == 0 {
			return 1
		}
		return 0
	}
	return 1.0 - num/den
}
