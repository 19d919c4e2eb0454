// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preconso

import (
	"math"
	"strings"

	"github.com/ElsevierSoftwareX/SOFTX-D-21-00138/fit"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Boone implements the method by Boone (2010) [1]: a third-order polynomial
// (TOP) is fit to the compressibility curve in log10-stress space and a line
// is fit to the normally consolidated portion (NCL); the preconsolidation
// pressure is the intersection of the NCL fit with the line of slope -Cr
// through (σv, e(σv)), where e(σv) comes from the TOP fit.
type Boone struct {

	// parameters
	npts int // number of sampled points of fitted curves for display
}

// number of sampled points of the line parallel to Cr
const nptsCr = 50

// add method to database
func init() {
	allocators["boone"] = func() Model { return new(Boone) }
}

// Init initialises method
func (o *Boone) Init(prms dbf.Params) (err error) {
	o.npts = 500
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "npts":
			o.npts = int(p.V)
		default:
			return chk.Err("boone: parameter named %q is incorrect", p.N)
		}
	}
	if o.npts < 2 {
		return chk.Err("boone: 'npts' must be at least 2; got %d", o.npts)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Boone) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "npts", V: 500},
	}
}

// Estimate computes the preconsolidation pressure
//  rangeTOP -- initial and final stresses bounding the TOP fit window.
//              nil => the middle third of the cleaned series
//  rangeNCL -- initial and final stresses bounding the NCL fit window.
//              nil => the last 3 points of the cleaned series. A final stress
//              equal to or beyond the maximum stress extends the window
//              through the last point
func (o *Boone) Estimate(data Data, rangeTOP, rangeNCL []float64) (res *Result, err error) {

	σ, e := data.Cleaned()
	n := len(σ)
	σv := data.SigmaV()
	idxCr := data.IdxCr()

	// indices for fitting the third order polynomial
	var iniTOP, endTOP int
	if rangeTOP == nil {
		iniTOP = int(math.Floor(float64(n) / 3.0))
		endTOP = int(math.Ceil(2.0 * float64(n) / 3.0))
	} else {
		iniTOP = data.FindStressIdx(rangeTOP[0], true)
		endTOP = data.FindStressIdx(rangeTOP[1], true)
		if iniTOP < 0 || endTOP < 0 {
			return nil, &InvalidRangeError{Window: "TOP", Npts: -1}
		}
	}
	if endTOP-iniTOP < 2 {
		return nil, &InvalidRangeError{Window: "TOP", Npts: imax(endTOP-iniTOP, 0), Min: 2}
	}

	// narrow windows cannot support a full cubic; the degree is reduced so the
	// fit interpolates the window exactly, as numpy's rank-deficient lstsq does
	degTOP := 3
	if m := endTOP - iniTOP; m < 4 {
		degTOP = m - 1
	}

	// indices for fitting the NCL line
	var iniNCL, endNCL int
	if rangeNCL == nil {
		iniNCL, endNCL = imax(n-3, 0), n
	} else {
		iniNCL = data.FindStressIdx(rangeNCL[0], true)
		if iniNCL < 0 {
			return nil, &InvalidRangeError{Window: "NCL", Npts: -1}
		}
		if rangeNCL[1] < σ[n-1] {
			endNCL = data.FindStressIdx(rangeNCL[1], true)
			if endNCL < 0 {
				return nil, &InvalidRangeError{Window: "NCL", Npts: -1}
			}
		} else {
			endNCL = n
		}
	}
	if endNCL-iniNCL < 2 {
		return nil, &InvalidRangeError{Window: "NCL", Npts: imax(endNCL-iniNCL, 0), Min: 2}
	}

	// logarithms require positive stresses
	if σv <= 0 {
		return nil, &DomainError{Stress: σv}
	}
	for i := iniTOP; i < endTOP; i++ {
		if σ[i] <= 0 {
			return nil, &DomainError{Stress: σ[i]}
		}
	}
	for i := iniNCL; i < endNCL; i++ {
		if σ[i] <= 0 {
			return nil, &DomainError{Stress: σ[i]}
		}
	}

	// third order polynomial fit to the compressibility curve
	σTOP, eTOP := σ[iniTOP:endTOP], e[iniTOP:endTOP]
	σTOPlog := log10s(σTOP)
	p1, err := fit.PolyFit(σTOPlog, eTOP, degTOP)
	if err != nil {
		return nil, err
	}
	top := &Curve{
		P:  p1,
		R2: fit.R2(eTOP, fit.PolyVals(p1, σTOPlog)),
		X:  utl.LinSpace(σTOP[0], σTOP[len(σTOP)-1], o.npts),
	}
	top.Y = fit.PolyVals(p1, log10s(top.X))

	// void ratio at σv, on the TOP fit
	eσv := fit.PolyVal(p1, math.Log10(σv))

	// linear regression of points on the normally consolidated line
	σNCL, eNCL := σ[iniNCL:endNCL], e[iniNCL:endNCL]
	σNCLlog := log10s(σNCL)
	p2, err := fit.PolyFit(σNCLlog, eNCL, 1)
	if err != nil {
		return nil, err
	}
	ncl := &Curve{
		P:  p2,
		R2: fit.R2(eNCL, fit.PolyVals(p2, σNCLlog)),
		X:  utl.LinSpace(σv, σNCL[len(σNCL)-1], o.npts),
	}
	ncl.Y = fit.PolyVals(p2, log10s(ncl.X))

	// line parallel to Cr through (σv, e(σv))
	eCr := eσv + idxCr*math.Log10(σv)
	xCr := utl.LinSpace(σ[1], σ[n-1], nptsCr)
	yCr := fit.PolyVals([]float64{eCr, -idxCr}, log10s(xCr))

	// intersection of the line parallel to Cr with the NCL fit
	den := -idxCr - p2[1]
	if den == 0 {
		return nil, &NoIntersectionError{Slope: p2[1]}
	}
	σp := math.Pow(10.0, (p2[0]-eCr)/den)

	// results
	res = &Result{
		SigmaP:  σp,
		ESigmaP: fit.PolyVal(p2, math.Log10(σp)),
		SigmaV:  σv,
		ESigmaV: eσv,
		TOP:     top,
		NCL:     ncl,
		ECr:     eCr,
		XCr:     xCr,
		YCr:     yCr,
	}
	return
}

// log10s returns the base-10 logarithm of all values in x
func log10s(x []float64) (l []float64) {
	l = make([]float64, len(x))
	for i, v := range x {
		l[i] = math.Log10(v)
	}
	return
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
