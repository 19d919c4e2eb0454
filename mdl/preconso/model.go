// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package preconso implements methods for determining the preconsolidation
// pressure (yield stress) from one-dimensional consolidation test data
//  References:
//   [1] Boone SJ (2010) A critical reappraisal of "preconsolidation pressure"
//       interpretations using the oedometer test. Canadian Geotechnical
//       Journal, 47(3), 281-296, http://dx.doi.org/10.1139/T09-093
package preconso

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data provides access to consolidation test data. The cleaned series has
// unload/reload cycles removed and is the one fits operate on; the raw
// series is for display only.
type Data interface {
	Raw() (stress, e []float64)                           // raw series, in loading stage order
	Cleaned() (stress, e []float64)                       // series without unload/reload cycles
	FindStressIdx(stress2find float64, cleaned bool) int  // index of sample with nearest stress; -1 if empty
	SigmaV() float64                                      // in-situ vertical effective stress
	IdxCr() float64                                       // recompression index (slope magnitude)
}

// Curve holds a fitted polynomial in log10-stress space and its sampled trace
type Curve struct {
	P  []float64 // coefficients in increasing order: e(x) = P[0] + P[1]*x + ...
	R2 float64   // coefficient of determination on the fit window
	X  []float64 // sampled stresses for display
	Y  []float64 // sampled void ratios for display
}

// Result holds the outcome of a preconsolidation pressure estimation
type Result struct {
	SigmaP  float64   // preconsolidation pressure
	ESigmaP float64   // void ratio on the NCL fit at sigmaP
	SigmaV  float64   // in-situ vertical effective stress (copied from input)
	ESigmaV float64   // void ratio on the compressibility curve at sigmaV
	TOP     *Curve    // third-order polynomial fit to the compressibility curve
	NCL     *Curve    // linear fit to the normally consolidated line
	ECr     float64   // intercept of the line parallel to Cr, in log10-stress space
	XCr     []float64 // sampled stresses along the line parallel to Cr for display
	YCr     []float64 // sampled void ratios along the line parallel to Cr for display
}

// Model defines a preconsolidation pressure estimation method
//  Estimate is a pure function of its inputs: it mutates neither the model
//  nor data and returns a fresh Result per call, hence it is safe to invoke
//  concurrently for independent datasets.
//  rangeTOP and rangeNCL are optional (initial, final) stress pairs bounding
//  the fit windows; nil selects the method's default windows.
type Model interface {
	Init(prms dbf.Params) error                                        // initialises method
	GetPrms(example bool) dbf.Params                                   // gets (an example) of parameters
	Estimate(data Data, rangeTOP, rangeNCL []float64) (*Result, error) // estimates preconsolidation pressure
}

// New returns a new estimation method
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("method %q is not available in 'preconso' database", name)
	}
	return allocator(), nil
}

// allocators holds all available methods
var allocators = map[string]func() Model{}

// DomainError indicates a non-positive stress value where a logarithm is required
type DomainError struct {
	Stress float64 // offending value
}

func (e *DomainError) Error() string {
	return io.Sf("stress value %g is out of domain: log10 requires positive stresses", e.Stress)
}

// InvalidRangeError indicates a fit window with insufficient points for its
// polynomial degree, or a range boundary with no matching sample
type InvalidRangeError struct {
	Window string // "TOP" or "NCL"
	Npts   int    // number of points the window resolved to
	Min    int    // minimum required
}

func (e *InvalidRangeError) Error() string {
	if e.Npts < 0 {
		return io.Sf("%s range boundary has no matching sample", e.Window)
	}
	return io.Sf("%s window resolves to %d points; its fit needs at least %d", e.Window, e.Npts, e.Min)
}

// NoIntersectionError indicates that the line parallel to Cr and the NCL fit
// are parallel, thus no intersection defines the preconsolidation pressure
type NoIntersectionError struct {
	Slope float64 // common slope
}

func (e *NoIntersectionError) Error() string {
	return io.Sf("line parallel to Cr and NCL fit are parallel (slope %g): no intersection", e.Slope)
}
