// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.oed) JSON file
// holding the results of a one-dimensional consolidation (oedometer) test
package inp

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Test holds oedometer test data
//  The raw series lists the effective stress and void ratio at the end of
//  each loading stage, in stage order, and may contain unload/reload cycles.
//  The cleaned series keeps the first-loading envelope only: a sample
//  survives iff its stress strictly exceeds all earlier stresses.
type Test struct {

	// input
	Name   string     `json:"name"`   // name of test; e.g. borehole/sample id
	Desc   string     `json:"desc"`   // description of test
	Prms   dbf.Params `json:"prms"`   // parameters: "sigmav" and "idxcr"
	Stress []float64  `json:"stress"` // effective stress at end of each stage [kPa]
	E      []float64  `json:"e"`      // void ratio at end of each stage

	// derived
	sigmaV  float64   // in-situ vertical effective stress [kPa]
	idxCr   float64   // recompression index (slope magnitude)
	cStress []float64 // cleaned stresses (without unload/reload cycles)
	cE      []float64 // cleaned void ratios
}

// ReadOed reads an oedometer test from a .oed JSON file
func ReadOed(dir, fn string) (oed *Test, err error) {

	// read file; panics if the file cannot be opened
	oed = new(Test)
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, oed)
	if err != nil {
		return nil, err
	}

	// derived quantities
	err = oed.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init validates input data, extracts parameters, and derives the cleaned series
func (o *Test) Init() (err error) {

	// check series
	if len(o.Stress) != len(o.E) {
		return chk.Err("test %q: stress and void ratio series have different lengths. %d != %d", o.Name, len(o.Stress), len(o.E))
	}
	if len(o.Stress) < 4 {
		return chk.Err("test %q: at least 4 samples are required; got %d", o.Name, len(o.Stress))
	}
	for i := range o.Stress {
		if math.IsNaN(o.Stress[i]) || math.IsInf(o.Stress[i], 0) || math.IsNaN(o.E[i]) || math.IsInf(o.E[i], 0) {
			return chk.Err("test %q: sample %d is not finite: stress=%v e=%v", o.Name, i, o.Stress[i], o.E[i])
		}
	}

	// parameters
	o.sigmaV, o.idxCr = 0, 0
	for _, p := range o.Prms {
		switch strings.ToLower(p.N) {
		case "sigmav":
			o.sigmaV = p.V
		case "idxcr":
			o.idxCr = p.V
		default:
			return chk.Err("test %q: parameter named %q is incorrect", o.Name, p.N)
		}
	}
	if o.idxCr <= 0 {
		return chk.Err("test %q: recompression index 'idxcr' must be positive; got %g", o.Name, o.idxCr)
	}

	// cleaned series: first-loading envelope
	o.cStress = o.cStress[:0]
	o.cE = o.cE[:0]
	σmax := math.Inf(-1)
	for i := range o.Stress {
		if o.Stress[i] > σmax {
			o.cStress = append(o.cStress, o.Stress[i])
			o.cE = append(o.cE, o.E[i])
			σmax = o.Stress[i]
		}
	}
	return
}

// Raw returns the raw series, in loading stage order, including unload/reload cycles
func (o *Test) Raw() (stress, e []float64) {
	return o.Stress, o.E
}

// Cleaned returns the series without unload/reload cycles
func (o *Test) Cleaned() (stress, e []float64) {
	return o.cStress, o.cE
}

// SigmaV returns the in-situ vertical effective stress
func (o *Test) SigmaV() float64 {
	return o.sigmaV
}

// IdxCr returns the recompression index (slope magnitude)
func (o *Test) IdxCr() float64 {
	return o.idxCr
}

// FindStressIdx returns the index of the sample whose stress is nearest
// to stress2find, in the cleaned or raw series. On an exact tie the lower
// index wins. Returns -1 if the series is empty.
func (o *Test) FindStressIdx(stress2find float64, cleanedData bool) int {
	series := o.Stress
	if cleanedData {
		series = o.cStress
	}
	idx := -1
	dmin := math.Inf(1)
	for i, σ := range series {
		d := math.Abs(σ - stress2find)
		if d < dmin {
			dmin = d
			idx = i
		}
	}
	return idx
}

// String prints test data
func (o *Test) String() string {
	l := io.Sf("{\n  \"name\" : %q,\n  \"desc\" : %q,\n", o.Name, o.Desc)
	l += io.Sf("  \"prms\" : [{\"n\":\"sigmav\", \"v\":%g}, {\"n\":\"idxcr\", \"v\":%g}],\n", o.sigmaV, o.idxCr)
	l += io.Sf("  \"stress\" : %v,\n  \"e\" : %v\n}", o.Stress, o.E)
	return l
}
