// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// goed estimates the preconsolidation pressure (yield stress) from
// one-dimensional consolidation test data stored in a (.oed) JSON file
package main

import (
	"github.com/ElsevierSoftwareX/SOFTX-D-21-00138/inp"
	"github.com/ElsevierSoftwareX/SOFTX-D-21-00138/mdl/preconso"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".oed", true)
	method := io.ArgToString(1, "boone")
	dirout := io.ArgToString(2, "/tmp/goed")
	saveFig := io.ArgToBool(3, true)

	// message
	io.PfWhite("\nGoed -- Preconsolidation Pressure from Oedometer Tests\n\n")
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"filename path", "fnamepath", fnamepath,
		"estimation method", "method", method,
		"directory for output", "dirout", dirout,
		"save figure", "saveFig", saveFig,
	))

	// read test data
	oed, err := inp.ReadOed("", fnamepath)
	if err != nil {
		chk.Panic("cannot read test data:\n%v", err)
	}

	// allocate and initialise method
	mdl, err := preconso.New(method)
	if err != nil {
		chk.Panic("cannot allocate method:\n%v", err)
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		chk.Panic("cannot initialise method:\n%v", err)
	}

	// estimate
	res, err := mdl.Estimate(oed, nil, nil)
	if err != nil {
		chk.Panic("estimation failed:\n%v", err)
	}

	// report
	io.Pf("test      = %q  (%s)\n", oed.Name, oed.Desc)
	io.Pf("sigmaV    = %g kPa\n", res.SigmaV)
	io.Pf("idxCr     = %g\n", oed.IdxCr())
	io.Pfyel("sigmaP    = %g kPa\n", res.SigmaP)
	io.Pf("e(sigmaP) = %g\n", res.ESigmaP)
	io.Pf("e(sigmaV) = %g\n", res.ESigmaV)
	io.Pf("idxCc     = %g  (slope of NCL fit)\n", -res.NCL.P[1])
	io.Pf("R2 TOP    = %g\n", res.TOP.R2)
	io.Pf("R2 NCL    = %g\n", res.NCL.R2)

	// figure
	if saveFig {
		plt.Reset(true, nil)
		preconso.Plot(oed, res, dirout, fnkey, false)
	}
}
