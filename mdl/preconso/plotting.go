// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preconso

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Plot plots the compressibility curve, both fits, the line parallel to Cr,
// and the markers at (σv, e(σv)) and at (σp, e(σp)). The abscissa is
// log10 of the effective stress. If fnkey != "", the figure is saved to
// dirout/fnkey.png; if show == true, the figure is shown.
func Plot(data Data, res *Result, dirout, fnkey string, show bool) {

	// compressibility curve; the first (seating) stage is skipped
	σraw, eraw := data.Raw()
	if len(σraw) > 1 {
		plt.Plot(log10s(σraw[1:]), eraw[1:], &plt.A{C: "k", M: "o", Ls: "--", Lw: 0.8, L: "compressibility curve"})
	}

	// NCL linear fit
	plt.Plot(log10s(res.NCL.X), res.NCL.Y, &plt.A{C: "crimson", Ls: "--", Lw: 0.8, L: io.Sf("NCL linear fit ($R^2=%.3f$)", res.NCL.R2)})

	// third order polynomial fit
	plt.Plot(log10s(res.TOP.X), res.TOP.Y, &plt.A{C: "darkcyan", Ls: "--", Lw: 0.8, L: io.Sf("$3^{\\mathrm{rd}}$-order polynomial fit ($R^2=%.3f$)", res.TOP.R2)})

	// line parallel to Cr
	plt.Plot(log10s(res.XCr), res.YCr, &plt.A{C: "darkorange", Ls: "--", Lw: 0.8, L: "line parallel to $C_r$"})

	// markers at σv and σp
	plt.Plot([]float64{math.Log10(res.SigmaV)}, []float64{res.ESigmaV}, &plt.A{C: "r", M: "|", Ms: 15, L: io.Sf("$\\sigma^\\prime_v=%.0f$ kPa", res.SigmaV)})
	plt.Plot([]float64{math.Log10(res.SigmaP)}, []float64{res.ESigmaP}, &plt.A{C: "r", M: "D", Ms: 5, L: io.Sf("$\\sigma^\\prime_p=%.0f$ kPa", res.SigmaP)})

	// details
	plt.Gll("$\\log_{10}\\,\\sigma^\\prime$ [kPa]", "void ratio $e$", nil)
	if fnkey != "" {
		plt.Save(dirout, fnkey)
	}
	if show {
		plt.Show()
	}
}
