// Copyright (c) 2023, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package itm

import (
	"math"

	. "github.com/openthread/ot-ns/itmtypes"
)

// lineFit is a two-point slope-intercept line y = intercept + slope*(x -
// x0), the shape the Longley-Rice diffraction/troposcatter regime-transition
// fits take.
type lineFit struct {
	intercept Decibels
	slope     float64 // dB per meter
	x0_m      Meters
}

func (l lineFit) at(d_m Meters) Decibels {
	return l.intercept + l.slope*(d_m-l.x0_m)
}

// fitLine builds the two-point line through (d1,a1) and (d2,a2), anchored
// at d1.
func fitLine(d1 Meters, a1 Decibels, d2 Meters, a2 Decibels) lineFit {
	return lineFit{intercept: a1, slope: (a2 - a1) / (d2 - d1), x0_m: d1}
}

// referenceResult is the output of the Longley-Rice reference attenuation
// computation: the blended A_ref value at the path distance and the regime
// it fell into.
type referenceResult struct {
	aRef_dB  Decibels
	propMode PropagationMode
}

// computeReference evaluates A_ref(d), the median (unfaded) reference
// attenuation relative to free space, by blending the line-of-sight,
// diffraction and troposcatter regimes via the Longley-Rice slope-intercept
// line-fit method, [ERL 79-ITS 67, Ch 3; LongleyRice.cpp].
func (s *state) computeReference() referenceResult {
	g := &s.geo
	aE := 1.0 / g.GammaE_perM

	dML := g.TxHorizonDist_m + g.RxHorizonDist_m

	// angularDistInLoS_rad (theta_LoS) is the angular distance by which the
	// path would still graze both horizons, at most d_ML/a_e (positive when
	// the horizon angles sum to a negative value); it is the zero-point that the non-line-of-sight angular distance
	// theta_nLoS(d) = d/aE - theta_LoS is measured from.
	thetaLoS := -math.Max(g.TxHorizonAngle+g.RxHorizonAngle, -dML/aE)

	txSmoothHzn := math.Sqrt(2.0 * g.TxEffHeight_m * aE)
	rxSmoothHzn := math.Sqrt(2.0 * g.RxEffHeight_m * aE)
	dSmoothML := txSmoothHzn + rxSmoothHzn

	dp := diffractionParams{
		aE_m:            aE,
		txHorizonDist_m: g.TxHorizonDist_m,
		rxHorizonDist_m: g.RxHorizonDist_m,
		txEffHeight_m:   g.TxEffHeight_m,
		rxEffHeight_m:   g.RxEffHeight_m,
		txHeight_m:      s.in.TxHeight_m,
		rxHeight_m:      s.in.RxHeight_m,
		deltaH_m:        g.DeltaH_m,
		freq_MHz:        s.in.Frequency_MHz,
		zg:              g.Zg,
		isP2P:           s.isP2P,
		thetaLoS_rad:    thetaLoS,
		dSmoothML_m:     dSmoothML,
	}

	cubeTerm := math.Cbrt(aE * aE / s.in.Frequency_MHz)
	d3_m := math.Max(dSmoothML, dML+5.0*cubeTerm)
	d4_m := d3_m + 10.0*cubeTerm

	a3 := diffractionLoss_dB(dp, d3_m)
	a4 := diffractionLoss_dB(dp, d4_m)
	diffLine := fitLine(d3_m, a3, d4_m, a4)

	d_m := g.PathDist_m

	if d_m < dSmoothML {
		return s.computeLineOfSightReference(dp, diffLine, d_m, dML, dSmoothML)
	}
	return s.computeTransHorizonReference(dp, diffLine, aE, cubeTerm)
}

// computeLineOfSightReference implements the ERL-67 within-line-of-sight
// fit: the two-ray loss curve is sampled at d0 and d1 and tied to the
// extended diffraction line's value at d_sML through a k1*d + k2*ln(d)
// correction, so the reference attenuation transitions smoothly from the
// two-ray region into the diffraction region, [ERL 79-ITS 67, Eqn
// 3.11-3.14; LongleyRice.cpp].
func (s *state) computeLineOfSightReference(dp diffractionParams, diffLine lineFit, d_m, dML, dSmoothML Meters) referenceResult {
	lp := losParams{
		txEffHeight_m: dp.txEffHeight_m,
		rxEffHeight_m: dp.rxEffHeight_m,
		freq_MHz:      dp.freq_MHz,
		zg:            dp.zg,
		deltaH_m:      dp.deltaH_m,
		dSmoothML_m:   dp.dSmoothML_m,
	}

	aAtDsml := diffLine.at(dSmoothML)

	// ast is the diffraction line's plain-form intercept (its value at
	// d=0), recovered from the anchored lineFit representation: the
	// comparisons and loss evaluations below are all expressed in plain
	// slope-intercept form.
	ast := diffLine.intercept - diffLine.slope*diffLine.x0_m

	d0 := math.Min(0.04*dp.freq_MHz*dp.txEffHeight_m*dp.rxEffHeight_m, 0.5*dML)
	var d1 Meters
	if ast >= 0.0 {
		d1 = d0 + 0.25*(dML-d0)
	} else {
		d1 = math.Max(-ast/diffLine.slope, 0.25*dML)
	}

	a1 := losLoss_dB(lp, d1, diffLine.slope, ast)

	var k1, k2 float64
	foundPositive := false

	if d0 < d1 {
		a0 := losLoss_dB(lp, d0, diffLine.slope, ast)
		q := math.Log(dSmoothML / d0)

		numer := (dSmoothML-d0)*(a1-a0) - (d1-d0)*(aAtDsml-a0)
		denom := (dSmoothML-d0)*math.Log(d1/d0) - (d1-d0)*q
		k2 = math.Max(0.0, numer/denom)

		foundPositive = ast > 0.0 || k2 > 0.0
		if foundPositive {
			k1 = (aAtDsml - a0 - k2*q) / (dSmoothML - d0)
			if k1 < 0.0 {
				k1 = 0.0
				k2 = math.Abs(aAtDsml-a0) / q
				if k2 == 0.0 {
					k1 = diffLine.slope
				}
			}
		}
	}

	if !foundPositive {
		k1 = math.Abs(aAtDsml-a1) / (dSmoothML - d1)
		k2 = 0.0
		if k1 == 0.0 {
			k1 = diffLine.slope
		}
	}

	intermAtten := aAtDsml - k1*dSmoothML - k2*math.Log(dSmoothML)
	aRef := intermAtten + k1*d_m + k2*math.Log(d_m)

	return referenceResult{aRef_dB: math.Max(0.0, aRef), propMode: LineOfSight}
}

// computeTransHorizonReference implements the trans-horizon blend between
// the diffraction-region line fit and the troposcatter-region line fit,
// switching to whichever the path distance now exceeds, [ERL 79-ITS 67, Ch
// 3; LongleyRice.cpp].
func (s *state) computeTransHorizonReference(dp diffractionParams, diffLine lineFit, aE, cubeTerm float64) referenceResult {
	g := &s.geo
	dML := g.TxHorizonDist_m + g.RxHorizonDist_m

	tp := troposcatterParams{
		txHorizonAngle_rad: g.TxHorizonAngle,
		rxHorizonAngle_rad: g.RxHorizonAngle,
		txHorizonDist_m:    g.TxHorizonDist_m,
		rxHorizonDist_m:    g.RxHorizonDist_m,
		txEffHeight_m:      g.TxEffHeight_m,
		rxEffHeight_m:      g.RxEffHeight_m,
		aE_m:               aE,
		freq_MHz:           s.in.Frequency_MHz,
		ns:                 g.Ns,
		thetaLoS_rad:       dp.thetaLoS_rad,
	}

	d5_m := dML + 200.0e3
	d6_m := dML + 400.0e3

	a6, h0 := troposcatterLoss_dB(tp, d6_m, -1.0)
	a5, _ := troposcatterLoss_dB(tp, d5_m, h0)

	// ast is the diffraction line's plain-form intercept (its value at
	// d=0), recovered from the anchored lineFit representation, since the
	// crossing-point and trans-horizon formulas below are expressed in
	// plain slope-intercept form.
	ast := diffLine.intercept - diffLine.slope*diffLine.x0_m

	var ms float64
	var asIntercept Decibels
	var dx_m Meters

	if a5 < defaultMaxLoss_dB {
		ms = (a6 - a5) / 200.0e3
		dx_m = math.Max(math.Max(dp.dSmoothML_m, dML+1.088*cubeTerm*math.Log(s.in.Frequency_MHz)),
			(a5-ast-ms*d5_m)/(diffLine.slope-ms))
		asIntercept = (diffLine.slope-ms)*dx_m + ast
	} else {
		ms = diffLine.slope
		asIntercept = ast
		dx_m = 1.0e7
	}

	d_m := g.PathDist_m

	var aRef Decibels
	var mode PropagationMode
	if d_m > dx_m {
		aRef = ms*d_m + asIntercept
		mode = Troposcatter
	} else {
		aRef = diffLine.at(d_m)
		mode = Diffraction
	}

	return referenceResult{aRef_dB: math.Max(0.0, aRef), propMode: mode}
}
