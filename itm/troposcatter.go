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

// troposcatterParams carries the geometry and atmosphere needed to evaluate
// troposcatter loss at an arbitrary path distance d_m.
type troposcatterParams struct {
	txHorizonAngle_rad Radians
	rxHorizonAngle_rad Radians
	txHorizonDist_m    Meters
	rxHorizonDist_m    Meters
	txEffHeight_m      Meters
	rxEffHeight_m      Meters
	aE_m               float64
	freq_MHz           MegaHertz
	ns                 float64
	thetaLoS_rad       Radians
}

// crossOverHeightScaleHeights_m are Z_0, Z_1, the scale heights feeding the
// scatter-efficiency term eta_s, [Algorithm, 4.67].
const (
	crossOverScaleHeight0_m = 1.7556e3
	crossOverScaleHeight1_m = 8.0e3
)

// troposcatterLoss_dB is the forward-scatter loss at path distance d_m,
// [TN101v1, Ch 9-10; Algorithm, 6.8-6.18; TroposcatterLoss.cpp]. prevH0_dB is
// the H0 value from the previous call on this path (pass a negative value
// for the first call); the returned h0Used_dB should be threaded into the
// next call — once H0 settles above 15 dB it is frozen at its prior value
// rather than recomputed.
//
// Paths where both cross-term ratios r1,r2 (already squared, per [TN101,
// Eqn 9.4a]) fall under 0.2 are outside the domain the scatter function is
// defined over and return the library's default maximum loss sentinel.
func troposcatterLoss_dB(p troposcatterParams, d_m Meters, prevH0_dB Decibels) (loss_dB Decibels, h0Used_dB Decibels) {
	finalH0 := prevH0_dB
	waveNumber := p.freq_MHz / waveToMHzFreqTerm

	if prevH0_dB <= 15.0 {
		horizonDelta := p.txHorizonDist_m - p.rxHorizonDist_m
		effHeightRatio := p.rxEffHeight_m / p.txEffHeight_m
		if horizonDelta < 0.0 {
			horizonDelta = -horizonDelta
			effHeightRatio = 1.0 / effHeightRatio
		}

		angularDist := p.txHorizonAngle_rad + p.rxHorizonAngle_rad + d_m/p.aE_m

		r1 := 2.0 * waveNumber * angularDist * p.txEffHeight_m
		r2 := 2.0 * waveNumber * angularDist * p.rxEffHeight_m

		if r1 < 0.2 && r2 < 0.2 {
			return defaultMaxLoss_dB, prevH0_dB
		}

		asymmetry := (d_m - horizonDelta) / (d_m + horizonDelta)
		q := math.Min(math.Max(0.1, effHeightRatio/asymmetry), 10.0)
		asymmetry = math.Max(0.1, asymmetry)

		// Height of cross-over, [Algorithm, 4.66; TN101v1, 9.3b].
		h0_m := (d_m - horizonDelta) * (d_m + horizonDelta) * angularDist * 0.25 / d_m

		// Scattering efficiency factor, [TN101, Eqn 9.3a].
		scatterEff := (h0_m / crossOverScaleHeight0_m) * (1.0 + (0.031-p.ns*2.32e-3+p.ns*p.ns*5.67e-6)*
			math.Exp(-math.Pow(math.Min(1.7, h0_m/crossOverScaleHeight1_m), 6)))

		gain1 := tropoFreqGain(r1, clampScatterEfficiency(scatterEff))
		gain2 := tropoFreqGain(r2, clampScatterEfficiency(scatterEff))
		avgGain := 0.5 * (gain1 + gain2)

		deltaHMin := 6.0 * (0.6 - math.Log10(math.Max(scatterEff, 1.0))) * math.Log10(asymmetry) * math.Log10(q)
		deltaH := math.Min(avgGain, deltaHMin)

		finalH0 = math.Max(avgGain+deltaH, 0.0)

		if scatterEff < 1.0 {
			sqrt2 := math.Sqrt2
			sqTerm := (1.0 + sqrt2/r1) * (1.0 + sqrt2/r2)
			scalar := (r1 + r2) / (r1 + r2 + 2.0*sqrt2)
			logTerm := math.Log10(sqTerm * sqTerm * scalar)
			finalH0 = scatterEff*finalH0 + (1.0-scatterEff)*10.0*logTerm
		}

		if finalH0 > 15.0 && prevH0_dB >= 0.0 {
			finalH0 = prevH0_dB
		}
	}

	thConst := d_m/p.aE_m - p.thetaLoS_rad
	atten := tropoAttenuationFunction(thConst * d_m)
	freqGainTerm := waveNumber * waveToMHzFreqTerm * thConst * thConst * thConst * thConst

	loss := atten + 10.0*math.Log10(freqGainTerm) -
		0.1*(p.ns-301.0)*math.Exp(-thConst*d_m/40.0e3) + finalH0
	return loss, finalH0
}
