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

// sigmaH is the RMS deviation of terrain and clutter within the first
// Fresnel zone, [ERL 79-ITS 67, Eqn 3.6a].
func sigmaH(deltaH_m Meters) Meters {
	return 0.78 * deltaH_m * math.Exp(-0.5*math.Pow(deltaH_m, 0.25))
}

// terrainRoughness deflates the full-path delta_h to the roughness seen by a
// sub-path of length dist_m, [ERL 79-ITS 67, Eqn 3].
func terrainRoughness(dist_m, deltaH_m Meters) Meters {
	return deltaH_m * (1.0 - 0.8*math.Exp(-dist_m/50.0e3))
}

// fresnelIntegral approximates the Fresnel integral from nu to infinity,
// [TN101v2, Eqn III.24b/c] and [ERL 79-ITS 67, Eqn 3.27a/b].
func fresnelIntegral(nu float64) Decibels {
	if nu < 2.4 {
		return 6.02 + 9.11*nu - 1.27*nu*nu
	}
	return 12.953 + 20.0*math.Log10(nu)
}

// freeSpaceLoss_dB is the basic transmission loss of an unobstructed path.
func freeSpaceLoss_dB(dist_m Meters, freq_MHz MegaHertz) Decibels {
	return 32.45 + 20.0*math.Log10(freq_MHz) + 20.0*math.Log10(dist_m*1.0e-3)
}

// heightGainFunction is the smooth-earth height gain F(x,K), x in the
// internal normalized distance (km) used by the Vogler 3-radii diffraction
// model, blended smoothly across x=2000.
func heightGainFunction(x_km float64, k float64) Decibels {
	if x_km < 200.0 {
		w := -math.Log(k)
		if k < 1.0e-5 || x_km*w*w*w > 5495.0 {
			if x_km > 1.0 {
				return 17.372*math.Log(x_km) - 117.0
			}
			return -117.0
		}
		return 2.5e-5*x_km*x_km/k - 8.686*w - 15.0
	}

	flat := 0.05751*x_km - 4.343*math.Log(x_km)
	if x_km < 2.0e3 {
		w := 0.0134 * x_km * math.Exp(-0.005*x_km)
		return (1.0-w)*flat + w*(17.372*math.Log(x_km)-117.0)
	}
	return flat
}

// tropoGainA, tropoGainB are the [Algorithm, 6.13] curve-fit tables for the
// troposcatter frequency gain function H0, indexed by floor(eta_s)-1.
var tropoGainA = [5]float64{25.0, 80.0, 177.0, 395.0, 705.0}
var tropoGainB = [5]float64{24.0, 45.0, 68.0, 80.0, 105.0}

// tropoFreqGainCurveFit evaluates one of the five H0 curve fits at 1/r^2.
func tropoFreqGainCurveFit(idx int, r float64) Decibels {
	invR := 1.0 / r
	invR2 := invR * invR
	return 10.0 * math.Log10(1.0+tropoGainA[idx]*invR2*invR2+tropoGainB[idx]*invR2)
}

// clampScatterEfficiency forces eta_s into [1,5], the domain H0's curve fit
// table is defined over.
func clampScatterEfficiency(etaS float64) float64 {
	if etaS < 1.0 {
		return 1.0
	}
	if etaS > 5.0 {
		return 5.0
	}
	return etaS
}

// tropoFreqGain is H0(r, eta_s), [TN101v1, Ch 9.2]. etaS must already be
// clamped to [1,5] (clampScatterEfficiency).
func tropoFreqGain(r float64, etaS float64) Decibels {
	idx := int(etaS)
	remainder := etaS - float64(idx)

	gain := tropoFreqGainCurveFit(idx-1, r)
	if remainder != 0.0 {
		gain = (1.0-remainder)*gain + remainder*tropoFreqGainCurveFit(idx, r)
	}
	return gain
}

// tropoAttenA, tropoAttenB, tropoAttenC select the [Algorithm, 6.9]
// troposcatter attenuation function F(theta*d) by distance bin.
var tropoAttenA = [3]float64{133.4, 104.6, 71.8}
var tropoAttenB = [3]float64{0.332e-3, 0.212e-3, 0.157e-3}
var tropoAttenC = [3]float64{-10.0, -2.5, 5.0}

// tropoAttenuationFunction is F(theta*d), [Algorithm, 6.9], where dist_m is
// the product theta_d * d in meters.
func tropoAttenuationFunction(dist_m Meters) Decibels {
	var idx int
	switch {
	case dist_m <= 10.0e3:
		idx = 0
	case dist_m <= 70.0e3:
		idx = 1
	default:
		idx = 2
	}
	return tropoAttenA[idx] + tropoAttenB[idx]*dist_m + tropoAttenC[idx]*math.Log10(dist_m)
}
