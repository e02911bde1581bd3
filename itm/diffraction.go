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

// radiusPath, radiusTx, radiusRx index the three fictitious earth radii of
// the Vogler smooth-earth diffraction method: the path's own radius
// (derived from the non-line-of-sight angular distance) and the two
// terminals' horizon radii, [Vogler 1964, Eqn 3].
const (
	radiusPath = 0
	radiusTx   = 1
	radiusRx   = 2
)

// diffractionParams carries everything the knife-edge and smooth-earth
// diffraction models need at an arbitrary path distance, shared between the
// Longley-Rice d3/d4 line fit and the line-of-sight d0/d1 evaluations that
// re-evaluate the same functions.
type diffractionParams struct {
	aE_m            float64
	txHorizonDist_m Meters
	rxHorizonDist_m Meters
	txEffHeight_m   Meters
	rxEffHeight_m   Meters
	txHeight_m      Meters // structural
	rxHeight_m      Meters // structural
	deltaH_m        Meters
	freq_MHz        MegaHertz
	zg              complex128
	isP2P           bool
	thetaLoS_rad    Radians // angular distance at which the path would graze both horizons
	dSmoothML_m     Meters  // maximum line-of-sight distance over a smooth earth
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// groundParamK is the normalized surface admittance magnitude K_i for one
// of the three Vogler radii, given that radius's earth-radius-ratio
// constant C_i, [Vogler 1964, Eqn 6a/7a].
func groundParamK(freq_MHz MegaHertz, zgMag float64, c float64) float64 {
	return 0.017778 * c / (math.Cbrt(freq_MHz) * zgMag)
}

// smoothEarthDiffractionLoss_dB is the Vogler three-radii smooth-earth
// diffraction loss at path distance d_m: a fictitious radius is built for
// the non-line-of-sight portion of the path and for each terminal's own
// horizon, each contributing a bending parameter B_0, ground parameter K
// and normalized distance x; the three x's sum into the path's overall
// normalized length, whose distance-gain function is reduced by each
// terminal's height-gain loss, [Vogler 1964; TN101v1, Ch 4; Algorithm,
// 4.15-4.22].
func smoothEarthDiffractionLoss_dB(p diffractionParams, d_m Meters) Decibels {
	dML := p.txHorizonDist_m + p.rxHorizonDist_m
	thetaNonLoS := d_m/p.aE_m - p.thetaLoS_rad

	var adjRadius_m [3]float64
	adjRadius_m[radiusPath] = (d_m - dML) / thetaNonLoS
	adjRadius_m[radiusTx] = 0.5 * p.txHorizonDist_m * p.txHorizonDist_m / p.txEffHeight_m
	adjRadius_m[radiusRx] = 0.5 * p.rxHorizonDist_m * p.rxHorizonDist_m / p.rxEffHeight_m

	zgMag := cmplxAbs(p.zg)
	freqCbrt := math.Cbrt(p.freq_MHz)

	var c, k, b0 [3]float64
	for i := 0; i < 3; i++ {
		c[i] = math.Cbrt((4.0 / 3.0) * earthRadius_m / adjRadius_m[i])
		k[i] = groundParamK(p.freq_MHz, zgMag, c[i])
		b0[i] = 1.607 - k[i]
	}

	var diffractDist_km [3]float64
	diffractDist_km[radiusPath] = adjRadius_m[radiusPath] * thetaNonLoS * 1.0e-3
	diffractDist_km[radiusTx] = p.txHorizonDist_m * 1.0e-3
	diffractDist_km[radiusRx] = p.rxHorizonDist_m * 1.0e-3

	var x [3]float64
	x[radiusTx] = b0[radiusTx] * c[radiusTx] * c[radiusTx] * freqCbrt * diffractDist_km[radiusTx]
	x[radiusRx] = b0[radiusRx] * c[radiusRx] * c[radiusRx] * freqCbrt * diffractDist_km[radiusRx]
	x[radiusPath] = b0[radiusPath]*c[radiusPath]*c[radiusPath]*freqCbrt*diffractDist_km[radiusPath] + x[radiusTx] + x[radiusRx]

	fgTx := heightGainFunction(x[radiusTx], k[radiusTx])
	fgRx := heightGainFunction(x[radiusRx], k[radiusRx])
	gainDist := 0.05751*x[radiusPath] - 10.0*math.Log10(x[radiusPath]) // [Vogler 1964, Eqn 13; TN101, Eqn 8.4]

	return gainDist - fgTx - fgRx - 20.0 // [Vogler 1964; Algorithm, Eqn 4.20]
}

// oneOverFourPi is 1/(4*pi), kept as the reference implementation's own
// truncated six-significant-figure constant rather than computed from pi,
// so the knife-edge result matches it to the same precision.
const oneOverFourPi = 0.0795775

// knifeEdgeDiffractionLoss_dB is the sum of Fresnel knife-edge losses at
// each terminal's own horizon obstruction, treating the path beyond the
// smooth-earth line-of-sight distance as diffracting over two independent
// knife edges, [TN101, Eqn I.1/I.7].
func knifeEdgeDiffractionLoss_dB(p diffractionParams, d_m Meters) Decibels {
	dML := p.txHorizonDist_m + p.rxHorizonDist_m
	thetaNonLoS := d_m/p.aE_m - p.thetaLoS_rad
	dNonLoS := d_m - dML

	nuCommon := oneOverFourPi * (p.freq_MHz / waveToMHzFreqTerm) * thetaNonLoS * thetaNonLoS * dNonLoS
	nuTx := nuCommon * p.txHorizonDist_m / (dNonLoS + p.txHorizonDist_m)
	nuRx := nuCommon * p.rxHorizonDist_m / (dNonLoS + p.rxHorizonDist_m)

	return fresnelIntegral(nuTx) + fresnelIntegral(nuRx)
}

// clutterFactor_dB is the path-independent allowance for ground clutter
// near each terminal, using the structural (not effective) terminal
// heights and the sigma_h evaluated at the clutter-specific roughness
// distance the caller supplies, [ERL 79-ITS 67, Eqn 3.38c].
func clutterFactor_dB(txHeight_m, rxHeight_m Meters, freq_MHz MegaHertz, sigmaH_m Meters) Decibels {
	return math.Min(15.0, 5.0*math.Log10(1.0+1.0e-5*txHeight_m*rxHeight_m*freq_MHz*sigmaH_m))
}

// diffractionLoss_dB is A_d(d): the Longley-Rice blend of smooth-earth and
// knife-edge diffraction loss plus the clutter factor, weighted by how
// confidently the path geometry is a smooth earth versus a sharp knife
// edge, [ERL 79-ITS 67, Eqn 2.23/3.23; DiffractionLoss.cpp].
func diffractionLoss_dB(p diffractionParams, d_m Meters) Decibels {
	aKnifeEdge := knifeEdgeDiffractionLoss_dB(p, d_m)
	aSmoothEarth := smoothEarthDiffractionLoss_dB(p, d_m)

	clutterRoughness := terrainRoughness(p.dSmoothML_m, p.deltaH_m)
	clutter := clutterFactor_dB(p.txHeight_m, p.rxHeight_m, p.freq_MHz, sigmaH(clutterRoughness))

	dML := p.txHorizonDist_m + p.rxHorizonDist_m
	roughnessAtD := terrainRoughness(d_m, p.deltaH_m)

	q := p.txHeight_m * p.rxHeight_m
	qSubK := p.txEffHeight_m*p.rxEffHeight_m - q
	if p.isP2P {
		q += 10.0 // known path: C ~= 10 even for low antennas, [ERL 79-ITS 67, p.3-8]
	}
	term1 := math.Sqrt(1.0 + qSubK/q)

	qq := (term1 + (-p.thetaLoS_rad*p.aE_m+dML)/d_m) * math.Min(roughnessAtD*p.freq_MHz/waveToMHzFreqTerm, 6283.2)
	w := 25.1 / (25.1 + math.Sqrt(qq)) // [ERL 79-ITS 67, Eqn 3.23]

	return w*aSmoothEarth + (1.0-w)*aKnifeEdge + clutter
}
