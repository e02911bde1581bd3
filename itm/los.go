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

// losParams carries what the two-ray line-of-sight model needs beyond the
// path distance and the extended diffraction-region line it blends into.
type losParams struct {
	txEffHeight_m Meters
	rxEffHeight_m Meters
	freq_MHz      MegaHertz
	zg            complex128
	deltaH_m      Meters
	dSmoothML_m   Meters // maximum line-of-sight distance over a smooth earth
}

// losLoss_dB is the two-ray line-of-sight loss at path distance d_m: the
// ground-reflected ray's complex reflection coefficient is attenuated by
// terrain roughness, and its squared magnitude is reset to sin(psi) whenever
// it falls below 0.25 or below sin(psi); the direct/reflected phase difference is
// folded back below pi/2 once it overshoots, and the resulting two-ray
// interference loss is blended with the diffraction-region line extended
// back under the line-of-sight distance, weighted by how much the terrain
// roughness already dominates the path, [LineOfSightLoss.cpp].
func losLoss_dB(p losParams, d_m Meters, diffractSlope float64, diffractIntercept_dB Decibels) Decibels {
	roughness := terrainRoughness(d_m, p.deltaH_m)
	sigH := sigmaH(roughness)
	waveNumber := p.freq_MHz / waveToMHzFreqTerm

	heightSum := p.txEffHeight_m + p.rxEffHeight_m
	sinPsi := heightSum / math.Sqrt(d_m*d_m+heightSum*heightSum)

	re := (complex(sinPsi, 0) - p.zg) / (complex(sinPsi, 0) + p.zg)
	re *= complex(math.Exp(-math.Min(10.0, waveNumber*sigH*sinPsi)), 0)

	reMagSq := real(re)*real(re) + imag(re)*imag(re)
	if reMagSq < 0.25 || reMagSq < sinPsi {
		re *= complex(math.Sqrt(sinPsi/reMagSq), 0)
	}

	delta := waveNumber * 2.0 * p.txEffHeight_m * p.rxEffHeight_m / d_m
	if delta > pi/2.0 {
		delta = pi - (pi/2.0)*(pi/2.0)/delta
	}

	sum := complex(math.Cos(delta), -math.Sin(delta)) + re
	aTwoRay := -10.0 * math.Log10(real(sum)*real(sum)+imag(sum)*imag(sum))

	aExtDiffraction := diffractSlope*d_m + diffractIntercept_dB

	w := 1.0 / (1.0 + p.freq_MHz*p.deltaH_m/math.Max(10000.0, p.dSmoothML_m))

	return w*aTwoRay + (1.0-w)*aExtDiffraction
}
