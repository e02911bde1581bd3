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

// scanHorizonAngles walks the terrain profile from both ends at once,
// reproducing the initial line-of-sight grazing-angle estimate and then the
// obstruction search that can shift each terminal's horizon inward,
// [TN101, Eq 6.15; CalcHorizonParameters.cpp:24-52].
func scanHorizonAngles(heights []Meters, sampleRes_m, pathDist_m Meters, txHeight_m, rxHeight_m Meters, aE_m float64) (txAngle, rxAngle Radians, txDist, rxDist Meters) {
	n := len(heights) - 1

	txRadial := heights[0] + txHeight_m
	rxRadial := heights[n] + rxHeight_m

	txAngle = (rxRadial-txRadial)/pathDist_m - pathDist_m/(2.0*aE_m)
	rxAngle = -(rxRadial-txRadial)/pathDist_m - pathDist_m/(2.0*aE_m)
	txDist = pathDist_m
	rxDist = pathDist_m

	txD := 0.0
	rxD := pathDist_m
	for i := 1; i < n; i++ {
		txD += sampleRes_m
		rxD -= sampleRes_m

		a := (heights[i]-txRadial)/txD - txD/(2.0*aE_m)
		b := -(rxRadial-heights[i])/rxD - rxD/(2.0*aE_m)

		if a > txAngle {
			txAngle = a
			txDist = txD
		}
		if b > rxAngle {
			rxAngle = b
			rxDist = rxD
		}
	}
	return
}

// smoothedHorizonDist_m is the deflated smooth-earth horizon distance used
// by the near-line-of-sight effective-height solve: the smooth-earth value
// sqrt(2*h_e*a_e), deflated by the terrain-roughness exponential so rougher
// terrain pulls the horizon inward, [CalcHorizonParameters.cpp:97-100].
func smoothedHorizonDist_m(effHeight_m, deltaH_m, aE_m float64) Meters {
	return math.Sqrt(2.0*effHeight_m*aE_m) * math.Exp(-0.07*math.Sqrt(deltaH_m/math.Max(effHeight_m, 5.0)))
}

// setHorizonParameters derives both terminals' horizon angle, horizon
// distance and effective height from the P2P terrain profile, following the
// near-line-of-sight vs. trans-horizon split of the reference algorithm: when
// the terminals' combined horizon distance exceeds 1.5x the path distance
// (the path is well within line-of-sight range), effective heights come from
// a terrain-fit residual and the horizon distance/angle are recomputed from
// them via the smooth-earth formula, with both effective heights scaled up
// when the two horizon distances together would not reach the path distance;
// otherwise the effective heights are fit
// directly from the terrain near each terminal's own (already-scanned)
// horizon and the scanned angle/distance are kept as-is,
// [CalcHorizonParameters.cpp].
func (s *state) setHorizonParameters() {
	aE := 1.0 / s.geo.GammaE_perM
	heights := s.profile.Heights_m
	sampleRes := s.profile.SampleResolution_m
	n := s.profile.numPointsMinusTx()
	pathDist_m := float64(n) * sampleRes

	txAngle, rxAngle, txDist, rxDist := scanHorizonAngles(heights, sampleRes, pathDist_m, s.in.TxHeight_m, s.in.RxHeight_m, aE)

	// "consideration of terrain elevations should begin at a point about 15
	// times the tower height" - [Hufford, 1982] p.25; never more than 10% of
	// the path in from either end.
	startDist_m := math.Min(15.0*s.in.TxHeight_m, 0.1*pathDist_m)
	endDist_m := pathDist_m - math.Min(15.0*s.in.RxHeight_m, 0.1*pathDist_m)

	s.geo.DeltaH_m = computeTerrainIrregularity_m(&s.profile, startDist_m, endDist_m)
	deltaH := s.geo.DeltaH_m

	win := newTerrainWindow(heights, sampleRes)

	var txEffHeight, rxEffHeight, txEffHorizDist, rxEffHorizDist Meters

	if txDist+rxDist > 1.5*pathDist_m {
		y1, y2 := fitLinearLeastSquares(win, startDist_m, endDist_m)

		txEffHorizDist = s.in.TxHeight_m + math.Abs(heights[0]-y1)
		rxEffHorizDist = s.in.RxHeight_m + math.Abs(heights[n]-y2)
		txEffHeight = txEffHorizDist
		rxEffHeight = rxEffHorizDist

		txDist = smoothedHorizonDist_m(txEffHorizDist, deltaH, aE)
		rxDist = smoothedHorizonDist_m(rxEffHorizDist, deltaH, aE)

		if combined := txDist + rxDist; combined <= pathDist_m {
			scalar := (pathDist_m / combined) * (pathDist_m / combined)

			txEffHeight *= scalar
			txEffHorizDist = smoothedHorizonDist_m(txEffHeight, deltaH, aE)
			rxEffHeight *= scalar
			rxEffHorizDist = smoothedHorizonDist_m(rxEffHeight, deltaH, aE)
			txDist = txEffHorizDist
			rxDist = rxEffHorizDist
		}

		smoothTx := math.Sqrt(2.0 * txEffHeight * aE)
		txAngle = (0.65*deltaH*(smoothTx/txDist-1.0) - 2.0*txEffHeight) / smoothTx
		smoothRx := math.Sqrt(2.0 * rxEffHeight * aE)
		rxAngle = (0.65*deltaH*(smoothRx/rxDist-1.0) - 2.0*rxEffHeight) / smoothRx
	} else {
		y1, _ := fitLinearLeastSquares(win, startDist_m, 0.9*txDist)
		txEffHeight = s.in.TxHeight_m + math.Abs(heights[0]-y1)
		txEffHorizDist = txEffHeight

		_, y2 := fitLinearLeastSquares(win, pathDist_m-0.9*rxDist, endDist_m)
		rxEffHeight = s.in.RxHeight_m + math.Abs(heights[n]-y2)
		rxEffHorizDist = rxEffHeight
	}

	g := &s.geo
	g.TxHorizonAngle = txAngle
	g.RxHorizonAngle = rxAngle
	g.TxHorizonDist_m = txDist
	g.RxHorizonDist_m = rxDist
	g.TxEffHorizDist_m = txEffHorizDist
	g.RxEffHorizDist_m = rxEffHorizDist
	g.TxEffHeight_m = txEffHeight
	g.RxEffHeight_m = rxEffHeight
	g.PathDist_m = pathDist_m
}
