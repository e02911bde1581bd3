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

	"github.com/simonlingoogle/go-simplelogger"

	. "github.com/openthread/ot-ns/itmtypes"
)

// Abramowitz & Stegun 26.2.23 rational coefficients for qinvnorm.
const (
	qinvC0 = 2.515516
	qinvC1 = 0.802853
	qinvC2 = 0.010328
	qinvD1 = 1.432788
	qinvD2 = 0.189269
	qinvD3 = 0.001308
)

// qinvnorm is the inverse complementary normal CDF, Q^-1(q), for 0 < q < 1.
// Accurate to |epsilon| < 4.5e-4 per Abramowitz & Stegun 26.2.23.
func qinvnorm(q Fraction) float64 {
	x := q
	if q > 0.5 {
		x = 1.0 - q
	}

	t := math.Sqrt(-2.0 * math.Log(x))

	zetaNumer := (qinvC2*t+qinvC1)*t + qinvC0
	zetaDenom := ((qinvD3*t+qinvD2)*t+qinvD1)*t + 1.0
	zeta := zetaNumer / zetaDenom

	result := t - zeta
	if q > 0.5 {
		return -result
	}
	return result
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// terrainWindow is the minimal shape a linear least-squares fit needs: a
// uniformly sampled height sequence and its spacing. numPointsMinusTx is the
// index of the last sample (len(heights)-1).
type terrainWindow struct {
	heights          []Meters
	sampleRes_m      Meters
	numPointsMinusTx int
}

func newTerrainWindow(heights []Meters, sampleRes_m Meters) terrainWindow {
	return terrainWindow{heights: heights, sampleRes_m: sampleRes_m, numPointsMinusTx: len(heights) - 1}
}

// fitLinearLeastSquares fits a line to w over the index window derived from
// [dStart, dEnd] and returns the fitted line's value at w's own two
// endpoints (index 0 and numPointsMinusTx) rather than at dStart/dEnd
// themselves. Callers must express dStart/dEnd in w's own distance units
// (dStart/sampleRes_m and dEnd/sampleRes_m are the window's index bounds) —
// passing distances from a different coordinate system than the one w was
// built in collapses or inverts the derived index window.
//
// The derived index window can still collapse (end <= start) for
// legitimately degenerate dStart/dEnd. When it collapses, the window is
// widened by one sample on each side rather than rejected; this reproduces
// a source behavior (see DESIGN.md, "Open Questions decided").
func fitLinearLeastSquares(w terrainWindow, dStart, dEnd Meters) (y1, y2 float64) {
	n := w.numPointsMinusTx

	startInd := int(math.Abs(dStart / w.sampleRes_m))
	endInd := n - int(math.Abs(float64(n)-dEnd/w.sampleRes_m))

	if endInd <= startInd {
		startInd = iabs(startInd - 1)
		endIndDiff := n - (endInd + 1)
		endInd = n - iabs(endIndDiff)
	}

	xLength := endInd - startInd
	simplelogger.AssertTrue(xLength > 0)

	midShifted := -0.5 * float64(xLength)
	midShiftedEnd := float64(endInd) + midShifted

	sumY := 0.5 * (w.heights[startInd] + w.heights[endInd])
	scaledSumY := 0.5 * (w.heights[startInd] - w.heights[endInd]) * midShifted

	movingInd := startInd
	for i := 2; i <= xLength; i++ {
		movingInd++
		midShifted++
		sumY += w.heights[movingInd]
		scaledSumY += w.heights[movingInd] * midShifted
	}

	sumY /= float64(xLength)
	scale := 12.0 / ((float64(xLength)*float64(xLength) + 2.0) * float64(xLength))
	scaledSumY *= scale

	y1 = sumY - scaledSumY*midShiftedEnd
	y2 = sumY + scaledSumY*(float64(n)-midShiftedEnd)
	return y1, y2
}
