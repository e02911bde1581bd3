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
	"sort"

	"github.com/simonlingoogle/go-simplelogger"

	. "github.com/openthread/ot-ns/itmtypes"
)

// pathAverageHeight_m is the mean terrain elevation over the interior 80% of
// the path (the outer 10% on each side is excluded), used to scale N_0 down
// to the path's surface refractivity.
func (p *TerrainProfile) pathAverageHeight_m() Meters {
	n := p.numPointsMinusTx()
	tenth := int(0.1 * float64(n))

	sum := 0.0
	for i := tenth; i <= n-tenth; i++ {
		sum += p.Heights_m[i]
	}
	return sum / float64(n-2*tenth+1)
}

// computeTerrainIrregularity_m is delta_h: the interdecile range of
// detrended terrain over [dStart,dEnd], computed on a resampled interior
// window of up to 245 uniformly-spaced points, divided back out by the
// roughness-distance deflation for the window's own length so it represents
// the full-path irregularity.
//
// A [dStart,dEnd] window spanning fewer than two original sample spacings
// yields 0 (not enough data to estimate irregularity).
func computeTerrainIrregularity_m(p *TerrainProfile, dStart, dEnd Meters) Meters {
	n := p.numPointsMinusTx()
	s := p.SampleResolution_m

	xStart := dStart / s
	xEnd := dEnd / s

	if xEnd-xStart < 2.0 {
		return 0.0
	}

	tenPercentInd := int(0.1 * (xEnd - xStart + 8.0))
	if tenPercentInd < 4 {
		tenPercentInd = 4
	}
	if tenPercentInd > 25 {
		tenPercentInd = 25
	}

	maxInd := 10*tenPercentInd - 5
	simplelogger.AssertTrue(maxInd > 0)
	ninetyPercentInd := maxInd - tenPercentInd
	adjNumPointsMinusTx := maxInd - 1

	step := (xEnd - xStart) / float64(adjNumPointsMinusTx)
	xInd := int(xStart)
	frac := xStart - float64(xInd) - 1.0

	resampled := make([]Meters, maxInd)
	for i := 0; i < maxInd; i++ {
		for frac > 0.0 && xInd+1 < n {
			frac--
			xInd++
		}
		resampled[i] = p.Heights_m[xInd+1] + (p.Heights_m[xInd+1]-p.Heights_m[xInd])*frac
		frac += step
	}

	win := terrainWindow{heights: resampled, sampleRes_m: 1.0, numPointsMinusTx: adjNumPointsMinusTx}
	y1, y2 := fitLinearLeastSquares(win, 0, float64(adjNumPointsMinusTx))
	slope := (y2 - y1) / float64(adjNumPointsMinusTx)

	residuals := make([]float64, maxInd)
	cur := y1
	for i := 0; i < maxInd; i++ {
		residuals[i] = resampled[i] - cur
		cur += slope
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(residuals)))
	q10 := residuals[tenPercentInd-1]
	q90 := residuals[ninetyPercentInd]

	deltaH := q10 - q90
	return deltaH / (1.0 - 0.8*math.Exp(-(dEnd-dStart)/50.0e3))
}
