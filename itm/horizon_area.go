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

// sitingEffHeight synthesizes a terminal's effective height from its
// antenna height and the path's terrain irregularity when no terrain
// profile exists (area-mode prediction), per the siting-criteria-based
// adjustment described in the component design's area-mode section. Not
// directly grounded in retrieved source (InitializeArea.cpp was not part
// of the retrieved original_source set) — reconstructed from the
// well-known NBS TN-101 qlra() siting adjustment; see DESIGN.md.
func sitingEffHeight(h_m Meters, deltaH_m Meters, siting SitingCriteria) Meters {
	var q float64
	switch siting {
	case Random:
		return h_m
	case Careful:
		q = 9.0
	case VeryCareful:
		q = 4.0
	default:
		q = 9.0
	}

	x := 0.1 * deltaH_m / math.Max(h_m, 5.0)
	return h_m + (10.0-q)*math.Sin(x*math.Pi/2.0)
}

// sitingHorizonDist synthesizes a terminal's horizon distance in area mode
// (setHorizonParametersArea derives the horizon angle from it), again from
// the siting-adjusted effective height, following the same qlra()-derived formula as
// sitingEffHeight: d_h = sqrt(2 h_e a_e) * exp(-0.07 sqrt(delta_h/max(h_e,5))).
func sitingHorizonDist(effHeight_m Meters, deltaH_m Meters, aE_m float64) Meters {
	return math.Sqrt(2*effHeight_m*aE_m) * math.Exp(-0.07*math.Sqrt(deltaH_m/math.Max(effHeight_m, 5.0)))
}

// setHorizonParametersArea fills in s.geo's horizon fields for area-mode
// prediction, where no terrain profile is available and the siting
// criteria substitute for explicit terrain obstruction.
func (s *state) setHorizonParametersArea() {
	aE := 1.0 / s.geo.GammaE_perM
	deltaH := s.geo.DeltaH_m

	txEff := sitingEffHeight(s.in.TxHeight_m, deltaH, s.txSiting)
	rxEff := sitingEffHeight(s.in.RxHeight_m, deltaH, s.rxSiting)

	txHzn := sitingHorizonDist(txEff, deltaH, aE)
	rxHzn := sitingHorizonDist(rxEff, deltaH, aE)

	g := &s.geo
	g.TxEffHeight_m = txEff
	g.RxEffHeight_m = rxEff
	g.TxHorizonDist_m = txHzn
	g.RxHorizonDist_m = rxHzn
	g.TxHorizonAngle = 0.5*txEff/txHzn - txHzn/(2.0*aE)
	g.RxHorizonAngle = 0.5*rxEff/rxHzn - rxHzn/(2.0*aE)
	g.PathDist_m = s.areaDist_km * 1000.0
}
