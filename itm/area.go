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
	. "github.com/openthread/ot-ns/itmtypes"
)

// ComputeArea predicts propagation loss using only the statistical
// terrain irregularity (deltaH_m) and siting criteria for each terminal,
// with no explicit terrain profile. It synthesizes the horizon geometry
// that ComputeP2P derives from the profile, then shares the same
// reference-attenuation and variability phases.
func ComputeArea(in InputParameters, dist_km Kilometers, deltaH_m Meters, txSiting, rxSiting SitingCriteria) (Result, error) {
	s := &state{
		in:          in,
		isP2P:       false,
		areaDist_km: dist_km,
		txSiting:    txSiting,
		rxSiting:    rxSiting,
	}
	s.geo.DeltaH_m = deltaH_m

	if err := s.validateInputs(); err != nil {
		return Result{}, err
	}

	s.initializeCommon(0)
	s.setHorizonParametersArea()
	s.validateIntermediates()

	ref := s.computeReference()
	s.propMode = ref.propMode

	afs := freeSpaceLoss_dB(s.geo.PathDist_m, in.Frequency_MHz)
	aRefTotal := afs + ref.aRef_dB
	a := s.applyVariability(aRefTotal)

	return Result{
		A_dB:         a,
		ARef_dB:      aRefTotal,
		AFs_dB:       afs,
		DeltaH_m:     s.geo.DeltaH_m,
		HorizonDist:  [2]Meters{s.geo.TxHorizonDist_m, s.geo.RxHorizonDist_m},
		EffHeight:    [2]Meters{s.geo.TxEffHeight_m, s.geo.RxEffHeight_m},
		HorizonAngle: [2]Radians{s.geo.TxHorizonAngle, s.geo.RxHorizonAngle},
		Ns:           s.geo.Ns,
		PropMode:     s.propMode,
		Warnings:     s.warnings,
	}, nil
}
