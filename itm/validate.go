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

// validateInputs checks the hard and soft ranges of §3/§4.1 of the component
// design. Hard violations return a *DomainError immediately; soft violations
// accumulate as warnings on s and never fault.
func (s *state) validateInputs() error {
	in := &s.in

	if in.TxHeight_m < 0.5 || in.TxHeight_m > 3000 {
		return newDomainError(ErrHeightOutOfRange, "txHeight_m", in.TxHeight_m)
	}
	if in.RxHeight_m < 0.5 || in.RxHeight_m > 3000 {
		return newDomainError(ErrHeightOutOfRange, "rxHeight_m", in.RxHeight_m)
	}
	if in.TxHeight_m < 1 || in.TxHeight_m > 1000 {
		s.warnings |= WarnTxHeightSoftRange
	}
	if in.RxHeight_m < 1 || in.RxHeight_m > 1000 {
		s.warnings |= WarnRxHeightSoftRange
	}

	if in.Refractivity_N < 250 || in.Refractivity_N > 400 {
		return newDomainError(ErrRefractivityOutOfRange, "refractivity_N", in.Refractivity_N)
	}

	if in.Frequency_MHz < 20 || in.Frequency_MHz > 20000 {
		return newDomainError(ErrFrequencyOutOfRange, "frequency_MHz", in.Frequency_MHz)
	}
	if in.Frequency_MHz < 40 || in.Frequency_MHz > 10000 {
		s.warnings |= WarnFrequencySoftRange
	}

	if in.Permittivity < 1 {
		return newDomainError(ErrPermittivityOutOfRange, "permittivity", in.Permittivity)
	}
	if in.Conductivity <= 0 {
		return newDomainError(ErrConductivityOutOfRange, "conductivity", in.Conductivity)
	}

	if in.TimePct <= 0 || in.TimePct >= 100 {
		return newDomainError(ErrPercentOutOfRange, "timePct", in.TimePct)
	}
	if in.LocationPct <= 0 || in.LocationPct >= 100 {
		return newDomainError(ErrPercentOutOfRange, "locationPct", in.LocationPct)
	}
	if in.SituationPct <= 0 || in.SituationPct >= 100 {
		return newDomainError(ErrPercentOutOfRange, "situationPct", in.SituationPct)
	}

	if s.isP2P {
		if s.profile.SampleResolution_m <= 0 {
			return newDomainError(ErrPathGeometry, "sampleResolution_m", s.profile.SampleResolution_m)
		}
		if s.profile.numPointsMinusTx() < 1 {
			return newDomainError(ErrPathGeometry, "numPoints", float64(len(s.profile.Heights_m)))
		}
	} else {
		if s.areaDist_km <= 0 {
			return newDomainError(ErrPathGeometry, "dist_km", s.areaDist_km)
		}
		if s.geo.DeltaH_m < 0 {
			return newDomainError(ErrPathGeometry, "deltaH_m", s.geo.DeltaH_m)
		}
	}

	return nil
}

// validateIntermediates applies the reference implementation's
// intermediate-value sanity checks once the horizon geometry is known. Every
// check here is a warning, never fatal, following §7's propagation policy
// that regime choices never fault.
func (s *state) validateIntermediates() {
	g := &s.geo

	if math.Abs(g.TxHorizonAngle) > 200e-3 {
		s.warnings |= WarnTxHorizonAngle
	}
	if math.Abs(g.RxHorizonAngle) > 200e-3 {
		s.warnings |= WarnRxHorizonAngle
	}

	aE := 1.0 / g.GammaE_perM
	txHznS := smoothEarthHorizonDist(s.in.TxHeight_m, aE)
	rxHznS := smoothEarthHorizonDist(s.in.RxHeight_m, aE)

	if g.TxHorizonDist_m < 0.1*txHznS {
		s.warnings |= WarnTxHorizonDistanceLow
	}
	if g.TxHorizonDist_m > 3*txHznS {
		s.warnings |= WarnTxHorizonDistanceHigh
	}
	if g.RxHorizonDist_m < 0.1*rxHznS {
		s.warnings |= WarnRxHorizonDistanceLow
	}
	if g.RxHorizonDist_m > 3*rxHznS {
		s.warnings |= WarnRxHorizonDistanceHigh
	}

	if g.Ns < 250 {
		s.warnings |= WarnSurfaceRefractivity
	}

	minPathDist_m := math.Abs(g.TxEffHeight_m-g.RxEffHeight_m) / 0.2
	if g.PathDist_m < minPathDist_m {
		s.warnings |= WarnPathDistanceTooSmall
	}
	if g.PathDist_m < 1000 {
		s.warnings |= WarnPathDistanceTooSmallSevere
	}
	if g.PathDist_m > 1.0e6 {
		s.warnings |= WarnPathDistanceTooBig
	}
	if g.PathDist_m > 2.0e6 {
		s.warnings |= WarnPathDistanceTooBigSevere
	}
}

// smoothEarthHorizonDist is the distance to the horizon of a smooth effective
// earth of radius a_e as seen from a terminal at height h.
func smoothEarthHorizonDist(h_m Meters, aE_m float64) Meters {
	return math.Sqrt(2 * h_m * aE_m)
}
