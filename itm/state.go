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

// InputParameters are the caller-supplied, immutable-for-the-call electrical
// and statistical parameters shared by both ComputeP2P and ComputeArea.
type InputParameters struct {
	TxHeight_m     Meters
	RxHeight_m     Meters
	Frequency_MHz  MegaHertz
	Polarization   Polarization
	Permittivity   float64 // relative permittivity, epsilon, >= 1
	Conductivity   float64 // S/m, > 0
	Refractivity_N float64 // N_0, surface refractivity in N-units
	Climate        RadioClimate
	VarMode        VariabilityMode
	TimePct        Percent
	LocationPct    Percent
	SituationPct   Percent
}

// TerrainProfile is the P2P terrain sample sequence: h[0] is the
// transmitter-side sample, h[N] the receiver-side sample, taken at uniform
// spacing SampleResolution_m along the great-circle path.
type TerrainProfile struct {
	Heights_m          []Meters
	SampleResolution_m Meters
}

// numPointsMinusTx is N in the component design: the number of samples minus
// one, i.e. the index of the last (receiver-side) sample.
func (p *TerrainProfile) numPointsMinusTx() int {
	return len(p.Heights_m) - 1
}

func (p *TerrainProfile) pathLength_m() Meters {
	return float64(p.numPointsMinusTx()) * p.SampleResolution_m
}

// DerivedGeometry is produced once per call and consumed by the reference
// attenuation and variability phases. Field names mirror the component
// design's notation (§4 of the design document).
type DerivedGeometry struct {
	GammaE_perM      float64 // effective-earth curvature
	Ns               float64 // surface refractivity at path-average elevation
	Zg               complex128
	TxHorizonAngle   Radians
	RxHorizonAngle   Radians
	TxHorizonDist_m  Meters
	RxHorizonDist_m  Meters
	TxEffHorizDist_m Meters
	RxEffHorizDist_m Meters
	TxEffHeight_m    Meters
	RxEffHeight_m    Meters
	DeltaH_m         Meters
	PathDist_m       Meters
}

// Result is the shared return shape of ComputeP2P and ComputeArea.
type Result struct {
	A_dB         Decibels
	ARef_dB      Decibels
	AFs_dB       Decibels
	DeltaH_m     Meters
	HorizonDist  [2]Meters // [tx, rx]
	EffHeight    [2]Meters // [tx, rx]
	HorizonAngle [2]Radians
	Ns           float64
	PropMode     PropagationMode
	Warnings     WarningFlag
}

// state is the call-scoped record threaded through every phase of a single
// ComputeP2P or ComputeArea invocation. Nothing here survives the call.
type state struct {
	in InputParameters

	isP2P   bool
	profile TerrainProfile // zero value in area mode

	// siting inputs (area mode only)
	txSiting, rxSiting SitingCriteria
	areaDist_km        Kilometers

	geo      DerivedGeometry
	warnings WarningFlag

	propMode PropagationMode
}
