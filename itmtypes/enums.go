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

package itmtypes

import "github.com/simonlingoogle/go-simplelogger"

// RadioClimate selects the row of tabulated climate constants used by the
// variability calculation.
type RadioClimate int

const (
	Equatorial RadioClimate = iota + 1
	ContinentalSubtropical
	MaritimeSubtropical
	Desert
	ContinentalTemperate
	MaritimeTemperateOverLand
	MaritimeTemperateOverSea
)

func (c RadioClimate) String() string {
	switch c {
	case Equatorial:
		return "Equatorial"
	case ContinentalSubtropical:
		return "ContinentalSubtropical"
	case MaritimeSubtropical:
		return "MaritimeSubtropical"
	case Desert:
		return "Desert"
	case ContinentalTemperate:
		return "ContinentalTemperate"
	case MaritimeTemperateOverLand:
		return "MaritimeTemperateOverLand"
	case MaritimeTemperateOverSea:
		return "MaritimeTemperateOverSea"
	default:
		simplelogger.Panicf("invalid RadioClimate: %v", int(c))
		return "invalid"
	}
}

// VariabilityMode picks which of the three variability components (time,
// location, situation) are combined, and how.
type VariabilityMode int

const (
	SingleMessageMode VariabilityMode = iota
	AccidentalMode
	MobileMode
	BroadcastMode
)

func (m VariabilityMode) String() string {
	switch m {
	case SingleMessageMode:
		return "SingleMessage"
	case AccidentalMode:
		return "Accidental"
	case MobileMode:
		return "Mobile"
	case BroadcastMode:
		return "Broadcast"
	default:
		simplelogger.Panicf("invalid VariabilityMode: %v", int(m))
		return "invalid"
	}
}

// Polarization is the transmitting antenna's polarization, which selects how
// the ground impedance is derived from the relative permittivity.
type Polarization int

const (
	Horizontal Polarization = iota
	Vertical
)

func (p Polarization) String() string {
	switch p {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		simplelogger.Panicf("invalid Polarization: %v", int(p))
		return "invalid"
	}
}

// SitingCriteria describes how carefully a terminal was sited relative to
// its surrounding clutter, for area-mode effective height synthesis.
type SitingCriteria int

const (
	Random SitingCriteria = iota
	Careful
	VeryCareful
)

func (s SitingCriteria) String() string {
	switch s {
	case Random:
		return "Random"
	case Careful:
		return "Careful"
	case VeryCareful:
		return "VeryCareful"
	default:
		simplelogger.Panicf("invalid SitingCriteria: %v", int(s))
		return "invalid"
	}
}

// PropagationMode identifies which of the three regimes (line-of-sight,
// diffraction, troposcatter) the reference attenuation was computed in.
type PropagationMode int

const (
	NotSet PropagationMode = iota
	LineOfSight
	Diffraction
	Troposcatter
)

func (m PropagationMode) String() string {
	switch m {
	case NotSet:
		return "NotSet"
	case LineOfSight:
		return "LineOfSight"
	case Diffraction:
		return "Diffraction"
	case Troposcatter:
		return "Troposcatter"
	default:
		simplelogger.Panicf("invalid PropagationMode: %v", int(m))
		return "invalid"
	}
}

// ErrorKind classifies a caller-facing validation failure (see itm.DomainError).
type ErrorKind int

const (
	ErrHeightOutOfRange ErrorKind = iota
	ErrRefractivityOutOfRange
	ErrFrequencyOutOfRange
	ErrPermittivityOutOfRange
	ErrConductivityOutOfRange
	ErrPercentOutOfRange
	ErrPathGeometry
	ErrSitingCriteria
)

func (k ErrorKind) String() string {
	switch k {
	case ErrHeightOutOfRange:
		return "HeightOutOfRange"
	case ErrRefractivityOutOfRange:
		return "RefractivityOutOfRange"
	case ErrFrequencyOutOfRange:
		return "FrequencyOutOfRange"
	case ErrPermittivityOutOfRange:
		return "PermittivityOutOfRange"
	case ErrConductivityOutOfRange:
		return "ConductivityOutOfRange"
	case ErrPercentOutOfRange:
		return "PercentOutOfRange"
	case ErrPathGeometry:
		return "PathGeometry"
	case ErrSitingCriteria:
		return "SitingCriteria"
	default:
		simplelogger.Panicf("invalid ErrorKind: %v", int(k))
		return "invalid"
	}
}

// WarningFlag is a bit-set of non-fatal conditions noticed while computing a
// result: the caller-facing ones from spec (§7) and the intermediate-value
// sanity checks the reference implementation tracks internally.
type WarningFlag uint32

const (
	WarnTxHeightSoftRange WarningFlag = 1 << iota
	WarnRxHeightSoftRange
	WarnFrequencySoftRange
	WarnTxHorizonAngle
	WarnRxHorizonAngle
	WarnTxHorizonDistanceLow
	WarnRxHorizonDistanceLow
	WarnTxHorizonDistanceHigh
	WarnRxHorizonDistanceHigh
	WarnSurfaceRefractivity
	WarnPathDistanceTooSmall
	WarnPathDistanceTooSmallSevere
	WarnPathDistanceTooBig
	WarnPathDistanceTooBigSevere
)

// Names decodes a WarningFlag bit-set into its component names, in ascending
// bit order, for diagnostic reporting.
func (w WarningFlag) Names() []string {
	var names []string
	table := []struct {
		bit  WarningFlag
		name string
	}{
		{WarnTxHeightSoftRange, "TxHeightSoftRange"},
		{WarnRxHeightSoftRange, "RxHeightSoftRange"},
		{WarnFrequencySoftRange, "FrequencySoftRange"},
		{WarnTxHorizonAngle, "TxHorizonAngle"},
		{WarnRxHorizonAngle, "RxHorizonAngle"},
		{WarnTxHorizonDistanceLow, "TxHorizonDistanceLow"},
		{WarnRxHorizonDistanceLow, "RxHorizonDistanceLow"},
		{WarnTxHorizonDistanceHigh, "TxHorizonDistanceHigh"},
		{WarnRxHorizonDistanceHigh, "RxHorizonDistanceHigh"},
		{WarnSurfaceRefractivity, "SurfaceRefractivity"},
		{WarnPathDistanceTooSmall, "PathDistanceTooSmall"},
		{WarnPathDistanceTooSmallSevere, "PathDistanceTooSmallSevere"},
		{WarnPathDistanceTooBig, "PathDistanceTooBig"},
		{WarnPathDistanceTooBigSevere, "PathDistanceTooBigSevere"},
	}
	for _, e := range table {
		if w&e.bit != 0 {
			names = append(names, e.name)
		}
	}
	return names
}
