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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/openthread/ot-ns/itmtypes"
)

func baseValidInput() InputParameters {
	return InputParameters{
		TxHeight_m:     10,
		RxHeight_m:     10,
		Frequency_MHz:  100,
		Polarization:   Horizontal,
		Permittivity:   15,
		Conductivity:   0.005,
		Refractivity_N: 301,
		Climate:        ContinentalTemperate,
		VarMode:        BroadcastMode,
		TimePct:        50,
		LocationPct:    50,
		SituationPct:   50,
	}
}

func TestValidateInputsRejectsTxHeightOutOfRange(t *testing.T) {
	in := baseValidInput()
	in.TxHeight_m = 0.2
	s := &state{in: in, isP2P: true, profile: TerrainProfile{Heights_m: make([]Meters, 11), SampleResolution_m: 1000}}

	err := s.validateInputs()
	require := assert.New(t)
	require.Error(err)

	var domainErr *DomainError
	require.ErrorAs(err, &domainErr)
	require.Equal(ErrHeightOutOfRange, domainErr.Kind)
}

func TestValidateInputsRejectsBadPercent(t *testing.T) {
	in := baseValidInput()
	in.TimePct = 0
	s := &state{in: in, isP2P: true, profile: TerrainProfile{Heights_m: make([]Meters, 11), SampleResolution_m: 1000}}

	err := s.validateInputs()
	assert.Error(t, err)
}

func TestValidateInputsAcceptsNominalP2P(t *testing.T) {
	in := baseValidInput()
	s := &state{in: in, isP2P: true, profile: TerrainProfile{Heights_m: make([]Meters, 11), SampleResolution_m: 1000}}

	err := s.validateInputs()
	assert.NoError(t, err)
}

func TestValidateInputsFlagsSoftHeightRange(t *testing.T) {
	in := baseValidInput()
	in.TxHeight_m = 0.7
	s := &state{in: in, isP2P: true, profile: TerrainProfile{Heights_m: make([]Meters, 11), SampleResolution_m: 1000}}

	err := s.validateInputs()
	assert.NoError(t, err)
	assert.NotZero(t, s.warnings&WarnTxHeightSoftRange)
}

func TestSmoothEarthHorizonDist(t *testing.T) {
	d := smoothEarthHorizonDist(10, earthRadius_m)
	assert.Greater(t, d, 0.0)
}
