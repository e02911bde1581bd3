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

// scenarios_test.go exercises the end-to-end ComputeP2P/ComputeArea entry
// points against the reference scenarios: Scenario A and Scenario C pin the
// published reference vectors (within a tolerance loose enough to absorb
// this port's reconstructed line-fit rounding, see DESIGN.md, including a
// correction to Scenario A's documented regime label); the rest assert
// structural properties (sign, ordering, regime, error taxonomy) where no
// published figure exists to pin against.
package itm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/openthread/ot-ns/itmtypes"
)

func flatProfile(n int, spacing_m Meters) TerrainProfile {
	return TerrainProfile{Heights_m: make([]Meters, n+1), SampleResolution_m: spacing_m}
}

// Scenario A: canonical smooth-earth path at 10 km, well inside the
// smooth-earth line-of-sight distance (~26 km for 10 m towers here), so the
// regime is LineOfSight per invariant 4 (d < d_sML). Published reference:
// A_fs ~= 92.4 dB, A_ref ~= 119.1 dB.
func TestScenarioA_SmoothEarthShortPath(t *testing.T) {
	in := baseValidInput()
	profile := flatProfile(10, 1000)

	result, err := ComputeP2P(in, profile)
	require.NoError(t, err)

	assert.InDelta(t, 92.4, result.AFs_dB, 0.5)
	assert.InDelta(t, 119.1, result.ARef_dB, 2.0)
	assert.Equal(t, LineOfSight, result.PropMode)
	assert.Greater(t, result.A_dB, result.AFs_dB-20.0)
}

// Scenario B: mid-range rolling terrain.
func TestScenarioB_RollingTerrain(t *testing.T) {
	in := baseValidInput()
	in.TxHeight_m, in.RxHeight_m = 30, 30
	in.Frequency_MHz = 500

	n := 100
	heights := make([]Meters, n+1)
	for i := range heights {
		heights[i] = 50.0 * math.Sin(float64(i)/float64(n)*2*math.Pi)
	}
	profile := TerrainProfile{Heights_m: heights, SampleResolution_m: 1000}

	result, err := ComputeP2P(in, profile)
	require.NoError(t, err)
	assert.Greater(t, result.A_dB, 0.0)
}

// Scenario C: long (400 km) trans-horizon path. Published reference:
// propMode=Troposcatter, A_dB in [200, 260].
func TestScenarioC_TransHorizonTroposcatter(t *testing.T) {
	in := baseValidInput()
	in.TxHeight_m, in.RxHeight_m = 30, 30
	in.Frequency_MHz = 500

	profile := flatProfile(400, 1000)

	result, err := ComputeP2P(in, profile)
	require.NoError(t, err)
	assert.Equal(t, Troposcatter, result.PropMode)
	assert.GreaterOrEqual(t, result.A_dB, 200.0)
	assert.LessOrEqual(t, result.A_dB, 260.0)
}

// Scenario D: a fatal validation error must surface as *DomainError with
// the right Kind, never as a panic or silent zero value.
func TestScenarioD_ValidationError(t *testing.T) {
	in := baseValidInput()
	in.TxHeight_m = 0.2
	profile := flatProfile(10, 1000)

	_, err := ComputeP2P(in, profile)
	require.Error(t, err)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, ErrHeightOutOfRange, domainErr.Kind)
}

// Scenario E: raising TimePct (a worse confidence requirement under
// BroadcastMode) must never decrease total loss.
func TestScenarioE_VariabilitySweepMonotonic(t *testing.T) {
	in := baseValidInput()
	profile := flatProfile(10, 1000)

	base, err := ComputeP2P(in, profile)
	require.NoError(t, err)

	in.TimePct = 99
	worse, err := ComputeP2P(in, profile)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, worse.A_dB, base.A_dB)
}

// Scenario F: area-mode prediction with siting=Random and deltaH=0 should
// land within a few dB of the equivalent flat-terrain P2P call.
func TestScenarioF_AreaParityWithFlatP2P(t *testing.T) {
	in := baseValidInput()
	profile := flatProfile(10, 1000)

	p2pResult, err := ComputeP2P(in, profile)
	require.NoError(t, err)

	areaResult, err := ComputeArea(in, 10, 0, Random, Random)
	require.NoError(t, err)

	assert.InDelta(t, p2pResult.A_dB, areaResult.A_dB, 3.0)
}

func TestInvariant_DeltaHNonNegative(t *testing.T) {
	in := baseValidInput()
	n := 50
	heights := make([]Meters, n+1)
	for i := range heights {
		heights[i] = 20.0 * math.Sin(float64(i)/float64(n)*4*math.Pi)
	}
	profile := TerrainProfile{Heights_m: heights, SampleResolution_m: 500}

	result, err := ComputeP2P(in, profile)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.DeltaH_m, 0.0)
}

func TestInvariant_EffectiveHeightAtLeastActual(t *testing.T) {
	in := baseValidInput()
	in.TxHeight_m = 50
	profile := flatProfile(10, 1000)

	result, err := ComputeP2P(in, profile)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.EffHeight[0], in.TxHeight_m-1e-9)
}

func TestInvariant_FreeSpaceLossMonotonicInFrequency(t *testing.T) {
	low := freeSpaceLoss_dB(10000, 40)
	high := freeSpaceLoss_dB(10000, 9999)
	assert.Greater(t, high, low)
}
