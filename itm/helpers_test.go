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
)

func TestFreeSpaceLossIncreasesWithFrequency(t *testing.T) {
	low := freeSpaceLoss_dB(10000, 100)
	high := freeSpaceLoss_dB(10000, 1000)
	assert.Greater(t, high, low)
}

func TestFreeSpaceLossIncreasesWithDistance(t *testing.T) {
	near := freeSpaceLoss_dB(1000, 100)
	far := freeSpaceLoss_dB(10000, 100)
	assert.Greater(t, far, near)
}

func TestFresnelIntegralContinuousAtBreakpoint(t *testing.T) {
	below := fresnelIntegral(2.399)
	above := fresnelIntegral(2.4)
	assert.InDelta(t, below, above, 0.05)
}

func TestTerrainRoughnessBoundedByDeltaH(t *testing.T) {
	deltaH := 50.0
	rough := terrainRoughness(1000, deltaH)
	assert.Less(t, rough, deltaH)
	assert.Greater(t, rough, 0.0)
}

func TestClampScatterEfficiency(t *testing.T) {
	assert.Equal(t, 1.0, clampScatterEfficiency(0.2))
	assert.Equal(t, 5.0, clampScatterEfficiency(8.0))
	assert.Equal(t, 3.0, clampScatterEfficiency(3.0))
}

func TestTropoAttenuationFunctionMonotonic(t *testing.T) {
	a := tropoAttenuationFunction(5000)
	b := tropoAttenuationFunction(50000)
	c := tropoAttenuationFunction(500000)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestHeightGainFunctionAtOrigin(t *testing.T) {
	v := heightGainFunction(0.5, 1.0)
	assert.Equal(t, -14.99999375, v)
}
