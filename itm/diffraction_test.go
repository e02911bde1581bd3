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

func baseDiffractionParams() diffractionParams {
	return diffractionParams{
		aE_m:            8.5e6,
		txHorizonDist_m: 15000,
		rxHorizonDist_m: 15000,
		txEffHeight_m:   15,
		rxEffHeight_m:   15,
		txHeight_m:      15,
		rxHeight_m:      15,
		deltaH_m:        20,
		freq_MHz:        100,
		zg:              complex(15, 8),
		isP2P:           true,
		thetaLoS_rad:    -0.001,
		dSmoothML_m:     30000,
	}
}

func TestSmoothEarthDiffractionLossIncreasesWithDistance(t *testing.T) {
	p := baseDiffractionParams()
	near := smoothEarthDiffractionLoss_dB(p, 40000)
	far := smoothEarthDiffractionLoss_dB(p, 80000)
	assert.Greater(t, far, near)
}

func TestKnifeEdgeDiffractionLossIncreasesWithDistance(t *testing.T) {
	p := baseDiffractionParams()
	near := knifeEdgeDiffractionLoss_dB(p, 40000)
	far := knifeEdgeDiffractionLoss_dB(p, 80000)
	assert.Greater(t, far, near)
}

func TestClutterFactorClampedAt15dB(t *testing.T) {
	got := clutterFactor_dB(1000, 1000, 10000, 500)
	assert.Equal(t, 15.0, got)
}

func TestClutterFactorZeroAtZeroRoughness(t *testing.T) {
	got := clutterFactor_dB(15, 15, 100, 0)
	assert.Equal(t, 0.0, got)
}

func TestDiffractionLossIsWeightedBlendOfItsComponents(t *testing.T) {
	p := baseDiffractionParams()
	d := 50000.0

	a := diffractionLoss_dB(p, d)
	aKnife := knifeEdgeDiffractionLoss_dB(p, d)
	aSmooth := smoothEarthDiffractionLoss_dB(p, d)

	lo := aKnife
	if aSmooth < lo {
		lo = aSmooth
	}
	// the clutter factor is always >= 0, so the blend can only land at or
	// above the lower of the two diffraction components.
	assert.GreaterOrEqual(t, a, lo)
}

func TestGroundParamKScalesWithEarthRadiusRatio(t *testing.T) {
	zgMag := cmplxAbs(complex(15, 8))
	small := groundParamK(100, zgMag, 1.0)
	large := groundParamK(100, zgMag, 2.0)
	assert.Greater(t, large, small)
}
