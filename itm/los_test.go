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

func baseLosParams() losParams {
	return losParams{
		txEffHeight_m: 15,
		rxEffHeight_m: 15,
		freq_MHz:      100,
		zg:            complex(15, 8),
		deltaH_m:      20,
		dSmoothML_m:   30000,
	}
}

// At a slope/intercept of zero, losLoss_dB reduces to the weighted two-ray
// interference term. For this near-grazing geometry the reflection
// coefficient is close to -1 and the small phase difference leaves the
// reflected ray largely cancelling the direct ray, so the loss is positive.
func TestLosLossNonNegativeWhenDiffractionLineIsZero(t *testing.T) {
	p := baseLosParams()
	got := losLoss_dB(p, 10000, 0.0, 0.0)
	assert.GreaterOrEqual(t, got, 0.0)
}

// With deltaH_m == 0 the blend weight is 1, so the result is the pure
// two-ray term and not the extended diffraction line's value.
func TestLosLossIsPureTwoRayWhenDeltaHIsZero(t *testing.T) {
	p := baseLosParams()
	p.deltaH_m = 0 // forces weight w=1 (pure two-ray)
	got := losLoss_dB(p, 10000, 2.0e-3, 5.0)

	// with deltaH_m == 0 the blend weight collapses to 1 (pure two-ray);
	// assert the result differs from the line's own value, confirming the
	// two-ray term is actually doing the work rather than being bypassed.
	diffractOnly := 2.0e-3*10000 + 5.0
	assert.NotEqual(t, diffractOnly, got)
}
