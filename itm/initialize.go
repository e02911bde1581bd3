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
	"math/cmplx"

	. "github.com/openthread/ot-ns/itmtypes"
)

// initializeCommon derives the surface refractivity, effective-earth
// curvature, and complex ground impedance shared by both modes, given the
// path's average elevation above mean sea level (0 in area mode, since no
// terrain profile exists to average). [TN101, Eq 4.3/4.4].
func (s *state) initializeCommon(avgPathHeightAmsl_m Meters) {
	g := &s.geo
	in := &s.in

	if avgPathHeightAmsl_m <= 0.0 {
		g.Ns = in.Refractivity_N
	} else {
		g.Ns = in.Refractivity_N * math.Exp(-avgPathHeightAmsl_m/9460.0)
	}

	curvatureScale := 1.0 - 0.04665*math.Exp(g.Ns/179.3)
	g.GammaE_perM = gamma0_perM * curvatureScale

	relPermittivity := complex(in.Permittivity, 18.0e3*in.Conductivity/in.Frequency_MHz)
	zg := cmplx.Sqrt(relPermittivity - 1.0)
	if in.Polarization == Vertical {
		zg /= relPermittivity
	}
	g.Zg = zg
}
