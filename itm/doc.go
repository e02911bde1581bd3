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

// Package itm implements the Irregular Terrain Model propagation-loss
// pipeline: terrain analysis, horizon geometry, the line-of-sight/diffraction/
// troposcatter regime models, the Longley-Rice blend across regimes, and the
// statistical variability adjustment. The package performs no I/O and holds
// no state between calls; every computation is driven off a call-scoped
// *state built by ComputeP2P or ComputeArea.
package itm

const (
	// earthRadius_m is the WGS-84 mean earth radius.
	earthRadius_m = 6371008.7714

	// gamma0_perM is the curvature of a true (non-effective) earth.
	gamma0_perM = 1.0 / earthRadius_m

	// waveToMHzFreqTerm is c / (2*pi*1e6), converting a wavenumber term to a
	// per-MHz quantity. Denoted c-tilde in the component design.
	waveToMHzFreqTerm = speedOfLight_mPerS * 1.0e-6 / (2 * pi)

	speedOfLight_mPerS = 299792458.0

	pi = 3.1415926535897932384

	defaultMaxLoss_dB = 999.0
)
