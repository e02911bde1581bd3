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

import . "github.com/openthread/ot-ns/itmtypes"

// climateParams holds the per-climate coefficients for the variability
// model's location-variability standard deviation, [TN101v1, Table III.4].
type climateParams struct {
	stdDevGigerV  float64
	stdDevGigerH  float64
	climateBias   Decibels
}

// climateTable indexes climateParams by RadioClimate, [Algorithm, 6.25].
var climateTable = map[RadioClimate]climateParams{
	Equatorial:                {stdDevGigerV: 8.0, stdDevGigerH: 8.0, climateBias: 0.27},
	ContinentalSubtropical:    {stdDevGigerV: 6.0, stdDevGigerH: 6.0, climateBias: 0.0},
	MaritimeSubtropical:       {stdDevGigerV: 6.0, stdDevGigerH: 6.0, climateBias: 0.0},
	Desert:                    {stdDevGigerV: 5.0, stdDevGigerH: 5.0, climateBias: 0.0},
	ContinentalTemperate:      {stdDevGigerV: 5.0, stdDevGigerH: 5.0, climateBias: 0.0},
	MaritimeTemperateOverLand: {stdDevGigerV: 5.5, stdDevGigerH: 5.5, climateBias: 0.0},
	MaritimeTemperateOverSea:  {stdDevGigerV: 4.5, stdDevGigerH: 4.5, climateBias: -1.0},
}
