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

func TestQinvnorm(t *testing.T) {
	cases := []struct {
		q        float64
		expected float64
	}{
		{0.5, 0.0},
		{0.1, 1.2816},
		{0.9, -1.2816},
		{0.01, 2.3263},
		{0.99, -2.3263},
	}
	for _, c := range cases {
		got := qinvnorm(c.q)
		assert.InDelta(t, c.expected, got, 5e-3, "qinvnorm(%v)", c.q)
	}
}

func TestQinvnormSymmetry(t *testing.T) {
	for _, q := range []float64{0.05, 0.2, 0.37, 0.42} {
		assert.InDelta(t, -qinvnorm(q), qinvnorm(1.0-q), 1e-9)
	}
}

func TestIabs(t *testing.T) {
	assert.Equal(t, 5, iabs(-5))
	assert.Equal(t, 5, iabs(5))
	assert.Equal(t, 0, iabs(0))
}

func TestFitLinearLeastSquaresFlat(t *testing.T) {
	heights := make([]float64, 21)
	for i := range heights {
		heights[i] = 100.0
	}
	w := newTerrainWindow(heights, 1.0)
	y1, y2 := fitLinearLeastSquares(w, 0, 20)
	assert.InDelta(t, 100.0, y1, 1e-9)
	assert.InDelta(t, 100.0, y2, 1e-9)
}

func TestFitLinearLeastSquaresSlope(t *testing.T) {
	heights := make([]float64, 11)
	for i := range heights {
		heights[i] = float64(i) * 10.0
	}
	w := newTerrainWindow(heights, 1.0)
	y1, y2 := fitLinearLeastSquares(w, 0, 10)
	assert.InDelta(t, heights[0], y1, 1e-6)
	assert.InDelta(t, heights[10], y2, 1e-6)
}

// A degenerate [dStart,dEnd] window that collapses the derived index range
// is widened by one sample on each side rather than rejected.
func TestFitLinearLeastSquaresWidenOnCollapse(t *testing.T) {
	heights := make([]float64, 5)
	for i := range heights {
		heights[i] = float64(i)
	}
	w := newTerrainWindow(heights, 1.0)
	assert.NotPanics(t, func() {
		fitLinearLeastSquares(w, 2, 2)
	})
}
