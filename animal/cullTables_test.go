// cullTables tests
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package animal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParityCullRate(t *testing.T) {
	tb := DefaultCullTables()

	tests := []struct {
		parity int
		rate   float64
	}{
		{0, 0.169},
		{1, 0.169},
		{2, 0.233},
		{3, 0.301},
		{4, 0.408},
		{9, 0.408},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rate, tb.ParityCullRate(tt.parity), "parity %d", tt.parity)
	}
}

func TestCauseFor(t *testing.T) {
	tb := DefaultCullTables()

	tests := []struct {
		r     float64
		cause CullCause
	}{
		{0, FeetLeg},
		{0.1633, FeetLeg},
		{0.2, Injury},
		{0.5, Mastitis},
		{0.8, Disease},
		{0.85, Udder},
		{0.95, Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.cause, tb.CauseFor(tt.r), "r %v", tt.r)
	}
}

func TestCullDayOffsetBounds(t *testing.T) {
	tb := DefaultCullTables()

	for c := 0; c < NumCullCauses; c++ {
		for r := 0.0; r < 1; r += 0.001 {
			d := tb.CullDayOffset(CullCause(c), r)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 530.0)
		}
		assert.Equal(t, 0.0, tb.CullDayOffset(CullCause(c), 0))
		assert.InDelta(t, 530.0, tb.CullDayOffset(CullCause(c), 1), 1e-9)
	}
}

func TestCullDayOffsetInterpolates(t *testing.T) {
	tb := DefaultCullTables()

	// Injury 0.08 to 0.18 covers days 5 to 15
	assert.InDelta(t, 10.0, tb.CullDayOffset(Injury, 0.13), 1e-9)
	assert.InDelta(t, 5.0, tb.CullDayOffset(Injury, 0.08), 1e-9)
}

func TestCullDayOffsetZeroWidth(t *testing.T) {
	tb := CullTables{DayCount: []float64{0, 10, 20}}
	tb.CauseCp[FeetLeg] = []float64{0, 1, 1}

	assert.Equal(t, 10.0, tb.CullDayOffset(FeetLeg, 1))
	assert.InDelta(t, 5.0, tb.CullDayOffset(FeetLeg, 0.5), 1e-9)
}

func TestParseCullCause(t *testing.T) {
	c, ok := ParseCullCause("feetleg")
	require.True(t, ok)
	assert.Equal(t, FeetLeg, c)

	c, ok = ParseCullCause("Feet Leg")
	require.True(t, ok)
	assert.Equal(t, FeetLeg, c)

	c, ok = ParseCullCause("MASTITIS")
	require.True(t, ok)
	assert.Equal(t, Mastitis, c)

	_, ok = ParseCullCause("lameness")
	assert.False(t, ok)

	assert.Equal(t, "CullCause(7)", CullCause(7).String())
}

func TestCullTablesValidate(t *testing.T) {
	tb := DefaultCullTables()
	require.NoError(t, tb.Validate())

	bad := DefaultCullTables()
	bad.ParityCullProb = []float64{1.2}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)

	bad = DefaultCullTables()
	bad.ParityCullProb = nil
	assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)

	bad = DefaultCullTables()
	bad.CauseCp[Udder] = bad.CauseCp[Udder][:5]
	assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)

	bad = DefaultCullTables()
	bad.CauseCp[Disease] = append([]float64(nil), bad.CauseCp[Disease]...)
	bad.CauseCp[Disease][13] = 0.99
	assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)

	bad = DefaultCullTables()
	bad.CauseCp[Injury] = append([]float64(nil), bad.CauseCp[Injury]...)
	bad.CauseCp[Injury][3] = 0.01
	assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)

	bad = DefaultCullTables()
	bad.CauseBounds[2] = 0.1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidParams)
}
