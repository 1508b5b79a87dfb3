// params
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
	"errors"
	"fmt"
)

// Model constants for the Holstein. One Params is shared by every cow
// of a simulation and must not be changed after the first cow is made.
type Params struct {
	BirthWeight  float64    // Weight at birth
	CalfGainDays int        // Calves gain at the seasonal rate up to this age
	SeasonGain   [4]float64 // Calf average daily gain by season of the calendar day
	GrowingGain  float64    // Average daily gain after calfhood
	GainStdDev   float64    // Std dev of all daily gains
	MatureWeight float64    // Growth stops at this weight

	PubertyDays          int     // Heifers start cycling after this age
	CycleMean            float64 // Estrus cycle length
	CycleStdDev          float64
	PostCalvingCycleMean float64 // Calving to first estrus
	PostCalvingCycleSd   float64
	HeatDetectionRate    float64 // Probability a heat is seen and bred
	MaxBreedingDim       int     // No breeding past this DIM

	ConceptionOffset int     // PregnancyDay on the day heat is detected
	GestationMean    float64 // Pregnancy days to calving
	GestationStdDev  float64
	FirstCheckDay    int     // Pregnancy check against the conception rate
	SecondCheckDay   int     // Early abortion check
	SecondCheckLoss  float64 //
	ThirdCheckDay    int     // Late abortion check
	ThirdCheckLoss   float64 //
	DryOffDay        int     // Pregnancy day lactation ends
	StillbirthRate   float64

	HeiferOpenDays int // Open heifers older than this are culled
	CowOpenDim     int // Open cows past this DIM are culled

	Cull   CullTables
	Curves []Curve // MilkBot parameters by parity, last entry is for all later parities
}

// The Holstein defaults
func DefaultParams() *Params {
	return &Params{
		BirthWeight:  40.8,
		CalfGainDays: 70,
		SeasonGain:   [4]float64{0.84, 0.82, 0.80, 0.77},
		GrowingGain:  0.91,
		GainStdDev:   0.02,
		MatureWeight: 680,

		PubertyDays:          360,
		CycleMean:            21,
		CycleStdDev:          2.5,
		PostCalvingCycleMean: 19,
		PostCalvingCycleSd:   11,
		HeatDetectionRate:    0.6,
		MaxBreedingDim:       400,

		ConceptionOffset: -2,
		GestationMean:    278,
		GestationStdDev:  6,
		FirstCheckDay:    32,
		SecondCheckDay:   91,
		SecondCheckLoss:  0.096,
		ThirdCheckDay:    200,
		ThirdCheckLoss:   0.017,
		DryOffDay:        220,
		StillbirthRate:   0.065,

		HeiferOpenDays: 650,
		CowOpenDim:     300,

		Cull:   DefaultCullTables(),
		Curves: DefaultCurves(),
	}
}

var ErrInvalidParams = errors.New("animal: invalid parameters")

func (p *Params) Validate() error {
	if len(p.Curves) == 0 {
		return fmt.Errorf("%w: no lactation curves", ErrInvalidParams)
	}
	if p.DryOffDay <= p.ThirdCheckDay || p.ThirdCheckDay <= p.SecondCheckDay || p.SecondCheckDay <= p.FirstCheckDay || p.FirstCheckDay <= 0 {
		return fmt.Errorf("%w: pregnancy checks must come in order 0 < %d < %d < %d < %d",
			ErrInvalidParams, p.FirstCheckDay, p.SecondCheckDay, p.ThirdCheckDay, p.DryOffDay)
	}
	if p.ConceptionOffset > 0 {
		return fmt.Errorf("%w: conception offset %d is after service", ErrInvalidParams, p.ConceptionOffset)
	}
	if err := p.Cull.Validate(); err != nil {
		return err
	}
	return nil
}
