// policy
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
	"strings"
)

type ReproMethod string // Reproduction management of the herd

const (
	EarlyDetection        ReproMethod = "ed"     // Heat detection only
	EarlyDetectionTimedAI ReproMethod = "ed_tai" // Heat detection with timed AI backup
	TimedAI               ReproMethod = "tai"    // Timed AI only
)

var (
	ErrUnknownPolicy        = errors.New("animal: unknown reproduction method")
	ErrPolicyNotImplemented = errors.New("animal: reproduction method not implemented")
)

// Parse the reproMethod: key value - e.g. "ed" or "ED-TAI"
func ParseReproMethod(s string) (ReproMethod, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	m = strings.ReplaceAll(m, "-", "_")
	switch ReproMethod(m) {
	case EarlyDetection, EarlyDetectionTimedAI, TimedAI:
		return ReproMethod(m), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// A Policy owns the conception rate adjustments of a reproduction method
type Policy interface {
	VoluntaryWaitPeriod() int
	BaseConceptionRate() float64
	OnDiagnosisFailure(rate float64) float64 // Open at a pregnancy check
	OnCalving(rate float64) float64
}

const (
	edWaitPeriod      = 50
	edConceptionRate  = 0.20
	edFailureStep     = 0.026
	edCalvingRate     = 0.339
	edTaiConception   = 0.40
	taiConceptionRate = 0.290 // Recorded for when timed AI is built
)

func NewPolicy(m ReproMethod) (Policy, error) {
	switch m {
	case EarlyDetection:
		return earlyDetection{
			waitPeriod: edWaitPeriod,
			base:       edConceptionRate,
			step:       edFailureStep,
			afterCalf:  edCalvingRate,
		}, nil
	case EarlyDetectionTimedAI:
		return fixedRate{waitPeriod: edWaitPeriod, rate: edTaiConception}, nil
	case TimedAI:
		return nil, fmt.Errorf("%w: %s (conception rate %.3f has no breeding schedule)", ErrPolicyNotImplemented, m, taiConceptionRate)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(m))
}

// Conception rate falls after every failed check and is reset at calving.
// There is no floor.
type earlyDetection struct {
	waitPeriod int
	base       float64
	step       float64
	afterCalf  float64
}

func (p earlyDetection) VoluntaryWaitPeriod() int    { return p.waitPeriod }
func (p earlyDetection) BaseConceptionRate() float64 { return p.base }

func (p earlyDetection) OnDiagnosisFailure(rate float64) float64 {
	return rate - p.step
}

func (p earlyDetection) OnCalving(rate float64) float64 {
	return p.afterCalf
}

// The conception rate never changes
type fixedRate struct {
	waitPeriod int
	rate       float64
}

func (p fixedRate) VoluntaryWaitPeriod() int                { return p.waitPeriod }
func (p fixedRate) BaseConceptionRate() float64             { return p.rate }
func (p fixedRate) OnDiagnosisFailure(rate float64) float64 { return rate }
func (p fixedRate) OnCalving(rate float64) float64          { return rate }
