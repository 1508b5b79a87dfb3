// animal project animal.go
//
// Defines a dairy cow and its daily state
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

type Date int // Simulation date

type AnimalId uint32 // Animal identification numbers sequentially generated starting at 1

// Reproductive stage of a cow. The counters on Cow are only meaningful
// for the stages that own them.
type Stage int

const (
	NotYetActive Stage = iota // Heifer that has not started cycling
	Cycling                   // Open, estrus cycles are scheduled
	Pregnant                  // PregnancyDay and DueDay are set
	Dry                       // Still pregnant but dried off
	Culled                    // Removed from the herd, CullCause is set
)

func (s Stage) String() string {
	switch s {
	case NotYetActive:
		return "NotYetActive"
	case Cycling:
		return "Cycling"
	case Pregnant:
		return "Pregnant"
	case Dry:
		return "Dry"
	case Culled:
		return "Culled"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// PregnancyDay after any pregnancy ends
const NotPregnantDay = -12

var (
	ErrCulled       = errors.New("animal: cow has been culled")
	ErrDayReplayed  = errors.New("animal: day already advanced")
	ErrMissingParam = errors.New("animal: environment is missing a collaborator")
)

// Shared collaborators of every cow in a simulation.
// Params is read only once the first cow is made.
type Env struct {
	Params *Params
	Rng    Source
	Growth GrowthModel
}

// Events observed for one cow on one day
type DayResult struct {
	Culled      bool    // Culled today
	Calved      bool    // Live calf born today
	Stillborn   bool    // Calved today but the calf was born dead
	Milk        float64 // Milk produced today
	Inseminated bool    // Service given today
	Manure      float64 // From the growth model
	Feed        float64 // From the growth model
}

// This is the dairy cow class
type Cow struct {
	Id        AnimalId    // This animal's simulation ID
	BirthDate Date        // To calculate age
	Method    ReproMethod // Fixed at creation

	DaysBorn int     // Days since birth
	Weight   float64 // Body weight
	Parity   int     // Number of calvings so far

	Stage        Stage
	PregnancyDay int // Starts at -2 on the day heat is detected, service on day 0
	DueDay       int // Pregnancy day of calving, drawn at conception

	Lactating  bool
	DaysInMilk int // Days since the last calving while Lactating

	EstrusScheduled   bool
	NextEstrus        int  // DaysBorn of the next estrus while EstrusScheduled
	PostCalvingEstrus bool // First estrus after calving still to come

	ConceptionRate float64 // Adjusted by the policy

	HasCullDay bool
	CullDay    Date   // Scheduled involuntary cull
	CullCause  string // Why this cow was or will be culled
	CulledBy   CullRule

	EstrusDays  []Date // Calendar days of every scheduled estrus
	ServiceDays []Date // Calendar days inseminated
	CalvingDays []Date // Calendar days of live calvings
	CullDays    []Date // Calendar day culled

	MilkStat   []float64 // Daily milk
	FeedStat   []float64 // Daily feed
	ManureStat []float64 // Daily manure

	MilkTotal [2]float64 // First lactation, later lactations
	MilkDays  [2]int     // Days in milk counted toward MilkTotal

	policy   Policy
	env      Env
	lastDay  Date
	advanced bool
}

// Make a new heifer calf born on birthDate.
// A method without a usable policy is a configuration error.
func NewCow(id AnimalId, method ReproMethod, birthDate Date, env Env) (*Cow, error) {

	if env.Params == nil || env.Rng == nil || env.Growth == nil {
		return nil, ErrMissingParam
	}

	policy, err := NewPolicy(method)
	if err != nil {
		return nil, fmt.Errorf("cow %d: %w", id, err)
	}

	c := &Cow{
		Id:             id,
		BirthDate:      birthDate,
		Method:         method,
		Weight:         env.Params.BirthWeight,
		Stage:          NotYetActive,
		PregnancyDay:   NotPregnantDay,
		ConceptionRate: policy.BaseConceptionRate(),
		policy:         policy,
		env:            env,
	}
	return c, nil
}

func (c *Cow) IsPregnant() bool {
	return c.Stage == Pregnant || c.Stage == Dry
}

func (c *Cow) IsCulled() bool {
	return c.Stage == Culled
}

// Voluntary wait period for this cow's policy
func (c *Cow) VoluntaryWaitPeriod() int {
	return c.policy.VoluntaryWaitPeriod()
}
