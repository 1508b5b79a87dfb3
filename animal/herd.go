// herd project herd.go
// Defines the herd and its members
// The herd replaces every culled cow with a heifer calf
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

import "fmt"

type Herd struct {

	// These are the parameters read from the parameter file
	HerdName   string      // For example "Main"
	NumberCows int         // Number of animals kept in the herd
	Method     ReproMethod // Reproduction method of every animal

	// These change daily
	Cows    []*Cow // Animals active in the herd
	Records []*Cow // Every animal ever in the herd

	YearTable map[int]HerdRecordsTable_t // Totals by simulation year

	env       Env
	idCounter AnimalId
}

// Yearly herd totals
type HerdRecordsTable_t struct {
	Calvings        int
	Stillbirths     int
	Services        int
	CulledScheduled int // Involuntary culls
	CulledHeifers   int // Open heifers
	CulledCows      int // Open cows
	Replaced        int
	CowDaysInMilk   int
	Milk            float64
	Feed            float64
	Manure          float64
}

func NewHerd(name string, numberCows int, method ReproMethod, env Env) *Herd {
	return &Herd{
		HerdName:   name,
		NumberCows: numberCows,
		Method:     method,
		YearTable:  make(map[int]HerdRecordsTable_t),
		env:        env,
	}
}

// Year of the simulation starting at 1 on day 0
func Year(today Date) int {
	if today < 0 {
		return 0
	}
	return int(today)/365 + 1
}

// Add a heifer calf to the herd
func (h *Herd) AddHeifer(birthDate Date) (*Cow, error) {
	h.idCounter++
	c, err := NewCow(h.idCounter, h.Method, birthDate, h.env)
	if err != nil {
		h.idCounter--
		return nil, fmt.Errorf("herd %s: %w", h.HerdName, err)
	}
	h.Cows = append(h.Cows, c)
	h.Records = append(h.Records, c)
	return c, nil
}

// Make the foundation heifers born over spread days from start
func (h *Herd) MakeFoundationHeifers(start Date, spread int) error {
	for i := 0; i < h.NumberCows; i++ {
		birth := start
		if spread > 0 {
			birth += Date(h.env.Rng.Float64() * float64(spread))
		}
		if _, err := h.AddHeifer(birth); err != nil {
			return err
		}
	}
	return nil
}

// Advance every born animal in the herd through today, then replace the
// animals culled today
func (h *Herd) AdvanceDay(today Date) (HerdRecordsTable_t, error) {

	var t HerdRecordsTable_t

	active := h.Cows[:0]
	for _, c := range h.Cows {
		if c.BirthDate > today {
			active = append(active, c)
			continue
		}

		day, err := c.Advance(today)
		if err != nil {
			return t, fmt.Errorf("herd %s: %w", h.HerdName, err)
		}

		if day.Culled {
			switch c.CulledBy {
			case HeiferOpenCull:
				t.CulledHeifers++
			case CowOpenCull:
				t.CulledCows++
			case ScheduledCull:
				t.CulledScheduled++
			}
			continue
		}
		active = append(active, c)

		if day.Calved {
			t.Calvings++
		}
		if day.Stillborn {
			t.Calvings++
			t.Stillbirths++
		}
		if day.Inseminated {
			t.Services++
		}
		if c.Lactating {
			t.CowDaysInMilk++
		}
		t.Milk += day.Milk
		t.Feed += day.Feed
		t.Manure += day.Manure
	}
	for i := len(active); i < len(h.Cows); i++ {
		h.Cows[i] = nil
	}
	h.Cows = active

	n, err := h.Replace(today + 1)
	if err != nil {
		return t, err
	}
	t.Replaced = n

	h.addToYear(Year(today), t)

	return t, nil
}

// Bring the herd back to NumberCows with heifer calves born on birthDate
func (h *Herd) Replace(birthDate Date) (int, error) {
	var n int
	for len(h.Cows) < h.NumberCows {
		if _, err := h.AddHeifer(birthDate); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (h *Herd) addToYear(year int, d HerdRecordsTable_t) {
	t := h.YearTable[year]
	t.Add(d)
	h.YearTable[year] = t
}

// Add the counts of d
func (t *HerdRecordsTable_t) Add(d HerdRecordsTable_t) {
	t.Calvings += d.Calvings
	t.Stillbirths += d.Stillbirths
	t.Services += d.Services
	t.CulledScheduled += d.CulledScheduled
	t.CulledHeifers += d.CulledHeifers
	t.CulledCows += d.CulledCows
	t.Replaced += d.Replaced
	t.CowDaysInMilk += d.CowDaysInMilk
	t.Milk += d.Milk
	t.Feed += d.Feed
	t.Manure += d.Manure
}
