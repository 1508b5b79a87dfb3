// simulateDays
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
package main

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/blgolden/iGenDecModel/iGenDairy/animal"
	"github.com/blgolden/iGenDecModel/iGenDairy/logger"
	"github.com/blgolden/iGenDecModel/iGenDairy/report"

	"github.com/remeh/sizedwaitgroup"
)

// Run one herd through every day of the simulation
func simulateDays(s simulation_t, seed uint64) (*animal.Herd, error) {

	env := animal.Env{Params: s.params, Rng: animal.NewRng(seed), Growth: s.growth}

	h := animal.NewHerd(s.herdName, s.herdSize, s.method, env)
	if err := h.MakeFoundationHeifers(s.startDay, s.birthSpread); err != nil {
		return nil, err
	}

	for today := s.startDay; today < s.startDay+animal.Date(s.nDays); today++ {
		if _, err := h.AdvanceDay(today); err != nil {
			return nil, fmt.Errorf("day %d: %w", today, err)
		}
	}
	return h, nil
}

// Summarize a finished herd
func replicateResult(h *animal.Herd, seed uint64) report.Replicate_t {
	r := report.Replicate_t{Seed: seed, FirstLactation: math.NaN(), LaterLactation: math.NaN()}
	if m, ok := report.HerdMilk(h, 0); ok {
		r.FirstLactation = m
	}
	if m, ok := report.HerdMilk(h, 1); ok {
		r.LaterLactation = m
	}
	r.Summary = report.HerdTotals(h)
	return r
}

// The go routine for one replicate
func multistart(swg *sizedwaitgroup.SizedWaitGroup, s simulation_t, i int, seed uint64, results []report.Replicate_t, herds []*animal.Herd, errs []error) {

	defer swg.Done()

	h, err := simulateDays(s, seed)
	if err != nil {
		errs[i] = fmt.Errorf("replicate %d (seed %d): %w", i, seed, err)
		return
	}
	results[i] = replicateResult(h, seed)
	herds[i] = h
}

// Run every replicate, no more at a time than there are CPUs.
// Replicate 0 uses the master seed, the rest get seeds drawn from it.
func launchSimulations(s simulation_t, master uint64, n int) ([]report.Replicate_t, []*animal.Herd, error) {

	start := time.Now()

	seeds := []uint64{master}
	if n > 1 {
		seeds = append(seeds, animal.ReplicateSeeds(master, n-1)...)
	}

	results := make([]report.Replicate_t, n)
	herds := make([]*animal.Herd, n)
	errs := make([]error, n)

	swg := sizedwaitgroup.New(runtime.NumCPU())
	for i := 0; i < n; i++ {
		swg.Add()
		go multistart(&swg, s, i, seeds[i], results, herds, errs)
	}
	swg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	if logger.Verbose() {
		elapsed := time.Since(start)
		fmt.Println("Total time:", elapsed, "Time per replicate:", elapsed.Seconds()/float64(n), "Using", runtime.NumCPU(), "CPUs")
	}
	return results, herds, nil
}
