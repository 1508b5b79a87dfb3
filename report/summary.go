// report project summary.go
//
// Tables of cow, herd and replicate results
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
package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/blgolden/iGenDecModel/iGenDairy/animal"

	"gonum.org/v1/gonum/stat"
)

// Results of one simulation replicate
type Replicate_t struct {
	Seed           uint64
	FirstLactation float64 // Mean annualized milk of first lactations, NaN if none
	LaterLactation float64 // Mean annualized milk of later lactations, NaN if none
	Summary        animal.HerdRecordsTable_t
}

// Write a cow's record
func CowStat(w io.Writer, c *animal.Cow) {

	fmt.Fprintf(w, "Cow %d\n", c.Id)
	fmt.Fprintf(w, "Date born: %d\n", c.BirthDate)
	fmt.Fprintf(w, "Estrus dates: %s\n", dates(c.EstrusDays))
	fmt.Fprintf(w, "Service dates: %s\n", dates(c.ServiceDays))
	fmt.Fprintf(w, "Calving dates: %s\n", dates(c.CalvingDays))

	if len(c.CullDays) > 0 {
		fmt.Fprintf(w, "Culled on: %d\n", c.CullDays[0])
		fmt.Fprintf(w, "Cull reason: %s\n", c.CullCause)
	}

	fmt.Fprintf(w, "1 parity milk production: %s\n", milk(c.AnnualizedMilk(0)))
	fmt.Fprintf(w, "milk production per year: %s\n", milk(c.AnnualizedMilk(1)))
}

func dates(d []animal.Date) string {
	if len(d) == 0 {
		return "-"
	}
	s := ""
	for i, v := range d {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(v)
	}
	return s
}

func milk(m float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", m)
}

// Mean annualized milk of the herd's records that have any days in milk
// for the first (0) or later (1) lactations
func HerdMilk(h *animal.Herd, lactation int) (float64, bool) {
	var v []float64
	for _, c := range h.Records {
		if m, ok := c.AnnualizedMilk(lactation); ok {
			v = append(v, m)
		}
	}
	if len(v) == 0 {
		return 0, false
	}
	return stat.Mean(v, nil), true
}

// Print the yearly herd table
func HerdTable(w io.Writer, h *animal.Herd) {

	years := sortedYears(h)

	fmt.Fprintf(w, "Herd %s (%s)\n", h.HerdName, h.Method)
	fmt.Fprintf(w, "               ________Reproduction_________   | ____________Culled___________  | ______________Production_______________\n")
	fmt.Fprintf(w, "Year  Calved   Still  Services   Repl          |  Scheduled  Heifers    Cows    |  CowDIM        Milk        Feed   Manure\n")
	for _, y := range years {
		t := h.YearTable[y]
		fmt.Fprintf(w, "%4d %7d %7d %9d %6d          | %10d %8d %7d    | %7d %11.0f %11.0f %8.0f\n",
			y, t.Calvings, t.Stillbirths, t.Services, t.Replaced,
			t.CulledScheduled, t.CulledHeifers, t.CulledCows,
			t.CowDaysInMilk, t.Milk, t.Feed, t.Manure)
	}
}

// Mean and standard deviation of the replicates
func ReplicateSummary(w io.Writer, results []Replicate_t) {

	if len(results) == 0 {
		fmt.Fprintln(w, "No replicates")
		return
	}

	var first, later, milkPerDay, cullRate []float64
	for _, r := range results {
		first = append(first, r.FirstLactation)
		later = append(later, r.LaterLactation)
		if r.Summary.CowDaysInMilk > 0 {
			milkPerDay = append(milkPerDay, r.Summary.Milk/float64(r.Summary.CowDaysInMilk))
		}
		culled := r.Summary.CulledScheduled + r.Summary.CulledHeifers + r.Summary.CulledCows
		if r.Summary.Calvings > 0 {
			cullRate = append(cullRate, float64(culled)/float64(r.Summary.Calvings))
		}
	}

	fmt.Fprintf(w, "\t _____________________________________________________\n")
	fmt.Fprintf(w, "\t| Measure              |       Mean |     StdDev |  SD(Mean)|\n")
	fmt.Fprintf(w, "\t|______________________|____________|____________|__________|\n")
	row(w, "First lactation/yr", first)
	row(w, "Later lactations/yr", later)
	row(w, "Milk per cow day", milkPerDay)
	row(w, "Culls per calving", cullRate)
	fmt.Fprintf(w, "\t|_____________________________________________________|\n")
	fmt.Fprintf(w, "\t *Number of replicates: %d\n", len(results))
}

// NaN entries are left out
func row(w io.Writer, name string, all []float64) {
	var v []float64
	for _, x := range all {
		if !math.IsNaN(x) {
			v = append(v, x)
		}
	}
	if len(v) == 0 {
		fmt.Fprintf(w, "\t| %-20s |        N/A |        N/A |      N/A |\n", name)
		return
	}
	mean, variance := stat.MeanVariance(v, nil)
	if len(v) < 2 {
		variance = 0
	}
	fmt.Fprintf(w, "\t| %-20s | %10.2f | %10.2f | %8.2f |\n", name, mean, math.Sqrt(variance), math.Sqrt(variance/float64(len(v))))
}

// Add up the yearly tables of a herd in year order
func HerdTotals(h *animal.Herd) animal.HerdRecordsTable_t {
	var s animal.HerdRecordsTable_t
	for _, y := range sortedYears(h) {
		s.Add(h.YearTable[y])
	}
	return s
}

func sortedYears(h *animal.Herd) []int {
	var years []int
	for y := range h.YearTable {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
