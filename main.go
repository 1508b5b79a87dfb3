// iGenDairy project main.go
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
	"os"

	"github.com/blgolden/iGenDecModel/iGenDairy/animal"
	"github.com/blgolden/iGenDecModel/iGenDairy/logger"
	"github.com/blgolden/iGenDecModel/iGenDairy/report"
)

var version = "beta0.1.0"

// Print the herd and replicate tables for the output mode
func printTables(h *animal.Herd, results []report.Replicate_t) {

	switch *logger.OutputMode {
	case "verbose", "table":
		report.HerdTable(os.Stdout, h)
		fmt.Println()
		report.ReplicateSummary(os.Stdout, results)
	default:
		// quiet: only the mean later lactation milk, for scripts
		fmt.Printf("%.2f\n", results[0].LaterLactation)
	}
}

// Print and plot the first plotCows records of the herd
func printCows(h *animal.Herd, n int, dir string) {

	for i, c := range h.Records {
		if i >= n {
			break
		}
		if logger.Verbose() {
			fmt.Println()
			report.CowStat(os.Stdout, c)
		}
		if dir == "" {
			continue
		}
		file, err := report.PlotMilk(c, dir)
		if err != nil {
			logger.LogWriter("plot failed: " + err.Error())
			continue
		}
		if logger.Verbose() {
			fmt.Println("Milk plot:", file)
		}
	}
}

func main() {

	initSimulation() // Initialize everything

	logger.LogWriterf("starting %d replicate(s) of %d days for herd %s", *nSamples, sim.nDays, sim.herdName)

	results, herds, err := launchSimulations(sim, uint64(*logger.Seed), *nSamples)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}

	printTables(herds[0], results)

	printCows(herds[0], sim.plotCows, sim.plotDir)

	if err := report.DumpRecords(sim.recordsDump, herds[0]); err != nil {
		logger.LogWriterFatal("records dump failed: " + err.Error())
	}
}
