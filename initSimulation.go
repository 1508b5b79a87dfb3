// initSimulation
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
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/blgolden/iGenDecModel/iGenDairy/animal"
	"github.com/blgolden/iGenDecModel/iGenDairy/logger"

	hjson "github.com/hjson/hjson-go"
)

// setup the map of the array of json name:value pairs - notice "interface{}"
var param map[string]interface{}

var paramFile *string // Name of the parameter file
var nSamples *int     // Number of replicates
var isVersion *bool

// What a run simulates, read from the parameter file
type simulation_t struct {
	herdName    string
	herdSize    int
	nDays       int
	startDay    animal.Date
	birthSpread int // Days over which the foundation heifers are born
	method      animal.ReproMethod
	recordsDump string // File of every animal's record
	plotDir     string // Directory for milk plots
	plotCows    int    // Number of cows to plot
	params      *animal.Params
	growth      animal.AumGrowth
}

var sim simulation_t

// Initialize the simulation
func initSimulation() {

	parseArgs()

	if *isVersion {
		fmt.Println("Version:", version)
		os.Exit(0)
	}

	loadParam()

	var err error
	if sim, err = readSimulation(param); err != nil {
		logger.LogWriterFatal(err.Error())
	}

	if logger.Verbose() {
		if runComment, ok := param["Comment"].(string); ok {
			fmt.Printf("Comment: %v\n\n", runComment)
		}
		fmt.Printf("Herd: %s with %d animals, reproduction method %s\n", sim.herdName, sim.herdSize, sim.method)
		fmt.Printf("Simulating %d days from day %d, %d replicate(s)\n", sim.nDays, sim.startDay, *nSamples)
		fmt.Printf("\n\tFinished loading %v...\n\n", *paramFile)
	}
}

// Parse the arg list looking for the input hjson file
func parseArgs() {

	paramFile = flag.String("genParm", "", "The iGenDairy parameter file (required)")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default), 'table' or 'quiet'")
	logger.User = flag.String("user", "admin", "user=[Username]")
	logger.Seed = flag.Int64("seed", 1234, "Random number generator seed (int64)")
	nSamples = flag.Int("nSamples", 1, "Number of replicates (default 1)")
	isVersion = flag.Bool("version", false, "prints the version number of iGenDairy")

	flag.Parse()

	if *isVersion {
		return
	}

	if logger.Verbose() {
		fmt.Printf("\n\t*** iGenDairy ver %v ***\n\n", version)
	}

	if *nSamples < 1 {
		logger.LogWriterFatal("-nSamples must be at least 1")
	}

	if *paramFile == "" {
		if logger.Verbose() {
			// Print out a syntax message
			syntax := `Usage of ./iGenDairy:
  -genParm string
    	The iGenDairy parameter file (required)
  -outputMode string
    	'verbose', 'table' or 'quiet' (default "verbose")
  -seed int
    	Random number generator seed (int64) (default 1234)
  -user string
    	user=[Username] (default "admin")
  -nSamples int
	Number of replicates (default 1)
  -version
	Print the version number and exit`

			fmt.Printf("\n%s\n\n", syntax)
		}
		logger.LogWriterFatal("no parameter file name provided")
	}
}

// Read in the parameter hjson file and setup the map of param[key] pairs
func loadParam() {

	hjsonFile, err := os.Open(*paramFile)
	if err != nil {
		logger.LogWriterFatal("Failed to open parameter file " + *paramFile + ": " + err.Error())
	}
	defer hjsonFile.Close()

	byteValue, err := ioutil.ReadAll(hjsonFile)
	if err != nil {
		logger.LogWriterFatal("Failed to read parameter file " + *paramFile + ": " + err.Error())
	}

	if param, err = parseParam(byteValue); err != nil {
		logger.LogWriterFatal(err.Error())
	}
}

// Translate the byte array into the mapped array of name:value pairs
func parseParam(b []byte) (map[string]interface{}, error) {
	var p map[string]interface{}
	if err := hjson.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hjson: %w", err)
	}
	return p, nil
}

var errMissingKey = errors.New("key not found in parameter file")

// Build the run from the parameter keys
func readSimulation(p map[string]interface{}) (simulation_t, error) {

	var s simulation_t
	var err error

	s.herdName = "Main"
	if n, ok := p["herdName"].(string); ok {
		s.herdName = n
	}

	if s.herdSize, err = intKey(p, "herdSize", true, 0); err != nil {
		return s, err
	}
	if s.herdSize < 1 {
		return s, fmt.Errorf("'herdSize:' must be at least 1, is %d", s.herdSize)
	}
	if s.nDays, err = intKey(p, "days", true, 0); err != nil {
		return s, err
	}
	start, err := intKey(p, "startDay", false, 0)
	if err != nil {
		return s, err
	}
	s.startDay = animal.Date(start)
	if s.birthSpread, err = intKey(p, "birthSpread", false, 0); err != nil {
		return s, err
	}

	m, ok := p["reproMethod"].(string)
	if !ok {
		return s, fmt.Errorf("'reproMethod:' %w", errMissingKey)
	}
	if s.method, err = animal.ParseReproMethod(m); err != nil {
		return s, err
	}
	if _, err = animal.NewPolicy(s.method); err != nil {
		return s, err
	}

	s.recordsDump, _ = p["recordsdump"].(string)
	s.plotDir, _ = p["plotDir"].(string)
	if s.plotCows, err = intKey(p, "plotCows", false, 1); err != nil {
		return s, err
	}

	s.growth = animal.DefaultGrowth()
	if s.growth.FeedAt1000, err = floatKey(p, "feedAt1000", s.growth.FeedAt1000); err != nil {
		return s, err
	}
	if s.growth.GainFeed, err = floatKey(p, "gainFeed", s.growth.GainFeed); err != nil {
		return s, err
	}
	if s.growth.ManureFraction, err = floatKey(p, "manureFraction", s.growth.ManureFraction); err != nil {
		return s, err
	}

	if s.params, err = readParams(p); err != nil {
		return s, err
	}

	return s, nil
}

// Start from the Holstein defaults and apply any table in the parameter file
func readParams(p map[string]interface{}) (*animal.Params, error) {

	params := animal.DefaultParams()
	var err error

	if params.HeiferOpenDays, err = intKey(p, "heiferOpenDays", false, params.HeiferOpenDays); err != nil {
		return nil, err
	}
	if params.CowOpenDim, err = intKey(p, "cowOpenDim", false, params.CowOpenDim); err != nil {
		return nil, err
	}

	if v, ok, err := floatArray(p, "parityCullProb"); err != nil {
		return nil, err
	} else if ok {
		params.Cull.ParityCullProb = v
	}
	if v, ok, err := floatArray(p, "cullDayCount"); err != nil {
		return nil, err
	} else if ok {
		params.Cull.DayCount = v
	}

	if raw, ok := p["cullCauseCp"]; ok {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, errors.New("'cullCauseCp:' must map a cause to its breakpoints")
		}
		// sorted so errors are reported the same way every run
		var names []string
		for name := range m {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cause, ok := animal.ParseCullCause(name)
			if !ok {
				return nil, fmt.Errorf("'cullCauseCp:' unknown cause %q", name)
			}
			v, err := toFloats("cullCauseCp."+name, m[name])
			if err != nil {
				return nil, err
			}
			params.Cull.CauseCp[cause] = v
		}
	}

	if raw, ok := p["lactationCurve"]; ok {
		if params.Curves, err = readCurves(raw); err != nil {
			return nil, err
		}
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// lactationCurve: { a: [..], b: [..], c: [..], d: [..] }, one value per parity
func readCurves(raw interface{}) ([]animal.Curve, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.New("'lactationCurve:' must have keys a, b, c and d")
	}
	var cols [4][]float64
	for i, k := range []string{"a", "b", "c", "d"} {
		v, err := toFloats("lactationCurve."+k, m[k])
		if err != nil {
			return nil, err
		}
		cols[i] = v
	}
	n := len(cols[0])
	for i, k := range []string{"a", "b", "c", "d"} {
		if len(cols[i]) != n {
			return nil, fmt.Errorf("'lactationCurve:' %s has %d values, a has %d", k, len(cols[i]), n)
		}
	}
	curves := make([]animal.Curve, n)
	for i := range curves {
		curves[i] = animal.Curve{A: cols[0][i], B: cols[1][i], C: cols[2][i], D: cols[3][i]}
	}
	return curves, nil
}

// hjson numbers come back as float64
func intKey(p map[string]interface{}, key string, required bool, def int) (int, error) {
	raw, ok := p[key]
	if !ok {
		if required {
			return 0, fmt.Errorf("'%s:' %w", key, errMissingKey)
		}
		return def, nil
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int(f)) {
		return 0, fmt.Errorf("'%s:' must be a whole number, is %v", key, raw)
	}
	return int(f), nil
}

func floatKey(p map[string]interface{}, key string, def float64) (float64, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("'%s:' must be a number, is %v", key, raw)
	}
	return f, nil
}

func floatArray(p map[string]interface{}, key string) ([]float64, bool, error) {
	raw, ok := p[key]
	if !ok {
		return nil, false, nil
	}
	v, err := toFloats(key, raw)
	return v, true, err
}

// Convert the values from the interface to float64 slice. A string of
// comma separated values is accepted as well.
func toFloats(key string, raw interface{}) ([]float64, error) {
	switch a := raw.(type) {
	case []interface{}:
		v := make([]float64, len(a))
		for i := range a {
			f, ok := a[i].(float64)
			if !ok {
				return nil, fmt.Errorf("'%s:' entry %d is not a number: %v", key, i, a[i])
			}
			v[i] = f
		}
		return v, nil
	case string:
		var v []float64
		for _, s := range strings.Split(a, ",") {
			var f float64
			if _, err := fmt.Sscan(strings.TrimSpace(s), &f); err != nil {
				return nil, fmt.Errorf("'%s:' %q is not a number", key, s)
			}
			v = append(v, f)
		}
		return v, nil
	case nil:
		return nil, fmt.Errorf("'%s:' %w", key, errMissingKey)
	}
	return nil, fmt.Errorf("'%s:' must be a list of numbers", key)
}
