// helpers for the animal tests
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

// Source that replays queued draws. An empty uniform queue returns miss,
// an empty normal queue returns the mean.
type scripted struct {
	uniforms []float64
	normals  []float64
	miss     float64
}

func newScripted(uniforms ...float64) *scripted {
	return &scripted{uniforms: uniforms, miss: 0.999}
}

func (s *scripted) Float64() float64 {
	if len(s.uniforms) == 0 {
		return s.miss
	}
	u := s.uniforms[0]
	s.uniforms = s.uniforms[1:]
	return u
}

func (s *scripted) Normal(mu, sigma float64) float64 {
	if len(s.normals) == 0 {
		return mu
	}
	n := s.normals[0]
	s.normals = s.normals[1:]
	return n
}

func testEnv(src Source) Env {
	return Env{Params: DefaultParams(), Rng: src, Growth: DefaultGrowth()}
}

// Advance c through the days from..to inclusive and return the last result
func advanceThrough(c *Cow, from, to Date) (DayResult, error) {
	var day DayResult
	var err error
	for d := from; d <= to; d++ {
		if day, err = c.Advance(d); err != nil {
			return day, err
		}
	}
	return day, nil
}

// With every normal at its mean, a heifer born on day 0 has her first heat
// on day 381, is serviced on day 382, checked on days 414, 473 and 582,
// and calves on day 660.
const (
	firstHeatDay = Date(381)
	serviceDay   = Date(382)
	firstCheck   = Date(414)
	calvingDay   = Date(660)
)
