// growth
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

// What the growth model sees of a cow
type Body struct {
	DaysBorn int
	Weight   float64
}

// The base growth, feed and manure model. It is given the day's weight
// gain and returns that day's manure and feed.
type GrowthModel interface {
	Grow(body Body, weightGain float64) (manure float64, feed float64)
}

// Feed scaled from an intake per 1000 units of body weight, like an AUM,
// with manure a fixed fraction of feed
type AumGrowth struct {
	FeedAt1000     float64 // Daily feed of a 1000 kg animal
	GainFeed       float64 // Extra feed per unit of gain
	ManureFraction float64 // Manure per unit of feed
}

func DefaultGrowth() AumGrowth {
	return AumGrowth{FeedAt1000: 30, GainFeed: 6, ManureFraction: 2.6}
}

func (g AumGrowth) Grow(body Body, weightGain float64) (manure float64, feed float64) {
	feed = body.Weight/1000.*g.FeedAt1000 + weightGain*g.GainFeed
	manure = feed * g.ManureFraction
	return manure, feed
}
