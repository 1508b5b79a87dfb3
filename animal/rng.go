// rng
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
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source of the random draws a cow makes. Implementations shared by
// cows advanced in parallel must be safe for concurrent use.
type Source interface {
	Float64() float64                 // Uniform in [0,1)
	Normal(mu, sigma float64) float64 // Normal deviate
}

// Seeded Source safe for concurrent use
type Rng struct {
	mu  sync.Mutex
	src rand.Source
	uni *rand.Rand
}

func NewRng(seed uint64) *Rng {
	src := rand.NewSource(seed)
	return &Rng{src: src, uni: rand.New(src)}
}

func (r *Rng) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uni.Float64()
}

func (r *Rng) Normal(mu, sigma float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}
	return n.Rand()
}

// Derive n seeds for independent replicates from a master seed
func ReplicateSeeds(master uint64, n int) []uint64 {
	r := rand.New(rand.NewSource(master))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = uint64(r.Intn(100000))
	}
	return seeds
}
