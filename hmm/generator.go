// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"

	"github.com/seqlab/nucseg/seq"
)

// Generator samples random sequences from a model.
type Generator struct {
	model *Model
	r     *rand.Rand
}

// NewGenerator returns a sequence generator for the model.
func NewGenerator(m *Model, seed int64) *Generator {
	return &Generator{
		model: m,
		r:     rand.New(rand.NewSource(seed)),
	}
}

// Next returns a random sequence of length n and the hidden state path
// that generated it.
func (gen *Generator) Next(n int) (string, []int) {

	out := make([]byte, n)
	states := make([]int, n)
	m := gen.model
	r := gen.r

	s := randomStateFromDist(m.Initial, r)
	for t := 0; t < n; t++ {
		states[t] = s
		out[t] = seq.Bases[randomStateFromDist(m.Emission[s], r)]
		s = randomStateFromDist(m.Transition[s], r)
	}

	return string(out), states
}

// randomStateFromDist draws an index from a discrete distribution.
func randomStateFromDist(dist []float64, r *rand.Rand) int {

	ran := r.Float64()
	cum := 0.0
	for i, p := range dist {
		cum += p
		if ran < cum {
			return i
		}
	}
	return len(dist) - 1
}
