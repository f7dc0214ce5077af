// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/seqlab/nucseg/floatx"
	"github.com/seqlab/nucseg/seq"
)

// Segment is an inclusive [Start, End] run of state-1 positions.
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// backward computes scaled betas. Indices are: β(time, state).
//
// 1. Initialization: β(T-1,i) = 1; 0<=i<N
// 2. Induction:      β(t,i) = [sum_{j=0}^{N-1} a(i,j) b(j,o(t+1)) β(t+1,j)] / scale(t+1)
//
// Dividing by the forward scale at t+1 keeps β compatible with the
// scaled α for the posterior combination: the scale factors cancel
// when γ is normalized per position.
func (m *Model) backward(obs []int, scales []float64) [][]float64 {

	T := len(obs)
	β := floatx.MakeFloat2D(T, NStates)

	// 1. Initialization.
	for i := 0; i < NStates; i++ {
		β[T-1][i] = 1
	}

	// 2. Induction.
	for t := T - 2; t >= 0; t-- {
		o := obs[t+1]
		for i := 0; i < NStates; i++ {
			var sum float64
			for j := 0; j < NStates; j++ {
				sum += m.Transition[i][j] * m.Emission[j][o] * β[t+1][j]
			}
			β[t][i] = sum / scales[t+1]
		}
	}

	return β
}

// Posterior returns, for each position t, the posterior probability
// P(q(t) = 1 | sequence) computed by the forward-backward algorithm:
//
//	γ(t,i) = α(t,i) β(t,i) / sum_j α(t,j) β(t,j)
//
// Positions with zero total mass get probability 0 (state 0). A
// sequence with zero probability under the model yields all zeros.
func (m *Model) Posterior(sequence string) []float64 {

	obs := seq.Indices(sequence)
	T := len(obs)
	p := make([]float64, T)
	if T == 0 {
		return p
	}

	α, scales, _, ok := m.forward(obs)
	if !ok {
		return p
	}
	β := m.backward(obs, scales)

	for t := 0; t < T; t++ {
		g0 := α[t][0] * β[t][0]
		g1 := α[t][1] * β[t][1]
		if sum := g0 + g1; sum != 0 {
			p[t] = g1 / sum
		}
	}
	return p
}

// Decode labels each position with the hidden state whose posterior
// probability is highest relative to threshold: label 1 when
// P(q(t) = 1 | sequence) >= threshold, else 0. The empty sequence
// yields an empty slice.
func (m *Model) Decode(sequence string, threshold float64) []int {

	p := m.Posterior(sequence)
	labels := make([]int, len(p))
	for t, p1 := range p {
		if p1 >= threshold {
			labels[t] = 1
		}
	}
	return labels
}

// Annotate decodes the sequence with threshold 0.5 and renders one
// state symbol per position, e.g. "LHHLL" for the base-composition
// model.
func (m *Model) Annotate(sequence string) string {

	labels := m.Decode(sequence, 0.5)
	out := make([]byte, len(labels))
	for t, label := range labels {
		out[t] = m.StateSymbols[label]
	}
	return string(out)
}

// Segments converts a 0/1 label sequence to the inclusive [Start, End]
// runs of label 1.
func Segments(labels []int) []Segment {

	var segs []Segment
	for i := 0; i < len(labels); i++ {
		if labels[i] != 1 {
			continue
		}
		start := i
		for i+1 < len(labels) && labels[i+1] == 1 {
			i++
		}
		segs = append(segs, Segment{Start: start, End: i})
	}
	return segs
}
