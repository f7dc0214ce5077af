// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"

	"github.com/seqlab/nucseg/floatx"
	"github.com/seqlab/nucseg/seq"
)

// ViterbiDecode computes the single most probable hidden state path
// for the sequence and its log probability.
//
// Recursion in log scale, delta(t, j) [T x NStates]:
//
//	delta(0, j) = π(j) + b(j, o(0))
//	delta(t, j) = max_k [ delta(t-1, k) + a(k, j) ] + b(j, o(t))
//	index(t, j) = argmax_k [ delta(t-1, k) + a(k, j) ]
//
// Backtracking from argmax_j delta(T-1, j) recovers the path. Unlike
// Decode, which picks the most probable state per position, the
// Viterbi path maximizes over the whole sequence. The empty sequence
// yields an empty path and -Inf.
func (m *Model) ViterbiDecode(sequence string) ([]int, float64) {

	obs := seq.Indices(sequence)
	T := len(obs)
	if T == 0 {
		return []int{}, math.Inf(-1)
	}

	delta := floatx.MakeFloat2D(T, NStates)
	index := make([][]int, T)
	for t := range index {
		index[t] = make([]int, NStates)
	}

	// Init delta.
	for j := 0; j < NStates; j++ {
		delta[0][j] = m.logInitial[j] + m.logEmission[j][obs[0]]
	}

	// Recursion.
	for t := 1; t < T; t++ {
		for j := 0; j < NStates; j++ {
			max := delta[t-1][0] + m.logTransition[0][j]
			argmax := 0
			for k := 1; k < NStates; k++ {
				if v := delta[t-1][k] + m.logTransition[k][j]; v > max {
					max = v
					argmax = k
				}
			}
			delta[t][j] = max + m.logEmission[j][obs[t]]
			index[t][j] = argmax
		}
	}

	// Decoding.
	max := delta[T-1][0]
	argmax := 0
	for j := 1; j < NStates; j++ {
		if delta[T-1][j] > max {
			max = delta[T-1][j]
			argmax = j
		}
	}
	path := make([]int, T)
	path[T-1] = argmax
	for t := T - 2; t >= 0; t-- {
		path[t] = index[t+1][path[t+1]]
	}

	return path, max
}
