// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"

	"github.com/golang/glog"
	"github.com/seqlab/nucseg/floatx"
	"github.com/seqlab/nucseg/seq"
	"gonum.org/v1/gonum/floats"
)

// forward computes scaled alphas. Indices are: α(time, state).
//
// 1. Initialization: α(0,i) = π(i) b(i,o(0)); 0<=i<N
// 2. Induction:      α(t+1,j) = [sum_{i=0}^{N-1} α(t,i) a(i,j)] b(j,o(t+1)); 0<=t<T-1; 0<=j<N
// 3. Termination:    log P(O|Φ) = sum_{t=0}^{T-1} log(scale(t))
//
// Each row is normalized to sum to one and the pre-normalization sum is
// recorded in scales. A zero scale means the sequence has zero
// probability under the model; ok is false and logProb is -Inf.
// For scaling details see Rabiner/Juang.
func (m *Model) forward(obs []int) (α [][]float64, scales []float64, logProb float64, ok bool) {

	T := len(obs)
	α = floatx.MakeFloat2D(T, NStates)
	scales = make([]float64, T)

	// 1. Initialization.
	for i := 0; i < NStates; i++ {
		α[0][i] = m.Initial[i] * m.Emission[i][obs[0]]
	}

	// 2. Induction.
	for t := 0; t < T; t++ {
		if t > 0 {
			o := obs[t]
			for j := 0; j < NStates; j++ {
				var sum float64
				for i := 0; i < NStates; i++ {
					sum += α[t-1][i] * m.Transition[i][j]
				}
				α[t][j] = sum * m.Emission[j][o]
			}
		}
		scale := floats.Sum(α[t])
		if scale == 0 {
			// No state can produce the sequence prefix.
			return nil, nil, math.Inf(-1), false
		}
		for j := 0; j < NStates; j++ {
			α[t][j] /= scale
		}
		scales[t] = scale
		logProb += math.Log(scale)
		if glog.V(4) {
			glog.Infof("t: %4d | scale: %e | alpha: %v", t, scale, α[t])
		}
	}

	return α, scales, logProb, true
}

// LogProb returns the natural log of P(sequence | model), summed over
// all hidden state paths. The empty sequence and sequences with zero
// probability under the model return -Inf.
func (m *Model) LogProb(sequence string) float64 {

	obs := seq.Indices(sequence)
	if len(obs) == 0 {
		return math.Inf(-1)
	}
	_, _, logProb, _ := m.forward(obs)
	return logProb
}

// Prob returns P(sequence | model) in the linear domain. Underflows to
// zero for long sequences; prefer LogProb.
func (m *Model) Prob(sequence string) float64 {

	return math.Exp(m.LogProb(sequence))
}
