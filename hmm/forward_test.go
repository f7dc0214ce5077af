// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/seqlab/nucseg"
	"github.com/seqlab/nucseg/seq"
)

/*
   DISCUSSION:
   Expected values in this file were computed by running the scaled
   forward recurrence by hand with the base-composition tables:

   A  = {{0.6, 0.4}, {0.5, 0.5}}
   pi = {0.5, 0.5}
   B  = {{0.3, 0.2, 0.2, 0.3}, {0.2, 0.3, 0.3, 0.2}}

   For "GGCACTGAA" the per-position scale factors are the values in
   scales0 below and the total log probability is the sum of their
   natural logs.
*/

var (
	seqA    = "GGCACTGAA"
	alpha00 = []float64{0.4, 0.6}
	scales0 = []float64{
		0.25,
		0.24600000000000002,
		0.24560975609756097,
		0.25442899702085403,
		0.2435822177120331,
		0.254632339980964,
		0.24356338554815368,
		0.25463424453760425,
		0.25643679069602154,
	}
	logProbA = -12.482876491547172
)

func TestForwardAlpha(t *testing.T) {

	m := NewBaseComposition()
	α, scales, logProb, ok := m.forward(seq.Indices(seqA))
	if !ok {
		t.Fatal("forward reported zero probability")
	}

	nucseg.CompareSliceFloat(t, alpha00, α[0], "Error in alpha[0]", 1e-9)
	nucseg.CompareSliceFloat(t, scales0, scales, "Error in scales", 1e-9)
	nucseg.CompareFloats(t, logProbA, logProb, "Error in logProb", 1e-9)

	// Every alpha row is normalized.
	for i, row := range α {
		nucseg.CompareFloats(t, 1, row[0]+row[1], "alpha row not normalized", 1e-12)
		if row[0] < 0 || row[1] < 0 {
			t.Errorf("negative alpha at [%d]: %v", i, row)
		}
	}
}

func TestLogProb(t *testing.T) {

	m := NewBaseComposition()

	nucseg.CompareFloats(t, logProbA, m.LogProb(seqA), "Error in logProb", 1e-9)
	nucseg.CompareFloats(t, -5.570362338220418, m.LogProb("ACGT"), "Error in logProb", 1e-9)
	nucseg.CompareFloats(t, math.Log(0.25), m.LogProb("G"), "Error in logProb", 1e-12)
}

func TestLogProbEmptySequence(t *testing.T) {

	m := NewBaseComposition()
	if v := m.LogProb(""); !math.IsInf(v, -1) {
		t.Errorf("Expected -Inf for empty sequence, got [%f]", v)
	}
}

func TestLogProbZeroProbability(t *testing.T) {

	// Neither state can emit 'T'.
	m, e := New("no-t",
		[][]float64{{0.6, 0.4}, {0.5, 0.5}},
		[]float64{0.5, 0.5},
		[][]float64{{0.4, 0.3, 0.3, 0.0}, {0.3, 0.35, 0.35, 0.0}},
		"LH")
	if e != nil {
		t.Fatal(e)
	}

	for _, s := range []string{"T", "ACT", "TTTT"} {
		if v := m.LogProb(s); !math.IsInf(v, -1) {
			t.Errorf("Expected -Inf for [%s], got [%f]", s, v)
		}
	}
	// Sequences avoiding 'T' still have mass.
	if v := m.LogProb("ACG"); math.IsInf(v, -1) {
		t.Errorf("Expected finite logProb for [ACG], got [%f]", v)
	}
}

func TestLogProbUnknownSymbol(t *testing.T) {

	// Unknown symbols map to index 0 ('A').
	m := NewBaseComposition()
	nucseg.CompareFloats(t, m.LogProb("GAG"), m.LogProb("GXG"), "Unknown symbol mapping", 1e-12)
	nucseg.CompareFloats(t, -4.168852614397162, m.LogProb("GXG"), "Error in logProb", 1e-9)
}

func TestLogProbUniformModel(t *testing.T) {

	// With uniform transitions and emissions every scale factor is
	// 0.5 * 0.25 + 0.5 * 0.25 = 0.25 regardless of the symbol.
	m, e := New("uniform",
		[][]float64{{0.5, 0.5}, {0.5, 0.5}},
		[]float64{0.5, 0.5},
		[][]float64{{0.25, 0.25, 0.25, 0.25}, {0.25, 0.25, 0.25, 0.25}},
		"LH")
	if e != nil {
		t.Fatal(e)
	}

	r := rand.New(rand.NewSource(33))
	for _, n := range []int{1, 7, 64, 500} {
		s := seq.Random(r, n)
		expected := float64(n) * math.Log(0.25)
		nucseg.CompareFloats(t, expected, m.LogProb(s), "Uniform model logProb", 1e-12)
	}
}

// naiveLogProb computes the forward probability without scaling. Only
// valid for sequences short enough not to underflow.
func naiveLogProb(m *Model, sequence string) float64 {

	obs := seq.Indices(sequence)
	prev := make([]float64, NStates)
	for i := range prev {
		prev[i] = m.Initial[i] * m.Emission[i][obs[0]]
	}
	for t := 1; t < len(obs); t++ {
		cur := make([]float64, NStates)
		for j := 0; j < NStates; j++ {
			var sum float64
			for i := 0; i < NStates; i++ {
				sum += prev[i] * m.Transition[i][j]
			}
			cur[j] = sum * m.Emission[j][obs[t]]
		}
		prev = cur
	}
	return math.Log(prev[0] + prev[1])
}

func TestLogProbMatchesNaive(t *testing.T) {

	r := rand.New(rand.NewSource(42))
	for _, m := range []*Model{NewBaseComposition(), NewCodingRegions()} {
		for n := 1; n <= 20; n++ {
			s := seq.Random(r, n)
			expected := naiveLogProb(m, s)
			actual := m.LogProb(s)
			if !nucseg.Comparef64(expected, actual, 1e-9) {
				t.Errorf("model [%s] seq [%s]: naive [%v] scaled [%v]",
					m.Name(), s, expected, actual)
			}
		}
	}
}

func TestLogProbNonPositive(t *testing.T) {

	m := NewBaseComposition()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		s := seq.Random(r, 1+r.Intn(100))
		if v := m.LogProb(s); v > 0 {
			t.Errorf("Positive logProb [%f] for [%s]", v, s)
		}
	}
}

func TestProb(t *testing.T) {

	m := NewBaseComposition()
	nucseg.CompareFloats(t, math.Exp(logProbA), m.Prob(seqA), "Error in Prob", 1e-9)
	if v := m.Prob(""); v != 0 {
		t.Errorf("Expected 0 for empty sequence, got [%f]", v)
	}
}
