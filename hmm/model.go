// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hmm implements a two-state hidden Markov model over the
nucleotide alphabet.

The model supports evaluation (total sequence probability via the
scaled forward algorithm), posterior decoding (forward-backward), and
Viterbi decoding. A model is immutable after construction and can be
shared by concurrent evaluations.
*/
package hmm

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/seqlab/nucseg/floatx"
	"github.com/seqlab/nucseg/seq"
	"gonum.org/v1/gonum/floats"
)

const (
	// NStates is the number of hidden states.
	NStates = 2

	// Stochastic rows may deviate from one by this much before a
	// warning is logged.
	sumTolerance = 1e-9
)

// Model is a two-state hidden Markov model.
//
// Transition[i][j] = P(q(t+1) = j | q(t) = i)
// Initial[i]       = P(q(0) = i)
// Emission[i][k]   = P(o(t) = k | q(t) = i), k indexed per package seq
//
// All probabilities are stored in the linear domain; log-domain copies
// of the tables are kept for Viterbi decoding.
type Model struct {

	// Model name.
	ModelName string `json:"name"`

	// State-transition probability distribution matrix. [NStates x NStates]
	Transition [][]float64 `json:"transition"`

	// Initial state distribution. [NStates x 1]
	Initial []float64 `json:"initial"`

	// Symbol emission probability distribution matrix. [NStates x seq.NumSymbols]
	Emission [][]float64 `json:"emission"`

	// One annotation character per state, e.g. "LH".
	StateSymbols string `json:"state_symbols"`

	// Tables in the log domain.
	logTransition [][]float64
	logInitial    []float64
	logEmission   [][]float64
}

// Default parameter tables for the base-composition model. State 0 is
// the low-GC background (L), state 1 the high-GC signal (H).
var (
	BaseCompositionTransition = [][]float64{{0.6, 0.4}, {0.5, 0.5}}
	BaseCompositionInitial    = []float64{0.5, 0.5}
	BaseCompositionEmission   = [][]float64{
		{0.3, 0.2, 0.2, 0.3},
		{0.2, 0.3, 0.3, 0.2},
	}
)

// Default parameter tables for the coding-region model. State 0 is
// non-coding (N), state 1 coding (C). Coding regions persist longer
// than base-composition segments, hence the heavier self-transitions.
var (
	CodingRegionsTransition = [][]float64{{0.9, 0.1}, {0.2, 0.8}}
	CodingRegionsInitial    = []float64{0.8, 0.2}
	CodingRegionsEmission   = [][]float64{
		{0.27, 0.23, 0.23, 0.27},
		{0.18, 0.32, 0.32, 0.18},
	}
)

// New creates a two-state model from the given probability tables.
// The tables are copied; the resulting model never mutates.
//
// Rows that do not sum to one are logged as warnings but are otherwise
// trusted, matching the evaluation semantics which treat zero-mass
// positions as a zero-probability outcome rather than an error.
func New(name string, transition [][]float64, initial []float64, emission [][]float64, stateSymbols string) (*Model, error) {

	m := &Model{
		ModelName:    name,
		Transition:   clone2D(transition),
		Initial:      clone(initial),
		Emission:     clone2D(emission),
		StateSymbols: stateSymbols,
	}

	if e := m.validate(); e != nil {
		return nil, e
	}
	m.initialize()

	glog.Infof("New HMM model [%s]. Num states = %d.", name, NStates)
	if glog.V(2) {
		glog.Infof("Init. State Probs:    %v.", m.Initial)
		glog.Infof("Trans. Probs:         %v.", m.Transition)
		glog.Infof("Emission Probs:       %v.", m.Emission)
	}
	return m, nil
}

// NewBaseComposition returns the base-composition preset with
// annotation characters 'L' and 'H'.
func NewBaseComposition() *Model {
	m, e := New("base-composition", BaseCompositionTransition,
		BaseCompositionInitial, BaseCompositionEmission, "LH")
	if e != nil {
		panic(e)
	}
	return m
}

// NewCodingRegions returns the coding-region preset with annotation
// characters 'N' and 'C'.
func NewCodingRegions() *Model {
	m, e := New("coding-regions", CodingRegionsTransition,
		CodingRegionsInitial, CodingRegionsEmission, "NC")
	if e != nil {
		panic(e)
	}
	return m
}

// validate checks table shapes and entries. Shape or sign violations
// are errors; rows that do not sum to one only produce a warning.
func (m *Model) validate() error {

	if len(m.Transition) != NStates {
		return fmt.Errorf("hmm: transition matrix must have [%d] rows, got [%d]", NStates, len(m.Transition))
	}
	for i, row := range m.Transition {
		if len(row) != NStates {
			return fmt.Errorf("hmm: transition row [%d] must have [%d] entries, got [%d]", i, NStates, len(row))
		}
	}
	if len(m.Initial) != NStates {
		return fmt.Errorf("hmm: initial distribution must have [%d] entries, got [%d]", NStates, len(m.Initial))
	}
	if len(m.Emission) != NStates {
		return fmt.Errorf("hmm: emission matrix must have [%d] rows, got [%d]", NStates, len(m.Emission))
	}
	for i, row := range m.Emission {
		if len(row) != seq.NumSymbols {
			return fmt.Errorf("hmm: emission row [%d] must have [%d] entries, got [%d]", i, seq.NumSymbols, len(row))
		}
	}
	if len(m.StateSymbols) != NStates {
		return fmt.Errorf("hmm: state symbols must have [%d] characters, got [%q]", NStates, m.StateSymbols)
	}

	for i, row := range m.Transition {
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("hmm: negative transition probability [%f] at [%d,%d]", v, i, j)
			}
		}
		checkRowSum(m.ModelName, "transition", i, row)
	}
	for i, v := range m.Initial {
		if v < 0 {
			return fmt.Errorf("hmm: negative initial probability [%f] at [%d]", v, i)
		}
	}
	checkRowSum(m.ModelName, "initial", 0, m.Initial)
	for i, row := range m.Emission {
		for k, v := range row {
			if v < 0 {
				return fmt.Errorf("hmm: negative emission probability [%f] at [%d,%d]", v, i, k)
			}
		}
		checkRowSum(m.ModelName, "emission", i, row)
	}
	return nil
}

// initialize computes the log-domain tables. Must be called after the
// linear tables are set, for example when a model is read from a file.
func (m *Model) initialize() {

	m.logTransition = floatx.Apply2D(floatx.Log2D, m.Transition, floatx.MakeFloat2D(NStates, NStates))
	m.logInitial = floatx.Apply(floatx.Log, m.Initial, make([]float64, NStates))
	m.logEmission = floatx.Apply2D(floatx.Log2D, m.Emission, floatx.MakeFloat2D(NStates, seq.NumSymbols))
}

// Name returns the model name.
func (m *Model) Name() string { return m.ModelName }

func checkRowSum(name, table string, row int, v []float64) {

	sum := floats.Sum(v)
	d := sum - 1
	if d < -sumTolerance || d > sumTolerance {
		glog.Warningf("model [%s]: %s row [%d] sums to [%f], not 1", name, table, row, sum)
	}
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func clone2D(s [][]float64) [][]float64 {
	out := make([][]float64, len(s))
	for i, row := range s {
		out[i] = clone(row)
	}
	return out
}
