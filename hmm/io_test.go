// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seqlab/nucseg"
)

func TestReadWriteFile(t *testing.T) {

	fn := filepath.Join(t.TempDir(), "models", "base.json")

	m := NewBaseComposition()
	if e := m.WriteFile(fn); e != nil {
		t.Fatal(e)
	}

	m2, e := ReadFile(fn)
	if e != nil {
		t.Fatal(e)
	}

	if m2.Name() != m.Name() {
		t.Errorf("Wrong name. Expected: [%s], Got: [%s]", m.Name(), m2.Name())
	}
	if m2.StateSymbols != m.StateSymbols {
		t.Errorf("Wrong state symbols. Expected: [%s], Got: [%s]", m.StateSymbols, m2.StateSymbols)
	}
	for i := range m.Transition {
		nucseg.CompareSliceFloat(t, m.Transition[i], m2.Transition[i], "transition row", 1e-12)
		nucseg.CompareSliceFloat(t, m.Emission[i], m2.Emission[i], "emission row", 1e-12)
	}
	nucseg.CompareSliceFloat(t, m.Initial, m2.Initial, "initial", 1e-12)

	// The read model is fully usable, log tables included.
	nucseg.CompareFloats(t, m.LogProb(seqA), m2.LogProb(seqA), "logProb after read", 1e-12)
	path1, _ := m.ViterbiDecode(seqA)
	path2, _ := m2.ViterbiDecode(seqA)
	nucseg.CompareSliceInt(t, path1, path2, "viterbi after read")
}

func TestReadFileMissing(t *testing.T) {

	if _, e := ReadFile(filepath.Join(t.TempDir(), "nope.json")); e == nil {
		t.Error("Expected error for missing file.")
	}
}

func TestReadFileInvalidModel(t *testing.T) {

	fn := filepath.Join(t.TempDir(), "bad.json")
	bad := `{"name":"bad","transition":[[0.6,0.4],[-0.5,0.5]],` +
		`"initial":[0.5,0.5],` +
		`"emission":[[0.3,0.2,0.2,0.3],[0.2,0.3,0.3,0.2]],` +
		`"state_symbols":"LH"}`
	if e := os.WriteFile(fn, []byte(bad), 0644); e != nil {
		t.Fatal(e)
	}
	if _, e := ReadFile(fn); e == nil {
		t.Error("Expected error for negative transition probability.")
	}
}
