// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nucseg

import (
	"os"
	"path/filepath"
	"testing"
)

const config = `
model = "hmm"

[hmm]
preset = "coding-regions"
threshold = 0.6
generator_seed = 42
generator_length = 250
`

func TestConfig(t *testing.T) {

	fn := filepath.Join(t.TempDir(), "properties.toml")
	t.Logf("Config File: %s.", fn)
	err := os.WriteFile(fn, []byte(config), 0644)
	CheckError(t, err)

	c, e := ReadConfig(fn)
	CheckError(t, e)

	if c.Model != "hmm" {
		t.Errorf("Wrong model. Expected: [hmm], Got: [%s]", c.Model)
	}
	if c.HMM.Preset != "coding-regions" {
		t.Errorf("Wrong preset. Expected: [coding-regions], Got: [%s]", c.HMM.Preset)
	}
	if c.HMM.Threshold != 0.6 {
		t.Errorf("Wrong threshold. Expected: [0.6], Got: [%f]", c.HMM.Threshold)
	}
	if c.HMM.GeneratorSeed != 42 {
		t.Errorf("Wrong seed. Expected: [42], Got: [%d]", c.HMM.GeneratorSeed)
	}
	if c.HMM.GeneratorLen != 250 {
		t.Errorf("Wrong length. Expected: [250], Got: [%d]", c.HMM.GeneratorLen)
	}
}

func TestConfigDefaults(t *testing.T) {

	fn := filepath.Join(t.TempDir(), "properties.toml")
	err := os.WriteFile(fn, []byte("model = \"hmm\"\n"), 0644)
	CheckError(t, err)

	c, e := ReadConfig(fn)
	CheckError(t, e)

	if c.HMM.Preset != "base-composition" {
		t.Errorf("Wrong default preset. Got: [%s]", c.HMM.Preset)
	}
	if c.HMM.Threshold != 0.5 {
		t.Errorf("Wrong default threshold. Got: [%f]", c.HMM.Threshold)
	}
}
