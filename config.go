// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nucseg

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config carries tool-level settings for the nucseg command.
type Config struct {
	Model string `toml:"model" json:"model"`

	HMM HMM `toml:"hmm" json:"hmm"`
}

// HMM holds settings for the two-state sequence model.
type HMM struct {
	Preset        string  `toml:"preset,omitempty" json:"preset,omitempty"`
	ModelFile     string  `toml:"model_file,omitempty" json:"model_file,omitempty"`
	Threshold     float64 `toml:"threshold,omitempty" json:"threshold,omitempty"`
	GeneratorSeed int64   `toml:"generator_seed,omitempty" json:"generator_seed,omitempty"`
	GeneratorLen  int     `toml:"generator_length,omitempty" json:"generator_length,omitempty"`
}

// ReadConfig reads a Config from a toml file.
func ReadConfig(fn string) (*Config, error) {

	dat, e := os.ReadFile(fn)
	if e != nil {
		return nil, e
	}
	config := &Config{
		Model: "hmm",
		HMM: HMM{
			Preset:       "base-composition",
			Threshold:    0.5,
			GeneratorLen: 100,
		},
	}
	_, e = toml.Decode(string(dat), config)
	if e != nil {
		return nil, e
	}
	return config, nil
}
