// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/unixpickle/essentials"
)

// ReadFile reads model parameters from a JSON file. The tables are
// validated the same way New validates caller-supplied tables.
func ReadFile(fn string) (m *Model, err error) {
	defer essentials.AddCtxTo("read hmm model", &err)

	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	m = new(Model)
	if err = json.Unmarshal(b, m); err != nil {
		return nil, err
	}
	if err = m.validate(); err != nil {
		return nil, err
	}
	m.initialize()

	glog.Infof("Read model \"%s\" from file %s.", m.ModelName, fn)
	return m, nil
}

// WriteFile writes the model parameters to a JSON file, creating
// parent directories as needed.
func (m *Model) WriteFile(fn string) (err error) {
	defer essentials.AddCtxTo("write hmm model", &err)

	if err = os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(fn, b, 0644); err != nil {
		return err
	}

	glog.Infof("Wrote model \"%s\" to file %s.", m.ModelName, fn)
	return nil
}
