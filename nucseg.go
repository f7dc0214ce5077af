// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nucseg provides shared types for the nucseg sequence
// annotation tools.
package nucseg

import "github.com/golang/glog"

// Result holds the output of one sequence analysis.
type Result struct {
	ID         string  `json:"id,omitempty"`
	Sequence   string  `json:"sequence"`
	Annotation string  `json:"annotation,omitempty"`
	LogProb    float64 `json:"logprob"`
}

func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}
