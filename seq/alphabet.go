// Copyright (c) 2025 The nucseg Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq maps nucleotide symbols to the indices used by the
// emission tables.
package seq

import (
	"fmt"
	"math/rand"
)

// Bases lists the alphabet in index order. Emission table columns
// follow this order.
const Bases = "ACGT"

// NumSymbols is the alphabet size.
const NumSymbols = len(Bases)

// Index returns the emission table column for a base. Unknown symbols
// map to index 0. Callers that need strict validation should use
// IndexStrict or pre-filter the sequence.
func Index(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return 0
	}
}

// IndexStrict is like Index but reports unknown symbols.
func IndexStrict(b byte) (int, error) {
	switch b {
	case 'A':
		return 0, nil
	case 'C':
		return 1, nil
	case 'G':
		return 2, nil
	case 'T':
		return 3, nil
	default:
		return 0, fmt.Errorf("seq: unknown symbol [%c]", b)
	}
}

// Indices converts a sequence to emission table columns.
func Indices(s string) []int {

	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Index(s[i])
	}
	return out
}

// Random returns a random sequence of length n drawn uniformly from
// the alphabet.
func Random(r *rand.Rand, n int) string {

	b := make([]byte, n)
	for i := range b {
		b[i] = Bases[r.Intn(NumSymbols)]
	}
	return string(b)
}
