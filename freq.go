// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import "github.com/pkg/errors"

// A FrequencyTable holds the number of occurrences of each symbol.
// The PseudoEOF entry is always 1.
type FrequencyTable [AlphabetSize + 1]int64

// CountFrequencies reads 8-bit symbols from in until the end of the
// stream and returns their counts.
func CountFrequencies(in BitReader) (FrequencyTable, error) {
	var freq FrequencyTable
	var n int64
	for {
		v, err := in.ReadBits(BitsPerWord)
		if err != nil {
			if isEnd(err) {
				break
			}
			return freq, errors.Wrap(err, "huff: counting input")
		}
		freq[v]++
		n++
	}
	freq[PseudoEOF] = 1
	log.Debugf("counted %d input bytes", n)
	return freq, nil
}

// Total returns the number of real symbols counted, excluding
// PseudoEOF.
func (f *FrequencyTable) Total() int64 {
	var n int64
	for _, c := range f[:AlphabetSize] {
		n += c
	}
	return n
}
