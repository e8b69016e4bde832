/*
Copyright 2011-2024 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package entropy

import "fmt"

// Table is an immutable, normalized frequency table shared by one or
// more encoders and decoders. F is the per-symbol frequency; B is its
// exclusive prefix sum (the cumulative table); M is the denominator,
// Sum(F). slotToSymbol maps each of the M possible "slots" in [0, M)
// to the symbol that owns it, so a decoder can look a symbol up in
// O(1) instead of binary-searching B — see spec component 4.D's design
// note endorsing a lookup table for small alphabets.
type Table struct {
	F            []uint32
	B            []uint32
	M            uint32
	slotToSymbol []uint16
}

// NewTable builds a Table from an already-normalized frequency slice
// (e.g. the output of NormalizeFrequencies). F must be non-empty, every
// entry non-negative, and at least one entry positive; M is taken to
// be Sum(F).
func NewTable(f []uint32) (*Table, error) {
	if len(f) == 0 {
		return nil, fmt.Errorf("entropy: frequency table must not be empty")
	}

	if len(f) > 1<<16 {
		return nil, ErrAlphabetTooLarge
	}

	b := make([]uint32, len(f))
	var sum uint64

	for i, freq := range f {
		b[i] = uint32(sum)
		sum += uint64(freq)
	}

	if sum == 0 {
		return nil, ErrAllZeroCounts
	}

	if sum > 1<<20 {
		// Keeps slotToSymbol a sane size; M is a config constant in
		// practice (1024 or 4096 per spec component "Codec parameters").
		return nil, fmt.Errorf("entropy: M=%d is implausibly large for a lookup table", sum)
	}

	m := uint32(sum)
	slotToSymbol := make([]uint16, m)

	for sym, freq := range f {
		if freq == 0 {
			continue
		}

		start := b[sym]

		for slot := start; slot < start+freq; slot++ {
			slotToSymbol[slot] = uint16(sym)
		}
	}

	return &Table{F: f, B: b, M: m, slotToSymbol: slotToSymbol}, nil
}

// Symbol returns the symbol owning the given slot in [0, M).
func (t *Table) Symbol(slot uint32) uint16 {
	return t.slotToSymbol[slot]
}
