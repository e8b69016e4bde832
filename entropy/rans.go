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

import (
	"github.com/gentc/texrans/bitstream"
	"github.com/gentc/texrans/internal/xassert"
)

// Encoder pushes symbols into a single rANS state word, spilling its
// low bits to a shared bit writer as the state grows past the
// renormalization interval [k*M, b*k*M). An Encoder is single-message:
// construct one per stream, call Encode once per symbol in that
// stream, then read State().
type Encoder struct {
	table  *Table
	params Params
	x      uint64
}

// NewEncoder builds an Encoder over table with the given parameters,
// with its state initialized to the interval's lower bound k*M.
func NewEncoder(table *Table, params Params) *Encoder {
	return &Encoder{table: table, params: params, x: params.Lower()}
}

// State returns the encoder's current state word.
func (e *Encoder) State() uint64 { return e.x }

// Encode pushes symbol s into the encoder's state, writing any spilled
// bits to w. s must index a symbol with a nonzero frequency in the
// encoder's table.
func (e *Encoder) Encode(s uint16, w *bitstream.Writer) {
	xassert.Invariant(int(s) < len(e.table.F), "entropy: symbol %d out of range", s)
	f := uint64(e.table.F[s])
	xassert.Invariant(f > 0, "entropy: symbol %d has zero frequency", s)
	xassert.Invariant(e.x >= e.params.Lower() && e.x < e.params.Upper(), "entropy: encoder state %d outside [%d, %d)", e.x, e.params.Lower(), e.params.Upper())

	b := uint64(e.params.B)
	bk := b * uint64(e.params.K)
	logB := int(e.params.LogB())

	for e.x >= bk*f {
		w.WriteBits(e.x%b, logB)
		e.x /= b
	}

	m := uint64(e.table.M)
	bs := uint64(e.table.B[s])
	e.x = (e.x/f)*m + bs + (e.x % f)

	xassert.Invariant(e.x >= e.params.Lower() && e.x < e.params.Upper(), "entropy: encoder state %d outside [%d, %d) after encode", e.x, e.params.Lower(), e.params.Upper())
}

// Decoder pulls symbols out of a single rANS state word, seeded from
// the encoder's final state, refilling its low bits from a shared bit
// reader as the state shrinks below the renormalization interval. A
// Decoder recovers symbols in the reverse of the order its
// corresponding Encoder produced them.
type Decoder struct {
	table  *Table
	params Params
	x      uint64
}

// NewDecoder builds a Decoder over table with the given parameters,
// seeded with state — normally an Encoder's final State().
func NewDecoder(state uint64, table *Table, params Params) *Decoder {
	return &Decoder{table: table, params: params, x: state}
}

// State returns the decoder's current state word.
func (d *Decoder) State() uint64 { return d.x }

// Decode pulls one symbol out of the decoder's state, consuming bits
// from r as needed to refill it.
func (d *Decoder) Decode(r *bitstream.Reader) uint16 {
	xassert.Invariant(d.x >= d.params.Lower() && d.x < d.params.Upper(), "entropy: decoder state %d outside [%d, %d)", d.x, d.params.Lower(), d.params.Upper())

	m := uint64(d.table.M)
	slot := d.x % m
	s := d.table.Symbol(uint32(slot))
	f := uint64(d.table.F[s])
	bs := uint64(d.table.B[s])

	d.x = (d.x/m)*f - bs + slot

	b := uint64(d.params.B)
	logB := int(d.params.LogB())

	for d.x < d.params.Lower() {
		bits := r.ReadBits(logB)
		d.x = d.x*b + bits
	}

	xassert.Invariant(d.x >= d.params.Lower() && d.x < d.params.Upper(), "entropy: decoder state %d outside [%d, %d) after decode", d.x, d.params.Lower(), d.params.Upper())

	return s
}
