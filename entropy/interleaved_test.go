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
	"math/rand"
	"reflect"
	"testing"

	"github.com/gentc/texrans/bitstream"
)

func buildTestTable(t *testing.T) (*Table, Params) {
	t.Helper()

	f := []uint32{80, 15, 10, 7, 5, 3, 3, 3, 3, 2, 2, 2, 2, 1}

	table, err := NewTable(f)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	params, err := NewParams(1<<8, 2, table.M)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	return table, params
}

func drawSymbols(rng *rand.Rand, n int, table *Table) []uint16 {
	out := make([]uint16, n)

	for i := range out {
		out[i] = table.Symbol(uint32(rng.Intn(int(table.M))))
	}

	return out
}

func TestInterleavedRoundTrip(t *testing.T) {
	table, params := buildTestTable(t)
	rng := rand.New(rand.NewSource(7))

	const n = 5
	lengths := []int{41, 40, 40, 39, 38}
	partitions := make([][]uint16, n)

	for j := range partitions {
		partitions[j] = drawSymbols(rng, lengths[j], table)
	}

	w := bitstream.NewWriter(256)
	states := EncodeInterleaved(partitions, table, params, w)

	r := bitstream.NewReader(w.Bytes(), w.BitsWritten(), bitstream.Backward)
	recovered := DecodeInterleaved(states, lengths, table, params, r)

	for j := range partitions {
		if !reflect.DeepEqual(recovered[j], partitions[j]) {
			t.Fatalf("partition %d: got %v, want %v", j, recovered[j], partitions[j])
		}
	}
}

func TestGroupFramingRoundTrip(t *testing.T) {
	table, params := buildTestTable(t)
	rng := rand.New(rand.NewSource(11))

	const n = 4
	const g = 17
	total := g*n*3 + 7 // a few full groups plus one ragged tail

	symbols := drawSymbols(rng, total, table)

	blob, offsets, err := EncodeGroups(symbols, n, g, table, params)
	if err != nil {
		t.Fatalf("EncodeGroups: %v", err)
	}

	wantGroups := (total + g*n - 1) / (g * n)

	if len(offsets) != wantGroups {
		t.Fatalf("got %d group offsets, want %d", len(offsets), wantGroups)
	}

	decoded, err := DecodeGroups(blob, offsets, total, n, g, table, params)
	if err != nil {
		t.Fatalf("DecodeGroups: %v", err)
	}

	if !reflect.DeepEqual(decoded, symbols) {
		t.Fatalf("decoded sequence does not match original")
	}
}

func TestDecodeGroupsParallelMatchesSequential(t *testing.T) {
	table, params := buildTestTable(t)
	rng := rand.New(rand.NewSource(13))

	const n = 8
	const g = 32
	total := g*n*6 + 3

	symbols := drawSymbols(rng, total, table)

	blob, offsets, err := EncodeGroups(symbols, n, g, table, params)
	if err != nil {
		t.Fatalf("EncodeGroups: %v", err)
	}

	sequential, err := DecodeGroups(blob, offsets, total, n, g, table, params)
	if err != nil {
		t.Fatalf("DecodeGroups: %v", err)
	}

	parallel, err := DecodeGroupsParallel(blob, offsets, total, n, g, table, params)
	if err != nil {
		t.Fatalf("DecodeGroupsParallel: %v", err)
	}

	if !reflect.DeepEqual(sequential, parallel) {
		t.Fatalf("parallel decode diverged from sequential decode")
	}

	if !reflect.DeepEqual(sequential, symbols) {
		t.Fatalf("sequential decode does not match original symbols")
	}
}
