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
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"

	"github.com/gentc/texrans/bitstream"
	"github.com/gentc/texrans/internal/xassert"
)

// EncodeInterleaved drives N encoders, one per partition, round-robin
// over a single shared writer, per spec component 4.E: for i from 0 to
// the longest partition's length, for j from 0 to N-1, encode
// partitions[j][i] if that partition still has a symbol at index i.
// Partitions may have any lengths; a partition with no symbol at index
// i is skipped for that round (EncodeGroups' ragged last group yields
// lengths that differ by at most one). It returns the N final encoder
// states, in partition order.
func EncodeInterleaved(partitions [][]uint16, table *Table, params Params, w *bitstream.Writer) []uint64 {
	n := len(partitions)
	encoders := make([]*Encoder, n)

	for j := range encoders {
		encoders[j] = NewEncoder(table, params)
	}

	maxLen := 0

	for _, p := range partitions {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	for i := 0; i < maxLen; i++ {
		for j := 0; j < n; j++ {
			if i < len(partitions[j]) {
				encoders[j].Encode(partitions[j][i], w)
			}
		}
	}

	states := make([]uint64, n)

	for j, e := range encoders {
		states[j] = e.State()
	}

	return states
}

// DecodeInterleaved is the mirror of EncodeInterleaved: given the N
// final encoder states and the (possibly ragged) partition lengths,
// it reconstructs the N partitions by decoding in the reverse
// round-robin order (j from N-1 down to 0, i from the longest length
// down to 0), reading r in the Backward direction.
func DecodeInterleaved(states []uint64, lengths []int, table *Table, params Params, r *bitstream.Reader) [][]uint16 {
	n := len(states)
	xassert.Invariant(len(lengths) == n, "entropy: %d states but %d partition lengths", n, len(lengths))

	decoders := make([]*Decoder, n)
	out := make([][]uint16, n)

	for j := 0; j < n; j++ {
		decoders[j] = NewDecoder(states[j], table, params)
		out[j] = make([]uint16, lengths[j])
	}

	maxLen := 0

	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}

	for i := maxLen - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if i < lengths[j] {
				out[j][i] = decoders[j].Decode(r)
			}
		}
	}

	return out
}

func partitionLengths(groupSize, n int) []int {
	lengths := make([]int, n)
	base := groupSize / n
	extra := groupSize % n

	for j := 0; j < n; j++ {
		lengths[j] = base

		if j < extra {
			lengths[j]++
		}
	}

	return lengths
}

func splitRoundRobin(symbols []uint16, lengths []int) [][]uint16 {
	n := len(lengths)
	partitions := make([][]uint16, n)

	for j := range partitions {
		partitions[j] = make([]uint16, 0, lengths[j])
	}

	for i, s := range symbols {
		partitions[i%n] = append(partitions[i%n], s)
	}

	return partitions
}

// EncodeGroups implements the block-framing scheme from spec component
// 4.E: symbols is split into groups of g*n symbols (the last group may
// be shorter), each group is encoded independently with EncodeInterleaved
// into its own bit region, and the region is trailed by the n final
// state words (little-endian u32) and the exact bit count the region's
// writer produced. That bit count — not implied by the byte length — is
// what lets DecodeGroups seed a Backward reader at the right cursor
// even when the region's last byte is only partially filled; it is the
// concrete answer to the direction-aware-reader redesign this codec
// otherwise leaves as a construction-time choice. Returned alongside
// the blob is a parallel table of cumulative byte offsets, one per
// group, so a caller can seek directly to any group.
func EncodeGroups(symbols []uint16, n, g int, table *Table, params Params) (blob []byte, offsets []uint32, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("entropy: n must be positive, got %d", n)
	}

	if g <= 0 {
		return nil, nil, fmt.Errorf("entropy: g must be positive, got %d", g)
	}

	groupCapacity := g * n
	var out []byte
	var offs []uint32

	for start := 0; start < len(symbols); start += groupCapacity {
		end := start + groupCapacity

		if end > len(symbols) {
			end = len(symbols)
		}

		group := symbols[start:end]
		lengths := partitionLengths(len(group), n)
		partitions := splitRoundRobin(group, lengths)

		w := bitstream.NewWriter(len(group)/2 + 8)
		states := EncodeInterleaved(partitions, table, params, w)

		out = append(out, w.Bytes()...)

		trailer := make([]byte, 4*n+4)

		for j, st := range states {
			binary.LittleEndian.PutUint32(trailer[4*j:], uint32(st))
		}

		binary.LittleEndian.PutUint32(trailer[4*n:], uint32(w.BitsWritten()))
		out = append(out, trailer...)

		offs = append(offs, uint32(len(out)))
	}

	return out, offs, nil
}

// DecodeGroups is the mirror of EncodeGroups: given the blob, its
// parallel offsets table, and the original message length, it
// recovers the flat symbol sequence by decoding each group
// independently and un-interleaving its partitions back into
// round-robin order.
func DecodeGroups(blob []byte, offsets []uint32, totalSymbols, n, g int, table *Table, params Params) ([]uint16, error) {
	if n <= 0 {
		return nil, fmt.Errorf("entropy: n must be positive, got %d", n)
	}

	if g <= 0 {
		return nil, fmt.Errorf("entropy: g must be positive, got %d", g)
	}

	groupCapacity := g * n
	out := make([]uint16, totalSymbols)

	start := uint32(0)
	symStart := 0

	for gi, end := range offsets {
		region := blob[start:end]

		if len(region) < 4*n+4 {
			return nil, fmt.Errorf("entropy: group %d region too short for trailer", gi)
		}

		trailerStart := len(region) - 4*n - 4
		bitCount := int(binary.LittleEndian.Uint32(region[trailerStart+4*n:]))
		states := make([]uint64, n)

		for j := 0; j < n; j++ {
			states[j] = uint64(binary.LittleEndian.Uint32(region[trailerStart+4*j:]))
		}

		bitRegion := region[:trailerStart]
		r := bitstream.NewReader(bitRegion, bitCount, bitstream.Backward)

		groupSize := groupCapacity
		if symStart+groupSize > totalSymbols {
			groupSize = totalSymbols - symStart
		}

		lengths := partitionLengths(groupSize, n)
		partitions := DecodeInterleaved(states, lengths, table, params, r)
		mergeRoundRobin(out[symStart:symStart+groupSize], partitions)

		symStart += groupSize
		start = end
	}

	return out, nil
}

func mergeRoundRobin(dst []uint16, partitions [][]uint16) {
	n := len(partitions)
	idx := make([]int, n)

	for i := range dst {
		j := i % n
		dst[i] = partitions[j][idx[j]]
		idx[j]++
	}
}

// DecodeGroupsParallel is the concurrent counterpart to DecodeGroups,
// grounded on the worker-pool shape of a parallel decompress helper:
// a bounded semaphore gates at most runtime.GOMAXPROCS(0) in-flight
// groups, each decoded independently (spec component 4.E's framing
// guarantee is exactly that groups share no state), and errors are
// collected without aborting in-flight work. Its output is bit-for-bit
// identical to DecodeGroups.
func DecodeGroupsParallel(blob []byte, offsets []uint32, totalSymbols, n, g int, table *Table, params Params) ([]uint16, error) {
	if n <= 0 {
		return nil, fmt.Errorf("entropy: n must be positive, got %d", n)
	}

	if g <= 0 {
		return nil, fmt.Errorf("entropy: g must be positive, got %d", g)
	}

	groupCapacity := g * n
	out := make([]uint16, totalSymbols)

	workers := runtime.GOMAXPROCS(0)
	sem := make(chan struct{}, workers)
	errCh := make(chan error, len(offsets))
	var wg sync.WaitGroup

	start := uint32(0)
	symStart := 0

	for gi, end := range offsets {
		groupSize := groupCapacity
		if symStart+groupSize > totalSymbols {
			groupSize = totalSymbols - symStart
		}

		region := blob[start:end]
		dst := out[symStart : symStart+groupSize]

		wg.Add(1)
		sem <- struct{}{}

		go func(gi, groupSize int, region []byte, dst []uint16) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := decodeGroupInto(dst, region, groupSize, n, table, params); err != nil {
				errCh <- fmt.Errorf("entropy: group %d: %w", gi, err)
			}
		}(gi, groupSize, region, dst)

		symStart += groupSize
		start = end
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		return nil, err
	}

	return out, nil
}

func decodeGroupInto(dst []uint16, region []byte, groupSize, n int, table *Table, params Params) error {
	if len(region) < 4*n+4 {
		return fmt.Errorf("group region too short for trailer")
	}

	trailerStart := len(region) - 4*n - 4
	bitCount := int(binary.LittleEndian.Uint32(region[trailerStart+4*n:]))
	states := make([]uint64, n)

	for j := 0; j < n; j++ {
		states[j] = uint64(binary.LittleEndian.Uint32(region[trailerStart+4*j:]))
	}

	bitRegion := region[:trailerStart]
	r := bitstream.NewReader(bitRegion, bitCount, bitstream.Backward)

	lengths := partitionLengths(groupSize, n)
	partitions := DecodeInterleaved(states, lengths, table, params, r)
	mergeRoundRobin(dst, partitions)

	return nil
}
