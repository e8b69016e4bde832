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
	"container/heap"
	"math"
	"math/big"
)

// NormalizeFrequencies maps empirical symbol counts to a frequency
// table summing to exactly m, preserving "frequency zero iff count
// zero" and giving every symbol with a nonzero count a frequency of
// at least 1.
//
// The rounding rule is closest-to-the-geometric-mean: each count is
// scaled to scaled_i = counts[i]*m/sum, and the initial frequency is
// floor(scaled_i) unless rounding up is closer in a geometric-mean
// sense, decided by the exact integer comparison
// (counts[i]*m)^2 <= down*(down+1)*sum^2 — algebraically equivalent to
// comparing scaled_i^2 against down*(down+1), but computed without
// ever forming the real-valued scaled_i, so the result can't drift at
// a rounding boundary the way a floating-point compare can.
//
// Any remaining difference between m and the initial table's sum is
// spent one symbol at a time, always on the symbol whose frequency
// change costs the least code length, tracked with a min-heap.
func NormalizeFrequencies(counts []uint64, m uint32) ([]uint32, error) {
	if m == 0 {
		return nil, ErrNonPositiveM
	}

	var sum uint64

	nonZero := 0

	for _, c := range counts {
		sum += c

		if c > 0 {
			nonZero++
		}
	}

	if sum == 0 {
		return nil, ErrAllZeroCounts
	}

	if uint64(nonZero) > uint64(m) {
		return nil, ErrTooManySymbols
	}

	f := make([]uint32, len(counts))

	for i, c := range counts {
		if c == 0 {
			continue
		}

		down := (c * uint64(m)) / sum
		use := down

		if !closerToDown(c, uint64(m), sum, down) {
			use = down + 1
		}

		if use < 1 {
			use = 1
		}

		f[i] = uint32(use)
	}

	var total int64

	for _, v := range f {
		total += int64(v)
	}

	delta := total - int64(m)

	if delta == 0 {
		return f, nil
	}

	sign := int64(-1)
	steps := delta

	if delta < 0 {
		sign = 1
		steps = -delta
	}

	pq := make(costQueue, 0, len(counts))
	heap.Init(&pq)

	for i, c := range counts {
		if c == 0 {
			continue
		}

		if eligible(f[i], sign) {
			heap.Push(&pq, &costItem{symbol: i, count: c, cost: freqChangeCost(c, f[i], sign)})
		}
	}

	for steps > 0 {
		item := heap.Pop(&pq).(*costItem)
		i := item.symbol
		f[i] = uint32(int64(f[i]) + sign)
		steps--

		if eligible(f[i], sign) {
			heap.Push(&pq, &costItem{symbol: i, count: item.count, cost: freqChangeCost(item.count, f[i], sign)})
		}
	}

	return f, nil
}

func eligible(freq uint32, sign int64) bool {
	return freq > 1 || sign == 1
}

// closerToDown reports whether flooring counts[i]*m/sum to down is at
// least as close, in the geometric-mean sense the rANS code-length
// cost implies, as rounding up to down+1 — i.e. whether
// (count*m/sum)^2 <= down*(down+1), computed as an exact integer
// comparison (count*m)^2 <= down*(down+1)*sum^2 so no floating-point
// rounding can shift the boundary.
func closerToDown(count, m, sum, down uint64) bool {
	cm := new(big.Int).Mul(big.NewInt(0).SetUint64(count), big.NewInt(0).SetUint64(m))
	lhs := new(big.Int).Mul(cm, cm)

	downBig := big.NewInt(0).SetUint64(down)
	rhs := new(big.Int).Mul(downBig, new(big.Int).Add(downBig, big.NewInt(1)))
	sumBig := big.NewInt(0).SetUint64(sum)
	rhs.Mul(rhs, sumBig)
	rhs.Mul(rhs, sumBig)

	return lhs.Cmp(rhs) <= 0
}

// freqChangeCost is cost(i, sign) from spec component 4.B: the change
// in code length (in bits, times the symbol's empirical count) from
// moving its frequency from freq to freq+sign.
func freqChangeCost(count uint64, freq uint32, sign int64) float64 {
	return float64(count) * math.Log2(float64(freq)/float64(int64(freq)+sign))
}

type costItem struct {
	symbol int
	count  uint64
	cost   float64
}

type costQueue []*costItem

func (q costQueue) Len() int            { return len(q) }
func (q costQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q costQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *costQueue) Push(x interface{}) { *q = append(*q, x.(*costItem)) }

func (q *costQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
