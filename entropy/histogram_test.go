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
	"testing"
)

func countsOneToTen() []uint64 {
	return []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
}

func TestNormalizeFrequenciesScenarioS4(t *testing.T) {
	f, err := NormalizeFrequencies(countsOneToTen(), 256)
	if err != nil {
		t.Fatalf("NormalizeFrequencies: %v", err)
	}

	want := []uint32{5, 9, 14, 19, 23, 28, 33, 37, 42, 46}
	assertUint32Slice(t, f, want)
}

func TestNormalizeFrequenciesScenarioS5(t *testing.T) {
	f, err := NormalizeFrequencies(countsOneToTen(), 11)
	if err != nil {
		t.Fatalf("NormalizeFrequencies: %v", err)
	}

	want := []uint32{1, 1, 1, 1, 1, 1, 1, 1, 1, 2}
	assertUint32Slice(t, f, want)
}

func assertUint32Slice(t *testing.T, got, want []uint32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got, want)
		}
	}
}

func TestNormalizeFrequenciesRejectsZeroM(t *testing.T) {
	if _, err := NormalizeFrequencies(countsOneToTen(), 0); err != ErrNonPositiveM {
		t.Fatalf("got %v, want ErrNonPositiveM", err)
	}
}

func TestNormalizeFrequenciesRejectsAllZeroCounts(t *testing.T) {
	if _, err := NormalizeFrequencies([]uint64{0, 0, 0}, 16); err != ErrAllZeroCounts {
		t.Fatalf("got %v, want ErrAllZeroCounts", err)
	}
}

func TestNormalizeFrequenciesRejectsTooManySymbols(t *testing.T) {
	if _, err := NormalizeFrequencies([]uint64{1, 1, 1, 1}, 2); err != ErrTooManySymbols {
		t.Fatalf("got %v, want ErrTooManySymbols", err)
	}
}

func TestNormalizeFrequenciesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		a := 1 + rng.Intn(32)
		counts := make([]uint64, a)
		nonZero := 0

		for i := range counts {
			if rng.Intn(4) != 0 {
				counts[i] = uint64(1 + rng.Intn(1000))
				nonZero++
			}
		}

		if nonZero == 0 {
			counts[0] = 1
			nonZero = 1
		}

		m := uint32(nonZero + rng.Intn(512))

		f, err := NormalizeFrequencies(counts, m)
		if err != nil {
			t.Fatalf("trial %d: NormalizeFrequencies(%v, %d): %v", trial, counts, m, err)
		}

		var sum uint32

		for i, freq := range f {
			sum += freq

			if (freq == 0) != (counts[i] == 0) {
				t.Fatalf("trial %d: freq[%d]=%d but count[%d]=%d", trial, i, freq, i, counts[i])
			}
		}

		if sum != m {
			t.Fatalf("trial %d: sum(F)=%d, want %d", trial, sum, m)
		}
	}
}
