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

import "errors"

// NormalizationReject errors: the caller passed counts or a target
// denominator that cannot be turned into a valid frequency table.
// These are returned, not panicked, because the inputs come from
// measured data rather than a codec's own internal contract.
var (
	ErrNonPositiveM     = errors.New("entropy: M must be positive")
	ErrAllZeroCounts    = errors.New("entropy: all symbol counts are zero")
	ErrTooManySymbols   = errors.New("entropy: number of non-zero counts exceeds M")
	ErrAlphabetTooLarge = errors.New("entropy: alphabet size exceeds 65536")
)

// InvariantError is an error type for an InvariantViolation or
// BoundsViolation: a contract the caller was responsible for upholding
// (a valid symbol, a state inside its renormalization interval) was
// broken. The package's own checks panic through internal/xassert with
// a plain fmt.Errorf value, not with an InvariantError; an invalid
// b*k*M is reported by NewParams as a returned error.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return e.msg }
