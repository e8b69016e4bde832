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

//go:build !texrans_trust_caller

// Package xassert centralizes the panic-on-misuse checks that
// implement the InvariantViolation error class in package entropy:
// conditions a caller is responsible for upholding (a valid symbol, a
// state inside its renormalization interval, one partition length per
// state) rather than conditions a program can recover from. Package
// bitstream raises its own bounds panics directly.
//
// Built with the texrans_trust_caller build tag, Invariant becomes a
// no-op (see xassert_trust.go) so a release build can skip the cost,
// matching kanzi-go's own "release builds may trust the caller"
// posture for this class of error.
package xassert

import "fmt"

// Invariant panics with a formatted message if cond is false.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf(format, args...))
	}
}
