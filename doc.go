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

// Package texrans implements the entropy-coding core of a
// lossy-then-lossless compressor for block-compressed GPU textures: an
// interleaved rANS (range Asymmetric Numeral Systems) codec sharing a
// fixed-denominator frequency table between an encoder and a decoder
// that can be read back bit-for-bit on massively parallel hardware.
//
// The texture pipeline that feeds symbols into this codec and the
// outer bit-stream container that wraps its output are not part of
// this module; package entropy and package bitstream consume and
// produce plain byte buffers and scalar state words only.
package texrans
