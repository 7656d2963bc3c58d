// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package memory

// ReadOnlyMemory represents a view of memory which can be read, but never
// written.  This is used, for example, when decoding instructions or when
// disassembling a program, neither of which should ever modify the underlying
// contents.
type ReadOnlyMemory interface {
	// Name returns the name of this memory (used for error reporting).
	Name() string
	// Len returns the number of addressable words in this memory.  Valid
	// addresses are therefore 0 .. Len()-1.
	Len() uint
	// Read the word at a given address.  This returns an OutOfBoundsError if
	// the address lies outside the valid range.
	Read(address int64) (int64, error)
}

// Memory represents a flat, zero-indexed, fixed-length sequence of signed
// words which can be read or written without restriction.  There is no
// distinction between code and data: instructions are read from the same
// address space which they write into.
type Memory interface {
	ReadOnlyMemory
	// Write a given word to a given address, overwriting the previous value
	// stored at that address.  This returns an OutOfBoundsError if the address
	// lies outside the valid range.
	Write(address int64, value int64) error
	// Return the contents of this memory as a sequence of words.  Observe that
	// this is not a copy.
	Contents() []int64
}
