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

import (
	"fmt"
	"slices"
)

// Array is a flat-slice implementation of Memory backed by a []int64.  The
// backing slice is shared with whoever constructed the array, hence writes
// made through the array are visible in that slice.  Every access is
// bounds-checked against the length of the slice.
type Array struct {
	name string
	data []int64
}

// NewArray constructs an Array with the given name over the given words.  The
// words are not copied.
func NewArray(name string, words []int64) *Array {
	return &Array{name, words}
}

// Name implementation for ReadOnlyMemory interface.
func (p *Array) Name() string {
	return p.name
}

// Len implementation for ReadOnlyMemory interface.
func (p *Array) Len() uint {
	return uint(len(p.data))
}

// Read implementation for ReadOnlyMemory interface.
func (p *Array) Read(address int64) (int64, error) {
	if !p.IsValid(address) {
		return 0, p.outOfBounds(address)
	}
	//
	return p.data[address], nil
}

// Write implementation for Memory interface.
func (p *Array) Write(address int64, value int64) error {
	if !p.IsValid(address) {
		return p.outOfBounds(address)
	}
	//
	p.data[address] = value
	//
	return nil
}

// Contents implementation for Memory interface.
func (p *Array) Contents() []int64 {
	return p.data
}

// IsValid determines whether a given address lies within this memory.
func (p *Array) IsValid(address int64) bool {
	return address >= 0 && address < int64(len(p.data))
}

// Clone returns an independently owned copy of this array.  Writes to the
// clone are not visible in the original (and vice versa).
func (p *Array) Clone() *Array {
	return &Array{p.name, slices.Clone(p.data)}
}

func (p *Array) outOfBounds(address int64) *OutOfBoundsError {
	return &OutOfBoundsError{p.name, address, p.Len()}
}

// OutOfBoundsError is reported when an access is attempted at an address
// outside the valid range of a memory.
type OutOfBoundsError struct {
	// Name of the memory being accessed
	Memory string
	// Address which was accessed
	Address int64
	// Number of words in the memory
	Size uint
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("out-of-bounds access at address %d (%s has %d words)", e.Address, e.Memory, e.Size)
}
