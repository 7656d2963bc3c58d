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
package machine

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"slices"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/spaolacci/murmur3"
)

// MEMORY is the name given to memories constructed by this package.
const MEMORY = "memory"

// CheckPoint represents a captured state of a machine, such that execution can
// be continued later from this position (sometimes also known as a
// "continuation").  A checkpoint owns its own copy of memory, hence it is
// unaffected by any subsequent execution of the machine it was captured from.
// Likewise, every machine restored from a checkpoint receives a fresh copy of
// memory.  This allows the same initial state to be explored many times over
// (e.g. with different parameters) without one execution corrupting the next.
type CheckPoint struct {
	pc     uint
	status Status
	memory []int64
}

// NewCheckPoint captures the boot state of a machine for a given program.  The
// program is copied.
func NewCheckPoint(program []int64) CheckPoint {
	return CheckPoint{0, RUNNING, slices.Clone(program)}
}

// CheckPoint captures the current state of this machine.
func (p *Machine) CheckPoint() CheckPoint {
	return CheckPoint{p.pc, p.status, slices.Clone(p.memory.Contents())}
}

// Restore constructs a new machine from this checkpoint, operating over a
// fresh copy of the captured memory.
func (p CheckPoint) Restore() *Machine {
	var mem = memory.NewArray(MEMORY, slices.Clone(p.memory))
	//
	return &Machine{mem, p.pc, p.status, nil}
}

// PC returns the Program Counter position captured by this checkpoint.
func (p CheckPoint) PC() uint {
	return p.pc
}

// Status returns the status captured by this checkpoint.
func (p CheckPoint) Status() Status {
	return p.status
}

// Len returns the number of words of memory captured by this checkpoint.
func (p CheckPoint) Len() uint {
	return uint(len(p.memory))
}

// Digest returns a (non-cryptographic) hash of the memory image captured by
// this checkpoint.  This is useful for identifying programs in logs.
func (p CheckPoint) Digest() uint64 {
	var buffer = make([]byte, 0, 8*len(p.memory))
	//
	for _, word := range p.memory {
		buffer = binary.LittleEndian.AppendUint64(buffer, uint64(word))
	}
	//
	return murmur3.Sum64(buffer)
}

// MarshalBinary converts this checkpoint into bytes.
func (p CheckPoint) MarshalBinary() ([]byte, error) {
	var buffer bytes.Buffer
	//
	gobEncoder := gob.NewEncoder(&buffer)
	// program counter
	if err := gobEncoder.Encode(p.pc); err != nil {
		return nil, err
	}
	// status
	if err := gobEncoder.Encode(p.status); err != nil {
		return nil, err
	}
	// memory
	if err := gobEncoder.Encode(p.memory); err != nil {
		return nil, err
	}
	// Success
	return buffer.Bytes(), nil
}

// UnmarshalBinary reconstructs a checkpoint from bytes previously produced by
// MarshalBinary.
func (p *CheckPoint) UnmarshalBinary(data []byte) error {
	buffer := bytes.NewBuffer(data)
	gobDecoder := gob.NewDecoder(buffer)
	// program counter
	if err := gobDecoder.Decode(&p.pc); err != nil {
		return err
	}
	// status
	if err := gobDecoder.Decode(&p.status); err != nil {
		return err
	}
	// memory
	p.memory = nil
	//
	return gobDecoder.Decode(&p.memory)
}
