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
package search

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	log "github.com/sirupsen/logrus"
)

// ErrNotFound is returned when no noun / verb pair within the search range
// produces the target value.
var ErrNotFound = errors.New("no noun / verb pair produces target")

// Result identifies the noun / verb pair found by a search.
type Result struct {
	Noun int64
	Verb int64
	// Number of executions performed (including the successful one)
	Attempts uint
}

// Answer combines the noun and verb into a single value.
func (p Result) Answer() int64 {
	return 100*p.Noun + p.Verb
}

func (p Result) String() string {
	return fmt.Sprintf("noun=%d, verb=%d", p.Noun, p.Verb)
}

// Search for the first noun / verb pair (in row-major order, with the noun as
// the outer loop) for which executing the program leaves the target value at
// address 0.  Every attempt executes on a fresh copy of the program, hence the
// program itself is never modified.  A failing execution aborts the search.
func Search(program []int64, config Config) (Result, error) {
	var (
		checkpoint = machine.NewCheckPoint(program)
		attempts   uint
	)
	//
	if err := config.Validate(); err != nil {
		return Result{}, err
	}
	//
	log.Debugf("searching [%d,%d)^2 for target %d (program %016x)", config.Min, config.Max, config.Target,
		checkpoint.Digest())
	//
	for noun := config.Min; noun < config.Max; noun++ {
		for verb := config.Min; verb < config.Max; verb++ {
			attempts++
			//
			output, err := attempt(checkpoint, noun, verb)
			//
			if err != nil {
				return Result{noun, verb, attempts}, fmt.Errorf("noun=%d, verb=%d: %w", noun, verb, err)
			} else if output == config.Target {
				log.Debugf("found noun=%d, verb=%d after %d attempts", noun, verb, attempts)
				//
				return Result{noun, verb, attempts}, nil
			}
		}
	}
	//
	return Result{Attempts: attempts}, ErrNotFound
}

// Execute a single attempt on a freshly restored machine, returning the final
// value at address 0.
func attempt(checkpoint machine.CheckPoint, noun, verb int64) (int64, error) {
	var vm = checkpoint.Restore()
	//
	if err := intcode.Parameterise(vm.Memory(), noun, verb); err != nil {
		return 0, err
	}
	//
	if _, err := machine.ExecuteAll(vm, intcode.CHUNK); err != nil {
		return 0, err
	}
	//
	return vm.Memory().Read(0)
}
