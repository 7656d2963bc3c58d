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
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/assert"
)

func Test_Search_01(t *testing.T) {
	var (
		program = lookupProgram()
		config  = Config{57000, 0, 100}
	)
	//
	result, err := Search(program, config)
	assert.NoError(t, err)
	// (3,57) precedes (5,52) in row-major order
	assert.Equal(t, int64(3), result.Noun)
	assert.Equal(t, int64(57), result.Verb)
	assert.Equal(t, int64(357), result.Answer())
	assert.Equal(t, uint(3*100+57+1), result.Attempts)
	// Search never modifies the program
	assert.Equal(t, lookupProgram(), program)
}

func Test_Search_02(t *testing.T) {
	// Restricting the range moves the first match
	result, err := Search(lookupProgram(), Config{57000, 5, 100})
	assert.NoError(t, err)
	assert.Equal(t, int64(552), result.Answer())
}

func Test_Search_03(t *testing.T) {
	result, err := Search(lookupProgram(), Config{-1, 0, 10})
	//
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, uint(100), result.Attempts)
}

func Test_Search_04(t *testing.T) {
	_, err := Search(lookupProgram(), Config{0, 10, 10})
	assert.True(t, err != nil)
}

func Test_Search_05(t *testing.T) {
	// Nouns beyond the end of memory fault on the first attempt
	_, err := Search([]int64{1, 0, 0, 0, 99}, Config{0, 10, 20})
	oob := assert.ErrorAs[*memory.OutOfBoundsError](t, err)
	assert.Equal(t, int64(10), oob.Address)
}

// Every match agrees with a direct execution, and no earlier pair matches.
func Test_Search_Exhaustive(t *testing.T) {
	var program = lookupProgram()
	//
	for _, target := range []int64{1, 99, 10000, 12000, 99000, 198000} {
		result, err := Search(program, Config{target, 0, 100})
		assert.NoError(t, err, "target %d", target)
		//
		output, err := intcode.RunWithParameters(program, result.Noun, result.Verb)
		assert.NoError(t, err)
		assert.Equal(t, target, output[0])
		//
		for i := uint(1); i < result.Attempts; i++ {
			noun, verb := int64((i-1)/100), int64((i-1)%100)
			output, err := intcode.RunWithParameters(program, noun, verb)
			assert.NoError(t, err)
			assert.True(t, output[0] != target, "(%d,%d) also matches %d", noun, verb, target)
		}
	}
}

// Construct a program computing [0] = [noun] + [verb], where every address
// beyond the code holds 1000 times its own address.
func lookupProgram() []int64 {
	var program = make([]int64, 100)
	//
	copy(program, []int64{1, 0, 0, 0, 99})
	//
	for i := 5; i < len(program); i++ {
		program[i] = int64(i * 1000)
	}
	//
	return slices.Clip(program)
}
