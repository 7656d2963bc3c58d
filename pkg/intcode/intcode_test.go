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
package intcode

import (
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/assert"
)

func Test_Run_01(t *testing.T) {
	checkRun(t, []int64{1, 0, 0, 0, 99}, []int64{2, 0, 0, 0, 99})
}

func Test_Run_02(t *testing.T) {
	checkRun(t, []int64{2, 3, 0, 3, 99}, []int64{2, 3, 0, 6, 99})
}

func Test_Run_03(t *testing.T) {
	checkRun(t, []int64{2, 4, 4, 5, 99, 0}, []int64{2, 4, 4, 5, 99, 9801})
}

func Test_Run_04(t *testing.T) {
	checkRun(t, []int64{1, 1, 1, 4, 99, 5, 6, 0, 99}, []int64{30, 1, 1, 4, 2, 5, 6, 0, 99})
}

func Test_Run_05(t *testing.T) {
	checkRun(t, []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, []int64{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50})
}

func Test_Run_InPlace(t *testing.T) {
	words := []int64{1, 0, 0, 0, 99}
	result, err := Run(words)
	//
	assert.NoError(t, err)
	// Same backing array
	assert.True(t, &words[0] == &result[0])
}

func Test_Run_Decoding(t *testing.T) {
	words := []int64{1, 0, 0, 0, 42, 0, 0, 0, 99}
	result, err := Run(words)
	//
	decErr := assert.ErrorAs[*instruction.DecodingError](t, err)
	assert.Equal(t, uint(4), decErr.PC)
	// Partial effects are visible
	assert.Equal(t, int64(2), result[0])
}

func Test_Run_OutOfBounds(t *testing.T) {
	_, err := Run([]int64{2, 0, 12, 0, 99})
	oob := assert.ErrorAs[*memory.OutOfBoundsError](t, err)
	assert.Equal(t, int64(12), oob.Address)
}

func Test_RunWithParameters_01(t *testing.T) {
	var program = []int64{1, 0, 0, 0, 99, 10, 20}
	// [0] = [5] + [6]
	result, err := RunWithParameters(program, 5, 6)
	assert.NoError(t, err)
	assert.Equal(t, int64(30), result[0])
	// Program is unchanged
	assert.Equal(t, []int64{1, 0, 0, 0, 99, 10, 20}, program)
}

func Test_RunWithParameters_02(t *testing.T) {
	// Too short to hold parameters
	_, err := RunWithParameters([]int64{99, 0}, 1, 1)
	oob := assert.ErrorAs[*memory.OutOfBoundsError](t, err)
	assert.Equal(t, int64(VERB), oob.Address)
}

func checkRun(t *testing.T, words []int64, expected []int64) {
	actual, err := Run(words)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
}
