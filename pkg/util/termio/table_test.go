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
package termio

import (
	"strings"
	"testing"

	"github.com/consensys/go-intcode/pkg/util/assert"
)

func Test_Table_01(t *testing.T) {
	var (
		table   = NewTablePrinter(2)
		builder strings.Builder
	)
	//
	table.AddRow("0", "add")
	table.AddRow("12", "halt")
	table.Write(&builder)
	//
	assert.Equal(t, "  0 |  add |\n 12 | halt |\n", builder.String())
}

func Test_Table_02(t *testing.T) {
	var (
		table   = NewTablePrinter(1)
		builder strings.Builder
	)
	//
	table.AddRow("abcdefgh")
	table.SetMaxWidths(5)
	table.Write(&builder)
	//
	assert.Equal(t, " abc.. |\n", builder.String())
}

func Test_Table_03(t *testing.T) {
	var (
		table   = NewTablePrinter(1)
		builder strings.Builder
	)
	//
	row := table.AddRow("x")
	table.SetEscape(0, row, NewAnsiEscape().FgColour(TERM_RED))
	table.Write(&builder)
	assert.Equal(t, "\033[31m x\033[0m |\n", builder.String())
	// Escapes can be disabled
	builder.Reset()
	table.AnsiEscapes(false)
	table.Write(&builder)
	assert.Equal(t, " x |\n", builder.String())
}

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[1;32m", BoldAnsiEscape().FgColour(TERM_GREEN).Build())
	assert.Equal(t, "\033[33;44m", NewAnsiEscape().FgColour(TERM_YELLOW).BgColour(TERM_BLUE).Build())
}
