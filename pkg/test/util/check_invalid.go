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
package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode"
	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/intcode/parser"
)

// CheckInvalid checks that a given program either fails to parse, or fails
// when executed, exactly as described by its error file.
func CheckInvalid(t *testing.T, test string) {
	var (
		filename    = fmt.Sprintf("%s/%s.%s", TestDir, test, PROGRAM_EXT)
		errFilename = fmt.Sprintf("%s/%s.%s", TestDir, test, ERROR_EXT)
	)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	errfile := readSourceFile(t, errFilename)
	// Extract expected errors for comparison
	expected, errs1 := ExtractAttributes(errfile, extractSyntaxError(srcfile))
	faults, errs2 := ExtractAttributes(errfile, extractFault)
	//
	if errs := append(errs1, errs2...); len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	// Parse source file to produce errors
	program, actual := parser.Parse(srcfile)
	//
	switch {
	case len(expected) > 0:
		checkExpectedErrors(t, srcfile, actual, expected)
	case len(faults) == 1 && len(actual) == 0:
		checkExpectedFault(t, filename, program, faults[0])
	case len(faults) == 1:
		t.Fatalf("Error %s should have parsed: %s", filename, errorToString(actual[0]))
	default:
		t.Fatalf("Error %s has no (unique) expected error", errFilename)
	}
}

func checkExpectedFault(t *testing.T, filename string, program []int64, expected ExpectedFault) {
	var (
		vm        = machine.New(memory.NewArray(machine.MEMORY, program))
		_, err    = machine.ExecuteAll(vm, intcode.CHUNK)
		execError *machine.ExecutionError
		decoding  *instruction.DecodingError
		bounds    *memory.OutOfBoundsError
	)
	//
	switch {
	case err == nil:
		t.Fatalf("Error %s should not have halted", filename)
	case !errors.As(err, &execError):
		t.Fatalf("Error %s failed unexpectedly: %s", filename, err)
	case expected.Kind == FAULT_DECODING && !errors.As(err, &decoding):
		t.Fatalf("Error %s expected decoding fault, got: %s", filename, err)
	case expected.Kind == FAULT_BOUNDS && !errors.As(err, &bounds):
		t.Fatalf("Error %s expected bounds fault, got: %s", filename, err)
	case execError.PC != expected.PC:
		t.Fatalf("Error %s expected fault at pc %d, got: %s", filename, expected.PC, err)
	case vm.PC() != expected.PC || vm.Status() != machine.RUNNING:
		t.Fatalf("Error %s left machine %s at pc %d", filename, vm.Status(), vm.PC())
	}
}

func checkExpectedErrors(t *testing.T, srcfile *parser.File, actual, expected []parser.SyntaxError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have parsed\n", srcfile.Filename())
	} else {
		error := false
		// Construct initial message
		msg := fmt.Sprintf("Error %s\n", srcfile.Filename())
		// Pad out with what received
		for i := 0; i < max(len(actual), len(expected)); i++ {
			if i < len(actual) && i < len(expected) {
				expected := expected[i]
				actual := actual[i]
				// Check whether message OK
				if expected.Message() == actual.Message() && expected.Span() == actual.Span() {
					continue
				}
			}
			// Indicate error arose
			error = true
			// actual
			if i < len(actual) {
				actual := actual[i]
				msg = fmt.Sprintf("%s unexpected error %s\n", msg, errorToString(actual))
			}
			// expected
			if i < len(expected) {
				expected := expected[i]
				msg = fmt.Sprintf("%s   expected error %s\n", msg, errorToString(expected))
			}
		}
		//
		if error {
			t.Fatal(msg)
		}
	}
}

// Convert a span into a useful human readable string.
func errorToString(err parser.SyntaxError) string {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(0, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	return fmt.Sprintf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
}
