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
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/intcode/parser"
	"github.com/consensys/go-intcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	// EXIT_USAGE indicates the command was invoked incorrectly.
	EXIT_USAGE = 1
	// EXIT_IO indicates a file could not be read.
	EXIT_IO = 2
	// EXIT_SYNTAX indicates a program file was malformed.
	EXIT_SYNTAX = 3
	// EXIT_FAULT indicates execution failed (decoding or out-of-bounds).
	EXIT_FAULT = 4
	// EXIT_NOT_FOUND indicates a search found no matching noun / verb.
	EXIT_NOT_FOUND = 5
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// Check a command was given exactly one program file, and configure the log
// level.
func checkArgs(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(EXIT_USAGE)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Read and parse a program file, exiting with an appropriate status if either
// fails.
func readProgramFile(filename string) []int64 {
	srcfile, err := parser.ReadSourceFile(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	//
	log.Debugf("including file %s", filename)
	//
	words, errs := parser.Parse(srcfile)
	//
	if len(errs) > 0 {
		for i := range errs {
			printSyntaxError(&errs[i])
		}
		//
		os.Exit(EXIT_SYNTAX)
	}
	//
	log.Debugf("parsed %d words from %s", len(words), filename)
	//
	return words
}

// Write the noun and / or verb into a program, if either was given on the
// command line.
func applyParameters(cmd *cobra.Command, words []int64) {
	var mem = memory.NewArray(machine.MEMORY, words)
	//
	if cmd.Flags().Changed("noun") {
		if err := mem.Write(intcode.NOUN, GetInt(cmd, "noun")); err != nil {
			reportFault(err)
		}
	}
	//
	if cmd.Flags().Changed("verb") {
		if err := mem.Write(intcode.VERB, GetInt(cmd, "verb")); err != nil {
			reportFault(err)
		}
	}
}

// Report a failed execution and exit.
func reportFault(err error) {
	var (
		bounds *memory.OutOfBoundsError
		kind   = "decoding"
	)
	//
	if errors.As(err, &bounds) {
		kind = "bounds"
	}
	//
	fmt.Printf("execution fault (%s): %s\n", kind, err)
	os.Exit(EXIT_FAULT)
}

// Report a configuration file which could not be loaded and exit.
func reportConfigError(err error) {
	var pathErr *fs.PathError
	//
	fmt.Println(err)
	//
	if errors.As(err, &pathErr) {
		os.Exit(EXIT_IO)
	}
	//
	os.Exit(EXIT_USAGE)
}

// Print a table to stdout.  Colour is only used when writing to a terminal,
// in which case columns are also bounded so that rows fit its width.
func printTable(table *termio.TablePrinter) {
	var fd = int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		table.AnsiEscapes(false)
	} else if width, _, err := term.GetSize(fd); err == nil && table.Width() > 0 {
		// Each column is decorated with three characters of padding
		table.SetMaxWidths(max(uint(width)/table.Width(), 6) - 3)
	}
	//
	table.Print()
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *parser.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(0, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

// Format a sequence of words as a program, i.e. as comma-separated integers.
func formatWords(words []int64) string {
	var builder strings.Builder
	//
	for i, w := range words {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		fmt.Fprintf(&builder, "%d", w)
	}
	//
	return builder.String()
}
