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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TARGET is the default value sought at address 0.
const TARGET int64 = 19690720

// Config determines the target value and the (half-open) range of nouns and
// verbs considered by a search.
type Config struct {
	// Target value expected at address 0
	Target int64 `yaml:"target"`
	// Smallest noun / verb considered
	Min int64 `yaml:"min"`
	// Largest noun / verb considered (exclusive)
	Max int64 `yaml:"max"`
}

// DefaultConfig returns the default search configuration, which considers all
// nouns and verbs in [0,100).
func DefaultConfig() Config {
	return Config{TARGET, 0, 100}
}

// Validate checks this configuration describes a non-empty range.
func (p Config) Validate() error {
	if p.Min >= p.Max {
		return fmt.Errorf("empty search range [%d,%d)", p.Min, p.Max)
	}
	//
	return nil
}

// LoadConfig reads a search configuration from a YAML file.  Any keys not
// present in the file retain their default values, whilst unknown keys are
// reported as an error.
func LoadConfig(filename string) (Config, error) {
	var config = DefaultConfig()
	//
	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	//
	return ParseConfig(data)
}

// ParseConfig parses a search configuration from YAML.
func ParseConfig(data []byte) (Config, error) {
	var (
		config  = DefaultConfig()
		decoder = yaml.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.KnownFields(true)
	// An empty document leaves the defaults in place
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("invalid search configuration: %w", err)
	}
	//
	return config, config.Validate()
}
