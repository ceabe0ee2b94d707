// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package flag implements types representing the flags a UCI command
// accepts and the values parsed for them out of a command line.
package flag

import "fmt"

// NewSchema initializes an empty flag Schema.
func NewSchema() Schema {
	return Schema{flags: make(map[string]Flag)}
}

// Schema is the set of flags one UCI command accepts.
type Schema struct {
	flags map[string]Flag
}

// Parse consumes args according to the schema, returning the collected
// Values or the first error encountered: an unknown flag name, a flag
// repeated twice, or a flag missing required arguments.
func (s Schema) Parse(args []string) (Values, error) {
	values := make(Values)

	if s.flags == nil {
		if len(args) > 0 {
			return values, fmt.Errorf("parse flags: unknown flag %q", args[0])
		}
		return values, nil
	}

	for len(args) > 0 {
		name := args[0]

		collect, isFlag := s.flags[name]
		if !isFlag {
			return values, fmt.Errorf("parse flags: unknown flag %q", name)
		}
		if values[name].Set {
			return values, fmt.Errorf("parse flags: flag %q already set", name)
		}

		value, rest, err := collect(args[1:])
		if err != nil {
			return values, err
		}
		args = rest

		values[name] = Value{Set: true, Value: value}
	}

	return values, nil
}

// Button adds a no-argument flag: its Value is always nil, and Set
// reports only whether the flag token itself appeared.
func (s Schema) Button(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return nil, args, nil
	}
}

// Single adds a flag taking exactly one string argument.
func (s Schema) Single(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		if len(args) == 0 {
			return nil, nil, argNumErr(name, 1, 0)
		}
		return args[0], args[1:], nil
	}
}

// Array adds a flag taking exactly argN string arguments, as a []string.
func (s Schema) Array(name string, argN int) {
	s.flags[name] = func(args []string) (any, []string, error) {
		value := make([]string, argN)
		if collected := copy(value, args); collected != argN {
			return nil, nil, argNumErr(name, argN, collected)
		}
		return value, args[argN:], nil
	}
}

// Variadic adds a flag that consumes every remaining argument, as a
// []string; only valid as the last flag an argument list can contain.
func (s Schema) Variadic(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return args, nil, nil
	}
}

// Flag collects its own arguments from the front of args, returning its
// parsed value and whatever of args it did not consume.
type Flag func(args []string) (value any, rest []string, err error)

// Values maps each flag name in a Schema to the Value parsed for it.
type Values map[string]Value

// Value is one flag's parse result.
type Value struct {
	Set   bool // whether the flag token appeared at all
	Value any  // string, []string, or nil for a Button flag
}

func argNumErr(name string, want, got int) error {
	return fmt.Errorf("flag %s: expected %d args, got %d", name, want, got)
}
