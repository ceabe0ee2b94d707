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

package cmd

import (
	"fmt"
	"io"

	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// NewSchema initializes a new command Schema writing replies to w.
func NewSchema(w io.Writer) Schema {
	return Schema{
		replyWriter: w,
		commands:    make(map[string]Command),
	}
}

// Schema is the set of commands a Client recognizes.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers c under c.Name, replacing any existing command of the
// same name.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is one command a GUI may send the engine over UCI.
type Command struct {
	Name string // the token that selects this command

	// Parallel, if true, tells the client not to wait for Run to
	// return before accepting the next command: used by "go", whose
	// search must not block the engine from seeing a later "stop".
	Parallel bool

	Run   func(Interaction) error
	Flags flag.Schema
}

// RunWith parses args against c's flag schema and invokes c.Run. If
// parallel is true and c.Parallel is set, Run is launched in its own
// goroutine and RunWith returns immediately with a nil error; the
// caller's REPL loop stays free to accept a subsequent command (chiefly
// "stop") while Run is still working.
func (c Command) RunWith(args []string, parallel bool, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	interaction := Interaction{
		stdout:  schema.replyWriter,
		Command: c,
		Values:  values,
	}

	if parallel && c.Parallel {
		go func() {
			if err := c.Run(interaction); err != nil {
				interaction.Reply(err)
			}
		}()
		return nil
	}

	return c.Run(interaction)
}

// Interaction is the context a Command's Run function receives for one
// invocation: its own flag values and a way to reply to the GUI.
type Interaction struct {
	stdout io.Writer

	Command
	Values flag.Values
}

// Reply writes to the GUI as fmt.Println would.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a fmt.Printf-formatted line, newline-terminated, to the GUI.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
