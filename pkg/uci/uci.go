// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package uci implements the text-based protocol front-end: a
// read-eval-print loop that parses whitespace-separated command lines
// from a GUI and dispatches them against a registered command schema.
// It is thin string plumbing around the search and board core, not part
// of it.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

// NewClient creates a Client reading from stdin and writing to stdout,
// with the "isready" and "quit" commands already registered.
func NewClient() Client {
	client := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	client.commands = cmd.NewSchema(client.stdout)

	client.AddCommand(cmdIsReady)
	client.AddCommand(cmdQuit)

	return client
}

// Client is a UCI protocol endpoint: an input stream, an output stream,
// and the set of commands it understands.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
}

// AddCommand registers c, so that Start/Run/RunWith can dispatch to it.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs the read-eval-print loop against c.stdin until a "quit"
// command is received or the input stream ends.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args, true); err {
		case nil:
			// continue the loop
		case errQuit:
			return nil
		default:
			c.Println(err)
		}
	}
}

// Run executes args as a single command, synchronously.
func (c *Client) Run(args ...string) error {
	return c.RunWith(args, false)
}

// RunWith looks up the command named by args[0] and runs it with the
// rest of args, honouring the command's Parallel flag when parallelize
// is true.
func (c *Client) RunWith(args []string, parallelize bool) error {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return command.RunWith(args, parallelize, c.commands)
}

// Print writes to the client's output stream like fmt.Print.
func (c *Client) Print(a ...any) (int, error) { return fmt.Fprint(c.stdout, a...) }

// Printf writes to the client's output stream like fmt.Printf.
func (c *Client) Printf(format string, a ...any) (int, error) { return fmt.Fprintf(c.stdout, format, a...) }

// Println writes to the client's output stream like fmt.Println.
func (c *Client) Println(a ...any) (int, error) { return fmt.Fprintln(c.stdout, a...) }
