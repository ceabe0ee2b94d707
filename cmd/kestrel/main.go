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

// Command kestrel is a UCI-compatible chess engine.
package main

import (
	"fmt"
	"os"

	"github.com/kestrelchess/kestrel/internal/build"
	"github.com/kestrelchess/kestrel/internal/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	client := engine.NewClient()

	fmt.Printf("Kestrel %s\n", build.Version)

	switch args := os.Args[1:]; {
	case len(args) == 0:
		// no command-line arguments: start the read-eval-print loop
		return client.Start()

	default:
		// command-line arguments: evaluate them as a single UCI command;
		// not a repl, so no command runs in parallel with another
		return client.RunWith(args, false)
	}
}
