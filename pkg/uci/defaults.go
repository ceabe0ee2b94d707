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

package uci

import (
	"errors"

	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

var cmdIsReady cmd.Command // isready
var cmdQuit cmd.Command    // quit

// errQuit is returned by the "quit" command to end Client.Start's loop.
var errQuit = errors.New("client: quit")

func init() {
	// isready synchronizes with the GUI: it must be answered with
	// readyok even mid-search, without interrupting that search.
	cmdIsReady = cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	}

	cmdQuit = cmd.Command{
		Name: "quit",
		Run: func(cmd.Interaction) error {
			return errQuit
		},
	}
}
