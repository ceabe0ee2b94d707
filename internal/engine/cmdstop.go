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

package engine

import (
	"errors"

	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

// newCmdStop implements "stop": it interrupts an ongoing "go" search so
// its goroutine returns its current best move immediately.
func newCmdStop(e *Engine) cmd.Command {
	return cmd.Command{
		Name: "stop",
		Run: func(cmd.Interaction) error {
			if !e.Searching {
				return errors.New("stop: no search in progress")
			}
			e.Search.Stop()
			return nil
		},
	}
}
