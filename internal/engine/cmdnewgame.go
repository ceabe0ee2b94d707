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

import "github.com/kestrelchess/kestrel/pkg/uci/cmd"

// newCmdUciNewGame tells the engine the next "position"/"go" pair begins
// an unrelated game: the transposition table is cleared and the history
// table is aged rather than wiped, since a halved prior is still a
// reasonable move-ordering signal for the new game.
func newCmdUciNewGame(e *Engine) cmd.Command {
	return cmd.Command{
		Name: "ucinewgame",
		Run: func(cmd.Interaction) error {
			e.Search.NewGame()
			return nil
		},
	}
}
