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

package search

import "time"

// Timer bounds how long a search may run. A zero-value Timer, or one
// started with Start(0), never expires: the search then stops only at
// its depth limit or when Stop is called.
type Timer struct {
	start time.Time
	limit time.Duration // zero means unlimited
}

// Start begins the timer with the given budget. A non-positive budget
// means no time limit; Expired then always reports false.
func (t *Timer) Start(budget time.Duration) {
	t.start = time.Now()
	t.limit = budget
}

// Expired reports whether the timer's budget has elapsed.
func (t *Timer) Expired() bool {
	return t.limit > 0 && time.Since(t.start) >= t.limit
}

// Elapsed returns how long the timer has been running.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
