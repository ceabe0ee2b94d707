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

// Package build holds values stamped in at link time with -ldflags
// "-X github.com/kestrelchess/kestrel/internal/build.Version=...".
package build

// Version is the engine's version string, overwritten at build time by
// the release tooling; "dev" identifies an unreleased local build.
var Version = "dev"
