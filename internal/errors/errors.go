// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrUsage indicates the command line was invalid: missing credentials,
	// no action selected, conflicting actions, or a required field absent.
	// Maps to exit code 2.
	ErrUsage = errors.New("invalid usage")

	// ErrAPIRequest indicates the Trello API answered with a non-200 status.
	// The wrapping error carries the status code and the raw response body.
	// Maps to exit code 3.
	ErrAPIRequest = errors.New("trello api request failed")
)
