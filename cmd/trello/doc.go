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

// Package main implements the trello command-line interface. The tool
// performs exactly one action per invocation against the Trello API and
// prints the result as line-oriented text on stdout.
//
// The CLI supports five actions, selected by mutually exclusive flags:
//   - --list-boards: list the boards the credentials can see
//   - --list-columns: list the columns (lists) of a board
//   - --list-labels: list the labels of a board
//   - --add-card: create a card in a column
//   - --add-comment: comment on a card
//
// Credentials come from the --key and --token flags, falling back to the
// TRELLO_API_KEY and TRELLO_API_TOKEN environment variables (the variable
// names are configurable, see internal/config).
//
// Usage:
//
//	trello [flags]
//
// Example:
//
//	export TRELLO_API_KEY=your_key
//	export TRELLO_API_TOKEN=your_token
//	trello --list-boards
//
// Exit codes:
//   - 0: Success
//   - 1: General error (network failure, malformed response, bad config)
//   - 2: Usage error (missing credentials, no action, missing fields)
//   - 3: Trello API error (any non-200 response)
package main
