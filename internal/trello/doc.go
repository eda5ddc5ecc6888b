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

// Package trello provides a client for interacting with the Trello REST
// API to read boards, columns, and labels, and to create cards and
// comments. It hides the wire details (credential query parameters,
// form-encoded bodies, response decoding) behind a small interface.
//
// The package includes:
//   - A Client interface covering the five operations the CLI performs
//   - A REST implementation on net/http with credential-injecting transport
//   - Mock client for testing
//   - Type definitions for the board, column, label, card, and comment data
//
// Basic usage:
//
//	client := trello.NewRESTClient(key, token, "https://api.trello.com")
//	boards, err := client.ListBoards(ctx)
//	if err != nil {
//	    // Handle error
//	}
//	for _, b := range boards {
//	    // Process board
//	}
//
// Any non-200 API answer surfaces as *APIError, which preserves the
// status code and raw response body and matches errors.ErrAPIRequest.
package trello
