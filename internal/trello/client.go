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

package trello

import "context"

// Client defines the interface for interacting with Trello's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// ListBoards retrieves all boards belonging to the authenticated member.
	ListBoards(ctx context.Context) ([]Board, error)

	// ListColumns retrieves the columns (lists) of the specified board.
	ListColumns(ctx context.Context, boardID string) ([]List, error)

	// ListLabels retrieves the labels configured on the specified board.
	ListLabels(ctx context.Context, boardID string) ([]Label, error)

	// AddCard creates a card in the specified column with the given name
	// and description. labelIDs attaches existing labels and may be empty.
	AddCard(ctx context.Context, listID, name, desc string, labelIDs []string) (*Card, error)

	// AddComment posts a comment on the specified card.
	AddComment(ctx context.Context, cardID, text string) (*Comment, error)
}
