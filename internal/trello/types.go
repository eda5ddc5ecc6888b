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

// Board represents a Trello board. Only the fields the CLI prints are
// decoded; the rest of the API payload is ignored.
type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List represents a single column of a Trello board.
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label represents a label configured on a board. Color may be empty
// for colorless labels; it prints as an empty field.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Card represents a newly created card. The create endpoint answers with
// the full card object; only the id is consumed.
type Card struct {
	ID string `json:"id"`
}

// Comment represents the comment action created on a card.
type Comment struct {
	ID string `json:"id"`
}
