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

import (
	"context"
	"net/http"
)

// MockClient is a mock implementation of the Trello Client interface for testing.
type MockClient struct {
	// Canned data to return
	Boards  []Board
	Lists   []List
	Labels  []Label
	Card    *Card
	Comment *Comment

	// Error to return from every operation
	Error error

	// Behavior flags
	ShouldFailAuth bool

	// Track calls for verification
	CallCount    int
	LastBoardID  string
	LastListID   string
	LastCardID   string
	LastName     string
	LastDesc     string
	LastLabelIDs []string
	LastText     string
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Boards:  generateTestBoards(),
		Lists:   generateTestLists(),
		Labels:  generateTestLabels(),
		Card:    &Card{ID: "63bf9a1ce649ea019b59acc1"},
		Comment: &Comment{ID: "63bf9a20e0e2720065fad56e"},
	}
}

// ListBoards implements the Client interface
func (m *MockClient) ListBoards(ctx context.Context) ([]Board, error) {
	m.CallCount++
	if err := m.checkFailure(ctx); err != nil {
		return nil, err
	}
	return m.Boards, nil
}

// ListColumns implements the Client interface
func (m *MockClient) ListColumns(ctx context.Context, boardID string) ([]List, error) {
	m.CallCount++
	m.LastBoardID = boardID
	if err := m.checkFailure(ctx); err != nil {
		return nil, err
	}
	return m.Lists, nil
}

// ListLabels implements the Client interface
func (m *MockClient) ListLabels(ctx context.Context, boardID string) ([]Label, error) {
	m.CallCount++
	m.LastBoardID = boardID
	if err := m.checkFailure(ctx); err != nil {
		return nil, err
	}
	return m.Labels, nil
}

// AddCard implements the Client interface
func (m *MockClient) AddCard(ctx context.Context, listID, name, desc string, labelIDs []string) (*Card, error) {
	m.CallCount++
	m.LastListID = listID
	m.LastName = name
	m.LastDesc = desc
	m.LastLabelIDs = labelIDs
	if err := m.checkFailure(ctx); err != nil {
		return nil, err
	}
	return m.Card, nil
}

// AddComment implements the Client interface
func (m *MockClient) AddComment(ctx context.Context, cardID, text string) (*Comment, error) {
	m.CallCount++
	m.LastCardID = cardID
	m.LastText = text
	if err := m.checkFailure(ctx); err != nil {
		return nil, err
	}
	return m.Comment, nil
}

// checkFailure simulates the configured error conditions
func (m *MockClient) checkFailure(ctx context.Context) error {
	// Check for context cancellation
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return &APIError{StatusCode: http.StatusUnauthorized, Body: "invalid key"}
	}

	return m.Error
}

// generateTestBoards creates sample board data for testing
func generateTestBoards() []Board {
	return []Board{
		{ID: "63bf64bde649ea019b59ac9d", Name: "Errands"},
		{ID: "63bf64bde649ea019b59ac9e", Name: "Weekly Planning"},
	}
}

// generateTestLists creates sample column data for testing
func generateTestLists() []List {
	return []List{
		{ID: "63bf668dfa06cf0066442182", Name: "To Do"},
		{ID: "63bf668eeea146001ad17e56", Name: "Doing"},
		{ID: "63bf668f97cfe800db5d74b2", Name: "Done"},
	}
}

// generateTestLabels creates sample label data for testing
func generateTestLabels() []Label {
	return []Label{
		{ID: "63bf64bdbfa825468a035190", Name: "urgent", Color: "red"},
		{ID: "63bf64bdbfa825468a035191", Name: "home", Color: "green"},
		{ID: "63bf64bdbfa825468a035195", Name: "someday", Color: "blue"},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithBoards sets specific boards to return
func WithBoards(boards []Board) MockClientOption {
	return func(m *MockClient) {
		m.Boards = boards
	}
}

// WithLists sets specific columns to return
func WithLists(lists []List) MockClientOption {
	return func(m *MockClient) {
		m.Lists = lists
	}
}

// WithLabels sets specific labels to return
func WithLabels(labels []Label) MockClientOption {
	return func(m *MockClient) {
		m.Labels = labels
	}
}

// WithCard sets the card returned by AddCard
func WithCard(card *Card) MockClientOption {
	return func(m *MockClient) {
		m.Card = card
	}
}

// WithComment sets the comment returned by AddComment
func WithComment(comment *Comment) MockClientOption {
	return func(m *MockClient) {
		m.Comment = comment
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate a credential rejection
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
