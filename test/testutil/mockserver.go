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

// Package testutil provides common test helpers for trello-cli
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// Credentials accepted by NewTrelloServer and sent by RunWithServer.
const (
	TestKey   = "test-key"
	TestToken = "test-token"
)

// Well-known ids served by the default mock fixtures. The values come
// from a real board so fixture data looks like production data.
const (
	ErrandsBoardID  = "63bf64bde649ea019b59ac9d"
	PlanningBoardID = "63bf64bde649ea019b59ac9e"

	TodoListID  = "63bf668dfa06cf0066442182"
	DoingListID = "63bf668eeea146001ad17e56"
	DoneListID  = "63bf668f97cfe800db5d74b2"

	UrgentLabelID  = "63bf64bdbfa825468a035190"
	HomeLabelID    = "63bf64bdbfa825468a035191"
	SomedayLabelID = "63bf64bdbfa825468a035195"

	CreatedCardID    = "63bf9a1ce649ea019b59acc1"
	CreatedCommentID = "63bf9a20e0e2720065fad56e"
)

// RecordedRequest captures one request the mock server handled, so tests
// can assert on the exact wire traffic the CLI produced.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

// MockTrelloServer is an httptest-backed fake of the Trello REST API
// covering the five endpoints the CLI uses. It validates the credential
// query parameters on every request, serves configurable canned data,
// and records each request it handles.
type MockTrelloServer struct {
	*httptest.Server

	mu       sync.Mutex
	key      string
	token    string
	boards   []map[string]interface{}
	lists    map[string][]map[string]interface{}
	labels   map[string][]map[string]interface{}
	requests []RecordedRequest
}

// NewTrelloServer starts a mock Trello API preloaded with the default
// fixtures: two boards, with three columns and three labels on the
// Errands board. The server accepts TestKey/TestToken and is closed
// when the test finishes.
func NewTrelloServer(t *testing.T) *MockTrelloServer {
	t.Helper()

	s := &MockTrelloServer{
		key:    TestKey,
		token:  TestToken,
		boards: DefaultBoards(),
		lists: map[string][]map[string]interface{}{
			ErrandsBoardID: DefaultLists(),
		},
		labels: map[string][]map[string]interface{}{
			ErrandsBoardID: DefaultLabels(),
		},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

// SetBoards replaces the boards served by the members/me/boards endpoint.
func (s *MockTrelloServer) SetBoards(boards ...map[string]interface{}) {
	if boards == nil {
		boards = []map[string]interface{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards = boards
}

// SetLists replaces the columns served for the given board.
func (s *MockTrelloServer) SetLists(boardID string, lists ...map[string]interface{}) {
	if lists == nil {
		lists = []map[string]interface{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[boardID] = lists
}

// SetLabels replaces the labels served for the given board.
func (s *MockTrelloServer) SetLabels(boardID string, labels ...map[string]interface{}) {
	if labels == nil {
		labels = []map[string]interface{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels[boardID] = labels
}

// Requests returns a copy of every request handled so far, in order.
func (s *MockTrelloServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or nil if none arrived.
func (s *MockTrelloServer) LastRequest() *RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	req := s.requests[len(s.requests)-1]
	return &req
}

func (s *MockTrelloServer) handle(w http.ResponseWriter, r *http.Request) {
	idx := s.record(r)

	q := r.URL.Query()
	if q.Get("key") != s.key {
		writeText(w, http.StatusUnauthorized, "invalid key")
		return
	}
	if q.Get("token") != s.token {
		writeText(w, http.StatusUnauthorized, "invalid token")
		return
	}

	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet && path == "/1/members/me/boards":
		s.mu.Lock()
		boards := s.boards
		s.mu.Unlock()
		writeJSON(w, boards)

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/1/boards/") && strings.HasSuffix(path, "/lists"):
		boardID := strings.TrimSuffix(strings.TrimPrefix(path, "/1/boards/"), "/lists")
		s.mu.Lock()
		lists, ok := s.lists[boardID]
		s.mu.Unlock()
		if !ok {
			writeText(w, http.StatusNotFound, "The requested resource was not found.")
			return
		}
		writeJSON(w, lists)

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/1/boards/") && strings.HasSuffix(path, "/labels"):
		boardID := strings.TrimSuffix(strings.TrimPrefix(path, "/1/boards/"), "/labels")
		s.mu.Lock()
		labels, ok := s.labels[boardID]
		s.mu.Unlock()
		if !ok {
			writeText(w, http.StatusNotFound, "The requested resource was not found.")
			return
		}
		writeJSON(w, labels)

	case r.Method == http.MethodPost && path == "/1/cards":
		if err := r.ParseForm(); err != nil {
			writeText(w, http.StatusBadRequest, "could not parse form")
			return
		}
		s.setForm(idx, r.PostForm)
		if r.PostForm.Get("idList") == "" {
			writeText(w, http.StatusBadRequest, "invalid value for idList")
			return
		}
		card := CardPayload(CreatedCardID,
			r.PostForm.Get("name"),
			r.PostForm.Get("desc"),
			r.PostForm.Get("idList"),
			ErrandsBoardID,
			splitNonEmpty(r.PostForm.Get("idLabels")))
		writeJSON(w, card)

	case r.Method == http.MethodPost && strings.HasPrefix(path, "/1/cards/") && strings.HasSuffix(path, "/actions/comments"):
		if err := r.ParseForm(); err != nil {
			writeText(w, http.StatusBadRequest, "could not parse form")
			return
		}
		s.setForm(idx, r.PostForm)
		if r.PostForm.Get("text") == "" {
			writeText(w, http.StatusBadRequest, "invalid value for text")
			return
		}
		cardID := strings.TrimSuffix(strings.TrimPrefix(path, "/1/cards/"), "/actions/comments")
		writeJSON(w, CommentPayload(CreatedCommentID, cardID, r.PostForm.Get("text")))

	default:
		writeText(w, http.StatusNotFound, "The requested resource was not found.")
	}
}

// record stores the request shell and returns its index so the handler
// can attach the parsed form once the body has been read.
func (s *MockTrelloServer) record(r *http.Request) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
	})
	return len(s.requests) - 1
}

func (s *MockTrelloServer) setForm(idx int, form url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[idx].Form = form
}

// NewErrorServer creates a mock server that answers every request with
// the given status code and body, for exercising API failure paths.
func NewErrorServer(t *testing.T, statusCode int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeText(w, statusCode, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
