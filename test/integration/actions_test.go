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

package integration

import (
	"net/http"
	"testing"

	"github.com/sirseerhq/trello-cli/test/testutil"
)

func TestActions_ListBoards(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	result := testutil.RunWithServer(t, server, "--list-boards")

	testutil.AssertCLISuccess(t, result)
	testutil.AssertRecordLines(t, result.Stdout,
		testutil.ErrandsBoardID+" Errands",
		testutil.PlanningBoardID+" Planning",
	)

	last := server.LastRequest()
	if last == nil {
		t.Fatal("Expected a recorded request")
	}
	testutil.AssertEqual(t, last.Method, http.MethodGet)
	testutil.AssertEqual(t, last.Path, "/1/members/me/boards")
	testutil.AssertEqual(t, last.Query.Get("key"), testutil.TestKey)
	testutil.AssertEqual(t, last.Query.Get("token"), testutil.TestToken)
}

func TestActions_ListColumns(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	result := testutil.RunWithServer(t, server, "--list-columns", "--board-id", testutil.ErrandsBoardID)

	testutil.AssertCLISuccess(t, result)
	testutil.AssertRecordLines(t, result.Stdout,
		testutil.TodoListID+" To Do",
		testutil.DoingListID+" Doing",
		testutil.DoneListID+" Done",
	)

	last := server.LastRequest()
	if last == nil {
		t.Fatal("Expected a recorded request")
	}
	testutil.AssertEqual(t, last.Path, "/1/boards/"+testutil.ErrandsBoardID+"/lists")
}

func TestActions_ListLabels(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	result := testutil.RunWithServer(t, server, "--list-labels", "--board-id", testutil.ErrandsBoardID)

	testutil.AssertCLISuccess(t, result)
	testutil.AssertRecordLines(t, result.Stdout,
		testutil.UrgentLabelID+" urgent red",
		testutil.HomeLabelID+" home green",
		testutil.SomedayLabelID+" someday blue",
	)
}

func TestActions_AddCard(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	result := testutil.RunWithServer(t, server,
		"--add-card",
		"--list-id", testutil.TodoListID,
		"--name", "Buy milk",
		"--description", "2 liters, whole",
		"--label_ids", testutil.UrgentLabelID+","+testutil.HomeLabelID)

	testutil.AssertCLISuccess(t, result)
	testutil.AssertRecordLines(t, result.Stdout, testutil.CreatedCardID+" added.")

	last := server.LastRequest()
	if last == nil {
		t.Fatal("Expected a recorded request")
	}
	testutil.AssertEqual(t, last.Method, http.MethodPost)
	testutil.AssertEqual(t, last.Path, "/1/cards")
	testutil.AssertEqual(t, last.Form.Get("idList"), testutil.TodoListID)
	testutil.AssertEqual(t, last.Form.Get("name"), "Buy milk")
	testutil.AssertEqual(t, last.Form.Get("desc"), "2 liters, whole")
	testutil.AssertEqual(t, last.Form.Get("idLabels"), testutil.UrgentLabelID+","+testutil.HomeLabelID)
}

func TestActions_AddCardWithoutLabels(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	result := testutil.RunWithServer(t, server,
		"--add-card",
		"--list-id", testutil.TodoListID,
		"--name", "Call plumber",
		"--description", "Kitchen sink drips")

	testutil.AssertCLISuccess(t, result)
	testutil.AssertRecordLines(t, result.Stdout, testutil.CreatedCardID+" added.")

	// idLabels is always sent, empty when no labels were requested.
	last := server.LastRequest()
	if last == nil {
		t.Fatal("Expected a recorded request")
	}
	if _, ok := last.Form["idLabels"]; !ok {
		t.Error("Expected idLabels form field to be present")
	}
	testutil.AssertEqual(t, last.Form.Get("idLabels"), "")
}

func TestActions_AddComment(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	result := testutil.RunWithServer(t, server,
		"--add-comment",
		"--card-id", testutil.CreatedCardID,
		"--comment", "Done, fridge restocked.")

	testutil.AssertCLISuccess(t, result)
	testutil.AssertRecordLines(t, result.Stdout, testutil.CreatedCommentID+" added.")

	last := server.LastRequest()
	if last == nil {
		t.Fatal("Expected a recorded request")
	}
	testutil.AssertEqual(t, last.Method, http.MethodPost)
	testutil.AssertEqual(t, last.Path, "/1/cards/"+testutil.CreatedCardID+"/actions/comments")
	testutil.AssertEqual(t, last.Form.Get("id"), testutil.CreatedCardID)
	testutil.AssertEqual(t, last.Form.Get("text"), "Done, fridge restocked.")
}

func TestActions_EmptyListings(t *testing.T) {
	server := testutil.NewTrelloServer(t)
	server.SetBoards()
	server.SetLists(testutil.ErrandsBoardID)
	server.SetLabels(testutil.ErrandsBoardID)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no boards",
			args: []string{"--list-boards"},
		},
		{
			name: "no columns",
			args: []string{"--list-columns", "--board-id", testutil.ErrandsBoardID},
		},
		{
			name: "no labels",
			args: []string{"--list-labels", "--board-id", testutil.ErrandsBoardID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunWithServer(t, server, tt.args...)

			// Empty listings succeed and print nothing.
			testutil.AssertCLISuccess(t, result)
			testutil.AssertExitCode(t, result, 0)
			testutil.AssertRecordLines(t, result.Stdout)
		})
	}
}

func TestActions_SingleRequestPerInvocation(t *testing.T) {
	server := testutil.NewTrelloServer(t)

	result := testutil.RunWithServer(t, server, "--list-boards")

	testutil.AssertCLISuccess(t, result)
	if n := len(server.Requests()); n != 1 {
		t.Errorf("Expected exactly 1 API request, got %d", n)
	}
}
