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

package testutil

import "time"

// trelloTimestamp matches the millisecond UTC format the Trello API uses.
const trelloTimestamp = "2006-01-02T15:04:05.000Z"

// DefaultBoards returns the boards NewTrelloServer serves out of the box.
func DefaultBoards() []map[string]interface{} {
	return []map[string]interface{}{
		BoardPayload(ErrandsBoardID, "Errands"),
		BoardPayload(PlanningBoardID, "Planning"),
	}
}

// DefaultLists returns the columns of the Errands board.
func DefaultLists() []map[string]interface{} {
	return []map[string]interface{}{
		ListPayload(TodoListID, "To Do", ErrandsBoardID, 16384),
		ListPayload(DoingListID, "Doing", ErrandsBoardID, 32768),
		ListPayload(DoneListID, "Done", ErrandsBoardID, 49152),
	}
}

// DefaultLabels returns the labels of the Errands board.
func DefaultLabels() []map[string]interface{} {
	return []map[string]interface{}{
		LabelPayload(UrgentLabelID, "urgent", "red", ErrandsBoardID),
		LabelPayload(HomeLabelID, "home", "green", ErrandsBoardID),
		LabelPayload(SomedayLabelID, "someday", "blue", ErrandsBoardID),
	}
}

// BoardPayload builds a board object shaped like a live API response.
// The CLI reads only id and name; the remaining fields prove the client
// tolerates full production payloads.
func BoardPayload(id, name string) map[string]interface{} {
	return map[string]interface{}{
		"id":             id,
		"name":           name,
		"desc":           "",
		"descData":       nil,
		"closed":         false,
		"idOrganization": "63bf5f02c01a9a01b1a9f1c2",
		"pinned":         false,
		"url":            "https://trello.com/b/" + shortLink(id),
		"shortUrl":       "https://trello.com/b/" + shortLink(id),
		"starred":        false,
	}
}

// ListPayload builds a column object for the given board.
func ListPayload(id, name, boardID string, pos float64) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"name":       name,
		"closed":     false,
		"color":      nil,
		"idBoard":    boardID,
		"pos":        pos,
		"subscribed": false,
		"softLimit":  nil,
	}
}

// LabelPayload builds a label object. An empty color is encoded as JSON
// null, the way the API reports colorless labels.
func LabelPayload(id, name, color, boardID string) map[string]interface{} {
	var colorValue interface{}
	if color != "" {
		colorValue = color
	}
	return map[string]interface{}{
		"id":      id,
		"idBoard": boardID,
		"name":    name,
		"color":   colorValue,
		"uses":    3,
	}
}

// CardPayload builds the card object the API returns after creation.
func CardPayload(id, name, desc, listID, boardID string, labelIDs []string) map[string]interface{} {
	if labelIDs == nil {
		labelIDs = []string{}
	}
	return map[string]interface{}{
		"id":               id,
		"name":             name,
		"desc":             desc,
		"descData":         map[string]interface{}{"emoji": map[string]interface{}{}},
		"closed":           false,
		"dueComplete":      false,
		"dateLastActivity": time.Now().UTC().Format(trelloTimestamp),
		"due":              nil,
		"idBoard":          boardID,
		"idList":           listID,
		"idLabels":         labelIDs,
		"idMembers":        []string{},
		"idChecklists":     []string{},
		"labels":           []interface{}{},
		"pos":              65535,
		"shortLink":        shortLink(id),
		"shortUrl":         "https://trello.com/c/" + shortLink(id),
		"url":              "https://trello.com/c/" + shortLink(id),
		"subscribed":       false,
		"badges": map[string]interface{}{
			"attachments":       0,
			"comments":          0,
			"checkItems":        0,
			"checkItemsChecked": 0,
			"votes":             0,
		},
	}
}

// CommentPayload builds the commentCard action the API returns after a
// comment is posted.
func CommentPayload(id, cardID, text string) map[string]interface{} {
	return map[string]interface{}{
		"id":              id,
		"idMemberCreator": "63bf5ee1a0e2720065fad3aa",
		"type":            "commentCard",
		"date":            time.Now().UTC().Format(trelloTimestamp),
		"data": map[string]interface{}{
			"text":     text,
			"textData": map[string]interface{}{"emoji": map[string]interface{}{}},
			"card": map[string]interface{}{
				"id":        cardID,
				"name":      "Buy milk",
				"idShort":   4,
				"shortLink": shortLink(cardID),
			},
			"board": map[string]interface{}{
				"id":        ErrandsBoardID,
				"name":      "Errands",
				"shortLink": shortLink(ErrandsBoardID),
			},
			"list": map[string]interface{}{
				"id":   TodoListID,
				"name": "To Do",
			},
		},
		"memberCreator": map[string]interface{}{
			"id":              "63bf5ee1a0e2720065fad3aa",
			"activityBlocked": false,
			"fullName":        "Test Member",
			"username":        "testmember",
		},
	}
}

// shortLink derives a plausible Trello short link from an object id.
func shortLink(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
