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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirseerhq/trello-cli/internal/config"
	clierrors "github.com/sirseerhq/trello-cli/internal/errors"
	"github.com/sirseerhq/trello-cli/internal/output"
	"github.com/sirseerhq/trello-cli/internal/trello"
)

// action identifies the single operation an invocation performs. Modeling
// the five action flags as one enum makes "exactly one action" a property
// of the request value instead of a runtime convention.
type action int

const (
	actionListBoards action = iota
	actionListColumns
	actionListLabels
	actionAddCard
	actionAddComment
)

// flagName returns the command-line flag that selects the action.
func (a action) flagName() string {
	switch a {
	case actionListBoards:
		return "--list-boards"
	case actionListColumns:
		return "--list-columns"
	case actionListLabels:
		return "--list-labels"
	case actionAddCard:
		return "--add-card"
	case actionAddComment:
		return "--add-comment"
	default:
		return "unknown"
	}
}

// request is the validated, immutable description of one invocation:
// which action to perform, the credentials to use, and the action's
// fields. A request is only constructed by resolveRequest, so holding
// one implies the invocation was well-formed.
type request struct {
	action action

	key   string
	token string

	boardID     string
	listID      string
	cardID      string
	name        string
	description string
	comment     string
	labelIDs    []string
}

// noActionMessage lists every available action flag. It is shown when an
// invocation sets none of them.
const noActionMessage = `please specify an action:

  --list-boards
  --list-columns
  --list-labels
  --add-card
  --add-comment

or specify --help for more information.`

// usageError marks an invalid invocation. It matches errors.ErrUsage so
// main maps it to the usage exit code, while the message printed to the
// user stays exactly the text passed in.
type usageError struct {
	msg string
}

// Error implements the error interface.
func (e *usageError) Error() string { return e.msg }

// Is reports whether target is the usage sentinel.
func (e *usageError) Is(target error) bool { return target == clierrors.ErrUsage }

// usageErrorf builds a usageError from a format string.
func usageErrorf(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// resolveRequest turns raw flag values into a validated request. The key
// and token fall back to the environment variables named by the config
// when their flags are empty. Credentials are checked first, then action
// selection, then the selected action's required fields.
func resolveRequest(flags *rootFlags, cfg *config.Config) (*request, error) {
	key := flags.key
	if key == "" {
		key = os.Getenv(cfg.Trello.KeyEnv)
	}
	token := flags.token
	if token == "" {
		token = os.Getenv(cfg.Trello.TokenEnv)
	}
	if key == "" || token == "" {
		return nil, usageErrorf("--key and --token are required to interact with the Trello API.")
	}

	selected := flags.selectedActions()
	switch {
	case len(selected) == 0:
		return nil, usageErrorf(noActionMessage)
	case len(selected) > 1:
		names := make([]string, len(selected))
		for i, a := range selected {
			names[i] = a.flagName()
		}
		return nil, usageErrorf("%s are mutually exclusive; specify exactly one action.", strings.Join(names, " and "))
	}

	req := &request{
		action:      selected[0],
		key:         key,
		token:       token,
		boardID:     flags.boardID,
		listID:      flags.listID,
		cardID:      flags.cardID,
		name:        flags.name,
		description: flags.description,
		comment:     flags.comment,
		labelIDs:    splitLabelIDs(flags.labelIDs),
	}

	if err := req.validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// selectedActions returns the actions whose flags are set, in the order
// they are documented.
func (f *rootFlags) selectedActions() []action {
	var selected []action
	if f.listBoards {
		selected = append(selected, actionListBoards)
	}
	if f.listColumns {
		selected = append(selected, actionListColumns)
	}
	if f.listLabels {
		selected = append(selected, actionListLabels)
	}
	if f.addCard {
		selected = append(selected, actionAddCard)
	}
	if f.addComment {
		selected = append(selected, actionAddComment)
	}
	return selected
}

// validate checks that the fields the action requires are present. The
// messages name every required flag of the action, matching the tool's
// documented behavior.
func (r *request) validate() error {
	switch r.action {
	case actionListColumns:
		if r.boardID == "" {
			return usageErrorf("--board-id is required to list columns.")
		}
	case actionListLabels:
		if r.boardID == "" {
			return usageErrorf("--board-id is required to list labels.")
		}
	case actionAddCard:
		if r.listID == "" || r.name == "" || r.description == "" {
			return usageErrorf("--list-id, --name, and --description are required to add a card.")
		}
	case actionAddComment:
		if r.cardID == "" || r.comment == "" {
			return usageErrorf("--card-id and --comment are required to add a comment.")
		}
	}
	return nil
}

// splitLabelIDs turns the --label_ids value into a list of label ids.
// Ids are comma-separated; surrounding whitespace is trimmed and empty
// elements are dropped, so "a, b," yields ["a", "b"].
func splitLabelIDs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// executeRequest performs the single API call the request describes and
// writes the result records. Listings print one record per entity;
// mutations print the new entity's id followed by "added.".
func executeRequest(ctx context.Context, client trello.Client, w output.RecordWriter, req *request) error {
	switch req.action {
	case actionListBoards:
		boards, err := client.ListBoards(ctx)
		if err != nil {
			return err
		}
		for _, b := range boards {
			if err := w.WriteRecord(b.ID, b.Name); err != nil {
				return err
			}
		}

	case actionListColumns:
		lists, err := client.ListColumns(ctx, req.boardID)
		if err != nil {
			return err
		}
		for _, l := range lists {
			if err := w.WriteRecord(l.ID, l.Name); err != nil {
				return err
			}
		}

	case actionListLabels:
		labels, err := client.ListLabels(ctx, req.boardID)
		if err != nil {
			return err
		}
		for _, l := range labels {
			if err := w.WriteRecord(l.ID, l.Name, l.Color); err != nil {
				return err
			}
		}

	case actionAddCard:
		card, err := client.AddCard(ctx, req.listID, req.name, req.description, req.labelIDs)
		if err != nil {
			return err
		}
		if err := w.WriteRecord(card.ID, "added."); err != nil {
			return err
		}

	case actionAddComment:
		comment, err := client.AddComment(ctx, req.cardID, req.comment)
		if err != nil {
			return err
		}
		if err := w.WriteRecord(comment.ID, "added."); err != nil {
			return err
		}
	}

	return nil
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, clierrors.ErrUsage) {
		return 2 // Invalid invocation
	}
	if errors.Is(err, clierrors.ErrAPIRequest) {
		return 3 // Trello answered with a non-200 status
	}

	return 1 // General error
}
