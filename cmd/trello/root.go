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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirseerhq/trello-cli/internal/config"
	"github.com/sirseerhq/trello-cli/internal/output"
	"github.com/sirseerhq/trello-cli/internal/telemetry"
	"github.com/sirseerhq/trello-cli/internal/trello"
	"github.com/sirseerhq/trello-cli/pkg/version"
)

// rootFlags collects the raw flag values of an invocation before they are
// resolved into a validated request.
type rootFlags struct {
	configFile string

	key   string
	token string

	listBoards  bool
	listColumns bool
	listLabels  bool
	addCard     bool
	addComment  bool

	boardID     string
	listID      string
	cardID      string
	name        string
	description string
	comment     string
	labelIDs    string
}

// newRootCommand builds the trello root command. The CLI has no
// subcommands; the action is selected by one of five mutually exclusive
// boolean flags.
func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "trello",
		Short: "A command-line tool for interacting with the Trello API",
		Long: `A command-line tool for interacting with the Trello API.

Each invocation performs exactly one action: list your boards, list the
columns or labels of a board, add a card to a column, or comment on a
card. Results are printed one record per line on stdout.

Authentication requires a Trello API key and token:
  - Use the --key and --token flags to provide them directly
  - Or set the TRELLO_API_KEY and TRELLO_API_TOKEN environment variables`,
		Example: `  export TRELLO_API_KEY=your_key
  export TRELLO_API_TOKEN=your_token

  trello --list-boards
  trello --list-columns --board-id 63bf64bde649ea019b59ac9d
  trello --list-labels --board-id 63bf64bde649ea019b59ac9d
  trello --add-card --list-id 63bf668eeea146001ad17e56 \
      --name "test card name" \
      --description "test card description" \
      --label_ids 63bf64bdbfa825468a035190,63bf64bdbfa825468a035191
  trello --add-comment --card-id 63bf9a1ce649ea019b59acc1 \
      --comment "test comment"`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unexpected argument: %s (this command takes flags only)", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.key, "key", "", "Trello API key (overrides TRELLO_API_KEY env var)")
	cmd.Flags().StringVar(&flags.token, "token", "", "Trello API token (overrides TRELLO_API_TOKEN env var)")

	cmd.Flags().BoolVar(&flags.listBoards, "list-boards", false, "Action: list all boards")
	cmd.Flags().BoolVar(&flags.listColumns, "list-columns", false, "Action: list all columns of a board")
	cmd.Flags().BoolVar(&flags.listLabels, "list-labels", false, "Action: list labels of a board")
	cmd.Flags().BoolVar(&flags.addCard, "add-card", false, "Action: add a card to a column")
	cmd.Flags().BoolVar(&flags.addComment, "add-comment", false, "Action: add a comment to a card")

	cmd.Flags().StringVar(&flags.boardID, "board-id", "", "Board id to interact with")
	cmd.Flags().StringVar(&flags.listID, "list-id", "", "Column (list) id to interact with")
	cmd.Flags().StringVar(&flags.cardID, "card-id", "", "Card id to interact with")
	cmd.Flags().StringVar(&flags.name, "name", "", "Name of the card to add")
	cmd.Flags().StringVar(&flags.description, "description", "", "Description of the card to add")
	cmd.Flags().StringVar(&flags.comment, "comment", "", "Comment text to add")
	cmd.Flags().StringVar(&flags.labelIDs, "label_ids", "", "Comma-separated list of label ids to attach")

	cmd.Flags().StringVar(&flags.configFile, "config", "", "Path to config file (default: .trello-cli.yaml, ~/.trello/config.yaml)")

	// Flag parse failures (unknown flags, bad values) are usage errors.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	return cmd
}

// run resolves configuration and flags into a request, performs the single
// API call it describes, and writes the result records to out.
func run(ctx context.Context, flags *rootFlags, out io.Writer) error {
	cfg, err := config.LoadConfig(flags.configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := telemetry.NewLogger(cfg.Defaults.LogLevel)
	defer func() { _ = log.Sync() }()

	req, err := resolveRequest(flags, cfg)
	if err != nil {
		return err
	}
	log.Debug("resolved action",
		zap.String("action", req.action.flagName()),
		zap.String("endpoint", cfg.Trello.BaseURL))

	client := trello.NewRESTClient(req.key, req.token, cfg.Trello.BaseURL, trello.WithLogger(log))
	writer := output.NewWriter(out)

	if err := executeRequest(ctx, client, writer, req); err != nil {
		return err
	}
	log.Debug("records written", zap.Int("count", writer.Count()))

	return nil
}
