package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/diogo/msgboard/internal/board"
	"github.com/diogo/msgboard/internal/models"
)

// NewListCmd creates the list command
func NewListCmd(deps *Dependencies) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all messages",
		Long:  `Fetch the message list once and print it in server order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := deps.Setup()
			if err != nil {
				return err
			}
			defer rt.Close()

			return runList(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), rt, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print messages as JSON")
	return cmd
}

func runList(ctx context.Context, out, errOut io.Writer, rt *Runtime, asJSON bool) error {
	state := board.New()

	spin := newSpinner(errOut, "Fetching messages")
	spin.start()
	if err := state.Load(ctx, rt.Client); err != nil {
		spin.stopWithError()
		board.LogFailure(rt.Logger, board.FlowLoad, err)
		return err
	}
	spin.stopWithSuccess(fmt.Sprintf("%d messages", len(state.Messages)))

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Messages)
	}

	screen := board.Render(state, models.NewTimeFormatter(rt.Settings.TimeFormat).Format)
	if screen.List != board.ListItems {
		fmt.Fprintln(out, board.TextEmpty)
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Content", "Created"})
	table.SetAutoWrapText(true)
	table.SetColWidth(getTerminalWidth(out) / 2)
	for _, item := range screen.Items {
		table.Append([]string{item.Key, item.Content, item.Time})
	}
	table.Render()
	return nil
}
