package commands

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates a new config command
func NewConfigCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Open configuration menu",
		Long:  `Interactive menu to configure msgboard display settings.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.TUI.RunConfig()
		},
	}
}

// NewBoardCmd creates the interactive board command
func NewBoardCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive message board",
		Long: `Open the interactive message board.

The list loads on start. Type a message and press Enter to post it.
Ctrl+R reloads, Ctrl+Y copies the newest message, Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(deps)
		},
	}
}

func runBoard(deps *Dependencies) error {
	rt, err := deps.Setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	return deps.TUI.RunBoard(rt.Client, rt.Settings, rt.Logger)
}
