// Package commands provides CLI commands for msgboard.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/msgboard/internal/tui"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
	// BuildMode is the deployment mode used when MSGBOARD_ENV is unset
	BuildMode = "development"
)

// NewRootCmd creates the root command and its subcommands
func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "msgboard",
		Short: "Terminal client for the message board",
		Long: `msgboard reads and posts messages on a message board backend.

Without a subcommand it opens the interactive board: the message list loads
on start, Enter posts the draft, Ctrl+R reloads.

The backend address comes from --api-url or MSGBOARD_API_URL. Otherwise the
mode decides: production uses /api on MSGBOARD_ORIGIN, development uses
http://localhost:8080/api.

Examples:
  msgboard                              Open the board
  msgboard list                         Print all messages
  msgboard list --json                  Print messages as JSON
  msgboard post "Hello there"           Post a message
  echo "Hello" | msgboard post          Post from stdin
  msgboard health                       Check the backend
  msgboard --api-url http://srv:8080/api list`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return runBoard(deps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&deps.Flags.APIURL, "api-url", "", "Backend base address (overrides MSGBOARD_API_URL)")
	rootCmd.PersistentFlags().StringVar(&deps.Flags.Mode, "mode", "", "Deployment mode: production or development (overrides MSGBOARD_ENV)")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(NewBoardCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewPostCmd(deps))
	rootCmd.AddCommand(NewHealthCmd(deps))
	rootCmd.AddCommand(NewConfigCmd(deps))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

var rootCmd = NewRootCmd(NewDependencies())

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err))
		os.Exit(1)
	}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "msgboard %s (built %s, %s mode)\n", Version, BuildTime, BuildMode)
}
