package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/msgboard/internal/board"
	apierrors "github.com/diogo/msgboard/internal/errors"
	"github.com/diogo/msgboard/internal/models"
)

// NewPostCmd creates the post command
func NewPostCmd(deps *Dependencies) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "post [text...]",
		Short: "Post a message",
		Long: `Post one message. The text is the arguments joined by spaces, or
stdin when no arguments are given. Blank text is rejected without a request.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			rt, err := deps.Setup()
			if err != nil {
				return err
			}
			defer rt.Close()

			return runPost(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), rt, content, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the created message as JSON")
	return cmd
}

// readContent takes the text from args, falling back to piped stdin
func readContent(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if isTerminal(in) {
		return "", fmt.Errorf("no message given: pass text as arguments or pipe it on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runPost(ctx context.Context, out, errOut io.Writer, rt *Runtime, content string, asJSON bool) error {
	state := board.New()
	state.SetDraft(content)

	spin := newSpinner(errOut, "Posting message")
	spin.start()
	started, err := state.Submit(ctx, rt.Client)
	if !started {
		spin.stopWithError()
		return apierrors.NewValidationError("content", "message content cannot be empty")
	}
	if err != nil {
		spin.stopWithError()
		board.LogFailure(rt.Logger, board.FlowSubmit, err)
		return err
	}
	spin.stopWithSuccess("Posted")

	created := state.Messages[len(state.Messages)-1]
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(created)
	}

	line := fmt.Sprintf("Created message #%s", created.ID)
	if ts := models.NewTimeFormatter(rt.Settings.TimeFormat).Format(created.CreatedAt); ts != "" {
		line += " at " + ts
	}
	fmt.Fprintln(out, line)
	return nil
}
