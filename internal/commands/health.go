package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diogo/msgboard/internal/models"
)

// NewHealthCmd creates the health command
func NewHealthCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the backend and its database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := deps.Setup()
			if err != nil {
				return err
			}
			defer rt.Close()

			return runHealth(cmd.Context(), cmd.OutOrStdout(), rt)
		},
	}
}

func runHealth(ctx context.Context, out io.Writer, rt *Runtime) error {
	service, serviceErr := rt.Client.Health(ctx)
	db, dbErr := rt.Client.DatabaseHealth(ctx)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Check", "Status", "Detail"})
	table.Append(healthRow("service", rt.BaseURL, service, serviceErr))
	table.Append(healthRow("database", db.Database, db, dbErr))
	table.Render()

	if serviceErr != nil {
		rt.Logger.Warn("health check failed", zap.String("check", "service"), zap.Error(serviceErr))
		return serviceErr
	}
	if dbErr != nil {
		rt.Logger.Warn("health check failed", zap.String("check", "database"), zap.Error(dbErr))
		return dbErr
	}
	return nil
}

func healthRow(check, detail string, report models.HealthReport, err error) []string {
	status := report.Status
	if status == "" {
		status = "UNREACHABLE"
	}
	switch {
	case report.Error != "":
		detail = report.Error
	case err != nil && report.Status == "":
		detail = err.Error()
	case check == "database" && report.OK():
		detail = fmt.Sprintf("%s, %d messages", report.Database, report.MessageCount)
	}
	return []string{check, status, detail}
}
