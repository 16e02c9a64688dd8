package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/observability"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trainer",
		Short:         "Train and inspect nutrition deficiency models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "log format: text or json")

	root.AddCommand(newTrainCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	return observability.InitLogger(observability.LogConfig{
		Level:   level,
		Format:  format,
		Service: "nutrition-trainer",
		Output:  cmd.ErrOrStderr(),
	})
}
