package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/usecase"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/dataset"
)

func newInspectCmd() *cobra.Command {
	var variant, data string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the label distribution of a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFor(cmd)
			resp, err := usecase.NewInspectDataset(dataset.NewCSVSource(logger)).Execute(cmd.Context(), data, variant)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "variant: %s\n", resp.Variant)
			fmt.Fprintf(w, "columns: %s\n", strings.Join(resp.Columns, ", "))
			if len(resp.Missing) > 0 {
				fmt.Fprintf(w, "missing: %s\n", strings.Join(resp.Missing, ", "))
			}
			fmt.Fprintf(w, "rows: %d  unlabelled: %d\n", resp.Rows, resp.Unlabelled)
			fmt.Fprintln(w, "label distribution:")
			printDistribution(w, resp.Distribution)
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "survey", "pipeline variant: lab or survey")
	cmd.Flags().StringVar(&data, "data", "", "path to the dataset CSV")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
