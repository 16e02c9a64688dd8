package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/dto"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/usecase"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/service"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/artifact"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/config"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/dataset"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/messaging"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/storage"
)

type trainFlags struct {
	variant     string
	data        string
	testSize    float64
	seed        uint64
	k           int
	store       string
	out         string
	key         string
	databaseURL string
	sqlitePath  string
	topic       string
}

func newTrainCmd() *cobra.Command {
	defaults := service.DefaultTrainOptions()
	f := &trainFlags{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model from a CSV dataset and save the artifact bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.variant, "variant", "lab", "pipeline variant: lab or survey")
	fl.StringVar(&f.data, "data", "", "path to the training CSV (.tsv is read tab separated)")
	fl.Float64Var(&f.testSize, "test-size", defaults.TestSize, "fraction of rows held out for evaluation")
	fl.Uint64Var(&f.seed, "seed", defaults.Seed, "random seed for the stratified split")
	fl.IntVar(&f.k, "k", defaults.K, "number of neighbours")
	fl.StringVar(&f.store, "store", config.StoreFile, "artifact store: file, postgres or sqlite")
	fl.StringVar(&f.out, "out", "model.json", "bundle path for the file store")
	fl.StringVar(&f.key, "key", "default", "bundle key for the postgres and sqlite stores")
	fl.StringVar(&f.databaseURL, "database-url", "", "postgres connection URL")
	fl.StringVar(&f.sqlitePath, "sqlite-path", "artifacts.db", "sqlite database path")
	fl.StringVar(&f.topic, "events-topic", "nutrition.events", "topic name attached to logged events")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runTrain(cmd *cobra.Command, f *trainFlags) error {
	ctx := cmd.Context()
	logger := loggerFor(cmd)

	store, closeStore, err := storage.Open(ctx, storage.Options{
		Kind:        f.store,
		Path:        f.out,
		DatabaseURL: f.databaseURL,
		SQLitePath:  f.sqlitePath,
	}, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	uc := usecase.NewTrainModel(
		dataset.NewCSVSource(logger),
		artifact.NewJSONCodec(),
		store,
		messaging.NewLogPublisher(f.topic, logger),
		logger,
	)
	resp, err := uc.Execute(ctx, dto.TrainRequest{
		Variant:  f.variant,
		DataPath: f.data,
		Key:      f.key,
		TestSize: f.testSize,
		Seed:     f.seed,
		K:        f.k,
	})
	if err != nil {
		return err
	}

	printTrainReport(cmd.OutOrStdout(), resp)
	return nil
}

func printTrainReport(w io.Writer, resp dto.TrainResponse) {
	fmt.Fprintf(w, "variant:   %s\n", resp.Variant)
	fmt.Fprintf(w, "bundle:    %s (key %s)\n", resp.BundleID, resp.Key)
	fmt.Fprintf(w, "features:  %s\n", strings.Join(resp.Features, ", "))
	fmt.Fprintln(w, "\nclass distribution (labelled rows):")
	printDistribution(w, resp.LabelledDistribution)
	fmt.Fprintln(w, "\nclass distribution (usable rows):")
	printDistribution(w, resp.Distribution)
	fmt.Fprintf(w, "\ntrain rows: %d  test rows: %d  dropped: %d\n", resp.TrainSize, resp.TestSize, resp.DroppedRows)
	fmt.Fprintf(w, "predicted classes on test set: %v\n", resp.PredictedClasses)
	fmt.Fprintf(w, "accuracy: %s%%\n\n", decimal.NewFromFloat(resp.Report.Accuracy).Shift(2).StringFixed(2))
	fmt.Fprint(w, resp.Report.String())
	for _, warning := range resp.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

func printDistribution(w io.Writer, rows []dto.ClassCount) {
	for _, r := range rows {
		fmt.Fprintf(w, "  %d  %-40s %d\n", r.Class, r.Label, r.Count)
	}
}
