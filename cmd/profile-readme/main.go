package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kevinmichaelchen/profile-readme/internal/aggregate"
	"github.com/kevinmichaelchen/profile-readme/internal/config"
	"github.com/kevinmichaelchen/profile-readme/internal/pipeline"
)

var (
	verbose bool
	logger  *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "profile-readme",
		Short:         "Generate a profile README and SVG cards from GitHub, blog and Bluesky data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(generateCmd(), languagesCmd())

	if err := root.Execute(); err != nil {
		if logger != nil {
			logger.Error("generation failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, "generation failed:", err)
		}
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		outDir string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch data, render the SVG cards and write README.md",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			_, err = pipeline.Run(context.Background(), cfg, pipeline.NewDeps(cfg, logger), pipeline.Options{
				OutputDir: outDir,
				DryRun:    dryRun,
			})
			return err
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default $OUTPUT_DIR or .)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render everything but write nothing")
	return cmd
}

func languagesCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "Print the aggregated language breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			deps := pipeline.NewDeps(cfg, logger)
			deps.Blog, deps.Posts, deps.Social = nil, nil, nil

			snap, err := pipeline.Collect(context.Background(), cfg.GitHubUser, deps, 0)
			if err != nil {
				return err
			}

			shares := aggregate.Languages(snap.Languages)
			if len(shares) == 0 {
				fmt.Println("No languages found")
				return nil
			}
			for i, s := range aggregate.Top(shares, n) {
				fmt.Printf("%2d. %-20s %6.2f%%  %12d bytes\n", i+1, s.Name, s.Percentage, s.Bytes)
			}
			if failed := aggregate.Failures(snap.Languages); len(failed) > 0 {
				fmt.Printf("\n%d repositories could not be inspected\n", len(failed))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 10, "Number of languages to show")
	return cmd
}
