// Package main provides the CLI entry point for benchviz, which turns
// recorded SC-DLAC benchmark results into the published figure set.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zccadle/SC-DLAC/src/datasets"
	"github.com/zccadle/SC-DLAC/src/figures"
	"github.com/zccadle/SC-DLAC/src/results"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "benchviz",
		Short: "Render SC-DLAC benchmark result figures",
		Long: `Benchviz reads the most recent benchmark result files for each test
category and renders the performance, gas cost, security and workflow
figures as static images. Categories without result files fall back to
the published reference values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			results.SetLogLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log verbosity: debug, info, warn, error")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newListCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var (
		resultsDir string
		outDir     string
		only       []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render figures from the latest benchmark results",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := results.LoadStore(resultsDir)
			if err != nil {
				return err
			}
			data := datasets.FromStore(st)
			return figures.RenderAll(data, outDir, only)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&resultsDir, "results", "results",
		"Directory holding benchmark result JSON files")
	flags.StringVar(&outDir, "out", "graphs",
		"Directory to write figure images into")
	flags.StringSliceVar(&only, "only", nil,
		"Render only the named figures (see 'benchviz list')")

	return cmd
}

func newListCmd() *cobra.Command {
	var resultsDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List figures and per-category dataset availability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := results.LoadStore(resultsDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Figures:")
			for _, f := range figures.All() {
				fmt.Fprintf(out, "  %-30s -> %s\n", f.Name, f.File)
			}
			fmt.Fprintln(out, "\nDatasets:")
			for _, c := range results.Categories {
				if ds, ok := st.Get(c.Key); ok {
					fmt.Fprintf(out, "  %-20s %s\n", c.Key, filepath.Base(ds.Path))
				} else {
					fmt.Fprintf(out, "  %-20s built-in defaults (no %s)\n", c.Key, c.Pattern)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&resultsDir, "results", "results",
		"Directory holding benchmark result JSON files")

	return cmd
}
