package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akeller/revu/internal/analyzer"
	"github.com/akeller/revu/internal/input"
	"github.com/akeller/revu/internal/output"
)

var (
	analyzeSamples bool
	analyzeOutput  string
	analyzeFormat  string
	analyzeNoSave  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze customer reviews from a file",
	Long: `Analyze customer reviews with a remote LLM and build a sentiment report.

Reviews are read from a JSON file (array of strings, or an object with a
"reviews" array) or a text file (one review per line). Use --samples to try
the tool with a built-in review set instead of a file.

Requires an API key for the configured provider (OPENAI_API_KEY or
ANTHROPIC_API_KEY, or the matching key in the config file).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := ""
		if len(args) == 1 {
			file = args[0]
		}
		return analyzeRun(file)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSamples, "samples", false, "Use built-in sample reviews instead of a file")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "analysis_report.json", "Report file path")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "table", "Display format: table, json, markdown")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Skip writing the report file")
	analyzeCmd.Flags().Float64("temperature", 0.3, "Sampling temperature for sentiment extraction (0.0-1.0)")
	_ = viper.BindPFlag("temperature", analyzeCmd.Flags().Lookup("temperature"))
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeRun(file string) error {
	var reviews []string
	switch {
	case analyzeSamples:
		reviews = input.SampleReviews()
		ui.Info("Using %d sample reviews", len(reviews))
	case file != "":
		var err error
		reviews, err = input.LoadReviews(file)
		if err != nil {
			return err
		}
		ui.Info("Loaded %d reviews from %s", len(reviews), file)
	default:
		return fmt.Errorf("provide a reviews file or use --samples")
	}

	if len(reviews) == 0 {
		return fmt.Errorf("no reviews to analyze")
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}

	ctx := context.Background()
	a := analyzer.New(gen, viper.GetFloat64("temperature"))

	ui.Info("Analyzing %d reviews with %s...", len(reviews), gen.ModelName())
	records := a.AnalyzeBatch(ctx, reviews, func(done, total int) {
		ui.VerboseLog("analyzed review %d/%d", done, total)
	})

	ui.Info("Generating report...")
	report := a.BuildReport(ctx, records)

	switch analyzeFormat {
	case "table":
		if err := ui.RenderReport(report); err != nil {
			return err
		}
	case "json":
		if err := ui.RenderJSON(report); err != nil {
			return err
		}
	case "markdown":
		ui.RenderMarkdown(report)
	default:
		return fmt.Errorf("unknown format: %s (use: table, json, markdown)", analyzeFormat)
	}

	if report.FailedReviews > 0 {
		ui.Warning("%d of %d reviews failed to analyze (see error fields in the report)", report.FailedReviews, report.TotalReviews)
	}

	if !analyzeNoSave {
		if err := output.SaveReport(report, analyzeOutput); err != nil {
			return err
		}
		ui.Success("Report saved to %s", analyzeOutput)
	}

	return nil
}
