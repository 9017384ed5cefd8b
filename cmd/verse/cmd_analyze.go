package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/verse"
)

type analyzeResult struct {
	Source string `json:"source"`
	verse.Analysis
}

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Classify the emotion of each poem",
		Long: `Scores each input against the eight emotion labels and reports the
primary label, confidence, polarity and evidence keywords.

In json format one object is printed per line, in input order.`,
		RunE: a.runAnalyze,
	}
	cmd.Flags().IntVarP(&a.jobs, "jobs", "j", 4, "number of inputs analyzed concurrently")
	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	names := sources(args)
	results := make([]analyzeResult, len(names))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Jobs)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := readSource(name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			results[i] = analyzeResult{Source: name, Analysis: a.classifier.Analyze(text)}
			a.logger.Debug("analyzed",
				zap.String("source", name),
				zap.String("primary", results[i].Primary.String()),
				zap.Float64("confidence", results[i].Confidence))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.cfg.Format == formatJSON {
		enc := json.NewEncoder(out)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SOURCE", "PRIMARY", "CONFIDENCE", "POLARITY", "KEYWORDS")
	for _, r := range results {
		t.Row(r.Source, r.Primary.String(),
			fmt.Sprintf("%.2f", r.Confidence),
			fmt.Sprintf("%+.0f", r.Polarity),
			strings.Join(r.Keywords, ", "))
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}
