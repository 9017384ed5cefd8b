package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tsawler/verse"
)

type themeOutput struct {
	Emotion  verse.Emotion `json:"emotion"`
	CSS      string        `json:"css"`
	Midpoint string        `json:"midpoint"`
	Contrast float64       `json:"contrast"`
	verse.Theme
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <emotion>",
		Short: "Print the visual theme for an emotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := verse.ParseEmotion(args[0])
			if err != nil {
				return err
			}
			t := verse.ThemeFor(e)
			out := themeOutput{
				Emotion:  e,
				CSS:      t.CSS(),
				Midpoint: t.Midpoint(),
				Contrast: t.Contrast(),
				Theme:    t,
			}
			if a.cfg.Format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return printTheme(cmd.OutOrStdout(), out)
		},
	}
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", 6))
}

func printTheme(w io.Writer, t themeOutput) error {
	_, err := fmt.Fprintf(w, "%s %s %s  %s\n  background: %s;\n  effect: %s\n  midpoint: %s\n  contrast: %.1f\n",
		swatch(t.Gradient.From), swatch(t.Midpoint), swatch(t.Gradient.To),
		t.Emotion, t.CSS, t.Effect, t.Midpoint, t.Contrast)
	return err
}

func (a *app) recommendCmd() *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "recommend <emotion> [files...]",
		Short: "Recommend related moods, optionally ranking poems by them",
		Long: `Prints the moods recommended for an emotion. "match" keeps the reader
in a similar mood and "balance" offers contrasting ones.

When files are given they are analyzed and ranked by how well they fit the
recommended moods, best first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := verse.ParseEmotion(args[0])
			if err != nil {
				return err
			}
			s, err := verse.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			moods := verse.Recommend(e, s)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if a.cfg.Format == formatJSON {
					return writeJSON(out, moods)
				}
				names := make([]string, len(moods))
				for i, m := range moods {
					names[i] = m.String()
				}
				_, err := fmt.Fprintln(out, strings.Join(names, "\n"))
				return err
			}

			candidates := make([]verse.Candidate, 0, len(args)-1)
			for _, name := range args[1:] {
				text, err := readSource(name, cmd.InOrStdin())
				if err != nil {
					return err
				}
				candidates = append(candidates, verse.Candidate{ID: name, Analysis: a.classifier.Analyze(text)})
			}
			ranked := verse.RankByMood(e, s, candidates)
			if a.cfg.Format == formatJSON {
				return writeJSON(out, ranked)
			}
			for _, r := range ranked {
				if _, err := fmt.Fprintf(out, "%.3f  %s\n", r.Score, r.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(verse.Match), "match or balance")
	return cmd
}
