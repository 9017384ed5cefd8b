package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (a *app) arcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arc [file]",
		Short: "Trace how the mood of a poem changes sentence by sentence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(sources(args)[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			arc, err := a.classifier.AnalyzeArc(text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Format == formatJSON {
				return writeJSON(out, arc)
			}

			path := make([]string, len(arc.Path))
			for i, e := range arc.Path {
				path[i] = e.String()
			}
			fmt.Fprintf(out, "overall: %s (%.2f)\npath: %s\n",
				arc.Overall.Primary, arc.Overall.Confidence, strings.Join(path, " -> "))

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "PRIMARY", "SENTENCE")
			for i, seg := range arc.Segments {
				t.Row(fmt.Sprint(i+1), seg.Analysis.Primary.String(), shorten(seg.Text, 60))
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}
}

func shorten(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
