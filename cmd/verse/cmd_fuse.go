package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/verse/fusion"
)

func (a *app) fuseCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "fuse <fileA> <fileB>",
		Short: "Fuse two poems into a new one",
		Long: `Generates a new poem from two source poems. Without --style the style is
picked from the poems' emotions: identical moods blend, opposite moods
alternate, complementary moods become an emotional journey and anything else
is fused thematically.

The gemini provider falls back to a canned poem when GEMINI_API_KEY is unset.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var st fusion.Style
			if style != "" {
				parsed, err := fusion.ParseStyle(style)
				if err != nil {
					return err
				}
				st = parsed
			}

			poems := make([]fusion.Poem, len(args))
			for i, name := range args {
				text, err := readSource(name, cmd.InOrStdin())
				if err != nil {
					return err
				}
				poems[i] = fusion.Poem{ID: name, Title: titleFromPath(name), Content: text}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()

			gen, err := a.generator(ctx)
			if err != nil {
				return err
			}
			retry := fusion.DefaultRetryPolicy
			retry.Attempts = a.cfg.Retries
			fuser := fusion.NewFuser(gen,
				fusion.WithLogger(a.logger),
				fusion.WithRetry(retry),
				fusion.WithClassifier(a.classifier))

			result, err := fuser.Fuse(ctx, poems[0], poems[1], st)
			if err != nil {
				var verr *fusion.ValidationError
				if errors.As(err, &verr) {
					return fmt.Errorf("cannot fuse %s and %s: %w", args[0], args[1], err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Format == formatJSON {
				return writeJSON(out, result)
			}
			_, err = fmt.Fprintf(out, "%s\n(%s)\n\n%s\n", result.Title, result.Style, result.Content)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "blend, alternate, thematic or emotional")
	cmd.Flags().StringVar(&a.provider, "provider", providerGemini, "gemini, openai or static")
	cmd.Flags().StringVar(&a.model, "model", "", "model name for the provider")
	cmd.Flags().IntVar(&a.retries, "retries", 3, "attempts for transient failures")
	cmd.Flags().DurationVar(&a.timeout, "timeout", defaultConfig().Timeout, "overall time limit")
	return cmd
}

func (a *app) generator(ctx context.Context) (fusion.Generator, error) {
	switch a.cfg.Provider {
	case providerGemini:
		if a.cfg.GeminiAPIKey == "" {
			a.logger.Warn("GEMINI_API_KEY not set, using the placeholder poem")
			return fusion.StaticGenerator{}, nil
		}
		return fusion.NewGeminiGenerator(ctx, a.cfg.GeminiAPIKey, a.cfg.Model)
	case providerOpenAI:
		if a.cfg.OpenAIAPIKey == "" {
			return nil, &configError{err: errors.New("OPENAI_API_KEY is required for the openai provider")}
		}
		return fusion.NewOpenAIGenerator(a.cfg.OpenAIAPIKey, a.cfg.Model)
	default:
		a.logger.Debug("using static generator", zap.String("provider", a.cfg.Provider))
		return fusion.StaticGenerator{}, nil
	}
}
