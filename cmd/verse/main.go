// Command verse classifies the emotion of poems, prints their themes and
// fuses pairs of poems with a text generation service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/verse"
)

type app struct {
	// Global flags
	configPath string
	verbose    bool
	lexicon    string
	format     string

	// Command flags that override the config file
	jobs     int
	provider string
	model    string
	retries  int
	timeout  time.Duration

	cfg        Config
	logger     *zap.Logger
	ownLogger  bool
	classifier *verse.Classifier
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "verse",
		Short: "Emotion analysis, themes and fusion for poems",
		Long: `verse scores a poem against eight emotion labels, maps the winning
label to a visual theme, recommends related moods and can fuse two poems
into a new one with Gemini or OpenAI.

Text is read from files, or from stdin when no file (or "-") is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil && a.ownLogger {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.lexicon, "lexicon", "", "JSON lexicon merged over the built-in one")
	pf.StringVar(&a.format, "format", "", "output format: text or json")

	root.AddCommand(
		a.analyzeCmd(),
		a.themeCmd(),
		a.recommendCmd(),
		a.arcCmd(),
		a.fuseCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.logger == nil {
		config := zap.NewProductionConfig()
		if a.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
		a.ownLogger = true
	}

	loaded, err := loadDotEnv(".env.local", ".env")
	if err != nil {
		return &configError{err: err}
	}
	for _, p := range loaded {
		a.logger.Debug("loaded env file", zap.String("path", p))
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return &configError{err: err}
	}
	flags := cmd.Flags()
	if flags.Changed("lexicon") {
		cfg.Lexicon = a.lexicon
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
	if flags.Changed("provider") {
		cfg.Provider = a.provider
	}
	if flags.Changed("model") {
		cfg.Model = a.model
	}
	if flags.Changed("retries") {
		cfg.Retries = a.retries
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if err := cfg.Validate(); err != nil {
		return &configError{err: err}
	}
	a.cfg = cfg

	opts := []verse.ClassifierOpt{verse.WithMaxKeywords(a.cfg.MaxKeywords)}
	if a.cfg.Lexicon != "" {
		lex, err := verse.LoadLexicon(a.cfg.Lexicon)
		if err != nil {
			return &configError{err: err}
		}
		a.logger.Debug("loaded lexicon", zap.String("path", a.cfg.Lexicon), zap.Int("words", lex.Size()))
		opts = append(opts, verse.UsingLexicon(lex))
	}
	a.classifier = verse.NewClassifier(opts...)
	return nil
}

func run(ctx context.Context, a *app, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if a.logger != nil {
		a.logger.Error("command failed", zap.Error(err))
		if a.ownLogger {
			_ = a.logger.Sync()
		}
	}
	fmt.Fprintln(stderr, "verse:", err)

	var cerr *configError
	if errors.As(err, &cerr) {
		return 2
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, &app{}, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
