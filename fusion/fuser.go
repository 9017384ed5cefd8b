package fusion

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/verse"
)

// Option configures a Fuser.
type Option func(f *Fuser)

// WithCache reuses fusions of the same pair and style until they expire.
func WithCache(c *Cache) Option {
	return func(f *Fuser) {
		f.cache = c
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(f *Fuser) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fuser) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithRetry sets the retry policy for transient generation failures.
func WithRetry(policy RetryPolicy) Option {
	return func(f *Fuser) {
		f.retry = policy
	}
}

// WithClassifier sets the classifier used to pick a style when none is given.
func WithClassifier(c *verse.Classifier) Option {
	return func(f *Fuser) {
		if c != nil {
			f.classifier = c
		}
	}
}

// Fuser validates poems, builds prompts and turns generated text into
// Fusions. It is safe for concurrent use.
type Fuser struct {
	gen        Generator
	cache      *Cache
	classifier *verse.Classifier
	logger     *zap.Logger
	retry      RetryPolicy
	now        func() time.Time
}

// NewFuser creates a Fuser backed by gen.
func NewFuser(gen Generator, opts ...Option) *Fuser {
	f := &Fuser{
		gen:        gen,
		classifier: verse.NewClassifier(),
		logger:     zap.NewNop(),
		retry:      DefaultRetryPolicy,
		now:        time.Now,
	}
	for _, applyOpt := range opts {
		applyOpt(f)
	}
	return f
}

// Fuse generates a new poem from a and b. An empty style is chosen from the
// poems' detected emotions with RecommendStyle; an unknown style fails with
// ErrUnknownStyle.
func (f *Fuser) Fuse(ctx context.Context, a, b Poem, style Style) (Fusion, error) {
	if err := CanFuse(&a, &b); err != nil {
		return Fusion{}, err
	}
	if f.gen == nil {
		return Fusion{}, errors.New("fusion: no generator configured")
	}

	if style != "" {
		parsed, err := ParseStyle(string(style))
		if err != nil {
			return Fusion{}, err
		}
		style = parsed
	} else {
		ea := f.classifier.Analyze(a.Content).Primary
		eb := f.classifier.Analyze(b.Content).Primary
		style = RecommendStyle(ea, eb)
		f.logger.Debug("recommended fusion style",
			zap.String("first", ea.String()),
			zap.String("second", eb.String()),
			zap.String("style", string(style)))
	}

	key := cacheKey(a, b, style)
	if f.cache != nil {
		if cached, ok := f.cache.Get(key); ok {
			f.logger.Debug("fusion cache hit", zap.String("id", cached.ID))
			return cached, nil
		}
	}

	prompt := BuildPrompt(a, b, style)
	start := f.now()
	text, err := generateWithRetry(ctx, f.gen, prompt, f.retry, f.logger)
	if err != nil {
		f.logger.Error("fusion generation failed",
			zap.String("first", a.ID),
			zap.String("second", b.ID),
			zap.Error(err))
		return Fusion{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Fusion{}, ErrEmptyGeneration
	}

	created := f.now()
	fusion := Fusion{
		ID:      uuid.NewString(),
		Title:   Title(a, b),
		Content: text,
		Sources: []SourceRef{
			{ID: a.ID, Title: a.Title},
			{ID: b.ID, Title: b.Title},
		},
		Style:     style,
		CreatedAt: created,
		ExpiresAt: created.Add(TTL),
	}

	if f.cache != nil {
		f.cache.Put(key, fusion)
	}
	f.logger.Info("fusion generated",
		zap.String("id", fusion.ID),
		zap.String("style", string(style)),
		zap.Duration("elapsed", created.Sub(start)))

	return fusion, nil
}

func cacheKey(a, b Poem, style Style) string {
	return a.ID + "\x00" + b.ID + "\x00" + string(style)
}
