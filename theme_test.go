package verse

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestThemeForIsTotal(t *testing.T) {
	for _, e := range Emotions() {
		t.Run(string(e), func(t *testing.T) {
			theme := ThemeFor(e)

			if len(theme.Colors) != 2 {
				t.Fatalf("Expected 2 colors, got %v", theme.Colors)
			}
			if theme.Colors[0] != theme.Gradient.From || theme.Colors[1] != theme.Gradient.To {
				t.Errorf("Colors %v do not match gradient %+v", theme.Colors, theme.Gradient)
			}
			if theme.Gradient.Angle != 135 {
				t.Errorf("Expected angle 135, got %d", theme.Gradient.Angle)
			}
			switch theme.Effect {
			case Rain, Petals, Sunrise, Stars, None:
			default:
				t.Errorf("Unexpected effect %q", theme.Effect)
			}
		})
	}
}

func TestThemeEffects(t *testing.T) {
	tests := []struct {
		emotion Emotion
		effect  Effect
	}{
		{Sad, Rain},
		{Romantic, Petals},
		{Motivational, Sunrise},
		{Happy, None},
		{Neutral, None},
	}

	for _, tt := range tests {
		if got := ThemeFor(tt.emotion).Effect; got != tt.effect {
			t.Errorf("%s: expected %s, got %s", tt.emotion, tt.effect, got)
		}
	}
}

func TestThemeForUnknownFallsBack(t *testing.T) {
	got := ThemeFor(Emotion("bogus"))
	if got.CSS() != ThemeFor(Neutral).CSS() {
		t.Errorf("Expected neutral theme, got %+v", got)
	}
}

func TestThemeForReturnsCopy(t *testing.T) {
	theme := ThemeFor(Sad)
	theme.Colors[0] = "#000000"

	if ThemeFor(Sad).Colors[0] != "#667eea" {
		t.Error("Mutating a returned theme changed the catalog")
	}
}

func TestThemeCSS(t *testing.T) {
	want := "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	if got := ThemeFor(Sad).CSS(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestThemeMidpointAndContrast(t *testing.T) {
	for _, e := range Emotions() {
		theme := ThemeFor(e)

		mid := theme.Midpoint()
		if !strings.HasPrefix(mid, "#") || len(mid) != 7 {
			t.Errorf("%s: unexpected midpoint %q", e, mid)
		}
		if _, err := colorful.Hex(mid); err != nil {
			t.Errorf("%s: midpoint %q does not parse: %v", e, mid, err)
		}
		if theme.Contrast() <= 0 {
			t.Errorf("%s: expected distinct stops, got contrast %.3f", e, theme.Contrast())
		}
	}
}
