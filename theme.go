package verse

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientAngle is the direction of every theme gradient, in degrees.
const GradientAngle = 135

var themes = map[Emotion]Theme{
	Sad:          newTheme("#667eea", "#764ba2", Rain),
	Happy:        newTheme("#f093fb", "#f5576c", None),
	Romantic:     newTheme("#fa709a", "#fee140", Petals),
	Motivational: newTheme("#30cfd0", "#330867", Sunrise),
	Peaceful:     newTheme("#a8edea", "#fed6e3", None),
	Angry:        newTheme("#ff0844", "#ffb199", None),
	Nostalgic:    newTheme("#ffecd2", "#fcb69f", None),
	Neutral:      newTheme("#e0e0e0", "#f5f5f5", None),
}

func newTheme(from, to string, effect Effect) Theme {
	// Stops are validated once at startup.
	for _, hex := range []string{from, to} {
		if _, err := colorful.Hex(hex); err != nil {
			panic(fmt.Sprintf("verse: invalid theme color %q: %v", hex, err))
		}
	}
	return Theme{
		Gradient: Gradient{From: from, To: to, Angle: GradientAngle},
		Effect:   effect,
		Colors:   []string{from, to},
	}
}

// ThemeFor returns the presentation theme for e. Unknown labels get the
// neutral theme. The returned value shares no memory with the catalog.
func ThemeFor(e Emotion) Theme {
	t, ok := themes[e]
	if !ok {
		t = themes[Neutral]
	}
	t.Colors = append([]string(nil), t.Colors...)
	return t
}

// CSS renders the gradient as a CSS linear-gradient value.
func (t Theme) CSS() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 100%%)", t.Gradient.Angle, t.Gradient.From, t.Gradient.To)
}

// Midpoint returns the color halfway between the two stops, blended in
// CIE-L*a*b* space.
func (t Theme) Midpoint() string {
	from, err := colorful.Hex(t.Gradient.From)
	if err != nil {
		return t.Gradient.From
	}
	to, err := colorful.Hex(t.Gradient.To)
	if err != nil {
		return t.Gradient.From
	}
	return from.BlendLab(to, 0.5).Clamped().Hex()
}

// Contrast is the perceptual distance between the two stops (CIEDE2000).
func (t Theme) Contrast() float64 {
	from, err1 := colorful.Hex(t.Gradient.From)
	to, err2 := colorful.Hex(t.Gradient.To)
	if err1 != nil || err2 != nil {
		return 0
	}
	return from.DistanceCIEDE2000(to)
}
