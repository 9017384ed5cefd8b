package fusion

import (
	"fmt"
	"strings"

	"github.com/tsawler/verse"
)

// sharedMotifLimit bounds how many motifs per poem are compared.
const sharedMotifLimit = 8

var styleInstructions = map[Style]string{
	Blend:     "Seamlessly blend themes, imagery, and emotions from both poems into a cohesive new piece. Mix lines and concepts naturally.",
	Alternate: "Alternate between the styles and themes of each poem, creating a dialogue or contrast between them.",
	Thematic:  "Extract the core themes from both poems and create a new poem that explores where these themes intersect.",
	Emotional: "Capture the emotional essence of both poems and create a new emotional journey that combines both feelings.",
}

const promptRequirements = `Create a fusion poem that:
1. Is original and creative
2. Honors both source poems
3. Has 12-20 lines
4. Maintains poetic quality
5. Creates something new and meaningful

Return only the fused poem, no explanations.`

// BuildPrompt formats the generation request for fusing a and b. Unknown
// styles use the blend instruction.
func BuildPrompt(a, b Poem, style Style) string {
	instruction, ok := styleInstructions[style]
	if !ok {
		instruction = styleInstructions[Blend]
	}

	var sb strings.Builder
	sb.WriteString("You are a creative poetry fusion artist. Create a new, original poem by fusing these two poems together.\n\n")
	fmt.Fprintf(&sb, "Poem 1: \"%s\"\n%s\n\n", a.Title, a.Content)
	fmt.Fprintf(&sb, "Poem 2: \"%s\"\n%s\n\n", b.Title, b.Content)
	fmt.Fprintf(&sb, "Fusion Style: %s\n", instruction)

	if style == Thematic {
		if shared := verse.SharedMotifs(a.Content, b.Content, sharedMotifLimit); len(shared) > 0 {
			fmt.Fprintf(&sb, "Shared motifs: %s\n", strings.Join(shared, ", "))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(promptRequirements)
	return sb.String()
}

// Title returns the display title of a fusion of a and b.
func Title(a, b Poem) string {
	return fmt.Sprintf("Fusion: %s × %s", a.Title, b.Title)
}

// PlaceholderPoem is the canned fusion returned when no generation service
// is configured.
const PlaceholderPoem = `A fusion of emotions and themes,
Where two souls meet in dreams,
Lines intertwine like threads of fate,
Creating something new and great.

From sorrow springs a hopeful light,
From darkness comes the morning bright,
Two voices merge in harmony,
A symphony of poetry.

The past and present dance as one,
Beneath the same eternal sun,
What once was separate now combines,
In these fused and flowing lines.`
