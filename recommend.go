package verse

// matchGroups lists moods that reinforce each label.
var matchGroups = map[Emotion][]Emotion{
	Sad:          {Sad, Nostalgic, Peaceful},
	Happy:        {Happy, Motivational, Romantic},
	Romantic:     {Romantic, Happy, Peaceful},
	Motivational: {Motivational, Happy, Peaceful},
	Peaceful:     {Peaceful, Nostalgic, Romantic},
	Angry:        {Angry, Motivational, Sad},
	Nostalgic:    {Nostalgic, Sad, Peaceful},
	Neutral:      {Peaceful, Happy, Romantic},
}

// balanceGroups lists moods that counteract each label. No entry contains
// its own key.
var balanceGroups = map[Emotion][]Emotion{
	Sad:          {Happy, Motivational, Peaceful},
	Happy:        {Peaceful, Romantic, Nostalgic},
	Romantic:     {Peaceful, Happy, Nostalgic},
	Motivational: {Peaceful, Romantic, Happy},
	Peaceful:     {Happy, Romantic, Motivational},
	Angry:        {Peaceful, Happy, Romantic},
	Nostalgic:    {Happy, Motivational, Romantic},
	Neutral:      {Happy, Peaceful, Romantic},
}

// Recommend returns three moods related to e, ranked, under the given
// strategy. An unknown label or strategy yields just Neutral.
func Recommend(e Emotion, s Strategy) []Emotion {
	var groups map[Emotion][]Emotion
	switch s {
	case Match:
		groups = matchGroups
	case Balance:
		groups = balanceGroups
	default:
		return []Emotion{Neutral}
	}

	group, ok := groups[e]
	if !ok {
		return []Emotion{Neutral}
	}
	return append([]Emotion(nil), group...)
}
