package model

import (
	"sort"
	"strings"
)

type Mood struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Emoji        string `json:"emoji"`
	Score        int    `json:"score"`
	Color        string `json:"color"`
	Prompt       string `json:"prompt"`
	PixabayQuery string `json:"pixabay_query"`
}

// Moods is the fixed mood catalogue keyed by upper-case id.
var Moods = map[string]Mood{
	"HAPPY": {
		ID: "happy", Label: "Happy", Emoji: "😊", Score: 9, Color: "amber",
		Prompt: "What's making you smile today?", PixabayQuery: "happy sunshine",
	},
	"GRATEFUL": {
		ID: "grateful", Label: "Grateful", Emoji: "🙏", Score: 9, Color: "green",
		Prompt: "What are you thankful for?", PixabayQuery: "gratitude flowers",
	},
	"EXCITED": {
		ID: "excited", Label: "Excited", Emoji: "🤩", Score: 8, Color: "orange",
		Prompt: "What are you looking forward to?", PixabayQuery: "celebration fireworks",
	},
	"CALM": {
		ID: "calm", Label: "Calm", Emoji: "😌", Score: 7, Color: "sky",
		Prompt: "What brought you peace today?", PixabayQuery: "calm lake",
	},
	"CONTENT": {
		ID: "content", Label: "Content", Emoji: "🙂", Score: 6, Color: "teal",
		Prompt: "What feels just right at the moment?", PixabayQuery: "cozy home",
	},
	"NEUTRAL": {
		ID: "neutral", Label: "Neutral", Emoji: "😐", Score: 5, Color: "gray",
		Prompt: "What's on your mind?", PixabayQuery: "minimal landscape",
	},
	"TIRED": {
		ID: "tired", Label: "Tired", Emoji: "😴", Score: 4, Color: "slate",
		Prompt: "What drained your energy today?", PixabayQuery: "rainy window",
	},
	"ANXIOUS": {
		ID: "anxious", Label: "Anxious", Emoji: "😰", Score: 3, Color: "yellow",
		Prompt: "What's worrying you right now?", PixabayQuery: "stormy clouds",
	},
	"SAD": {
		ID: "sad", Label: "Sad", Emoji: "😢", Score: 2, Color: "blue",
		Prompt: "What's weighing on your heart?", PixabayQuery: "rain drops",
	},
	"ANGRY": {
		ID: "angry", Label: "Angry", Emoji: "😠", Score: 1, Color: "red",
		Prompt: "What's frustrating you?", PixabayQuery: "volcano",
	},
}

// LookupMood finds a mood by id, ignoring case and surrounding spaces.
func LookupMood(id string) (Mood, bool) {
	m, ok := Moods[strings.ToUpper(strings.TrimSpace(id))]
	return m, ok
}

// MoodList returns the catalogue ordered from highest to lowest score.
func MoodList() []Mood {
	out := make([]Mood, 0, len(Moods))
	for _, m := range Moods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}
