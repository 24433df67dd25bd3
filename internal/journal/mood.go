package journal

// MoodLevel is one of the five display buckets of a mood value.
type MoodLevel int

const (
	MoodVeryLow MoodLevel = iota
	MoodLow
	MoodNeutral
	MoodGood
	MoodVeryGood
)

// MoodLevelOf maps a mood value (or a mean of mood values) to its bucket:
// ≤2 very low, ≤4 low, ≤6 neutral, ≤8 good, otherwise very good.
func MoodLevelOf(v float64) MoodLevel {
	switch {
	case v <= 2:
		return MoodVeryLow
	case v <= 4:
		return MoodLow
	case v <= 6:
		return MoodNeutral
	case v <= 8:
		return MoodGood
	default:
		return MoodVeryGood
	}
}

var moodEmojis = [...]string{"😢", "😟", "😐", "🙂", "😊"}

var moodLabels = [...]string{"very low", "low", "neutral", "good", "very good"}

func (l MoodLevel) Emoji() string {
	if l < MoodVeryLow || l > MoodVeryGood {
		return "?"
	}
	return moodEmojis[l]
}

func (l MoodLevel) String() string {
	if l < MoodVeryLow || l > MoodVeryGood {
		return "unknown"
	}
	return moodLabels[l]
}

// MoodEmoji is shorthand for MoodLevelOf(v).Emoji().
func MoodEmoji(v float64) string {
	return MoodLevelOf(v).Emoji()
}

var stressLabels = map[int]string{
	1: "Low",
	2: "Moderate",
	3: "High",
	4: "Very High",
}

var stressEmojis = map[int]string{
	1: "😌",
	2: "😐",
	3: "😰",
	4: "😱",
}

// StressLabel returns the fixed label of a stress level. Levels outside
// 1–4 never pass validation, so ok=false only signals corrupt input.
func StressLabel(level int) (label string, ok bool) {
	label, ok = stressLabels[level]
	return label, ok
}

// StressEmoji returns the emoji shown next to a stress label.
func StressEmoji(level int) string {
	return stressEmojis[level]
}
