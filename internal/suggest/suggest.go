package suggest

import "math/rand/v2"

// Category selects which pool a suggestion is drawn from.
type Category string

const (
	Low      Category = "low"
	Moderate Category = "moderate"
	High     Category = "high"
)

// CategoryOf buckets a mood value: 3 or below is low, 7 or above is high.
func CategoryOf(mood int) Category {
	switch {
	case mood <= 3:
		return Low
	case mood >= 7:
		return High
	default:
		return Moderate
	}
}

var pools = map[Category][]string{
	Low: {
		"💪 Try some light exercise or a short walk to boost your mood.",
		"🧘 Consider a short meditation session (even 5 minutes helps!).",
		"👥 Reach out to a friend - social connection is healing.",
		"🎨 Engage in a hobby or creative activity you enjoy.",
	},
	Moderate: {
		"🕐 Take a break from screens and get some fresh air.",
		"📚 Try journaling to process your thoughts and feelings.",
		"🎵 Listen to music that uplifts you.",
		"✨ Practice gratitude - list 3 things you're grateful for.",
	},
	High: {
		"🧘 Practice deep breathing or meditation to calm your mind.",
		"💤 Prioritize getting good sleep tonight.",
		"🌿 Spend time in nature if possible.",
		"📞 Consider talking to someone you trust about what's bothering you.",
	},
}

// Pool returns a copy of the messages for c.
func Pool(c Category) []string {
	return append([]string(nil), pools[c]...)
}

// Source is the randomness a Picker draws from. IntN returns a value in
// [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Picker chooses one message from the pool matching a mood. Every pick is
// independent; nothing is remembered between calls.
type Picker struct {
	src Source
}

// NewPicker returns a Picker using src, or the process-wide generator when
// src is nil.
func NewPicker(src Source) *Picker {
	if src == nil {
		src = globalSource{}
	}
	return &Picker{src: src}
}

// Pick returns a suggestion for mood.
func (p *Picker) Pick(mood int) string {
	pool := pools[CategoryOf(mood)]
	return pool[p.src.IntN(len(pool))]
}
