// Package typewriter drives the welcome screen's question/answer animation
// as a cooperative phase machine: the caller ticks it on a timer and renders
// the current frame. No timers or callbacks live inside.
package typewriter

// Phase of the animation cycle.
type Phase int

const (
	PhaseTypingQuestion Phase = iota
	PhasePause
	PhaseTypingAnswer
	PhaseReset
)

// Exchange is one scripted question/answer pair.
type Exchange struct {
	Question string
	Answer   string
}

// Typewriter steps through its exchanges one rune per tick.
type Typewriter struct {
	exchanges []Exchange
	exchange  int
	phase     Phase
	position  int
	holdTicks int

	// Ticks spent holding between phases.
	pauseTicks int
	resetTicks int
}

// New creates a typewriter over the given exchanges.
func New(exchanges []Exchange) *Typewriter {
	return &Typewriter{
		exchanges:  exchanges,
		pauseTicks: 8,
		resetTicks: 20,
	}
}

// Phase returns the current phase.
func (t *Typewriter) Phase() Phase { return t.phase }

// Frame returns the currently visible question and answer fragments.
func (t *Typewriter) Frame() (question, answer string) {
	if len(t.exchanges) == 0 {
		return "", ""
	}
	current := t.exchanges[t.exchange]
	switch t.phase {
	case PhaseTypingQuestion:
		return truncateRunes(current.Question, t.position), ""
	case PhasePause:
		return current.Question, ""
	case PhaseTypingAnswer:
		return current.Question, truncateRunes(current.Answer, t.position)
	case PhaseReset:
		return current.Question, current.Answer
	}
	return "", ""
}

// Tick advances the animation by one step.
func (t *Typewriter) Tick() {
	if len(t.exchanges) == 0 {
		return
	}
	current := t.exchanges[t.exchange]
	switch t.phase {
	case PhaseTypingQuestion:
		t.position++
		if t.position >= len([]rune(current.Question)) {
			t.phase = PhasePause
			t.holdTicks = 0
		}
	case PhasePause:
		t.holdTicks++
		if t.holdTicks >= t.pauseTicks {
			t.phase = PhaseTypingAnswer
			t.position = 0
		}
	case PhaseTypingAnswer:
		t.position++
		if t.position >= len([]rune(current.Answer)) {
			t.phase = PhaseReset
			t.holdTicks = 0
		}
	case PhaseReset:
		t.holdTicks++
		if t.holdTicks >= t.resetTicks {
			t.exchange = (t.exchange + 1) % len(t.exchanges)
			t.phase = PhaseTypingQuestion
			t.position = 0
		}
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}
