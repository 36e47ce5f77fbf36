package typewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypewriterCycle(t *testing.T) {
	tw := New([]Exchange{
		{Question: "ab", Answer: "xyz"},
		{Question: "cd", Answer: "uv"},
	})

	require.Equal(t, PhaseTypingQuestion, tw.Phase())
	question, answer := tw.Frame()
	assert.Empty(t, question)
	assert.Empty(t, answer)

	// Question types one rune per tick.
	tw.Tick()
	question, _ = tw.Frame()
	assert.Equal(t, "a", question)
	tw.Tick()
	require.Equal(t, PhasePause, tw.Phase())
	question, answer = tw.Frame()
	assert.Equal(t, "ab", question)
	assert.Empty(t, answer)

	// Pause holds the full question for its configured ticks.
	for i := 0; i < 8; i++ {
		tw.Tick()
	}
	require.Equal(t, PhaseTypingAnswer, tw.Phase())

	// Answer types out under the full question.
	tw.Tick()
	question, answer = tw.Frame()
	assert.Equal(t, "ab", question)
	assert.Equal(t, "x", answer)
	tw.Tick()
	tw.Tick()
	require.Equal(t, PhaseReset, tw.Phase())
	question, answer = tw.Frame()
	assert.Equal(t, "ab", question)
	assert.Equal(t, "xyz", answer)

	// Reset holds, then advances to the next exchange from scratch.
	for i := 0; i < 20; i++ {
		tw.Tick()
	}
	require.Equal(t, PhaseTypingQuestion, tw.Phase())
	question, answer = tw.Frame()
	assert.Empty(t, question)
	assert.Empty(t, answer)
	tw.Tick()
	question, _ = tw.Frame()
	assert.Equal(t, "c", question)
}

func TestTypewriterWrapsAroundExchanges(t *testing.T) {
	tw := New([]Exchange{{Question: "a", Answer: "b"}})

	// Run through several full cycles; the single exchange repeats.
	for cycle := 0; cycle < 3; cycle++ {
		for tw.Phase() != PhaseReset {
			tw.Tick()
		}
		for tw.Phase() == PhaseReset {
			tw.Tick()
		}
		tw.Tick()
		question, _ := tw.Frame()
		assert.Equal(t, "a", question)
	}
}

func TestTypewriterEmpty(t *testing.T) {
	tw := New(nil)
	tw.Tick()
	question, answer := tw.Frame()
	assert.Empty(t, question)
	assert.Empty(t, answer)
}
