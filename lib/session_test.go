package word1e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRunWithGivenGuesserTerminatesOnAllGreen(t *testing.T) {
	a := alpha(t)
	crane := mustWord(t, a, "crane")
	slate := mustWord(t, a, "slate")
	robot := mustWord(t, a, "robot")
	dict := &Dictionary{Words: []Word{crane, slate, robot}}
	live := NewCandidates(dict.Words)

	var rounds []RoundResult
	session := &Session{
		Dict:    dict,
		Live:    live,
		Guesser: &GivenGuesser{Guesses: []Word{slate, robot, crane}},
		Oracle:  FixedTargetOracle{Target: crane},
		OnRound: func(r RoundResult) { rounds = append(rounds, r) },
	}

	success, n := session.Run()
	assert.True(t, success)
	assert.Equal(t, 3, n)
	require.Len(t, rounds, 3)

	// GivenGuesser only computes the best-guess comparison on the final
	// guess; earlier rounds report none.
	assert.Nil(t, rounds[0].Best)
	assert.Nil(t, rounds[1].Best)
	assert.NotNil(t, rounds[2].Best)
	assert.True(t, rounds[2].Colors.AllGreen())
}

func TestSessionRunWithGivenGuesserExhaustsWithoutSuccess(t *testing.T) {
	a := alpha(t)
	crane := mustWord(t, a, "crane")
	slate := mustWord(t, a, "slate")
	dict := &Dictionary{Words: []Word{crane, slate}}
	live := NewCandidates(dict.Words)

	session := &Session{
		Dict:    dict,
		Live:    live,
		Guesser: &GivenGuesser{Guesses: []Word{slate}},
		Oracle:  FixedTargetOracle{Target: crane},
	}

	success, n := session.Run()
	assert.False(t, success)
	assert.Equal(t, 1, n)
}

func TestSessionRunWithBotGuesserSolvesWithinDictionarySize(t *testing.T) {
	a := alpha(t)
	crane := mustWord(t, a, "crane")
	slate := mustWord(t, a, "slate")
	robot := mustWord(t, a, "robot")
	dict := &Dictionary{Words: []Word{crane, slate, robot}}
	live := NewCandidates(dict.Words)

	session := &Session{
		Dict:    dict,
		Live:    live,
		Guesser: NewBotGuesser(BestGuessOptions{MaxOut: 5}),
		Oracle:  FixedTargetOracle{Target: crane},
	}

	success, n := session.Run()
	assert.True(t, success)
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 3)
}

func TestSessionRunStopsWhenGuesserDeclines(t *testing.T) {
	a := alpha(t)
	crane := mustWord(t, a, "crane")
	dict := &Dictionary{Words: []Word{crane}}
	live := NewCandidates(dict.Words)

	session := &Session{
		Dict:    dict,
		Live:    live,
		Guesser: &GivenGuesser{Guesses: nil},
		Oracle:  FixedTargetOracle{Target: crane},
	}

	success, n := session.Run()
	assert.False(t, success)
	assert.Equal(t, 0, n)
}

func TestSessionRunFiltersLiveSetEachRound(t *testing.T) {
	a := alpha(t)
	crane := mustWord(t, a, "crane")
	slate := mustWord(t, a, "slate")
	robot := mustWord(t, a, "robot")
	dict := &Dictionary{Words: []Word{crane, slate, robot}}
	live := NewCandidates(dict.Words)

	session := &Session{
		Dict:    dict,
		Live:    live,
		Guesser: &GivenGuesser{Guesses: []Word{slate, crane}},
		Oracle:  FixedTargetOracle{Target: crane},
	}
	session.Run()

	// SLATE against CRANE (greens at A and E) leaves only CRANE.
	assert.Equal(t, 1, live.Len())
}
