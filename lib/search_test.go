package word1e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestGuessesUsesCachedFirstMoveWhenIndexed(t *testing.T) {
	_, dict := smallDict(t)
	dict.Attrs = make([]WordAttr, len(dict.Words))
	dict.Attrs[2] = WordAttr{StartingScore: 0.999999, Flags: FlagTarget}
	dict.Words[0], dict.Words[2] = dict.Words[2], dict.Words[0]
	dict.Attrs[0], dict.Attrs[2] = dict.Attrs[2], dict.Attrs[0]

	live := NewCandidates(dict.TargetWords())
	result := BestGuesses(dict, NoKnowledge, live, BestGuessOptions{MaxOut: 5})

	require.Len(t, result.Top, 1)
	assert.Equal(t, dict.Words[0], result.Top[0])
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, dict.Attrs[0].StartingScore, result.BestScore)
}

func TestBestGuessesSmallLiveSetUsesConventionalScore(t *testing.T) {
	a := alpha(t)
	w1 := mustWord(t, a, "crane")
	w2 := mustWord(t, a, "slate")
	dict := &Dictionary{Words: []Word{w1, w2}}
	live := NewCandidates([]Word{w1, w2})

	result := BestGuesses(dict, NoKnowledge, live, BestGuessOptions{MaxOut: 5})
	assert.Equal(t, 2, result.Count)
	assert.ElementsMatch(t, []Word{w1, w2}, result.Top)
	assert.InDelta(t, 0.75, result.BestScore, 1e-12) // (5-2)*0.25
}

func TestBestGuessesSingleLiveCandidate(t *testing.T) {
	a := alpha(t)
	w1 := mustWord(t, a, "crane")
	dict := &Dictionary{Words: []Word{w1}}
	live := NewCandidates([]Word{w1})

	result := BestGuesses(dict, NoKnowledge, live, BestGuessOptions{MaxOut: 5})
	require.Len(t, result.Top, 1)
	assert.Equal(t, w1, result.Top[0])
	assert.InDelta(t, 1.0, result.BestScore, 1e-12) // (5-1)*0.25
}

func TestBestOutputSuppressesSlursByDefault(t *testing.T) {
	a := alpha(t)
	w1 := mustWord(t, a, "crane")
	w2 := mustWord(t, a, "slate")
	dict := &Dictionary{
		Words: []Word{w1, w2},
		Attrs: []WordAttr{{Flags: FlagTarget}, {Flags: FlagTarget | FlagSlur}},
	}

	out := newBestOutput(5)
	out.observe(dict, 0, w1, 0.5, false)
	out.observe(dict, 1, w2, 0.9, false)

	result := out.result()
	assert.Equal(t, 0.5, result.BestScore)
	assert.Equal(t, []Word{w1}, result.Top)
}

func TestBestOutputAllowSlursIncludesThem(t *testing.T) {
	a := alpha(t)
	w1 := mustWord(t, a, "crane")
	w2 := mustWord(t, a, "slate")
	dict := &Dictionary{
		Words: []Word{w1, w2},
		Attrs: []WordAttr{{Flags: FlagTarget}, {Flags: FlagTarget | FlagSlur}},
	}

	out := newBestOutput(5)
	out.observe(dict, 0, w1, 0.5, true)
	out.observe(dict, 1, w2, 0.9, true)

	result := out.result()
	assert.Equal(t, 0.9, result.BestScore)
	assert.Equal(t, []Word{w2}, result.Top)
}

func TestBestGuessesRespectsMaxOut(t *testing.T) {
	out := newBestOutput(0)
	assert.Equal(t, 1, out.maxOut)

	out2 := newBestOutput(2)
	dict := &Dictionary{Words: []Word{}}
	out2.observe(dict, 0, Word{}, 1.0, false)
	out2.observe(dict, 1, Word{Letters: [5]Letter{1}}, 1.0, false)
	out2.observe(dict, 2, Word{Letters: [5]Letter{2}}, 1.0, false)
	result := out2.result()
	assert.Equal(t, 3, result.Count)
	assert.Len(t, result.Top, 2)
}
