package word1e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareToTargetAllGreenIffEqual(t *testing.T) {
	a := alpha(t)
	crane := mustWord(t, a, "crane")

	colors := CompareToTarget(crane, crane)
	assert.Equal(t, Colors{Green, Green, Green, Green, Green}, colors)
	assert.True(t, colors.AllGreen())
}

func TestCompareToTargetRepeatedLetterYellow(t *testing.T) {
	a := alpha(t)
	// guess ABBEY, target BABES: position 2 (B/B) and 3 (E/E) match
	// outright (green); the leading A and B resolve via the residual
	// target-letter counts as yellow; the trailing Y has no residual
	// target letter left and goes dark.
	guess := mustWord(t, a, "abbey")
	target := mustWord(t, a, "babes")

	colors := CompareToTarget(guess, target)
	assert.Equal(t, Colors{Yellow, Yellow, Green, Green, Dark}, colors)
}

func TestCompareToTargetOverGuessedLetterGoesDark(t *testing.T) {
	a := alpha(t)
	// guess LLAMA, target LATHE: the first L matches in place (green);
	// the second L has no residual L left in the target (only one L
	// total) and goes dark, even though L occurs in the target.
	guess := mustWord(t, a, "llama")
	target := mustWord(t, a, "lathe")

	colors := CompareToTarget(guess, target)
	assert.Equal(t, Colors{Green, Dark, Yellow, Dark, Dark}, colors)
}

func TestKnowledgeFromColorsAdmitsTheTarget(t *testing.T) {
	a := alpha(t)
	words := []string{"crane", "slate", "robot", "abbey", "babes", "llama", "lathe", "proxy", "fuzzy"}

	for _, gs := range words {
		for _, ts := range words {
			guess := mustWord(t, a, gs)
			target := mustWord(t, a, ts)
			colors := CompareToTarget(guess, target)
			k := KnowledgeFromColors(guess, colors)
			assert.Truef(t, k.Match(target), "guess=%s target=%s colors=%v should admit target", gs, ts, colors)
		}
	}
}

func TestKnowledgeFromColorsExactMatchAdmitsOnlyThatWord(t *testing.T) {
	a := alpha(t)
	crane := mustWord(t, a, "crane")
	colors := CompareToTarget(crane, crane)
	k := KnowledgeFromColors(crane, colors)

	assert.True(t, k.Match(crane))
	assert.False(t, k.Match(mustWord(t, a, "slate")))
}

func TestKnowledgeFromColorsOverGuessExcludesGlobally(t *testing.T) {
	a := alpha(t)
	guess := mustWord(t, a, "llama")
	target := mustWord(t, a, "lathe")
	colors := CompareToTarget(guess, target)
	k := KnowledgeFromColors(guess, colors)

	// LLAMA itself must now be rejected: its second L has nowhere
	// left to go once L's excess is excluded.
	assert.False(t, k.Match(guess))
}

func TestFilterIsIdempotent(t *testing.T) {
	a := alpha(t)
	words := []Word{
		mustWord(t, a, "crane"),
		mustWord(t, a, "slate"),
		mustWord(t, a, "robot"),
		mustWord(t, a, "proxy"),
		mustWord(t, a, "fuzzy"),
	}
	c := NewCandidates(words)

	var k Knowledge
	k.Exclude[0] = LetterBit(mustWord(t, a, "crane").Letters[0])

	first := c.Filter(k)
	before := append([]Word(nil), c.Words()...)
	second := c.Filter(k)

	assert.Greater(t, first, 0)
	assert.Equal(t, 0, second)
	assert.Equal(t, before, c.Words())
}
