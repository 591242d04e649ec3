package word1e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alpha(t *testing.T) *Alphabet {
	t.Helper()
	a, err := NewAlphabet(nil)
	require.NoError(t, err)
	return a
}

func TestKnowledgeMatchExcludesPosition(t *testing.T) {
	a := alpha(t)
	w := mustWord(t, a, "crane")

	var k Knowledge
	k.Exclude[0] = LetterBit(w.Letters[0])
	assert.False(t, k.Match(w))
}

func TestKnowledgeMatchRequiresMinHistCoverage(t *testing.T) {
	a := alpha(t)
	w := mustWord(t, a, "abbey")

	var k Knowledge
	k.MinHist.Add(Letter('B' - 'A'))
	k.MinHist.Add(Letter('B' - 'A'))
	assert.True(t, k.Match(w)) // abbey has 2 Bs

	k.MinHist.Add(Letter('B' - 'A'))
	assert.False(t, k.Match(w)) // needs 3, only has 2
}

func TestAbsorbIsCommutativeAssociativeIdempotent(t *testing.T) {
	var k1, k2, k3 Knowledge
	k1.Exclude[0] = LetterBit(1)
	k1.MinHist.Add(2)
	k2.Exclude[1] = LetterBit(3)
	k2.MinHist.Add(4)
	k3.Exclude[2] = LetterBit(5)

	assert.Equal(t, k1.Absorb(k2), k2.Absorb(k1))
	assert.Equal(t, k1.Absorb(k2).Absorb(k3), k1.Absorb(k2.Absorb(k3)))
	assert.Equal(t, k1.Absorb(k1), k1)
}

func TestAbsorbIdentity(t *testing.T) {
	var k Knowledge
	k.Exclude[0] = LetterBit(1)
	k.MinHist.Add(2)
	assert.Equal(t, k, k.Absorb(NoKnowledge))
	assert.Equal(t, k, NoKnowledge.Absorb(k))
}

func TestMatchIsMonotoneUnderAbsorb(t *testing.T) {
	a := alpha(t)
	w := mustWord(t, a, "robot")

	var k, delta Knowledge
	delta.Exclude[0] = LetterBit(w.Letters[0])

	before := k.Match(w)
	after := k.Absorb(delta).Match(w)

	// Absorbing an exclusion that w violates must only ever narrow the
	// match set: if it still matches after, it matched before too.
	if after {
		assert.True(t, before)
	}
}

func TestNoKnowledgeIsEmpty(t *testing.T) {
	assert.True(t, NoKnowledge.IsEmpty())
	var k Knowledge
	k.Exclude[0] = 1
	assert.False(t, k.IsEmpty())
}
