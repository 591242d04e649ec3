package word1e

import (
	"bufio"
	"io"
	"strings"
)

// WordFlag is a bitset of per-word metadata flags.
type WordFlag uint8

const (
	// FlagTarget marks a word as eligible to be a hidden target.
	FlagTarget WordFlag = 1 << iota
	// FlagExplicit marks a word as explicit.
	FlagExplicit
	// FlagSlur marks a word to be suppressed from suggestions unless
	// explicitly allowed.
	FlagSlur
)

// WordAttr is per-word metadata stored alongside the dictionary.
type WordAttr struct {
	StartingScore float64
	Flags         WordFlag
}

// Has reports whether f is set in a.
func (a WordAttr) Has(f WordFlag) bool {
	return a.Flags&f != 0
}

// Dictionary is the full word list, immutable after load, in
// decreasing starting-score order when Attrs is populated (index 0 is
// the globally best first guess).
type Dictionary struct {
	Words []Word
	// Attrs is parallel to Words; nil when no index has been loaded.
	Attrs []WordAttr
}

// Attr returns the attributes for Words[i], or the zero value if no
// index is loaded.
func (d *Dictionary) Attr(i int) WordAttr {
	if d.Attrs == nil {
		return WordAttr{}
	}
	return d.Attrs[i]
}

// HasIndex reports whether per-word attributes (and therefore cached
// starting scores) are available.
func (d *Dictionary) HasIndex() bool {
	return d.Attrs != nil
}

// TargetWords returns the subset of the dictionary eligible to be a
// hidden target: words flagged FlagTarget, or the whole dictionary if
// no index (and therefore no flags) has been loaded or if no word
// carries FlagTarget.
func (d *Dictionary) TargetWords() []Word {
	if d.Attrs == nil {
		return d.Words
	}
	out := make([]Word, 0, len(d.Words))
	for i, w := range d.Words {
		if d.Attrs[i].Has(FlagTarget) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return d.Words
	}
	return out
}

// IndexOf returns the index of word in d.Words, or -1 if not present.
func (d *Dictionary) IndexOf(word Word) int {
	for i, w := range d.Words {
		if w.Letters == word.Letters {
			return i
		}
	}
	return -1
}

// AttrOf returns the attributes for word and true if an index is
// loaded and word is present in the dictionary.
func (d *Dictionary) AttrOf(word Word) (WordAttr, bool) {
	if d.Attrs == nil {
		return WordAttr{}, false
	}
	i := d.IndexOf(word)
	if i < 0 {
		return WordAttr{}, false
	}
	return d.Attrs[i], true
}

// Candidates is the live candidate subset: it shrinks monotonically as
// knowledge is absorbed across a session. It is read-only during a
// scoring operation; the session driver mutates it only between rounds.
type Candidates struct {
	words []Word
}

// NewCandidates seeds a live set, typically Dictionary.TargetWords().
func NewCandidates(words []Word) *Candidates {
	c := &Candidates{words: make([]Word, len(words))}
	copy(c.words, words)
	return c
}

// Words returns the current live set. Callers must not mutate it.
func (c *Candidates) Words() []Word {
	return c.words
}

// Len returns the number of live candidates.
func (c *Candidates) Len() int {
	return len(c.words)
}

// CountMatches returns how many live candidates would remain under k,
// without mutating the live set.
func (c *Candidates) CountMatches(k Knowledge) int {
	n := 0
	for _, w := range c.words {
		if k.Match(w) {
			n++
		}
	}
	return n
}

// Filter compacts the live set in place, retaining only words matching
// k, and returns the number eliminated. Filter is idempotent: a second
// call with the same k eliminates nothing further.
func (c *Candidates) Filter(k Knowledge) int {
	before := len(c.words)
	j := 0
	for _, w := range c.words {
		if k.Match(w) {
			c.words[j] = w
			j++
		}
	}
	c.words = c.words[:j]
	return before - j
}

// LoadWordList reads a raw word-list file: UTF-8 text, one five-letter
// word per line, '-' may separate digraph halves, blank lines ignored.
func LoadWordList(a *Alphabet, r io.Reader) ([]Word, error) {
	scanner := bufio.NewScanner(r)
	words := make([]Word, 0, 128)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		w, err := a.ScanWordString(line)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
