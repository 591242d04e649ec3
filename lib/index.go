package word1e

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

// indexBuildRanges is the fixed partition count for the offline index
// builder (distinct from the MinWork/MaxTasks chunking used by the
// live scorer and best-guess search).
const indexBuildRanges = 8

// ReadIndex parses an index file (§6 v1 format): a word count, zero or
// more #DIGRAPH header lines, then that many "WORD SCORE FLAGS" lines
// in non-increasing score order.
func ReadIndex(r io.Reader) (*Alphabet, *Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("word1e: empty index file")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return nil, nil, fmt.Errorf("word1e: expected word count on line 1: %w", err)
	}

	var digraphs []Digraph
	var pending string
	havePending := false
	line := 1
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !strings.HasPrefix(text, "#") {
			pending = text
			havePending = true
			break
		}
		if !strings.HasPrefix(text, "#DIGRAPH ") {
			return nil, nil, fmt.Errorf("word1e: malformed header line %d", line)
		}
		rest := strings.TrimSpace(strings.TrimPrefix(text, "#DIGRAPH "))
		if len(rest) != 2 {
			return nil, nil, fmt.Errorf("word1e: expected two characters after #DIGRAPH (line %d)", line)
		}
		digraphs = append(digraphs, Digraph{First: upperASCII(rest[0]), Second: upperASCII(rest[1])})
	}
	if len(digraphs) > MaxDigraphs {
		return nil, nil, fmt.Errorf("word1e: too many digraphs")
	}

	alphabet, err := NewAlphabet(digraphs)
	if err != nil {
		return nil, nil, err
	}

	words := make([]Word, n)
	attrs := make([]WordAttr, n)
	lastScore := 1.0

	parseLine := func(text string, idx int) error {
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return fmt.Errorf("word1e: malformed index entry on line %d", line)
		}

		w, err := alphabet.ScanWordString(fields[0])
		if err != nil {
			return fmt.Errorf("word1e: line %d: %w", line, err)
		}

		score, err := parseIndexScore(fields[1])
		if err != nil {
			return fmt.Errorf("word1e: line %d: %w", line, err)
		}
		if score > lastScore {
			return fmt.Errorf("word1e: words must be given in non-increasing score order (line %d)", line)
		}
		lastScore = score

		var flags WordFlag
		if len(fields) >= 3 {
			for _, ch := range fields[2] {
				switch ch {
				case 't':
					flags |= FlagTarget
				case 'x':
					flags |= FlagExplicit
				case 's':
					flags |= FlagSlur
				default:
					return fmt.Errorf("word1e: unexpected attribute character %q (line %d)", ch, line)
				}
			}
		}

		words[idx] = w
		attrs[idx] = WordAttr{StartingScore: score, Flags: flags}
		return nil
	}

	idx := 0
	if havePending {
		if idx >= n {
			return nil, nil, fmt.Errorf("word1e: more entries than declared count %d", n)
		}
		if err := parseLine(pending, idx); err != nil {
			return nil, nil, err
		}
		idx++
	}
	for scanner.Scan() {
		line++
		if idx >= n {
			return nil, nil, fmt.Errorf("word1e: more entries than declared count %d", n)
		}
		if err := parseLine(scanner.Text(), idx); err != nil {
			return nil, nil, err
		}
		idx++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if idx != n {
		return nil, nil, fmt.Errorf("word1e: expected %d entries, got %d", n, idx)
	}

	return alphabet, &Dictionary{Words: words, Attrs: attrs}, nil
}

func parseIndexScore(tok string) (float64, error) {
	if !strings.HasPrefix(tok, "0.") || len(tok) != 8 {
		return 0, fmt.Errorf("malformed score %q", tok)
	}
	iscore, err := strconv.Atoi(tok[2:])
	if err != nil {
		return 0, fmt.Errorf("malformed score %q: %w", tok, err)
	}
	return float64(iscore) / 1e6, nil
}

// WriteIndex writes dict (which must carry attributes, in non-increasing
// score order) in the §6 v1 index file format.
func WriteIndex(w io.Writer, alphabet *Alphabet, dict *Dictionary) error {
	if !dict.HasIndex() {
		return fmt.Errorf("word1e: cannot write index without attributes")
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(dict.Words)); err != nil {
		return err
	}
	for _, d := range alphabet.digraphs {
		if _, err := fmt.Fprintf(bw, "#DIGRAPH %c%c\n", d.First, d.Second); err != nil {
			return err
		}
	}

	lastScore := math.Inf(1)
	for i, word := range dict.Words {
		attr := dict.Attrs[i]
		if attr.StartingScore > lastScore {
			return fmt.Errorf("word1e: dictionary not in non-increasing score order at index %d", i)
		}
		lastScore = attr.StartingScore

		if err := alphabet.PrintWord(bw, word); err != nil {
			return err
		}

		iscore := int(math.Round(attr.StartingScore * 1e6))
		if _, err := fmt.Fprintf(bw, " 0.%06d", iscore); err != nil {
			return err
		}

		var flags strings.Builder
		if attr.Has(FlagTarget) {
			flags.WriteByte('t')
		}
		if attr.Has(FlagExplicit) {
			flags.WriteByte('x')
		}
		if attr.Has(FlagSlur) {
			flags.WriteByte('s')
		}
		if flags.Len() > 0 {
			if _, err := fmt.Fprintf(bw, " %s", flags.String()); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// partitionFixed splits [0, n) into exactly numRanges contiguous ranges
// of as-equal-as-possible size, the scheme the offline index builder
// uses (distinct from Partition's MinWork/MaxTasks chunking, which
// serves the live-session scorer instead).
func partitionFixed(n, numRanges int) []Range {
	ranges := make([]Range, numRanges)
	last := 0
	for i := 0; i < numRanges; i++ {
		from := last
		last += (n - last) / (numRanges - i)
		ranges[i] = Range{From: from, To: last}
	}
	return ranges
}

func sortedCopy(words []Word) []Word {
	out := append([]Word(nil), words...)
	sort.Slice(out, func(i, j int) bool { return wordLess(out[i], out[j]) })
	return out
}

func wordLess(a, b Word) bool {
	for i := 0; i < 5; i++ {
		if a.Letters[i] != b.Letters[i] {
			return a.Letters[i] < b.Letters[i]
		}
	}
	return false
}

func wordIn(sorted []Word, w Word) bool {
	i := sort.Search(len(sorted), func(i int) bool { return !wordLess(sorted[i], w) })
	return i < len(sorted) && sorted[i].Letters == w.Letters
}

// BuildIndexOptions configures the offline index-building pass.
type BuildIndexOptions struct {
	// Targets restricts which words may be a hidden target; if empty,
	// every word in the dictionary is target-eligible.
	Targets []Word
	// Slurs are suppressed from suggestions unless a caller opts in.
	Slurs []Word
	// Progress, if non-nil, is invoked (from arbitrary goroutines) as
	// each word's score finishes, reporting (completed, total).
	Progress func(done, total int)
}

// BuildIndex computes the first-guess score for every word in words
// against the empty knowledge state, flags TARGET/SLUR membership via
// binary search against sorted special lists, and returns a Dictionary
// sorted by descending score (index 0 is the best opening guess).
func BuildIndex(words []Word, opts BuildIndexOptions) *Dictionary {
	targets := opts.Targets
	if len(targets) == 0 {
		targets = words
	}
	sortedTargets := sortedCopy(targets)
	sortedSlurs := sortedCopy(opts.Slurs)

	n := len(words)
	attrs := make([]WordAttr, n)
	live := NewCandidates(sortedTargets)

	var done int64
	ranges := partitionFixed(n, indexBuildRanges)
	_ = RunParallel(ranges, func(_ int, r Range) error {
		for i := r.From; i < r.To; i++ {
			w := words[i]
			attrs[i] = WordAttr{
				StartingScore: scoreSTWithAttr(nil, w, NoKnowledge, live, 0.0),
				Flags:         calcFlags(w, sortedTargets, sortedSlurs),
			}
			if opts.Progress != nil {
				opts.Progress(int(atomic.AddInt64(&done, 1)), n)
			}
		}
		return nil
	})

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return attrs[order[i]].StartingScore > attrs[order[j]].StartingScore
	})

	sortedWords := make([]Word, n)
	sortedAttrs := make([]WordAttr, n)
	for i, idx := range order {
		sortedWords[i] = words[idx]
		sortedAttrs[i] = attrs[idx]
	}

	return &Dictionary{Words: sortedWords, Attrs: sortedAttrs}
}

func calcFlags(w Word, targets, slurs []Word) WordFlag {
	var f WordFlag
	if wordIn(targets, w) {
		f |= FlagTarget
	}
	if wordIn(slurs, w) {
		f |= FlagSlur
	}
	return f
}
