package word1e

import (
	"bufio"
	"io"
	"math/rand"
)

// GuessReport pairs a played guess with the score it achieved.
type GuessReport struct {
	Guess Word
	Score float64
}

// RoundResult is everything a session round produces: the guess played,
// the colors the oracle returned, the best-guess list computed for
// comparison (nil when the guesser chose to skip it), and how many
// candidates the round eliminated.
type RoundResult struct {
	Guess      GuessReport
	Colors     Colors
	Best       []GuessReport
	NumBest    int
	Eliminated int
}

// Guesser supplies the next guess to play each round, along with the
// best-guess comparison computed against the knowledge the guess was
// chosen under (or nil if this round's guesser chose to skip that
// expensive computation — see GivenGuesser). ok is false once the
// guesser has nothing more to offer, terminating the session without
// success.
type Guesser interface {
	NextGuess(dict *Dictionary, know Knowledge, live *Candidates) (guess Word, best *BestGuessResult, ok bool)
}

// BotGuesser always plays the best available guess. When knowledge is
// still empty and ExtendedInitial is set, it instead picks uniformly at
// random among the top ExtendedInitialN dictionary entries (the "-x"
// extended initial guess, clamped to dictionary size) while still
// reporting the true best-guess comparison.
type BotGuesser struct {
	Opts             BestGuessOptions
	ExtendedInitial  bool
	ExtendedInitialN int
	Rand             *rand.Rand
}

// NewBotGuesser returns a BotGuesser with the conventional default of
// 100 extended-initial candidates.
func NewBotGuesser(opts BestGuessOptions) *BotGuesser {
	return &BotGuesser{Opts: opts, ExtendedInitialN: 100}
}

// NextGuess implements Guesser.
func (b *BotGuesser) NextGuess(dict *Dictionary, know Knowledge, live *Candidates) (Word, *BestGuessResult, bool) {
	if live.Len() == 0 {
		return Word{}, nil, false
	}

	result := BestGuesses(dict, know, live, b.Opts)
	if len(result.Top) == 0 {
		return Word{}, nil, false
	}

	if b.ExtendedInitial && know.IsEmpty() && len(dict.Words) > 0 {
		mod := b.ExtendedInitialN
		if mod > len(dict.Words) {
			mod = len(dict.Words)
		}
		if mod < 1 {
			mod = 1
		}
		r := b.Rand
		if r == nil {
			r = rand.New(rand.NewSource(1))
		}
		idx := r.Intn(mod)
		return dict.Words[idx], &result, true
	}

	return result.Top[0], &result, true
}

// UserGuesser reads a five-letter word from an input stream each round
// ("coach mode"): the engine always computes the best-guess comparison
// so the caller can see how much score was left on the table.
type UserGuesser struct {
	Alphabet *Alphabet
	Opts     BestGuessOptions
	In       *bufio.Reader
	Prompt   func()
}

// NewUserGuesser wraps r in a *bufio.Reader if it isn't already one.
func NewUserGuesser(alphabet *Alphabet, opts BestGuessOptions, r io.Reader) *UserGuesser {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &UserGuesser{Alphabet: alphabet, Opts: opts, In: br}
}

// NextGuess implements Guesser: it re-prompts on malformed input and
// returns ok=false on EOF.
func (u *UserGuesser) NextGuess(dict *Dictionary, know Knowledge, live *Candidates) (Word, *BestGuessResult, bool) {
	for {
		if u.Prompt != nil {
			u.Prompt()
		}
		line, err := u.In.ReadString('\n')
		if line == "" && err != nil {
			return Word{}, nil, false
		}
		w, scanErr := u.Alphabet.ScanWordString(line)
		if scanErr != nil {
			if err != nil {
				return Word{}, nil, false
			}
			continue
		}
		result := BestGuesses(dict, know, live, u.Opts)
		return w, &result, true
	}
}

// GivenGuesser consumes a fixed list of pre-planned guesses in order.
// Only the final guess computes the best-guess comparison; earlier
// ones are scored but not best-guess-searched, saving the expensive
// O(dict x n^2) search for guesses the caller already committed to.
type GivenGuesser struct {
	Guesses []Word
	Opts    BestGuessOptions
	idx     int
}

// NextGuess implements Guesser.
func (g *GivenGuesser) NextGuess(dict *Dictionary, know Knowledge, live *Candidates) (Word, *BestGuessResult, bool) {
	if g.idx >= len(g.Guesses) {
		return Word{}, nil, false
	}
	w := g.Guesses[g.idx]
	isLast := g.idx == len(g.Guesses)-1
	g.idx++

	if !isLast {
		return w, nil, true
	}
	result := BestGuesses(dict, know, live, g.Opts)
	return w, &result, true
}

// Oracle supplies the colors for a played guess.
type Oracle interface {
	Colors(guess Word) Colors
}

// FixedTargetOracle compares every guess against a known target.
type FixedTargetOracle struct {
	Target Word
}

// Colors implements Oracle.
func (o FixedTargetOracle) Colors(guess Word) Colors {
	return CompareToTarget(guess, o.Target)
}

// PuzzleOracle prompts an external judge (e.g. the real game) for a
// five-character feedback string using the '.'/'-'/'+' convention
// (dark/yellow/green), re-prompting on invalid input.
type PuzzleOracle struct {
	In     *bufio.Reader
	Prompt func(guess Word)
}

// Colors implements Oracle. It blocks until a valid feedback string is
// read or the input is exhausted, in which case it returns all-dark so
// the caller's loop terminates rather than spinning.
func (o *PuzzleOracle) Colors(guess Word) Colors {
	if o.Prompt != nil {
		o.Prompt(guess)
	}
	for {
		line, err := o.In.ReadString('\n')
		trimmed := trimFeedback(line)
		if feedbackValid(trimmed) {
			return parseFeedback(trimmed)
		}
		if err != nil && line == "" {
			return Colors{}
		}
	}
}

func trimFeedback(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '-' || s[i] == '+' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func feedbackValid(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < 5; i++ {
		switch s[i] {
		case '.', '-', '+':
		default:
			return false
		}
	}
	return true
}

func parseFeedback(s string) Colors {
	var c Colors
	for i := 0; i < 5; i++ {
		switch s[i] {
		case '.':
			c[i] = Dark
		case '-':
			c[i] = Yellow
		case '+':
			c[i] = Green
		}
	}
	return c
}

// Session drives the guess/oracle/knowledge loop described in spec.md
// §4.9: choose a guess, consult the oracle, absorb the derived
// knowledge, filter the live set, and report, until the live set is
// exhausted, the guesser has nothing left to offer, or all colors come
// back green.
type Session struct {
	Dict    *Dictionary
	Live    *Candidates
	Guesser Guesser
	Oracle  Oracle
	OnRound func(RoundResult)
}

// Run executes the session loop and returns whether it ended in
// success (all-green) along with the number of rounds played.
func (s *Session) Run() (success bool, rounds int) {
	know := NoKnowledge

	for s.Live.Len() > 0 {
		guess, best, ok := s.Guesser.NextGuess(s.Dict, know, s.Live)
		if !ok {
			return false, rounds
		}
		rounds++

		guessScore := ScoreST(s.Dict, guess, know, s.Live, 0)

		colors := s.Oracle.Colors(guess)
		delta := KnowledgeFromColors(guess, colors)
		know = know.Absorb(delta)

		before := s.Live.Len()
		s.Live.Filter(know)
		eliminated := before - s.Live.Len()

		result := RoundResult{
			Guess:      GuessReport{Guess: guess, Score: guessScore},
			Colors:     colors,
			Eliminated: eliminated,
		}
		if best != nil {
			result.Best = make([]GuessReport, len(best.Top))
			for i, w := range best.Top {
				result.Best[i] = GuessReport{Guess: w, Score: best.BestScore}
			}
			result.NumBest = best.Count
		}

		if s.OnRound != nil {
			s.OnRound(result)
		}

		if colors.AllGreen() {
			return true, rounds
		}
	}

	return false, rounds
}
