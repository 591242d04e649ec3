package word1e

import "sync"

// BestGuessResult is the outcome of a best-guess search.
type BestGuessResult struct {
	// Top holds up to MaxOut distinct words achieving BestScore.
	Top []Word
	// Count is how many words tied at BestScore (may exceed len(Top)).
	Count int
	// BestScore is the maximum score observed.
	BestScore float64
}

// BestGuessOptions configures a best-guess search.
type BestGuessOptions struct {
	// MaxOut bounds how many tied top words are returned.
	MaxOut int
	// AllowSlurs disables the default suppression of FlagSlur words
	// from suggestions.
	AllowSlurs bool
}

// BestGuesses scans the dictionary for the guess(es) that maximize
// Score against know and live, with two fast paths:
//
//   - empty knowledge with a loaded index returns the dictionary's
//     pre-sorted best first guess directly;
//   - a live set of size 1 or 2 returns those candidates directly, with
//     the conventional (non-Score-formula) display score (5-n)*0.25.
//
// Otherwise it partitions the full dictionary (not just the live set)
// across workers, each computing ScoreST with a break_at threshold read
// from a shared, mutex-guarded best-score record; a strictly higher
// score resets the output to a single entry, an equal score appends.
// Cross-worker tie order is non-deterministic, but each worker visits
// its own range in ascending dictionary order, so ties are otherwise
// stable by dictionary order.
func BestGuesses(dict *Dictionary, know Knowledge, live *Candidates, opts BestGuessOptions) BestGuessResult {
	if dict.HasIndex() && know.IsEmpty() {
		return BestGuessResult{
			Top:       []Word{dict.Words[0]},
			Count:     1,
			BestScore: dict.Attrs[0].StartingScore,
		}
	}

	if n := live.Len(); n > 0 && n <= 2 {
		top := append([]Word(nil), live.Words()...)
		return BestGuessResult{
			Top:       top,
			Count:     n,
			BestScore: float64(5-n) * 0.25,
		}
	}

	out := newBestOutput(opts.MaxOut)

	n := len(dict.Words)
	ranges := Partition(n, MinWork, MaxTasks)
	_ = RunParallel(ranges, func(_ int, r Range) error {
		bestLocal := 0.0
		for i := r.From; i < r.To; i++ {
			guess := dict.Words[i]
			var attr *WordAttr
			if dict.HasIndex() {
				a := dict.Attrs[i]
				attr = &a
			}
			score := scoreSTWithAttr(attr, guess, know, live, bestLocal)
			bestLocal = out.observe(dict, i, guess, score, opts.AllowSlurs)
		}
		return nil
	})

	return out.result()
}

// bestOutput is the shared, mutex-guarded best-score record workers
// publish into and read break_at from.
type bestOutput struct {
	mu        sync.Mutex
	bestScore float64
	top       []Word
	maxOut    int
	count     int
}

func newBestOutput(maxOut int) *bestOutput {
	if maxOut < 1 {
		maxOut = 1
	}
	return &bestOutput{maxOut: maxOut, top: make([]Word, 0, maxOut)}
}

// observe records a candidate's score and returns the (possibly
// updated) current best score for use as the caller's next break_at.
// A word flagged FlagSlur is ignored entirely (it neither raises the
// bar nor appears in the output) unless allowSlurs is set.
func (o *bestOutput) observe(dict *Dictionary, idx int, guess Word, score float64, allowSlurs bool) float64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	if score < o.bestScore {
		return o.bestScore
	}

	if !allowSlurs && dict.HasIndex() && dict.Attrs[idx].Has(FlagSlur) {
		return o.bestScore
	}

	if score > o.bestScore {
		o.count = 0
		o.top = o.top[:0]
		o.bestScore = score
	}

	if len(o.top) < o.maxOut {
		o.top = append(o.top, guess)
	}
	o.count++

	return o.bestScore
}

func (o *bestOutput) result() BestGuessResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	return BestGuessResult{
		Top:       append([]Word(nil), o.top...),
		Count:     o.count,
		BestScore: o.bestScore,
	}
}
