package word1e

// Score returns the expected-remaining-size score for guess under know
// and the live candidate set live:
//
//	score(g,K) = 1 + [match(g,K)]*(1/n^2)
//	               - (1/n^2) * sum_{t in O} count_matches(absorb(K, knowledge(g, compare(g,t))))
//
// where n = live.Len(). Higher is better. If know is empty and dict
// carries a precomputed index, the cached first-move score is returned
// instead of recomputing the O(n^2) loop. The scan over O is
// partitioned across available workers and the per-range partial sums
// are added afterwards. This adds the same float64 terms as ScoreST but
// in a different order, so the two forms agree only to within
// floating-point rounding; they are not guaranteed to be bit-identical.
func Score(dict *Dictionary, guess Word, know Knowledge, live *Candidates) float64 {
	attr, ok := dict.AttrOf(guess)
	var attrPtr *WordAttr
	if ok {
		attrPtr = &attr
	}
	return scoreWithAttr(attrPtr, guess, know, live)
}

// ScoreST is the single-threaded form with early exit: as soon as the
// running score drops below breakAt, it returns a lower bound on the
// true score rather than finishing the scan (the partial score minus
// the most the unscanned targets could still subtract). Used inside best-guess
// search so a guess already known to be worse than the current best can
// be abandoned early.
func ScoreST(dict *Dictionary, guess Word, know Knowledge, live *Candidates, breakAt float64) float64 {
	attr, ok := dict.AttrOf(guess)
	var attrPtr *WordAttr
	if ok {
		attrPtr = &attr
	}
	return scoreSTWithAttr(attrPtr, guess, know, live, breakAt)
}

func scoreWithAttr(attr *WordAttr, guess Word, know Knowledge, live *Candidates) float64 {
	if know.IsEmpty() && attr != nil {
		return attr.StartingScore
	}

	n := live.Len()
	if n == 0 {
		return 1.0
	}
	norm := 1.0 / (float64(n) * float64(n))

	words := live.Words()
	ranges := Partition(n, MinWork, MaxTasks)
	partials := make([]float64, len(ranges))

	// RunParallel's error is always nil here: the worker closure never
	// returns non-nil.
	_ = RunParallel(ranges, func(i int, r Range) error {
		partials[i] = scoreRange(guess, know, live, words[r.From:r.To], norm)
		return nil
	})

	score := 1.0 + tieBreakBonus(attr, guess, know, norm)
	for _, p := range partials {
		score += p
	}
	return score
}

func scoreSTWithAttr(attr *WordAttr, guess Word, know Knowledge, live *Candidates, breakAt float64) float64 {
	if know.IsEmpty() && attr != nil {
		return attr.StartingScore
	}

	n := live.Len()
	if n == 0 {
		return 1.0
	}
	norm := 1.0 / (float64(n) * float64(n))

	score := 1.0 + tieBreakBonus(attr, guess, know, norm)
	words := live.Words()
	for i, t := range words {
		score -= simulatedRemaining(guess, know, live, t) * norm
		if score < breakAt {
			// Each unscanned target leaves at most n candidates.
			score -= float64(len(words)-i-1) * float64(n) * norm
			break
		}
	}
	return score
}

func scoreRange(guess Word, know Knowledge, live *Candidates, targets []Word, norm float64) float64 {
	var sum float64
	for _, t := range targets {
		sum -= simulatedRemaining(guess, know, live, t) * norm
	}
	return sum
}

// simulatedRemaining is count_matches(absorb(K, knowledge(g, compare(g,t)))):
// the post-filter live-set size if guess were played against a
// hypothetical target t.
func simulatedRemaining(guess Word, know Knowledge, live *Candidates, t Word) float64 {
	colors := CompareToTarget(guess, t)
	delta := KnowledgeFromColors(guess, colors)
	sim := know.Absorb(delta)
	return float64(live.CountMatches(sim))
}

// tieBreakBonus is the small +1/n^2 awarded when guess could itself
// still win this turn: it must be a live candidate, and either no
// attributes are loaded or guess is itself eligible as a target.
func tieBreakBonus(attr *WordAttr, guess Word, know Knowledge, norm float64) float64 {
	eligible := attr == nil || attr.Has(FlagTarget)
	if eligible && know.Match(guess) {
		return norm
	}
	return 0
}
