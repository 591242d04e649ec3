package word1e

import "golang.org/x/sync/errgroup"

// MinWork is the minimum chunk size a partition hands to one worker
// (empirically ~128 words, per the original tuning).
const MinWork = 128

// MaxTasks bounds how many chunks a partition produces regardless of
// input size.
const MaxTasks = 256

// Range is a half-open [From, To) slice of indices assigned to one
// worker.
type Range struct {
	From, To int
}

// Partition splits [0, n) into clamp(ceil(n/minWork), 1, maxTasks)
// contiguous, roughly equal ranges. It is the chunking rule shared by
// the parallel scorer and the best-guess search; the offline index
// builder uses its own fixed partition (partitionFixed).
func Partition(n, minWork, maxTasks int) []Range {
	if n <= 0 {
		return nil
	}

	numTasks := 1 + (n-1)/minWork
	if numTasks > maxTasks {
		numTasks = maxTasks
	}
	if numTasks < 1 {
		numTasks = 1
	}

	ranges := make([]Range, numTasks)
	for i := range ranges {
		ranges[i] = Range{
			From: i * n / numTasks,
			To:   (i + 1) * n / numTasks,
		}
	}
	return ranges
}

// RunParallel is the thread-pool primitive assumed by §5: it dispatches
// one task per range, bounded by NumWorkers, and blocks until every
// task has completed (graceful join). Workers run to completion; there
// are no suspension points or cancellation inside a task. work receives
// the range's index in ranges, so callers can write results into a
// pre-sized slice without additional synchronization.
func RunParallel(ranges []Range, work func(i int, r Range) error) error {
	g := new(errgroup.Group)
	g.SetLimit(NumWorkers())
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			return work(i, r)
		})
	}
	return g.Wait()
}
