//go:build !linux

package word1e

import "runtime"

// NumWorkers falls back to runtime.NumCPU() on platforms where reading
// the process's CPU affinity mask isn't available through
// golang.org/x/sys/unix.
func NumWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
