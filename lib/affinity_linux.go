//go:build linux

package word1e

import "golang.org/x/sys/unix"

// NumWorkers returns the number of CPUs available to this process,
// as determined by its scheduling affinity mask (which may be
// narrower than the host's total CPU count under cgroup or taskset
// constraints), falling back to 1 if the mask cannot be read.
func NumWorkers() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 1
	}
	n := set.Count()
	if n < 1 {
		return 1
	}
	return n
}
