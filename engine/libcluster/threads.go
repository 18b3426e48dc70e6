package libcluster

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// resolveThreads picks the worker count handed to libcluster. Zero means
// "engine default", which is one worker per logical CPU.
func resolveThreads(requested uint) uint {
	if requested > 0 {
		return requested
	}
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}
	return uint(n)
}
