package profiler

import "runtime"

// Stats is a snapshot of runtime counters shown by debug overlays.
type Stats struct {
	HeapAlloc  uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

func ReadStats() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAlloc:  m.Alloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}

func MemoryUsage() uint64 { return ReadStats().HeapAlloc }

func MemoryAllocs() uint64 { return ReadStats().Mallocs }

func NumGoroutine() int { return runtime.NumGoroutine() }

func NumCPU() int { return runtime.NumCPU() }
