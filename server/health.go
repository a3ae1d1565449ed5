package server

import (
	"math"
	"runtime"
	"time"
)

var start = time.Now()

const mb float64 = 1.0 * 1024 * 1024

// HealthStats runtime health snapshot for the /health endpoint
type HealthStats struct {
	Uptime          int64   `json:"uptime"`
	Goroutines      int     `json:"goroutines"`
	AllocatedMemory float64 `json:"allocated_memory"`
	HeapAllocated   float64 `json:"heap_allocated"`
	GCCycles        uint32  `json:"gc_cycles"`
	NumberOfCPUs    int     `json:"number_of_cpus"`
}

// GetHealthStats collects current runtime stats
func GetHealthStats() *HealthStats {
	mem := &runtime.MemStats{}
	runtime.ReadMemStats(mem)

	return &HealthStats{
		Uptime:          int64(time.Since(start).Seconds()),
		Goroutines:      runtime.NumGoroutine(),
		AllocatedMemory: toMegaBytes(mem.Alloc),
		HeapAllocated:   toMegaBytes(mem.HeapAlloc),
		GCCycles:        mem.NumGC,
		NumberOfCPUs:    runtime.NumCPU(),
	}
}

func toMegaBytes(bytes uint64) float64 {
	return math.Round(float64(bytes)/mb*100) / 100
}
