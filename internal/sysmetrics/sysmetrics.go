// Package sysmetrics samples process-level resource usage for the
// progress reporter.
package sysmetrics

import (
	"runtime"
	"sync"
	"syscall"
	"time"
)

// Stats is one point-in-time resource sample.
type Stats struct {
	// CPUPercent is the process CPU usage since the previous sample
	// (0-100+). Multi-core processes can exceed 100.
	CPUPercent float64
	// MemoryInuse is the memory actively in use by the Go runtime, in
	// bytes: HeapInuse (live heap spans) plus StackInuse (goroutine
	// stacks), excluding reserved but uncommitted address space.
	MemoryInuse int64
	// Goroutines is the current goroutine count.
	Goroutines int
}

var (
	mu       sync.Mutex
	lastWall time.Time
	lastUser time.Duration
	lastSys  time.Duration
	lastCPU  float64
)

func init() {
	now := time.Now()
	utime, stime := rusageTimes()
	mu.Lock()
	lastWall = now
	lastUser = utime
	lastSys = stime
	mu.Unlock()
}

// Sample reads the current resource usage. The CPU figure is averaged
// over the window since the previous Sample call; the first window
// starts at process init.
func Sample() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		CPUPercent:  cpuPercent(),
		MemoryInuse: int64(m.HeapInuse + m.StackInuse),
		Goroutines:  runtime.NumGoroutine(),
	}
}

func cpuPercent() float64 {
	now := time.Now()
	utime, stime := rusageTimes()

	mu.Lock()
	defer mu.Unlock()

	wall := now.Sub(lastWall)
	if wall <= 0 {
		return lastCPU
	}

	cpuDelta := (utime - lastUser) + (stime - lastSys)
	pct := float64(cpuDelta) / float64(wall) * 100.0

	lastWall = now
	lastUser = utime
	lastSys = stime
	lastCPU = pct

	return pct
}

func rusageTimes() (user, sys time.Duration) {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0, 0
	}
	user = time.Duration(rusage.Utime.Nano())
	sys = time.Duration(rusage.Stime.Nano())
	return user, sys
}
