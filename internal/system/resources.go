package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Один рабочий поток держит кадр RGBA, буфер ffmpeg и кэш обложек
const workerMemoryBudget = 256 << 20

// RecommendedWorkers ограничивает число потоков по ядрам и свободной памяти.
// requested <= 0 означает "по числу ядер".
func RecommendedWorkers(requested int) int {
	cores, err := cpu.Counts(true)
	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}
	workers := requested
	if workers <= 0 {
		workers = cores
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		byMemory := int(vm.Available / workerMemoryBudget)
		if byMemory < 1 {
			byMemory = 1
		}
		if workers > byMemory {
			workers = byMemory
		}
	}
	return workers
}

// Snapshot - загрузка машины на момент замера
type Snapshot struct {
	CPUPercent   float64
	MemUsedMB    uint64
	MemTotalMB   uint64
	NumGoroutine int
}

func TakeSnapshot() Snapshot {
	s := Snapshot{NumGoroutine: runtime.NumGoroutine()}
	// 0 - процент с момента предыдущего вызова, без ожидания
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		s.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsedMB = vm.Used >> 20
		s.MemTotalMB = vm.Total >> 20
	}
	return s
}

func (s Snapshot) String() string {
	return fmt.Sprintf("CPU %.1f%% | RAM %d/%d MB | goroutines %d", s.CPUPercent, s.MemUsedMB, s.MemTotalMB, s.NumGoroutine)
}
