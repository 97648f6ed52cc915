// Package sysmem reports total system memory (physical plus swap), used to
// size the model selection budget.
package sysmem

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot is a point-in-time view of total system memory.
type Snapshot struct {
	PhysicalBytes uint64
	SwapBytes     uint64
}

func (s Snapshot) TotalBytes() uint64 {
	return s.PhysicalBytes + s.SwapBytes
}

func (s Snapshot) TotalMB() uint64 {
	return s.TotalBytes() / (1024 * 1024)
}

// Inspector supplies memory snapshots on demand.
type Inspector interface {
	Snapshot() (Snapshot, error)
}

// Host reads memory totals from the running system.
type Host struct{}

func (Host) Snapshot() (Snapshot, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read physical memory: %w", err)
	}

	swap, err := mem.SwapMemory()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read swap: %w", err)
	}

	return Snapshot{
		PhysicalBytes: vm.Total,
		SwapBytes:     swap.Total,
	}, nil
}
