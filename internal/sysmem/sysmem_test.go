package sysmem

import "testing"

func TestSnapshotTotals(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		wantMB   uint64
	}{
		{"physical only", Snapshot{PhysicalBytes: 8 << 30}, 8192},
		{"physical plus swap", Snapshot{PhysicalBytes: 8 << 30, SwapBytes: 2 << 30}, 10240},
		{"sub-megabyte truncates", Snapshot{PhysicalBytes: 1024}, 0},
		{"zero", Snapshot{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snapshot.TotalMB(); got != tt.wantMB {
				t.Errorf("TotalMB = %d, want %d", got, tt.wantMB)
			}
			if got := tt.snapshot.TotalBytes(); got != tt.snapshot.PhysicalBytes+tt.snapshot.SwapBytes {
				t.Errorf("TotalBytes = %d, want %d", got, tt.snapshot.PhysicalBytes+tt.snapshot.SwapBytes)
			}
		})
	}
}

func TestHostSnapshot(t *testing.T) {
	snap, err := Host{}.Snapshot()
	if err != nil {
		t.Fatalf("Host.Snapshot failed: %v", err)
	}
	if snap.PhysicalBytes == 0 {
		t.Error("expected nonzero physical memory")
	}
}
