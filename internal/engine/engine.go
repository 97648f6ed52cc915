// Package engine selects and activates a whisper model sized to the host:
// it computes a memory budget from physical plus swap, walks the catalog
// fallback chain until a tier fits, and verifies the cached artifact before
// reporting the engine ready.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/modelcache"
	"github.com/nchapman/murmur/internal/sysmem"
)

// repairRetries bounds re-download attempts when a cached model fails
// verification at startup.
const repairRetries = 2

// Engine describes an activated model selection.
type Engine struct {
	Tier      catalog.Tier
	Entry     catalog.Entry
	ModelPath string
	StartedAt time.Time
}

// Plan is the outcome of the sizing walk without touching the cache.
type Plan struct {
	Requested catalog.Tier
	Entry     catalog.Entry
	BudgetMB  uint64
	TotalMB   uint64
	Path      []catalog.Tier // tiers considered, requested first
}

// Downgraded reports whether the walk settled on a smaller tier than
// requested.
func (p *Plan) Downgraded() bool {
	return p.Entry.ID != p.Requested
}

type Bootstrap struct {
	cache  *modelcache.Manager
	mem    sysmem.Inspector
	logger *log.Logger

	// Progress, when set, receives transfer progress during startup repair
	// downloads.
	Progress modelcache.ProgressFunc
}

func NewBootstrap(cache *modelcache.Manager, mem sysmem.Inspector, logger *log.Logger) *Bootstrap {
	if mem == nil {
		mem = sysmem.Host{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bootstrap{
		cache:  cache,
		mem:    mem,
		logger: logger,
	}
}

// BudgetMB converts a memory snapshot into the model budget: three quarters
// of physical plus swap, leaving headroom for the OS and the rest of the
// process.
func BudgetMB(s sysmem.Snapshot) uint64 {
	return s.TotalBytes() * 3 / 4 / (1024 * 1024)
}

// Plan runs the sizing walk for a requested tier: snapshot memory, compute
// the budget, follow the fallback chain until a tier fits. It never reads
// the cache or the network.
func (b *Bootstrap) Plan(requested catalog.Tier) (*Plan, error) {
	snap, err := b.mem.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to inspect system memory: %w", err)
	}

	budget := BudgetMB(snap)
	b.logger.Debug("computed memory budget",
		"physical_mb", snap.PhysicalBytes/(1024*1024),
		"swap_mb", snap.SwapBytes/(1024*1024),
		"budget_mb", budget)

	entry, path, err := b.fitToBudget(requested, budget)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Requested: requested,
		Entry:     entry,
		BudgetMB:  budget,
		TotalMB:   snap.TotalMB(),
		Path:      path,
	}, nil
}

// fitToBudget walks the fallback chain from requested until an entry's
// memory need fits the budget. Running off the bottom of the chain returns
// InsufficientMemoryError for the smallest tier tried.
func (b *Bootstrap) fitToBudget(requested catalog.Tier, budgetMB uint64) (catalog.Entry, []catalog.Tier, error) {
	entry, ok := catalog.EntryFor(requested)
	if !ok {
		return catalog.Entry{}, nil, fmt.Errorf("unknown model tier %q", requested)
	}

	path := []catalog.Tier{entry.ID}
	for uint64(entry.MemoryMB) > budgetMB {
		if entry.Fallback == "" {
			return catalog.Entry{}, path, &InsufficientMemoryError{
				Tier:       entry.ID,
				RequiredMB: uint64(entry.MemoryMB),
				BudgetMB:   budgetMB,
			}
		}
		next, ok := catalog.EntryFor(entry.Fallback)
		if !ok {
			return catalog.Entry{}, path, fmt.Errorf("catalog fallback %q for tier %q is unknown", entry.Fallback, entry.ID)
		}
		b.logger.Warn("model exceeds memory budget, falling back",
			"from", entry.ID, "to", next.ID,
			"required_mb", entry.MemoryMB, "budget_mb", budgetMB)
		entry = next
		path = append(path, entry.ID)
	}

	return entry, path, nil
}

// Start activates the requested tier, downgrading along the fallback chain
// when memory is tight. The selected model must already be in the cache; a
// missing model fails fast with ModelNotFoundError and no network traffic.
// A cached model that fails verification is re-downloaded before activation.
func (b *Bootstrap) Start(ctx context.Context, requested catalog.Tier) (*Engine, error) {
	plan, err := b.Plan(requested)
	if err != nil {
		return nil, err
	}

	if plan.Downgraded() {
		b.logger.Info("selected a smaller model for available memory",
			"requested", plan.Requested, "selected", plan.Entry.ID)
	}

	return b.activate(ctx, plan.Entry)
}

// Switch activates a tier chosen explicitly by the user, skipping the memory
// budget entirely.
func (b *Bootstrap) Switch(ctx context.Context, tier catalog.Tier) (*Engine, error) {
	entry, ok := catalog.EntryFor(tier)
	if !ok {
		return nil, fmt.Errorf("unknown model tier %q", tier)
	}
	b.logger.Debug("switching model without memory check", "model", entry.ID)
	return b.activate(ctx, entry)
}

func (b *Bootstrap) activate(ctx context.Context, entry catalog.Entry) (*Engine, error) {
	if !b.cache.Exists(entry) {
		return nil, &ModelNotFoundError{Tier: entry.ID}
	}

	if !b.cache.IsAvailable(entry, true) {
		b.logger.Warn("cached model failed verification, re-downloading", "model", entry.ID)
		if _, err := b.cache.DownloadWithRetry(ctx, entry, repairRetries, b.Progress); err != nil {
			return nil, err
		}
	}

	eng := &Engine{
		Tier:      entry.ID,
		Entry:     entry,
		ModelPath: b.cache.ModelPath(entry),
		StartedAt: time.Now(),
	}

	state := &State{
		ActiveTier: string(entry.ID),
		ModelPath:  eng.ModelPath,
		SelectedAt: eng.StartedAt,
	}
	if err := SaveState(state); err != nil {
		// The engine is up; a stale status display is not worth failing it.
		b.logger.Warn("failed to persist engine state", "error", err)
	}

	b.logger.Info("model ready", "model", entry.ID, "path", eng.ModelPath)
	return eng, nil
}
