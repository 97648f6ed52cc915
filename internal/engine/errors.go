package engine

import (
	"fmt"

	"github.com/nchapman/murmur/internal/catalog"
)

// ModelNotFoundError reports a model that is not in the cache. Startup never
// downloads on its own; pulls are explicit actions.
type ModelNotFoundError struct {
	Tier catalog.Tier
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %s is not downloaded (run 'murmur pull %s' first)", e.Tier, e.Tier)
}

// InsufficientMemoryError reports that even the smallest tier on the fallback
// chain exceeds the memory budget.
type InsufficientMemoryError struct {
	Tier       catalog.Tier
	RequiredMB uint64
	BudgetMB   uint64
}

func (e *InsufficientMemoryError) Error() string {
	return fmt.Sprintf("insufficient memory: model %s needs %d MB but the budget is %d MB",
		e.Tier, e.RequiredMB, e.BudgetMB)
}
