package engine

import (
	"sort"

	"github.com/lixenwraith/pong/core"
)

// QueryBuilder finds entities present in every added store
//
// Example:
//
//	entities := world.Query().
//	    With(world.Component.Speed).
//	    With(world.Component.Velocity).
//	    Execute()
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities present in all stores
// Iteration order follows the first store added, so results are deterministic across ticks
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	candidates := qb.stores[0].All()
	if len(qb.stores) == 1 {
		qb.results = candidates
		return qb.results
	}

	// Check membership against the smallest remaining stores first
	rest := append([]QueryableStore(nil), qb.stores[1:]...)
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Count() < rest[j].Count()
	})

	filtered := candidates[:0]
	for _, e := range candidates {
		keep := true
		for _, store := range rest {
			if !store.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, e)
		}
	}

	qb.results = filtered
	return qb.results
}
