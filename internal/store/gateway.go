package store

import (
	"log/slog"
	"sync"
)

// Binding declares how one named store participates in persistence.
// The manifest is data-driven: a store opts in or out through Persist
// rather than through hard-coded branching in the gateway.
type Binding struct {
	// Name is the namespaced storage key for this store.
	Name string

	// Persist selects whether the store is written at all. Volatile
	// stores (catalog cache) register with Persist false so the
	// manifest documents the decision.
	Persist bool

	// Snapshot serializes the store's full current state.
	Snapshot func() ([]byte, error)

	// Restore replaces the store's state from a serialized payload.
	Restore func(data []byte) error

	// Subscribe registers a callback invoked after every mutation.
	Subscribe func(fn func())
}

// Gateway persists a declared subset of state stores to the key-value
// store. Writes are fire-and-forget: a crash between a mutation and its
// write loses at most the latest change, which is acceptable for this
// data. Reads happen once, at startup, before the UI renders.
type Gateway struct {
	store    *Store
	logger   *slog.Logger
	bindings []Binding

	wg sync.WaitGroup
}

// NewGateway creates a gateway over the given bindings.
func NewGateway(store *Store, logger *slog.Logger, bindings ...Binding) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{store: store, logger: logger, bindings: bindings}
}

// Hydrate restores every persisted binding from storage. Missing or
// corrupt payloads leave the store at its empty default; hydration
// never fails startup.
func (g *Gateway) Hydrate() {
	for _, b := range g.bindings {
		if !b.Persist {
			continue
		}
		data, ok := g.store.GetState(b.Name)
		if !ok {
			continue
		}
		if err := b.Restore(data); err != nil {
			g.logger.Warn("discarding corrupt persisted state", "store", b.Name, "error", err)
		}
	}
}

// Watch subscribes to every persisted binding so each mutation triggers
// a serialize-and-write of that store's full state. Call after Hydrate
// so the restore itself is not written back.
func (g *Gateway) Watch() {
	for _, b := range g.bindings {
		if !b.Persist {
			continue
		}
		binding := b
		binding.Subscribe(func() {
			g.flush(binding)
		})
	}
}

// flush snapshots synchronously (so the payload matches the state at
// mutation time) and writes in the background.
func (g *Gateway) flush(b Binding) {
	data, err := b.Snapshot()
	if err != nil {
		g.logger.Warn("failed to snapshot state", "store", b.Name, "error", err)
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := g.store.PutState(b.Name, data); err != nil {
			g.logger.Warn("failed to persist state", "store", b.Name, "error", err)
		}
	}()
}

// Flush writes every persisted binding synchronously. Used at shutdown.
func (g *Gateway) Flush() {
	for _, b := range g.bindings {
		if !b.Persist {
			continue
		}
		data, err := b.Snapshot()
		if err != nil {
			g.logger.Warn("failed to snapshot state", "store", b.Name, "error", err)
			continue
		}
		if err := g.store.PutState(b.Name, data); err != nil {
			g.logger.Warn("failed to persist state", "store", b.Name, "error", err)
		}
	}
	g.wg.Wait()
}

// Wait blocks until all in-flight background writes have completed.
func (g *Gateway) Wait() {
	g.wg.Wait()
}
