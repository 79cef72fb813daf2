package goquery

import "github.com/fwojciec/narrator"

var _ narrator.Dispatcher = (*Registry)(nil)

// Registry selects the adapter for a document. Adapters are probed in
// registration order and the first one that can handle the document wins,
// falling back to a generic adapter when none does.
type Registry struct {
	adapters []narrator.Adapter
	fallback narrator.Adapter
}

// NewRegistry creates a new Registry with the given fallback adapter.
// The fallback is returned by Select when no registered adapter matches.
func NewRegistry(fallback narrator.Adapter) *Registry {
	return &Registry{fallback: fallback}
}

// NewDefaultRegistry returns a Registry holding every outlet adapter in
// priority order, with a GenericAdapter fallback. r is the reader-mode
// service used by the adapters that delegate to it; it may be nil.
func NewDefaultRegistry(r narrator.Reader) *Registry {
	registry := NewRegistry(NewGenericAdapter(r))
	registry.Register(NewGeminiAdapter())
	registry.Register(NewEuropresseAdapter())
	registry.Register(NewLeMondeDiplomatiqueAdapter())
	registry.Register(NewMediapartAdapter())
	registry.Register(NewBallastAdapter())
	registry.Register(NewMultitudesAdapter())
	registry.Register(NewManifestoAdapter())
	registry.Register(NewCairnAdapter())
	registry.Register(NewLMSIAdapter())
	registry.Register(NewUCLAdapter(r))
	return registry
}

// Register appends an adapter. Earlier registrations take precedence.
func (r *Registry) Register(adapter narrator.Adapter) {
	r.adapters = append(r.adapters, adapter)
}

// Select returns the first registered adapter that can handle doc, or the
// fallback. Probing never modifies doc.
func (r *Registry) Select(doc *narrator.Document) narrator.Adapter {
	for _, adapter := range r.adapters {
		if adapter.CanHandle(doc) {
			return adapter
		}
	}
	return r.fallback
}

// List returns the names of the registered adapters in priority order,
// followed by the fallback.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.adapters)+1)
	for _, adapter := range r.adapters {
		names = append(names, adapter.Name())
	}
	if r.fallback != nil {
		names = append(names, r.fallback.Name())
	}
	return names
}
