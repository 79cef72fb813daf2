package mock

import "github.com/fwojciec/narrator"

var _ narrator.Adapter = (*Adapter)(nil)

// Adapter is a mock implementation of narrator.Adapter.
type Adapter struct {
	NameFn            func() string
	CanHandleFn       func(doc *narrator.Document) bool
	ExtractMetadataFn func(doc *narrator.Document) *narrator.Metadata
	ContentFn         func(doc *narrator.Document) string
}

func (a *Adapter) Name() string {
	return a.NameFn()
}

func (a *Adapter) CanHandle(doc *narrator.Document) bool {
	return a.CanHandleFn(doc)
}

func (a *Adapter) ExtractMetadata(doc *narrator.Document) *narrator.Metadata {
	return a.ExtractMetadataFn(doc)
}

func (a *Adapter) Content(doc *narrator.Document) string {
	return a.ContentFn(doc)
}

var (
	_ narrator.Adapter               = (*BodyAdapter)(nil)
	_ narrator.BodyMetadataExtractor = (*BodyAdapter)(nil)
)

// BodyAdapter is a mock adapter that also implements
// narrator.BodyMetadataExtractor.
type BodyAdapter struct {
	Adapter
	ExtractMetadataWithBodyFn func(doc *narrator.Document, body string) *narrator.Metadata
}

func (a *BodyAdapter) ExtractMetadataWithBody(doc *narrator.Document, body string) *narrator.Metadata {
	return a.ExtractMetadataWithBodyFn(doc, body)
}

var _ narrator.Dispatcher = (*Dispatcher)(nil)

// Dispatcher is a mock implementation of narrator.Dispatcher.
type Dispatcher struct {
	SelectFn func(doc *narrator.Document) narrator.Adapter
}

func (d *Dispatcher) Select(doc *narrator.Document) narrator.Adapter {
	return d.SelectFn(doc)
}
