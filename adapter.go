package narrator

// Adapter extracts metadata and speakable body text from the pages of one
// outlet. The generic adapter handles every page no outlet adapter claims.
type Adapter interface {
	// Name returns the adapter's identifier (e.g., "ballast", "generic").
	Name() string

	// CanHandle reports whether the document comes from this adapter's
	// outlet. It must not modify the document: it runs against the same
	// shared tree for every candidate before one is selected.
	CanHandle(doc *Document) bool

	// ExtractMetadata returns a fresh record. Fields without a signal keep
	// their defaults.
	ExtractMetadata(doc *Document) *Metadata

	// Content returns the body text to be spoken, or "" when the document
	// has no identifiable content.
	Content(doc *Document) string
}

// Dispatcher selects the adapter for a document.
type Dispatcher interface {
	// Select probes adapters in priority order and returns the first that
	// can handle the document, or the generic adapter. It never returns nil.
	Select(doc *Document) Adapter
}

// BodyMetadataExtractor is implemented by adapters whose metadata depends on
// the body text, such as a description synthesized from it. Callers that
// already hold the body use it to avoid extracting the content twice.
type BodyMetadataExtractor interface {
	// ExtractMetadataWithBody returns the same record as ExtractMetadata,
	// given body as returned by Content for the same document.
	ExtractMetadataWithBody(doc *Document, body string) *Metadata
}
