package narrator

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Transcript is the narration produced for one saved page.
type Transcript struct {
	// Source is the input filename.
	Source string

	// Adapter names the adapter that extracted the page.
	Adapter string

	Metadata *Metadata

	// Body is the adapter's content, before the introduction is added.
	Body string
}

// Transcribe runs the adapter selected by d over doc. The body is extracted
// once and shared with the metadata when the adapter supports it.
func Transcribe(d Dispatcher, doc *Document) *Transcript {
	a := d.Select(doc)
	t := &Transcript{
		Source:  doc.Filename,
		Adapter: a.Name(),
		Body:    a.Content(doc),
	}
	if x, ok := a.(BodyMetadataExtractor); ok {
		t.Metadata = x.ExtractMetadataWithBody(doc, t.Body)
	} else {
		t.Metadata = a.ExtractMetadata(doc)
	}
	return t
}

// Script returns the text handed to the speech pipeline.
func (t *Transcript) Script() string {
	return Script(t.Metadata, t.Body)
}

// Stats returns the character and approximate word counts of the script.
func (t *Transcript) Stats() (chars, words int) {
	s := t.Script()
	return utf8.RuneCountInString(s), len(strings.Fields(s))
}

// Validate returns an error if the transcript has nothing worth narrating.
func (t *Transcript) Validate() error {
	if t.Metadata == nil {
		return Errorf(EINVALID, "transcript metadata required")
	}
	if !HasContent(t.Body) {
		return Errorf(EINVALID, "content too short: %d characters", utf8.RuneCountInString(strings.TrimSpace(t.Body)))
	}
	return nil
}

// TranscriptStore persists transcripts with all-or-nothing semantics.
type TranscriptStore interface {
	// Save stages a transcript. Nothing is visible until Commit.
	Save(ctx context.Context, t *Transcript) error

	// Commit publishes all staged transcripts.
	Commit() error

	// Abort discards all staged transcripts.
	Abort() error
}
