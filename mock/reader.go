package mock

import "github.com/fwojciec/narrator"

var _ narrator.Reader = (*Reader)(nil)

// Reader is a mock implementation of narrator.Reader.
type Reader struct {
	ReadContentFn  func(html string) (string, error)
	ReadMetadataFn func(html string) (*narrator.Metadata, error)
}

func (r *Reader) ReadContent(html string) (string, error) {
	return r.ReadContentFn(html)
}

func (r *Reader) ReadMetadata(html string) (*narrator.Metadata, error) {
	return r.ReadMetadataFn(html)
}
