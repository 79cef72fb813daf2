package mock

import "github.com/fwojciec/narrator"

var _ narrator.Converter = (*Converter)(nil)

// Converter is a mock implementation of narrator.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
