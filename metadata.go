package narrator

import "regexp"

// Default values for metadata fields that no signal could fill.
const (
	UnknownAuthor = "Unknown Author"
	UnknownMedia  = "Unknown Media"
)

// Metadata describes one article. Fields are never nil; absent values hold
// the empty string or one of the Unknown* sentinels.
type Metadata struct {
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Media       string `json:"media" yaml:"media"`
	URL         string `json:"url" yaml:"url,omitempty"`
	Date        string `json:"date" yaml:"date,omitempty"`
	Description string `json:"description" yaml:"description,omitempty"`
	ImageURL    string `json:"imageUrl" yaml:"image,omitempty"`
}

// NewMetadata returns a record populated with defaults.
func NewMetadata() *Metadata {
	return &Metadata{
		Author: UnknownAuthor,
		Media:  UnknownMedia,
	}
}

// HasAuthor reports whether the author holds a real value.
func (m *Metadata) HasAuthor() bool {
	return m.Author != "" && m.Author != UnknownAuthor
}

// HasMedia reports whether the media holds a real value.
func (m *Metadata) HasMedia() bool {
	return m.Media != "" && m.Media != UnknownMedia
}

var yearPrefix = regexp.MustCompile(`^\d{4}`)

// Year returns the four digit year the date starts with, or "" when the
// free-form date does not start with one.
func (m *Metadata) Year() string {
	return yearPrefix.FindString(m.Date)
}
