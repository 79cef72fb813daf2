// Package bloom detects repeated article bodies using Bloom filters.
package bloom

import (
	"encoding/binary"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Filter remembers body fingerprints. It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected bodies
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Fingerprint hashes body with whitespace runs collapsed, so the same
// article saved twice with different formatting collides.
func Fingerprint(body string) []byte {
	sum := xxhash.Sum64String(strings.Join(strings.Fields(body), " "))
	return binary.BigEndian.AppendUint64(nil, sum)
}

// Add records body.
func (f *Filter) Add(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.Add(Fingerprint(body))
}

// Test returns true if body might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(body string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.Test(Fingerprint(body))
}

// Seen records body and reports whether it was already present.
func (f *Filter) Seen(body string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAdd(Fingerprint(body))
}

// EstimatedCount returns the approximate number of bodies in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
