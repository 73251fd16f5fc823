package ingest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/cfdilens/cfdilens/internal/model"
)

// Fingerprint identifies a source snapshot by location and content.
func Fingerprint(path string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// Cache holds the dataset of the most recently loaded snapshot. A new
// fingerprint replaces the entry. Not safe for concurrent use.
type Cache struct {
	fingerprint string
	dataset     *model.Dataset
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached dataset when fingerprint matches the entry.
func (c *Cache) Get(fingerprint string) (*model.Dataset, bool) {
	if c.dataset == nil || c.fingerprint != fingerprint {
		return nil, false
	}
	return c.dataset, true
}

// Put replaces the entry.
func (c *Cache) Put(fingerprint string, ds *model.Dataset) {
	c.fingerprint = fingerprint
	c.dataset = ds
}

// Invalidate drops the entry.
func (c *Cache) Invalidate() {
	c.fingerprint = ""
	c.dataset = nil
}
