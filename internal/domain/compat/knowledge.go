// Package compat holds the compatibility knowledge base and the verdict
// generator built on top of it. All functions are pure over their explicit
// inputs; the knowledge base itself is immutable once constructed.
package compat

import (
	"fmt"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// KnowledgeBase is an immutable lookup from feature key to compatibility
// metadata. Build one with NewKnowledgeBase from a loaded catalog.
type KnowledgeBase struct {
	version string
	entries map[string]domain.KnowledgeEntry
}

// NewKnowledgeBase indexes a catalog. Later duplicates of a key are rejected:
// every key maps to at most one entry.
func NewKnowledgeBase(catalog domain.KnowledgeCatalog) (*KnowledgeBase, error) {
	entries := make(map[string]domain.KnowledgeEntry, len(catalog.Entries))
	for _, e := range catalog.Entries {
		if e.Key == "" {
			return nil, fmt.Errorf("knowledge catalog %s: entry with empty key", catalog.Version)
		}
		if _, dup := entries[e.Key]; dup {
			return nil, fmt.Errorf("knowledge catalog %s: duplicate key %q", catalog.Version, e.Key)
		}
		if !domain.ValidStatus(e.Status) {
			return nil, fmt.Errorf("knowledge catalog %s: entry %q has invalid status %q", catalog.Version, e.Key, e.Status)
		}
		entries[e.Key] = e
	}
	return &KnowledgeBase{version: catalog.Version, entries: entries}, nil
}

// Version returns the catalog version the base was built from.
func (kb *KnowledgeBase) Version() string { return kb.version }

// Len returns the number of known feature keys.
func (kb *KnowledgeBase) Len() int { return len(kb.entries) }

// Lookup returns the entry for key. An unmapped key yields a defined
// unknown-status fallback, never an error, so downstream code always has a
// verdict to work with.
func (kb *KnowledgeBase) Lookup(key string) domain.KnowledgeEntry {
	if e, ok := kb.entries[key]; ok {
		return e
	}
	return domain.KnowledgeEntry{
		Key:         key,
		DisplayName: key,
		Status:      domain.StatusUnknown,
		Notes:       "no compatibility data for this feature; verify manually",
	}
}
