// Package knowledge loads the embedded compatibility catalog. The catalog is
// a versioned data file baked into the binary; it is parsed once and never
// mutated at runtime.
package knowledge

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pipeshift/pipeshift/internal/domain"
)

//go:embed data/knowledge.yaml
var catalogData []byte

// Loader implements domain.KnowledgeSource over the embedded catalog.
type Loader struct {
	once    sync.Once
	catalog domain.KnowledgeCatalog
	err     error
}

func New() *Loader { return &Loader{} }

// Load parses the embedded catalog on first use and returns the cached result
// afterwards.
func (l *Loader) Load() (domain.KnowledgeCatalog, error) {
	l.once.Do(func() {
		var c domain.KnowledgeCatalog
		if err := yaml.Unmarshal(catalogData, &c); err != nil {
			l.err = fmt.Errorf("parsing embedded knowledge catalog: %w", err)
			return
		}
		if c.Version == "" {
			l.err = fmt.Errorf("embedded knowledge catalog has no version")
			return
		}
		l.catalog = c
	})
	return l.catalog, l.err
}
