// SPDX-License-Identifier: GPL-3.0-or-later
package pipeline

import (
	"fmt"
	"strings"

	"github.com/CrawX/go-spamblocker/domain"
)

// Registry is the ordered set of modules a pipeline runs. It does not change after
// construction.
type Registry struct {
	modules []domain.SpamCheckModule
}

func NewRegistry(modules ...domain.SpamCheckModule) (*Registry, error) {
	seen := map[string]bool{}
	for i, m := range modules {
		if m == nil {
			return nil, fmt.Errorf("module %d is nil", i)
		}

		name := m.Name()
		if len(strings.TrimSpace(name)) == 0 {
			return nil, fmt.Errorf("module %d has no name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("module %s registered twice", name)
		}
		seen[name] = true
	}

	return &Registry{
		modules: append([]domain.SpamCheckModule(nil), modules...),
	}, nil
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.Name()
	}

	return names
}

func (r *Registry) Len() int {
	return len(r.modules)
}
