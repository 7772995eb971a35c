/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provider

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Factory constructs a Provider for the given vendor profile (for example an
// AWS shared-config profile name)
type Factory func(ctx context.Context, profile string) (Provider, error)

// Registry maps vendor names to provider factories. It is an explicit value
// constructed once at startup and passed to whatever needs to build
// providers; there is no package-global registry.
//
// A single goroutine populates the registry during startup, so access is not
// locked.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register stores factory under the lower-cased name. Registering a name
// twice replaces the previous factory, which lets tests override vendors.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[strings.ToLower(name)] = factory
}

// Create looks up the factory for name (case-insensitive) and invokes it with
// profile. A miss reports every currently registered vendor.
func (r *Registry) Create(ctx context.Context, name, profile string) (Provider, error) {
	factory, ok := r.factories[strings.ToLower(name)]
	if !ok {
		registered := "none"
		if names := r.List(); len(names) > 0 {
			registered = strings.Join(names, ", ")
		}
		return nil, fmt.Errorf("unknown provider %q, registered providers: %s", name, registered)
	}
	return factory(ctx, profile)
}

// List returns the registered vendor names in sorted order
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
