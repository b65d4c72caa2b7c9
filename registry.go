// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package facade

import "context"

// Kind is a kind of entity served through a facade.
type Kind int

const (
	// KindNode is the kind of Node
	KindNode Kind = iota + 1

	// KindGroup is the kind of Group
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindGroup:
		return "group"
	}
	return "unknown"
}

// Facade forwards every Resolver operation to the resolver currently
// installed for its kind, so callers never hold a concrete resolver.
//
// A Facade is not threadsafe. The active resolver is installed while
// bootstrapping (usually with a single goroutine), after which any number
// of goroutines may query it. Swapping resolvers while queries are in
// flight requires external synchronization.
type Facade[T any] struct {
	kind     Kind
	resolver Resolver[T]
}

// Facade is itself a Resolver; an operation added to the contract fails to
// compile here until it is forwarded.
var (
	_ NodeResolver  = (*Facade[*Node])(nil)
	_ GroupResolver = (*Facade[*Group])(nil)
)

// NewFacade returns an unconfigured facade for kind.
func NewFacade[T any](kind Kind) *Facade[T] {
	return &Facade[T]{kind: kind}
}

// Kind returns the kind of entity served by the facade.
func (f *Facade[T]) Kind() Kind {
	return f.kind
}

// SetActive installs r, replacing any previous resolver. A nil r leaves the
// facade unconfigured.
func (f *Facade[T]) SetActive(r Resolver[T]) {
	f.resolver = r
}

// Active returns the installed resolver, or ErrNotConfigured.
func (f *Facade[T]) Active() (Resolver[T], error) {
	if f.resolver == nil {
		return nil, &ErrNotConfigured{Kind: f.kind}
	}
	return f.resolver, nil
}

// Swap installs r and returns a function restoring whatever was installed
// before, including the unconfigured state.
func (f *Facade[T]) Swap(r Resolver[T]) (restore func()) {
	previous := f.resolver
	f.resolver = r
	return func() {
		f.resolver = previous
	}
}

// FindByName calls the active resolver
func (f *Facade[T]) FindByName(ctx context.Context, name string) (T, bool, error) {
	r, err := f.Active()
	if err != nil {
		var zero T
		return zero, false, err
	}
	return r.FindByName(ctx, name)
}

// IndexAll calls the active resolver
func (f *Facade[T]) IndexAll(ctx context.Context) ([]T, error) {
	r, err := f.Active()
	if err != nil {
		return nil, err
	}
	return r.IndexAll(ctx)
}

// Registry holds one facade per kind of entity.
type Registry struct {
	nodes  *Facade[*Node]
	groups *Facade[*Group]
}

// NewRegistry creates a Registry with unconfigured facades.
func NewRegistry() *Registry {
	return &Registry{
		nodes:  NewFacade[*Node](KindNode),
		groups: NewFacade[*Group](KindGroup),
	}
}

// Nodes returns the node facade.
func (r *Registry) Nodes() *Facade[*Node] {
	return r.nodes
}

// Groups returns the group facade.
func (r *Registry) Groups() *Facade[*Group] {
	return r.groups
}

// DefaultRegistry is the process-wide registry used by Nodes and Groups.
var DefaultRegistry = NewRegistry()

// Nodes returns the node facade of the DefaultRegistry.
func Nodes() *Facade[*Node] {
	return DefaultRegistry.Nodes()
}

// Groups returns the group facade of the DefaultRegistry.
func Groups() *Facade[*Group] {
	return DefaultRegistry.Groups()
}
