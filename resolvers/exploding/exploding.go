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

package exploding

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	facade "github.com/openflighthpc/flight-facade"
	"github.com/openflighthpc/flight-facade/hostlist"
)

// Option describes a func that can modify a GroupResolver
type Option func(*GroupResolver)

// WithLogger sets the logger used to report unresolvable names.
func WithLogger(logger *zap.Logger) Option {
	return func(r *GroupResolver) {
		r.logger = logger
	}
}

// GroupResolver derives groups from their names: a group name is a hostlist
// expression and its members are the nodes the expanded names resolve to.
// It cannot enumerate groups.
type GroupResolver struct {
	nodes  facade.NodeResolver
	logger *zap.Logger
}

// NewGroupResolver creates a GroupResolver resolving member names through
// nodes, usually the node facade of a registry so the currently active node
// resolver answers.
func NewGroupResolver(nodes facade.NodeResolver, opts ...Option) *GroupResolver {
	r := &GroupResolver{nodes: nodes, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindByName expands name and returns the group of the nodes that resolve.
// Names that do not resolve are skipped. A name that is not a valid hostlist
// expression is not found.
func (r *GroupResolver) FindByName(ctx context.Context, name string) (*facade.Group, bool, error) {
	if name == "" {
		return nil, false, nil
	}
	names, err := hostlist.Explode(name)
	if err != nil {
		r.logger.Debug("group name is not a hostlist", zap.String("group", name), zap.Error(err))
		return nil, false, nil
	}

	nodes := make([]*facade.Node, 0, len(names))
	for _, n := range names {
		node, found, err := r.nodes.FindByName(ctx, n)
		if err != nil {
			return nil, false, errors.Wrapf(err, "failed to resolve node %q of group %q", n, name)
		}
		if !found {
			r.logger.Debug("skipping unknown node", zap.String("group", name), zap.String("node", n))
			continue
		}
		nodes = append(nodes, node)
	}

	group, err := facade.NewGroup(name, nodes)
	if err != nil {
		return nil, false, err
	}
	return group, true, nil
}

// IndexAll always returns an empty list; the groups of a GroupResolver
// cannot be enumerated.
func (r *GroupResolver) IndexAll(ctx context.Context) ([]*facade.Group, error) {
	return []*facade.Group{}, nil
}
