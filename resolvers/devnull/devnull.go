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

package devnull

import (
	"context"

	facade "github.com/openflighthpc/flight-facade"
)

// NodeResolver is a node resolver that knows no nodes
type NodeResolver struct{}

// FindByName never finds a node
func (r *NodeResolver) FindByName(ctx context.Context, name string) (*facade.Node, bool, error) {
	return nil, false, nil
}

// IndexAll always returns an empty list
func (r *NodeResolver) IndexAll(ctx context.Context) ([]*facade.Node, error) {
	return []*facade.Node{}, nil
}

// GroupResolver is a group resolver that knows no groups
type GroupResolver struct{}

// FindByName never finds a group
func (r *GroupResolver) FindByName(ctx context.Context, name string) (*facade.Group, bool, error) {
	return nil, false, nil
}

// IndexAll always returns an empty list
func (r *GroupResolver) IndexAll(ctx context.Context) ([]*facade.Group, error) {
	return []*facade.Group{}, nil
}

// NewNodeResolver creates a new devnull node resolver
func NewNodeResolver() *NodeResolver {
	return &NodeResolver{}
}

// NewGroupResolver creates a new devnull group resolver
func NewGroupResolver() *GroupResolver {
	return &GroupResolver{}
}
