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

package main

import (
	"github.com/pkg/errors"

	facade "github.com/openflighthpc/flight-facade"
)

// NodesOptions holds the options of the nodes commands
type NodesOptions struct{}

// NodesList lists every node of the active node resolver
type NodesList struct{}

// Execute executes a nodes list command
func (c *NodesList) Execute(args []string) error {
	reg, done, err := registryProvider(options)
	if err != nil {
		return errors.Wrap(err, "could not configure resolvers")
	}
	defer done()

	ctx, cancel := queryContext()
	defer cancel()

	nodes, err := reg.Nodes().IndexAll(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list nodes")
	}
	return printYAML(nodes)
}

// NodesShow shows the nodes with the given names
type NodesShow struct {
	Args struct {
		Names []string `required:"1" positional-arg-name:"NAME" description:"node names"`
	} `positional-args:"yes"`
}

// Execute executes a nodes show command
func (c *NodesShow) Execute(args []string) error {
	reg, done, err := registryProvider(options)
	if err != nil {
		return errors.Wrap(err, "could not configure resolvers")
	}
	defer done()

	ctx, cancel := queryContext()
	defer cancel()

	nodes := make([]*facade.Node, 0, len(c.Args.Names))
	for _, name := range c.Args.Names {
		node, found, err := reg.Nodes().FindByName(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "could not find node %q", name)
		}
		if !found {
			return errors.Errorf("node %q not found", name)
		}
		nodes = append(nodes, node)
	}
	return printYAML(nodes)
}
