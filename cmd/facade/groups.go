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

// GroupsOptions holds the options of the groups commands
type GroupsOptions struct{}

// GroupsList lists every group of the active group resolver
type GroupsList struct{}

// Execute executes a groups list command
func (c *GroupsList) Execute(args []string) error {
	reg, done, err := registryProvider(options)
	if err != nil {
		return errors.Wrap(err, "could not configure resolvers")
	}
	defer done()

	ctx, cancel := queryContext()
	defer cancel()

	groups, err := reg.Groups().IndexAll(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list groups")
	}
	return printYAML(groups)
}

// GroupsShow shows the groups with the given names
type GroupsShow struct {
	Args struct {
		Names []string `required:"1" positional-arg-name:"NAME" description:"group names or hostlist expressions"`
	} `positional-args:"yes"`
}

// Execute executes a groups show command
func (c *GroupsShow) Execute(args []string) error {
	reg, done, err := registryProvider(options)
	if err != nil {
		return errors.Wrap(err, "could not configure resolvers")
	}
	defer done()

	ctx, cancel := queryContext()
	defer cancel()

	groups := make([]*facade.Group, 0, len(c.Args.Names))
	for _, name := range c.Args.Names {
		group, found, err := reg.Groups().FindByName(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "could not find group %q", name)
		}
		if !found {
			return errors.Errorf("group %q not found", name)
		}
		groups = append(groups, group)
	}
	return printYAML(groups)
}
