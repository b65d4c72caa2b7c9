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
	"github.com/openflighthpc/flight-facade/hostlist"
)

// Explode expands hostlist expressions without consulting any resolver
type Explode struct {
	Args struct {
		Exprs []string `required:"1" positional-arg-name:"EXPR" description:"hostlist expressions, e.g. node[01-10]"`
	} `positional-args:"yes"`
}

// Execute executes an explode command
func (c *Explode) Execute(args []string) error {
	names := []string{}
	for _, expr := range c.Args.Exprs {
		exploded, err := hostlist.Explode(expr)
		if err != nil {
			return err
		}
		names = append(names, exploded...)
	}
	return printYAML(names)
}
