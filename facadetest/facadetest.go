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

// Package facadetest substitutes the resolvers of a registry for the
// duration of a test.
//
//    func TestSomething(t *testing.T) {
//        facadetest.WithNullResolvers(t, facade.DefaultRegistry)
//        facade.Nodes().SetActive(myDouble)
//        ...
//    }
//
// Whatever was installed before, including nothing at all, is back in place
// once the test and its subtests have finished.
package facadetest

import (
	"testing"

	facade "github.com/openflighthpc/flight-facade"
	"github.com/openflighthpc/flight-facade/resolvers/devnull"
)

// Swap installs nodes and groups in reg until t finishes. A nil resolver
// leaves its kind unconfigured.
func Swap(t testing.TB, reg *facade.Registry, nodes facade.NodeResolver, groups facade.GroupResolver) {
	t.Helper()
	t.Cleanup(install(reg, nodes, groups))
}

// WithNullResolvers installs devnull resolvers for every kind in reg until t
// finishes.
func WithNullResolvers(t testing.TB, reg *facade.Registry) {
	t.Helper()
	Swap(t, reg, devnull.NewNodeResolver(), devnull.NewGroupResolver())
}

// Do runs fn with devnull resolvers installed in reg. The previous
// resolvers are restored when fn returns or panics.
func Do(reg *facade.Registry, fn func()) {
	restore := install(reg, devnull.NewNodeResolver(), devnull.NewGroupResolver())
	defer restore()
	fn()
}

func install(reg *facade.Registry, nodes facade.NodeResolver, groups facade.GroupResolver) (restore func()) {
	restoreNodes := reg.Nodes().Swap(nodes)
	restoreGroups := reg.Groups().Swap(groups)
	return func() {
		restoreGroups()
		restoreNodes()
	}
}
