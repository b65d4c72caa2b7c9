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

package devnull_test

import (
	"context"
	"testing"

	facade "github.com/openflighthpc/flight-facade"
	"github.com/openflighthpc/flight-facade/resolvers/devnull"
	"github.com/stretchr/testify/assert"
)

var ctx = context.Background()

var (
	_ facade.NodeResolver  = devnull.NewNodeResolver()
	_ facade.GroupResolver = devnull.NewGroupResolver()
)

func TestDevNull_FindNode(t *testing.T) {
	sut := devnull.NodeResolver{}
	n, found, err := sut.FindByName(ctx, "node01")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, n)
}

func TestDevNull_IndexNodes(t *testing.T) {
	sut := devnull.NodeResolver{}
	nodes, err := sut.IndexAll(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestDevNull_FindGroup(t *testing.T) {
	sut := devnull.GroupResolver{}
	g, found, err := sut.FindByName(ctx, "node[01-02]")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, g)
}

func TestDevNull_IndexGroups(t *testing.T) {
	sut := devnull.GroupResolver{}
	groups, err := sut.IndexAll(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
