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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facade "github.com/openflighthpc/flight-facade"
	"github.com/openflighthpc/flight-facade/mocks"
)

const staticTable = `
__meta__:
  source: test
node01:
  params:
    ip: 10.0.0.1
  ranks: [compute]
node02:
  params:
    ip: 10.0.0.2
`

func writeTable(t *testing.T) string {
	dir, err := ioutil.TempDir("", "facade")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "nodes.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(staticTable), 0644))
	return path
}

// run invokes main with args and returns the exit code and output.
func run(args ...string) (int, string, string) {
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	os.Args = append([]string{"facade"}, args...)
	c := StartCapture()
	main()
	stdout, stderr := c.stop()
	return code, stdout, stderr
}

func TestMain_Version(t *testing.T) {
	code, stdout, _ := run("--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Version:\t0.0.0")
}

func TestMain_UnknownBackend(t *testing.T) {
	code, _, stderr := run("--node-backend", "bogus", "nodes", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown backend")
}

func TestNodes_List(t *testing.T) {
	table := writeTable(t)
	code, stdout, stderr := run("--node-backend", "static", "--static", table, "nodes", "list")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "name: node01")
	assert.Contains(t, stdout, "name: node02")
	assert.NotContains(t, stdout, "__meta__")
	assert.True(t, strings.Index(stdout, "node01") < strings.Index(stdout, "node02"), "table order is kept")
}

func TestNodes_Show(t *testing.T) {
	table := writeTable(t)
	code, stdout, stderr := run("--node-backend", "static", "--static", table, "nodes", "show", "node01")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "ip: 10.0.0.1")
	assert.Contains(t, stdout, "- compute")
	assert.Contains(t, stdout, "- default")
	assert.NotContains(t, stdout, "node02")

	code, _, stderr = run("--node-backend", "static", "--static", table, "nodes", "show", "node01", "node99")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `node "node99" not found`)
}

func TestShow_RequiresArguments(t *testing.T) {
	tcs := []struct {
		args []string
		name string
	}{
		{args: []string{"nodes", "show"}, name: "NAME"},
		{args: []string{"groups", "show"}, name: "NAME"},
		{args: []string{"explode"}, name: "EXPR"},
	}
	for _, tc := range tcs {
		code, stdout, stderr := run(tc.args...)
		assert.Equal(t, 1, code, "%v", tc.args)
		assert.Empty(t, stdout, "%v", tc.args)
		assert.Contains(t, stderr, tc.name, "%v", tc.args)
	}
}

func TestGroups_Show(t *testing.T) {
	table := writeTable(t)
	code, stdout, stderr := run("--node-backend", "static", "--static", table, "groups", "show", "node0[1-3]")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "node0[1-3]")
	assert.Contains(t, stdout, "name: node01")
	assert.Contains(t, stdout, "name: node02")
	assert.NotContains(t, stdout, "node03")

	code, _, stderr = run("--node-backend", "static", "--static", table, "groups", "show", "bad[")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `group "bad[" not found`)
}

func TestGroups_ListExploding(t *testing.T) {
	code, stdout, stderr := run("groups", "list")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "[]\n", stdout)
}

func TestExplode(t *testing.T) {
	code, stdout, stderr := run("explode", "node[1-2],login1", "gpu0[9-10]")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "- node1\n- node2\n- login1\n- gpu09\n- gpu10\n", stdout)

	code, _, stderr = run("explode", "node[2-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "node[2-1")
}

// withRegistry makes every command query reg until the test ends.
func withRegistry(t *testing.T, reg *facade.Registry) {
	saved := registryProvider
	registryProvider = func(GlobalOptions) (*facade.Registry, func(), error) {
		return reg, func() {}, nil
	}
	t.Cleanup(func() { registryProvider = saved })
}

func TestNodes_ResolverFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mn := mocks.NewMockNodeResolver(ctrl)
	mn.EXPECT().FindByName(gomock.Any(), "node01").Return(nil, false, errors.New("upstream down"))
	mn.EXPECT().IndexAll(gomock.Any()).Return(nil, errors.New("upstream down"))

	reg := facade.NewRegistry()
	reg.Nodes().SetActive(mn)
	withRegistry(t, reg)

	code, _, stderr := run("nodes", "show", "node01")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `could not find node "node01": upstream down`)

	code, _, stderr = run("nodes", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "could not list nodes: upstream down")
}

func TestGroups_NotConfigured(t *testing.T) {
	withRegistry(t, facade.NewRegistry())

	code, _, stderr := run("groups", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "could not list groups")
}
