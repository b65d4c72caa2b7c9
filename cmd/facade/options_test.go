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
	"testing"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facade "github.com/openflighthpc/flight-facade"
	"github.com/openflighthpc/flight-facade/config"
)

func TestTimeFlag_Duration(t *testing.T) {
	sut := timeFlag(0)
	sut.setDuration(time.Minute)
	assert.Equal(t, time.Minute, sut.Duration())

	err := sut.UnmarshalFlag("100")
	assert.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, sut.Duration())

	err = sut.UnmarshalFlag("2s")
	assert.NoError(t, err)
	assert.Equal(t, 2*time.Second, sut.Duration())

	err = sut.UnmarshalFlag("do_this_dont_do_that_cant_you_read_the_time")
	assert.Error(t, err)
}

func TestOverrides(t *testing.T) {
	opts := GlobalOptions{
		NodeBackend: facade.BackendRemote,
		URL:         "https://cluster.example.com",
		Token:       "secret",
		Cluster:     "test",
		Timeout:     timeFlag(5 * time.Second),
	}
	cfg, err := config.New(overrides(opts))
	require.NoError(t, err)

	assert.Equal(t, facade.BackendRemote, cfg.Nodes.Backend)
	assert.Equal(t, facade.BackendExploding, cfg.Groups.Backend, "unset flags keep the configured value")
	assert.Equal(t, "https://cluster.example.com", cfg.Remote.URL)
	assert.Equal(t, "secret", cfg.Remote.Token)
	assert.Equal(t, "test", cfg.Remote.Cluster)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
}

func TestNewRegistry_Invalid(t *testing.T) {
	_, _, err := newRegistry(GlobalOptions{NodeBackend: facade.BackendExploding})
	assert.Error(t, err)

	_, _, err = newRegistry(GlobalOptions{Config: "/does/not/exist.yaml"})
	assert.Error(t, err)
}

func TestOverrides_KeepsConfiguredTimeout(t *testing.T) {
	dir, err := ioutil.TempDir("", "facade")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "facade.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("remote:\n  timeout: 5s\n"), 0644))

	var opts GlobalOptions
	_, err = flags.ParseArgs(&opts, []string{"-c", path})
	require.NoError(t, err)

	cfg, err := config.Load(path, overrides(opts))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout, "an unset flag keeps the file timeout")

	_, err = flags.ParseArgs(&opts, []string{"-c", path, "--timeout", "2s"})
	require.NoError(t, err)
	cfg, err = config.Load(path, overrides(opts))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
}

func TestQueryContext_DefaultTimeout(t *testing.T) {
	options = GlobalOptions{}
	ctx, cancel := queryContext()
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(defaultTimeout), deadline, 5*time.Second)
}
