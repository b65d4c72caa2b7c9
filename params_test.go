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

package facade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"

	facade "github.com/openflighthpc/flight-facade"
)

func TestParamFilter(t *testing.T) {
	in := map[string]interface{}{
		"_private": 1,
		"__meta__": 2,
		"public":   3,
	}

	assert.Equal(t, map[string]interface{}{"public": 3}, facade.UnderscoreParams.Apply(in))
	assert.Equal(t, map[string]interface{}{"_private": 1, "public": 3}, facade.MetaKeys.Apply(in))
	assert.Len(t, in, 3)

	out := facade.UnderscoreParams.Apply(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	assert.True(t, facade.MetaKeys.Denies("__meta__"))
	assert.False(t, facade.MetaKeys.Denies("__meta"))
	assert.False(t, facade.DenyKeys().Denies(""))
	assert.True(t, facade.DenyPrefixes("x", "y").Denies("yes"))
}

func TestBackend(t *testing.T) {
	for _, b := range []facade.Backend{facade.BackendNull, facade.BackendStatic, facade.BackendRemote, facade.BackendExploding} {
		parsed, err := facade.ParseBackend(b.String())
		assert.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
	assert.Equal(t, "unknown", facade.Backend(0).String())

	_, err := facade.ParseBackend("redis")
	assert.Error(t, err)

	var b facade.Backend
	assert.NoError(t, b.UnmarshalFlag(" Static "))
	assert.Equal(t, facade.BackendStatic, b)
	assert.Error(t, b.UnmarshalFlag("nope"))

	var doc struct {
		Backend facade.Backend `yaml:"backend"`
	}
	assert.NoError(t, yaml.Unmarshal([]byte("backend: exploding"), &doc))
	assert.Equal(t, facade.BackendExploding, doc.Backend)
	assert.Error(t, yaml.Unmarshal([]byte("backend: [a]"), &doc))
	assert.Error(t, yaml.Unmarshal([]byte("backend: nope"), &doc))

	out, err := yaml.Marshal(doc)
	assert.NoError(t, err)
	assert.Equal(t, "backend: exploding\n", string(out))
}
