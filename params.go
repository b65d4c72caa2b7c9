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

package facade

import "strings"

// ParamFilter removes reserved keys from a record before it becomes part of
// a model. Keys matching any of its rules are dropped.
type ParamFilter struct {
	keys     map[string]struct{}
	prefixes []string
}

// DenyKeys returns a filter dropping the exact keys given.
func DenyKeys(keys ...string) ParamFilter {
	f := ParamFilter{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		f.keys[k] = struct{}{}
	}
	return f
}

// DenyPrefixes returns a filter dropping every key that starts with one of
// the prefixes.
func DenyPrefixes(prefixes ...string) ParamFilter {
	return ParamFilter{prefixes: prefixes}
}

var (
	// MetaKeys drops the metadata entry of a static node table.
	MetaKeys = DenyKeys("__meta__")

	// UnderscoreParams drops private parameters of remote records.
	UnderscoreParams = DenyPrefixes("_")
)

// Denies reports whether key is dropped by the filter.
func (f ParamFilter) Denies(key string) bool {
	if _, ok := f.keys[key]; ok {
		return true
	}
	for _, p := range f.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// Apply returns a copy of m without the denied keys. The result is never nil.
func (f ParamFilter) Apply(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if !f.Denies(k) {
			out[k] = v
		}
	}
	return out
}
