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

import (
	"strings"

	"github.com/pkg/errors"
)

// Backend names one of the resolver implementations.
type Backend int

const (
	// BackendNull resolves nothing
	BackendNull Backend = iota + 1

	// BackendStatic serves nodes from an in-memory table
	BackendStatic

	// BackendRemote queries the cluster-management service
	BackendRemote

	// BackendExploding expands group names as hostlists
	BackendExploding
)

var backendNames = map[Backend]string{
	BackendNull:      "null",
	BackendStatic:    "static",
	BackendRemote:    "remote",
	BackendExploding: "exploding",
}

func (b Backend) String() string {
	if s, ok := backendNames[b]; ok {
		return s
	}
	return "unknown"
}

// ParseBackend converts a backend name, case-insensitively.
func ParseBackend(s string) (Backend, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for b, name := range backendNames {
		if name == s {
			return b, nil
		}
	}
	return 0, errors.Errorf("unknown backend %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Backend) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseBackend(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Backend) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalFlag satisfies the go-flags Unmarshaler interface
func (b *Backend) UnmarshalFlag(value string) error {
	parsed, err := ParseBackend(value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
