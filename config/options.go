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

package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	facade "github.com/openflighthpc/flight-facade"
)

// Option describes a func that can modify a Config
type Option func(cfg *Config) error

// WithNodeBackend selects the node resolver.
func WithNodeBackend(b facade.Backend) Option {
	return func(cfg *Config) error {
		cfg.Nodes.Backend = b
		return nil
	}
}

// WithGroupBackend selects the group resolver.
func WithGroupBackend(b facade.Backend) Option {
	return func(cfg *Config) error {
		cfg.Groups.Backend = b
		return nil
	}
}

// WithStaticPath sets the node table of the static backend.
func WithStaticPath(path string) Option {
	return func(cfg *Config) error {
		if path == "" {
			return errors.New("empty static path")
		}
		cfg.Nodes.StaticPath = path
		return nil
	}
}

// WithIncludeNodes sets whether remote groups load their members.
func WithIncludeNodes(include bool) Option {
	return func(cfg *Config) error {
		cfg.Groups.IncludeNodes = &include
		return nil
	}
}

// WithRemote sets the cluster-management service parameters.
func WithRemote(rcfg RemoteConfig) Option {
	return func(cfg *Config) error {
		cfg.Remote = rcfg
		return nil
	}
}

// WithLogger sets the logger handed to the resolvers.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = logger
		return nil
	}
}
