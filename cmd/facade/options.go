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
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	facade "github.com/openflighthpc/flight-facade"
	"github.com/openflighthpc/flight-facade/config"
)

type timeFlag time.Duration

func (t *timeFlag) setDuration(d time.Duration) {
	*t = timeFlag(d)
}

// Duration returns the flag value as a time.Duration
func (t timeFlag) Duration() time.Duration {
	return time.Duration(t)
}

// UnmarshalFlag satisfies the flag interface
func (t *timeFlag) UnmarshalFlag(value string) error {
	valueInt, err := strconv.Atoi(value)
	if err == nil {
		// We received a number without a unit, assume milliseconds.
		t.setDuration(time.Duration(valueInt) * time.Millisecond)
		return nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}

	t.setDuration(d)
	return nil
}

// defaultTimeout bounds a command when --timeout is not given.
const defaultTimeout = 30 * time.Second

// registryProvider builds the registry commands query, along with a func to
// call once the command is done with it. Tests replace it.
var registryProvider = newRegistry

func newLogger(opts GlobalOptions) (*zap.Logger, error) {
	if opts.Verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// overrides applies the command line flags over the configuration file.
func overrides(opts GlobalOptions) config.Option {
	return func(cfg *config.Config) error {
		if opts.NodeBackend != 0 {
			cfg.Nodes.Backend = opts.NodeBackend
		}
		if opts.GroupBackend != 0 {
			cfg.Groups.Backend = opts.GroupBackend
		}
		if opts.Static != "" {
			cfg.Nodes.StaticPath = opts.Static
		}
		if opts.URL != "" {
			cfg.Remote.URL = opts.URL
		}
		if opts.Token != "" {
			cfg.Remote.Token = opts.Token
		}
		if opts.Cluster != "" {
			cfg.Remote.Cluster = opts.Cluster
		}
		if opts.Timeout > 0 {
			cfg.Remote.Timeout = opts.Timeout.Duration()
		}
		return nil
	}
}

func newRegistry(opts GlobalOptions) (*facade.Registry, func(), error) {
	logger, err := newLogger(opts)
	if err != nil {
		return nil, nil, err
	}
	done := func() { _ = logger.Sync() }

	cfgOpts := []config.Option{overrides(opts), config.WithLogger(logger)}
	var cfg config.Config
	if opts.Config != "" {
		cfg, err = config.Load(opts.Config, cfgOpts...)
	} else {
		cfg, err = config.New(cfgOpts...)
	}
	if err != nil {
		done()
		return nil, nil, err
	}

	reg := facade.NewRegistry()
	if err := cfg.Install(reg); err != nil {
		done()
		return nil, nil, err
	}
	return reg, done, nil
}

func queryContext() (context.Context, context.CancelFunc) {
	timeout := defaultTimeout
	if options.Timeout > 0 {
		timeout = options.Timeout.Duration()
	}
	return context.WithTimeout(context.Background(), timeout)
}

func printYAML(v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
