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

// Package config selects and builds resolvers from configuration.
package config

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	facade "github.com/openflighthpc/flight-facade"
	"github.com/openflighthpc/flight-facade/resolvers/devnull"
	"github.com/openflighthpc/flight-facade/resolvers/exploding"
	"github.com/openflighthpc/flight-facade/resolvers/memory"
	"github.com/openflighthpc/flight-facade/resolvers/remote"
)

// Config describes which resolver serves each kind of entity.
type Config struct {
	Nodes  NodesConfig  `yaml:"nodes"`
	Groups GroupsConfig `yaml:"groups"`
	Remote RemoteConfig `yaml:"remote"`

	Logger *zap.Logger `yaml:"-"`
}

// NodesConfig configures the node resolver.
type NodesConfig struct {
	Backend facade.Backend `yaml:"backend"`
	// StaticPath is the YAML node table of the static backend.
	StaticPath string `yaml:"staticPath"`
}

// GroupsConfig configures the group resolver.
type GroupsConfig struct {
	Backend facade.Backend `yaml:"backend"`
	// IncludeNodes loads group members with remote groups; on when unset.
	IncludeNodes *bool `yaml:"includeNodes"`
}

// RemoteConfig contains the parameters of the cluster-management service.
type RemoteConfig struct {
	URL     string        `yaml:"url"`
	Token   string        `yaml:"token"`
	Cluster string        `yaml:"cluster"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when nothing else is set: no
// nodes, and groups exploded from their names.
func Default() Config {
	return Config{
		Nodes:  NodesConfig{Backend: facade.BackendNull},
		Groups: GroupsConfig{Backend: facade.BackendExploding},
	}
}

// New returns the default configuration modified by opts.
func New(opts ...Option) (Config, error) {
	cfg := Default()
	if err := cfg.apply(opts); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads a YAML configuration over the defaults, then applies opts.
func Parse(data []byte, opts ...Option) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse configuration")
	}
	if err := cfg.apply(opts); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the YAML configuration file at path, then applies opts.
func Load(path string, opts ...Option) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read configuration %q", path)
	}
	return Parse(data, opts...)
}

func (c *Config) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return errors.Wrap(err, "invalid configuration option")
		}
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// NewNodeResolver builds the configured node resolver.
func (c Config) NewNodeResolver() (facade.NodeResolver, error) {
	switch c.Nodes.Backend {
	case 0, facade.BackendNull:
		return devnull.NewNodeResolver(), nil
	case facade.BackendStatic:
		if c.Nodes.StaticPath == "" {
			return nil, errors.New("static node backend requires a staticPath")
		}
		r, err := memory.LoadFile(c.Nodes.StaticPath)
		if err != nil {
			return nil, err
		}
		return r, nil
	case facade.BackendRemote:
		conn, err := c.connection()
		if err != nil {
			return nil, err
		}
		return remote.NewNodeResolver(conn, c.Remote.Cluster), nil
	}
	return nil, errors.Errorf("backend %s cannot resolve nodes", c.Nodes.Backend)
}

// NewGroupResolver builds the configured group resolver. An exploding
// resolver looks its members up through nodes.
func (c Config) NewGroupResolver(nodes facade.NodeResolver) (facade.GroupResolver, error) {
	switch c.Groups.Backend {
	case 0, facade.BackendNull:
		return devnull.NewGroupResolver(), nil
	case facade.BackendExploding:
		if nodes == nil {
			return nil, errors.New("exploding group backend requires a node resolver")
		}
		return exploding.NewGroupResolver(nodes, exploding.WithLogger(c.logger())), nil
	case facade.BackendRemote:
		conn, err := c.connection()
		if err != nil {
			return nil, err
		}
		include := c.Groups.IncludeNodes == nil || *c.Groups.IncludeNodes
		return remote.NewGroupResolver(conn, c.Remote.Cluster, remote.WithIncludeNodes(include)), nil
	}
	return nil, errors.Errorf("backend %s cannot resolve groups", c.Groups.Backend)
}

// Install builds both resolvers and makes them active in reg. Exploding
// groups resolve their members through the node facade of reg. Nothing is
// installed when either resolver cannot be built.
func (c Config) Install(reg *facade.Registry) error {
	nodes, err := c.NewNodeResolver()
	if err != nil {
		return errors.Wrap(err, "failed to build node resolver")
	}
	groups, err := c.NewGroupResolver(reg.Nodes())
	if err != nil {
		return errors.Wrap(err, "failed to build group resolver")
	}
	reg.Nodes().SetActive(nodes)
	reg.Groups().SetActive(groups)
	c.logger().Info("installed resolvers",
		zap.Stringer("nodes", c.Nodes.Backend),
		zap.Stringer("groups", c.Groups.Backend))
	return nil
}

func (c Config) connection() (*remote.Connection, error) {
	if c.Remote.URL == "" {
		return nil, errors.New("remote backend requires a url")
	}
	if c.Remote.Cluster == "" {
		return nil, errors.New("remote backend requires a cluster")
	}
	return remote.NewConnection(c.Remote.URL, c.Remote.Token,
		remote.WithTimeout(c.Remote.Timeout),
		remote.WithLogger(c.logger()))
}
