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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// Group is an ordered collection of nodes known under a single name.
type Group struct {
	name  string
	nodes []*Node
}

// NewGroup validates a group. The name is required; nodes may be empty and
// may hold the same node more than once.
func NewGroup(name string, nodes []*Node) (*Group, error) {
	if name == "" {
		return nil, &ErrValidation{Model: "group", Attribute: "name", Reason: "is required"}
	}
	g := &Group{name: name, nodes: make([]*Node, 0, len(nodes))}
	for i, n := range nodes {
		if n == nil {
			return nil, &ErrValidation{Model: "group", Attribute: fmt.Sprintf("nodes[%d]", i), Reason: "is nil"}
		}
		g.nodes = append(g.nodes, n)
	}
	return g, nil
}

// GroupFromAttributes builds a group from a loosely typed attribute map.
// "name" is required, "nodes" is optional and other attributes are ignored.
func GroupFromAttributes(attrs map[string]interface{}) (*Group, error) {
	name, _ := attrs["name"].(string)
	var nodes []*Node
	if raw, ok := attrs["nodes"]; ok && raw != nil {
		if nodes, ok = raw.([]*Node); !ok {
			return nil, &ErrValidation{Model: "group", Attribute: "nodes", Reason: fmt.Sprintf("must be a list of nodes, found %T", raw)}
		}
	}
	return NewGroup(name, nodes)
}

// Name returns the name the group was requested by.
func (g *Group) Name() string { return g.name }

// Nodes returns a copy of the group members in resolution order.
func (g *Group) Nodes() []*Node {
	return append([]*Node{}, g.nodes...)
}

// NodeNames returns the names of the group members in resolution order.
func (g *Group) NodeNames() []string {
	names := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		names[i] = n.Name()
	}
	return names
}

func (g *Group) String() string {
	return fmt.Sprintf("{Group %s %v}", g.name, g.NodeNames())
}

// MarshalYAML implements yaml.Marshaler.
func (g *Group) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice{
		{Key: "name", Value: g.name},
		{Key: "nodes", Value: g.nodes},
	}, nil
}

// MarshalJSON implements json.Marshaler with the same layout as MarshalYAML.
func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string  `json:"name"`
		Nodes []*Node `json:"nodes"`
	}{g.name, g.nodes})
}
