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

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultRank is part of the ranks of every node.
const DefaultRank = "default"

// Node is a single compute node. It is immutable; accessors return copies.
type Node struct {
	name   string
	params map[string]interface{}
	ranks  []string
}

// NewNode validates and normalizes a node.
//
// Name and params are required. Params are opaque and kept as given. The
// ranks are deduplicated in first-seen order and always end up containing
// DefaultRank exactly once.
func NewNode(name string, params map[string]interface{}, ranks []string) (*Node, error) {
	if name == "" {
		return nil, &ErrValidation{Model: "node", Attribute: "name", Reason: "is required"}
	}
	if params == nil {
		return nil, &ErrValidation{Model: "node", Attribute: "params", Reason: "is required"}
	}

	n := &Node{name: name, params: make(map[string]interface{}, len(params))}
	for k, v := range params {
		n.params[k] = v
	}
	n.ranks = normalizeRanks(ranks)
	return n, nil
}

// NodeFromAttributes builds a node from a loosely typed attribute map. The
// "name" and "params" attributes are required, "ranks" is optional and any
// other attribute is ignored.
func NodeFromAttributes(attrs map[string]interface{}) (*Node, error) {
	name, _ := attrs["name"].(string)
	params, ok := attrs["params"].(map[string]interface{})
	if !ok && attrs["params"] != nil {
		return nil, &ErrValidation{Model: "node", Attribute: "params", Reason: "must be a mapping"}
	}
	var ranks []string
	if raw, ok := attrs["ranks"]; ok && raw != nil {
		var err error
		if ranks, err = toStrings(raw); err != nil {
			return nil, &ErrValidation{Model: "node", Attribute: "ranks", Reason: err.Error()}
		}
	}
	return NewNode(name, params, ranks)
}

func normalizeRanks(ranks []string) []string {
	seen := make(map[string]struct{}, len(ranks)+1)
	out := make([]string, 0, len(ranks)+1)
	for _, r := range append(ranks[:len(ranks):len(ranks)], DefaultRank) {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func toStrings(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, errors.Errorf("must be a list of strings, found %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.Errorf("must be a list of strings, found %T", raw)
	}
}

// Name returns the name of the node.
func (n *Node) Name() string { return n.name }

// Params returns a copy of the node parameters.
func (n *Node) Params() map[string]interface{} {
	out := make(map[string]interface{}, len(n.params))
	for k, v := range n.params {
		out[k] = v
	}
	return out
}

// Ranks returns a copy of the node ranks.
func (n *Node) Ranks() []string {
	return append([]string(nil), n.ranks...)
}

func (n *Node) String() string {
	return fmt.Sprintf("{Node %s %v}", n.name, n.ranks)
}

// MarshalYAML implements yaml.Marshaler.
func (n *Node) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice{
		{Key: "name", Value: n.name},
		{Key: "params", Value: n.params},
		{Key: "ranks", Value: n.ranks},
	}, nil
}

// MarshalJSON implements json.Marshaler with the same layout as MarshalYAML.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string                 `json:"name"`
		Params map[string]interface{} `json:"params"`
		Ranks  []string               `json:"ranks"`
	}{n.name, n.params, n.ranks})
}
