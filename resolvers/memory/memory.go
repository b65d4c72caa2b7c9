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

package memory

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	facade "github.com/openflighthpc/flight-facade"
)

const paramsKey = "params"

// Entry is a named record of a static node table.
type Entry struct {
	Name   string
	Record map[string]interface{}
}

// Table is an ordered static node table. A record holds the node ranks
// under "ranks"; every other field is a node parameter, and the fields of a
// nested "params" mapping are merged into them.
type Table []Entry

// NodeResolver is a node resolver backed by a static table held in memory.
// The table is never modified after construction, so concurrent reads are
// safe.
type NodeResolver struct {
	names   []string
	records map[string]map[string]interface{}
}

// New creates a NodeResolver serving the nodes of table in table order. The
// reserved metadata entry is dropped; when a name repeats, the last record
// wins and the first position is kept.
func New(table Table) *NodeResolver {
	r := &NodeResolver{records: make(map[string]map[string]interface{}, len(table))}
	for _, e := range table {
		if facade.MetaKeys.Denies(e.Name) {
			continue
		}
		if _, ok := r.records[e.Name]; !ok {
			r.names = append(r.names, e.Name)
		}
		r.records[e.Name] = e.Record
	}
	return r
}

// NewFromMap creates a NodeResolver from an unordered table; nodes are
// indexed in name order.
func NewFromMap(m map[string]map[string]interface{}) *NodeResolver {
	table := make(Table, 0, len(m))
	for name, record := range m {
		table = append(table, Entry{Name: name, Record: record})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Name < table[j].Name })
	return New(table)
}

// Load reads a YAML node table, keeping the order of the document.
func Load(in io.Reader) (*NodeResolver, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read node table")
	}
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse node table")
	}
	table := make(Table, 0, len(doc))
	for _, item := range doc {
		name := fmt.Sprint(item.Key)
		var record map[string]interface{}
		switch v := normalize(item.Value).(type) {
		case nil:
		case map[string]interface{}:
			record = v
		default:
			if facade.MetaKeys.Denies(name) {
				continue
			}
			return nil, errors.Errorf("record of node %q must be a mapping, found %T", name, item.Value)
		}
		table = append(table, Entry{Name: name, Record: record})
	}
	return New(table), nil
}

// LoadFile reads a YAML node table from path.
func LoadFile(path string) (*NodeResolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open node table %q", path)
	}
	defer f.Close()
	return Load(f)
}

// normalize converts the generic values produced by yaml.v2 into
// string-keyed maps.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]interface{}, len(t))
		for _, item := range t {
			m[fmt.Sprint(item.Key)] = normalize(item.Value)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}

// FindByName returns the node with the given name
func (r *NodeResolver) FindByName(ctx context.Context, name string) (*facade.Node, bool, error) {
	record, ok := r.records[name]
	if !ok {
		return nil, false, nil
	}

	params := make(map[string]interface{}, len(record))
	var ranks interface{}
	for k, v := range record {
		switch k {
		case "ranks":
			ranks = v
		case paramsKey:
			if _, nested := v.(map[string]interface{}); !nested {
				params[k] = v
			}
		default:
			params[k] = v
		}
	}
	if nested, ok := record[paramsKey].(map[string]interface{}); ok {
		for k, v := range nested {
			params[k] = v
		}
	}
	// ranks may also sit under params; they never stay there
	if inner, ok := params["ranks"]; ok {
		if ranks == nil {
			ranks = inner
		}
		delete(params, "ranks")
	}

	node, err := facade.NodeFromAttributes(map[string]interface{}{
		"name":   name,
		"params": params,
		"ranks":  ranks,
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to build node %q", name)
	}
	return node, true, nil
}

// IndexAll returns every node of the table in table order
func (r *NodeResolver) IndexAll(ctx context.Context) ([]*facade.Node, error) {
	nodes := make([]*facade.Node, 0, len(r.names))
	for _, name := range r.names {
		node, _, err := r.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Names returns the node names in table order.
func (r *NodeResolver) Names() []string {
	return append([]string(nil), r.names...)
}
