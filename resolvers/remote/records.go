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

package remote

import (
	"io"
	"reflect"

	"github.com/google/jsonapi"
	"github.com/pkg/errors"

	facade "github.com/openflighthpc/flight-facade"
)

// NodeRecord is a "nodes" resource of the cluster-management service.
type NodeRecord struct {
	ID          string                 `jsonapi:"primary,nodes"`
	Name        string                 `jsonapi:"attr,name"`
	Params      map[string]interface{} `jsonapi:"attr,params"`
	LevelParams map[string]interface{} `jsonapi:"attr,level_params"`
	Groups      []*GroupRecord         `jsonapi:"relation,groups"`
	Cluster     *ClusterRecord         `jsonapi:"relation,cluster"`
}

// GroupRecord is a "groups" resource of the cluster-management service.
type GroupRecord struct {
	ID          string                 `jsonapi:"primary,groups"`
	Name        string                 `jsonapi:"attr,name"`
	Params      map[string]interface{} `jsonapi:"attr,params"`
	LevelParams map[string]interface{} `jsonapi:"attr,level_params"`
	Nodes       []*NodeRecord          `jsonapi:"relation,nodes"`
	Cluster     *ClusterRecord         `jsonapi:"relation,cluster"`
}

// ClusterRecord is a "clusters" resource of the cluster-management service.
type ClusterRecord struct {
	ID          string                 `jsonapi:"primary,clusters"`
	Name        string                 `jsonapi:"attr,name"`
	Params      map[string]interface{} `jsonapi:"attr,params"`
	LevelParams map[string]interface{} `jsonapi:"attr,level_params"`
	Groups      []*GroupRecord         `jsonapi:"relation,groups"`
	Nodes       []*NodeRecord          `jsonapi:"relation,nodes"`
}

// ToModel maps the record to a Node. Private parameters, those starting
// with an underscore, are dropped; level params are not part of the model.
func (r *NodeRecord) ToModel() (*facade.Node, error) {
	node, err := facade.NewNode(r.Name, facade.UnderscoreParams.Apply(r.Params), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to map node record %q", r.ID)
	}
	return node, nil
}

// ToModel maps the record to a Group. Member records are mapped only when
// includeNodes is set; they must have been included in the response.
func (r *GroupRecord) ToModel(includeNodes bool) (*facade.Group, error) {
	var nodes []*facade.Node
	if includeNodes {
		nodes = make([]*facade.Node, 0, len(r.Nodes))
		for _, nr := range r.Nodes {
			n, err := nr.ToModel()
			if err != nil {
				return nil, errors.Wrapf(err, "failed to map group record %q", r.ID)
			}
			nodes = append(nodes, n)
		}
	}
	group, err := facade.NewGroup(r.Name, nodes)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to map group record %q", r.ID)
	}
	return group, nil
}

func decodeNodes(in io.Reader) ([]*NodeRecord, error) {
	items, err := jsonapi.UnmarshalManyPayload(in, reflect.TypeOf(new(NodeRecord)))
	if err != nil {
		return nil, err
	}
	records := make([]*NodeRecord, 0, len(items))
	for _, item := range items {
		r, ok := item.(*NodeRecord)
		if !ok {
			return nil, errors.Errorf("unexpected record %T", item)
		}
		records = append(records, r)
	}
	return records, nil
}

func decodeGroups(in io.Reader) ([]*GroupRecord, error) {
	items, err := jsonapi.UnmarshalManyPayload(in, reflect.TypeOf(new(GroupRecord)))
	if err != nil {
		return nil, err
	}
	records := make([]*GroupRecord, 0, len(items))
	for _, item := range items {
		r, ok := item.(*GroupRecord)
		if !ok {
			return nil, errors.Errorf("unexpected record %T", item)
		}
		records = append(records, r)
	}
	return records, nil
}
