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
	"context"
	"io"
	"net/url"

	"github.com/google/jsonapi"

	facade "github.com/openflighthpc/flight-facade"
)

// GroupOption describes a func that can modify a GroupResolver
type GroupOption func(*GroupResolver)

// WithIncludeNodes sets whether group members are loaded along with the
// groups. It is on by default.
func WithIncludeNodes(include bool) GroupOption {
	return func(r *GroupResolver) {
		r.includeNodes = include
	}
}

// GroupResolver resolves the groups of one cluster through the
// cluster-management service.
type GroupResolver struct {
	conn         *Connection
	cluster      string
	includeNodes bool
}

// NewGroupResolver creates a GroupResolver for the groups of cluster.
func NewGroupResolver(conn *Connection, cluster string, opts ...GroupOption) *GroupResolver {
	r := &GroupResolver{conn: conn, cluster: cluster, includeNodes: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *GroupResolver) query() url.Values {
	if !r.includeNodes {
		return nil
	}
	return url.Values{"include": []string{"nodes"}}
}

// FindByName fetches the group resource; a missing resource is not found.
func (r *GroupResolver) FindByName(ctx context.Context, name string) (*facade.Group, bool, error) {
	if name == "" {
		return nil, false, nil
	}
	record := new(GroupRecord)
	found, err := r.conn.fetch(ctx, groupPath(r.cluster, name), r.query(), func(in io.Reader) error {
		return jsonapi.UnmarshalPayload(in, record)
	})
	if err != nil || !found {
		return nil, false, err
	}
	group, err := record.ToModel(r.includeNodes)
	if err != nil {
		return nil, false, err
	}
	return group, true, nil
}

// IndexAll lists the groups of the cluster
func (r *GroupResolver) IndexAll(ctx context.Context) ([]*facade.Group, error) {
	var records []*GroupRecord
	found, err := r.conn.fetch(ctx, clusterPath(r.cluster, "groups"), r.query(), func(in io.Reader) (err error) {
		records, err = decodeGroups(in)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &ErrUnknownCluster{Cluster: r.cluster}
	}

	groups := make([]*facade.Group, 0, len(records))
	for _, record := range records {
		g, err := record.ToModel(r.includeNodes)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
