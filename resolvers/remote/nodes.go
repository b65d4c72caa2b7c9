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
	"fmt"
	"io"
	"net/url"

	"github.com/google/jsonapi"

	facade "github.com/openflighthpc/flight-facade"
)

// NodeResolver resolves the nodes of one cluster through the
// cluster-management service.
type NodeResolver struct {
	conn    *Connection
	cluster string
}

// NewNodeResolver creates a NodeResolver for the nodes of cluster.
func NewNodeResolver(conn *Connection, cluster string) *NodeResolver {
	return &NodeResolver{conn: conn, cluster: cluster}
}

// FindByName fetches the node resource directly; a missing resource is not
// found.
func (r *NodeResolver) FindByName(ctx context.Context, name string) (*facade.Node, bool, error) {
	if name == "" {
		return nil, false, nil
	}
	record := new(NodeRecord)
	found, err := r.conn.fetch(ctx, nodePath(r.cluster, name), nil, func(in io.Reader) error {
		return jsonapi.UnmarshalPayload(in, record)
	})
	if err != nil || !found {
		return nil, false, err
	}
	node, err := record.ToModel()
	if err != nil {
		return nil, false, err
	}
	return node, true, nil
}

// IndexAll lists the nodes of the cluster
func (r *NodeResolver) IndexAll(ctx context.Context) ([]*facade.Node, error) {
	var records []*NodeRecord
	found, err := r.conn.fetch(ctx, clusterPath(r.cluster, "nodes"), nil, func(in io.Reader) (err error) {
		records, err = decodeNodes(in)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &ErrUnknownCluster{Cluster: r.cluster}
	}

	nodes := make([]*facade.Node, 0, len(records))
	for _, record := range records {
		n, err := record.ToModel()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// ErrUnknownCluster is returned when the service does not know the cluster
// a resolver is scoped to.
type ErrUnknownCluster struct {
	Cluster string
}

func (e *ErrUnknownCluster) Error() string {
	return fmt.Sprintf("unknown cluster %q", e.Cluster)
}

// Resources are addressed by name with a leading dot; members of a cluster
// are addressed as ".<cluster>.<name>".
func clusterPath(cluster, collection string) string {
	return fmt.Sprintf("/clusters/.%s/%s", url.PathEscape(cluster), collection)
}

func nodePath(cluster, name string) string {
	return fmt.Sprintf("/nodes/.%s.%s", url.PathEscape(cluster), url.PathEscape(name))
}

func groupPath(cluster, name string) string {
	return fmt.Sprintf("/groups/.%s.%s", url.PathEscape(cluster), url.PathEscape(name))
}
