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

// Package facade resolves the compute nodes and node groups of a cluster.
//
// Overview
//
// Callers never talk to a concrete backend. They query the kind-level
// facades of a Registry, which forward every call to the resolver that is
// currently installed for that kind:
//
//    node, found, err := facade.Nodes().FindByName(ctx, "node01")
//    group, found, err := facade.Groups().FindByName(ctx, "node[01-10]")
//
// Resolvers
//
// The following resolvers are provided:
//
// • devnull resolves nothing and is the safe default for tests
//
// • memory serves nodes from a static table, usually loaded from YAML
//
// • exploding builds groups by expanding hostlist expressions and
// resolving each name through the node facade
//
// • remote queries a cluster-management service over JSON:API
//
// The config package selects and installs resolvers from configuration.
package facade
