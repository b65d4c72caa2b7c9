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

import "context"

// Resolver is the query surface every backend implements for one kind of
// entity. A lookup that matches nothing is not an error: FindByName returns
// found == false and a nil error.
type Resolver[T any] interface {
	// FindByName returns the entity known under name.
	FindByName(ctx context.Context, name string) (entity T, found bool, err error)
	// IndexAll returns every entity the backend can enumerate. It may omit
	// entities FindByName is able to resolve.
	IndexAll(ctx context.Context) ([]T, error)
}

// NodeResolver resolves nodes.
type NodeResolver = Resolver[*Node]

// GroupResolver resolves groups.
type GroupResolver = Resolver[*Group]
