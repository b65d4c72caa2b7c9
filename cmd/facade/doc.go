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

/*
Package main is the entrypoint for the facade CLI. Some examples below:

Options for all commands:

Read the backends from a configuration file:

	$ facade -c /etc/flight/facade.yaml <cmd>

Serve nodes from a static table and explode group names:

	$ facade --node-backend static --static nodes.yaml <cmd>

Query the cluster-management service, with a 10 second timeout:

	$ facade --node-backend remote --group-backend remote \
		--url https://cluster.example.com --token $TOKEN --cluster test --timeout 10s <cmd>

Nodes:

	$ facade nodes list
	$ facade nodes show node01 node02

Groups:

	$ facade groups list
	$ facade groups show "node[01-10]"

Hostlists:

	$ facade explode "node00[001-110],login1"
*/
package main
