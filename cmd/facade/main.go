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

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	facade "github.com/openflighthpc/flight-facade"
)

// for testing, we make exit an overridable routine
type exiter func(int)

var exit exiter = os.Exit

// these are overridden at build-time w/ the -ldflags -X option
var (
	version   = "0.0.0"
	githash   = "master"
	timestamp = "now"
)

// BuildInfo reports information about the binary build environment
type BuildInfo struct {
	Version   string
	Githash   string
	Timestamp string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Version:\t%s\nGit Commit:\t%s\nUTC Build Time:\t%s", version, githash, timestamp)
}

// Execute prints the build info
func (b BuildInfo) Execute(args []string) error {
	fmt.Printf("%s\n", b)
	return nil
}

// GlobalOptions are options for all subcommands
type GlobalOptions struct {
	Config       string         `short:"c" long:"config" description:"Path to a YAML configuration file."`
	NodeBackend  facade.Backend `long:"node-backend" description:"Backend resolving nodes. Options: null, static, remote."`
	GroupBackend facade.Backend `long:"group-backend" description:"Backend resolving groups. Options: null, exploding, remote."`
	Static       string         `long:"static" description:"Path to the YAML node table of the static backend."`
	URL          string         `long:"url" description:"Base URL of the cluster-management service."`
	Token        string         `long:"token" env:"FLIGHT_FACADE_TOKEN" description:"Bearer token for the cluster-management service."`
	Cluster      string         `long:"cluster" description:"Cluster to query on the cluster-management service."`
	Timeout      timeFlag       `long:"timeout" description:"The timeout for queries (default 30s). E.g., 100ms, 0.5s, 1s. If no unit is specified, milliseconds are assumed."`
	Verbose      bool           `short:"v" long:"verbose" description:"Log requests and resolver decisions to stderr."`
	Version      bool           `long:"version" description:"Display version info"`
}

var (
	options   GlobalOptions
	buildInfo BuildInfo
)

func main() {
	options = GlobalOptions{}
	parser := flags.NewParser(&options, flags.PassAfterNonOption|flags.HelpFlag)
	parser.ShortDescription = "Flight facade - query the nodes and groups of a cluster"
	parser.LongDescription = `
facade resolves nodes and groups through the configured backends`

	_, _ = parser.AddCommand("version", "display build info", "display build info", &BuildInfo{})

	c, _ := parser.AddCommand("nodes", "commands to query nodes", "list or show nodes", &NodesOptions{})
	_, _ = c.AddCommand("list", "List nodes", "lists every node the backend can enumerate", &NodesList{})
	_, _ = c.AddCommand("show", "Show nodes", "shows the nodes with the given names", &NodesShow{})

	c, _ = parser.AddCommand("groups", "commands to query groups", "list or show groups", &GroupsOptions{})
	_, _ = c.AddCommand("list", "List groups", "lists every group the backend can enumerate", &GroupsList{})
	_, _ = c.AddCommand("show", "Show groups", "shows the groups with the given names", &GroupsShow{})

	_, _ = parser.AddCommand("explode", "expand hostlists", "expands hostlist expressions into node names", &Explode{})

	_, err := parser.Parse()

	if options.Version {
		fmt.Fprintf(os.Stdout, "%s\n", buildInfo.String())
		exit(0)
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		exit(1)
		return
	}

	exit(0)
}
