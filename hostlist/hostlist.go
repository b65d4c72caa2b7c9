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

// Package hostlist expands compact host range expressions such as
// "node[001-110]" into the individual names they denote.
package hostlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxNames caps the number of names a single Explode call may produce.
const MaxNames = 1 << 20

var tokenRegex = regexp.MustCompile(`^([[:alnum:]]+)(?:\[(\d+)-(\d+)\])?$`)

// ErrInvalidSyntax is returned when an expression does not follow the
// hostlist grammar.
type ErrInvalidSyntax struct {
	Input  string
	Reason string
}

func (e *ErrInvalidSyntax) Error() string {
	return fmt.Sprintf("invalid hostlist %q: %s", e.Input, e.Reason)
}

// IsInvalidSyntax reports whether the cause of err is an ErrInvalidSyntax.
func IsInvalidSyntax(err error) bool {
	_, ok := errors.Cause(err).(*ErrInvalidSyntax)
	return ok
}

// token is a single comma separated part of an expression
type token struct {
	leader    string
	low, high int
	isRange   bool
}

// Explode expands input into the ordered list of names it denotes.
//
// The input is a comma separated list; empty parts are ignored. Every part is
// either an alphanumeric name, returned as is, or a range "leader[low-high]".
// The zeros trailing the leader set the padding width of the range, so
// "node0[8-10]" yields node08, node09, node10. If any part is malformed no
// names are returned.
func Explode(input string) ([]string, error) {
	var tokens []token
	for _, part := range strings.Split(input, ",") {
		if part == "" {
			continue
		}
		t, err := parseToken(input, part)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}

	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !t.isRange {
			names = append(names, t.leader)
			continue
		}
		if t.high >= t.low && t.high-t.low >= MaxNames-len(names) {
			return nil, &ErrInvalidSyntax{Input: input, Reason: fmt.Sprintf("expands to more than %d names", MaxNames)}
		}
		names = t.expand(names)
	}
	return names, nil
}

func parseToken(input, part string) (token, error) {
	m := tokenRegex.FindStringSubmatch(part)
	if m == nil {
		return token{}, &ErrInvalidSyntax{Input: input, Reason: fmt.Sprintf("malformed part %q", part)}
	}
	if m[2] == "" {
		return token{leader: m[1]}, nil
	}
	low, err := strconv.Atoi(m[2])
	if err != nil {
		return token{}, &ErrInvalidSyntax{Input: input, Reason: fmt.Sprintf("bad lower bound %q", m[2])}
	}
	high, err := strconv.Atoi(m[3])
	if err != nil {
		return token{}, &ErrInvalidSyntax{Input: input, Reason: fmt.Sprintf("bad upper bound %q", m[3])}
	}
	return token{leader: m[1], low: low, high: high, isRange: true}, nil
}

// expand appends the names of a range token to names
func (t token) expand(names []string) []string {
	stripped := strings.TrimRight(t.leader, "0")
	width := len(t.leader) - len(stripped)
	for n := 0; n <= t.high-t.low; n++ {
		digits := strconv.Itoa(t.low + n)
		if pads := width - len(digits) + 1; pads > 0 {
			digits = strings.Repeat("0", pads) + digits
		}
		names = append(names, stripped+digits)
	}
	return names
}
