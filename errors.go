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
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotConfigured is returned when a facade is queried before a resolver
// was installed for its kind.
type ErrNotConfigured struct {
	Kind Kind
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("no active %s resolver has been configured", e.Kind)
}

// ErrorIsNotConfigured checks if the error is caused by "ErrNotConfigured"
func ErrorIsNotConfigured(err error) bool {
	_, ok := errors.Cause(err).(*ErrNotConfigured)
	return ok
}

// ErrValidation is returned when a model is constructed without one of its
// required attributes.
type ErrValidation struct {
	Model     string
	Attribute string
	Reason    string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Model, e.Attribute, e.Reason)
}

// ErrorIsValidation checks if the error is caused by "ErrValidation"
func ErrorIsValidation(err error) bool {
	_, ok := errors.Cause(err).(*ErrValidation)
	return ok
}
