// Copyright 2023 Yusuke Fredrick Tsutsumi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resourcename

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of ParseError. Use errors.Is to test for them.
var (
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrMissingComponent = errors.New("missing component")
	ErrInvalidComponent = errors.New("invalid component")
	ErrEmptyValue       = errors.New("resource name is empty")
	ErrInvalidFormat    = errors.New("invalid resource name format")
)

// ParseError is returned when a resource name cannot be parsed, constructed
// or validated.
type ParseError struct {
	// Kind is one of the Err* sentinels of this package.
	Kind error
	// Value is the resource name being processed, if any.
	Value string
	// Component names the offending variable, if any.
	Component string
	// ComponentValue is the offending variable value, if any.
	ComponentValue string
	// Patterns lists the accepted patterns for ErrInvalidPattern.
	Patterns []string
	// Reason is a free-form explanation for ErrInvalidFormat.
	Reason string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInvalidPattern:
		return fmt.Sprintf("invalid pattern: got %q, expected %s", e.Value, quoteAll(e.Patterns))
	case ErrMissingComponent:
		if e.Value == "" {
			return fmt.Sprintf("missing required component %q", e.Component)
		}
		return fmt.Sprintf("missing required component %q in resource name %q", e.Component, e.Value)
	case ErrInvalidComponent:
		return fmt.Sprintf("invalid component %q value %q", e.Component, e.ComponentValue)
	case ErrEmptyValue:
		return ErrEmptyValue.Error()
	case ErrInvalidFormat:
		return fmt.Sprintf("invalid resource name format %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("%v: %q", e.Kind, e.Value)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func quoteAll(patterns []string) string {
	quoted := make([]string, len(patterns))
	for i, p := range patterns {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, " or ")
}
