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

import "strings"

// Match matches name against the pattern and returns one value per
// variable component, in component order.
//
// Every literal must occur verbatim at its position and every variable
// value must be non-empty and free of '/'. A value of "-" (Wildcard) is
// accepted like any other value.
func (p Pattern) Match(name string) ([]string, error) {
	if name == "" {
		return nil, &ParseError{Kind: ErrEmptyValue}
	}
	values, missing, ok := p.match(name)
	if !ok {
		return nil, &ParseError{Kind: ErrInvalidPattern, Value: name, Patterns: []string{p.raw}}
	}
	if missing != "" {
		return nil, &ParseError{Kind: ErrMissingComponent, Value: name, Component: missing}
	}
	return values, nil
}

// Matches reports whether name matches the pattern.
func (p Pattern) Matches(name string) bool {
	_, err := p.Match(name)
	return err == nil
}

func (p Pattern) match(name string) (values []string, missing string, ok bool) {
	pos := 0
	for i, c := range p.components {
		if !c.variable {
			if !strings.HasPrefix(name[pos:], c.value) {
				return nil, "", false
			}
			pos += len(c.value)
			continue
		}
		rest := name[pos:]
		end := strings.IndexByte(rest, '/')
		if end < 0 {
			end = len(rest)
		}
		if i+1 < len(p.components) {
			if next := p.components[i+1]; !next.variable && !strings.HasPrefix(next.value, "/") {
				j := strings.Index(rest[:end], next.value)
				if j < 0 {
					return nil, "", false
				}
				end = j
			}
		} else if end != len(rest) {
			return nil, "", false
		}
		value := rest[:end]
		if value == "" && missing == "" {
			missing = c.value
		}
		values = append(values, value)
		pos += end
	}
	if pos != len(name) {
		return nil, "", false
	}
	return values, missing, true
}

// Sprint substitutes values, by position, into the variable components of
// the pattern.
func (p Pattern) Sprint(values ...string) string {
	var sb strings.Builder
	next := 0
	for _, c := range p.components {
		if !c.variable {
			sb.WriteString(c.value)
			continue
		}
		if next < len(values) {
			sb.WriteString(values[next])
		}
		next++
	}
	return sb.String()
}

// Validate checks values, by position, against the variable components of
// the pattern. Empty values fail with ErrMissingComponent. Values containing
// '/', or the literal that follows the variable when that literal does not
// start with '/', fail with ErrInvalidComponent.
func (p Pattern) Validate(values ...string) error {
	next := 0
	for i, c := range p.components {
		if !c.variable {
			continue
		}
		var value string
		if next < len(values) {
			value = values[next]
		}
		next++
		switch {
		case value == "":
			return &ParseError{Kind: ErrMissingComponent, Component: c.value}
		case strings.Contains(value, "/"):
			return &ParseError{Kind: ErrInvalidComponent, Component: c.value, ComponentValue: value}
		case i+1 < len(p.components):
			if lit := p.components[i+1]; !lit.variable && !strings.HasPrefix(lit.value, "/") && strings.Contains(value, lit.value) {
				return &ParseError{Kind: ErrInvalidComponent, Component: c.value, ComponentValue: value}
			}
		}
	}
	return nil
}

// MatchFirst matches name against patterns in order and returns the index of
// the first one that matches along with its values. When none matches the
// error is an ErrInvalidPattern listing every pattern.
func MatchFirst(name string, patterns ...Pattern) (int, []string, error) {
	if name == "" {
		return -1, nil, &ParseError{Kind: ErrEmptyValue}
	}
	for i, p := range patterns {
		if values, err := p.Match(name); err == nil {
			return i, values, nil
		}
	}
	raw := make([]string, len(patterns))
	for i, p := range patterns {
		raw[i] = p.raw
	}
	return -1, nil, &ParseError{Kind: ErrInvalidPattern, Value: name, Patterns: raw}
}

// ContainsWildcard reports whether any of values is the Wildcard.
func ContainsWildcard(values ...string) bool {
	for _, v := range values {
		if v == Wildcard {
			return true
		}
	}
	return false
}

// Validate checks the structure of a resource name without a pattern: it
// must be non-empty, must not start or end with '/' and must not contain
// empty segments.
func Validate(name string) error {
	switch {
	case name == "":
		return &ParseError{Kind: ErrEmptyValue}
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return &ParseError{Kind: ErrInvalidFormat, Value: name, Reason: "must not start or end with '/'"}
	case strings.Contains(name, "//"):
		return &ParseError{Kind: ErrInvalidFormat, Value: name, Reason: "contains an empty segment"}
	}
	return nil
}
