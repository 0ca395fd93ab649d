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

// Package resourcename compiles resource name patterns such as
// "projects/{project}/books/{book}" and matches, formats and validates
// resource names against them.
//
// The package is used both by the code generator and by the code it
// generates.
package resourcename

import (
	"fmt"
	"strings"
)

// Wildcard is the reserved segment value meaning "any".
const Wildcard = "-"

// Component is one piece of a compiled pattern: either literal text or a
// variable.
type Component struct {
	value    string
	variable bool
}

// Literal returns a literal component.
func Literal(text string) Component {
	return Component{value: text}
}

// Variable returns a variable component.
func Variable(name string) Component {
	return Component{value: name, variable: true}
}

// IsVariable reports whether the component is a variable.
func (c Component) IsVariable() bool {
	return c.variable
}

// Value returns the literal text, or the variable name for a variable.
func (c Component) Value() string {
	return c.value
}

func (c Component) String() string {
	if c.variable {
		return "{" + c.value + "}"
	}
	return c.value
}

// Pattern is a compiled resource name pattern.
type Pattern struct {
	raw        string
	components []Component
	variables  []string
}

// Compile tokenizes a pattern into literal and variable components. Braced
// spans whose content is not a valid variable name are kept as literal text.
// Empty literals are dropped, so joining the components always reproduces
// the input exactly.
func Compile(pattern string) Pattern {
	p := Pattern{raw: pattern}
	literalStart := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '{' {
			continue
		}
		end := strings.IndexByte(pattern[i+1:], '}')
		if end < 0 {
			break
		}
		name := pattern[i+1 : i+1+end]
		if !isVariableName(name) {
			continue
		}
		if i > literalStart {
			p.components = append(p.components, Literal(pattern[literalStart:i]))
		}
		p.components = append(p.components, Variable(name))
		if !p.HasVariable(name) {
			p.variables = append(p.variables, name)
		}
		i += end + 1
		literalStart = i + 1
	}
	if literalStart < len(pattern) {
		p.components = append(p.components, Literal(pattern[literalStart:]))
	}
	return p
}

// MustCompile is like Compile but panics if the pattern has no variables.
// It is meant for package level variables in generated code.
func MustCompile(pattern string) Pattern {
	p := Compile(pattern)
	if p.VariableCount() == 0 {
		panic(fmt.Sprintf("resourcename: pattern %q has no variables", pattern))
	}
	return p
}

// String returns the original pattern text.
func (p Pattern) String() string {
	return p.raw
}

// Components returns the ordered components of the pattern.
func (p Pattern) Components() []Component {
	return append([]Component(nil), p.components...)
}

// Variables returns the variable names in first-occurrence order.
func (p Pattern) Variables() []string {
	return append([]string(nil), p.variables...)
}

// VariableCount returns the number of distinct variables.
func (p Pattern) VariableCount() int {
	return len(p.variables)
}

// HasVariable reports whether name is one of the pattern's variables.
func (p Pattern) HasVariable(name string) bool {
	for _, v := range p.variables {
		if v == name {
			return true
		}
	}
	return false
}

// Equal reports whether two patterns have the same component sequence.
func (p Pattern) Equal(o Pattern) bool {
	if len(p.components) != len(o.components) {
		return false
	}
	for i := range p.components {
		if p.components[i] != o.components[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the components of prefix are a leading
// subsequence of p's components.
func (p Pattern) HasPrefix(prefix Pattern) bool {
	if len(prefix.components) > len(p.components) {
		return false
	}
	for i := range prefix.components {
		if p.components[i] != prefix.components[i] {
			return false
		}
	}
	return true
}

// Segments returns the non-empty literal path segments of the pattern, in
// order. Variables are skipped.
func (p Pattern) Segments() []string {
	var segments []string
	for _, c := range p.components {
		if c.variable {
			continue
		}
		for _, s := range strings.Split(c.value, "/") {
			if s != "" {
				segments = append(segments, s)
			}
		}
	}
	return segments
}

func isVariableName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
