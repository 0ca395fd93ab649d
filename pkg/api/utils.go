package api

import (
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/cases"
	"github.com/aep-dev/aep-resourcename-go/pkg/resourcename"
)

// CollectionSegment returns the literal segment naming the resource's own
// collection: the segment right before the final variable, or the final
// segment of a singleton pattern.
func CollectionSegment(p resourcename.Pattern) string {
	components := p.Components()
	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]
		if c.IsVariable() {
			continue
		}
		if s := lastSegment(c.Value()); s != "" {
			return s
		}
	}
	return ""
}

func lastSegment(literal string) string {
	parts := strings.Split(literal, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// branchID derives the id of a Variant branch from the literal segments of
// its pattern, leaving out the resource's own collection and its plural.
// "projects/{project}/shelves/{shelf}" gives "Projects".
func branchID(p resourcename.Pattern, plural string) string {
	segments := p.Segments()
	collection := CollectionSegment(p)
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == collection {
			segments = append(segments[:i:i], segments[i+1:]...)
			break
		}
	}
	var sb strings.Builder
	for _, s := range segments {
		if plural != "" && s == plural {
			continue
		}
		sb.WriteString(cases.SegmentToPascalCase(s))
	}
	id := sb.String()
	if id == "" {
		id = cases.SegmentToPascalCase(collection)
	}
	if id == "" {
		id = "Default"
	}
	if c := id[0]; '0' <= c && c <= '9' {
		id = "X" + id
	}
	return id
}

// ParentPattern returns the pattern of the collection parent of p: p without
// its own collection segment and final variable.
// "publishers/{publisher}/books/{book}" gives "publishers/{publisher}".
// The second result is false for top-level patterns.
func ParentPattern(p resourcename.Pattern) (resourcename.Pattern, bool) {
	s := p.String()
	components := p.Components()
	if n := len(components); n > 0 && components[n-1].IsVariable() {
		s = strings.TrimSuffix(s, components[n-1].String())
	}
	s = strings.TrimRight(s, "/")
	i := strings.LastIndex(s, "/")
	if i < 0 {
		return resourcename.Pattern{}, false
	}
	parent := resourcename.Compile(s[:i])
	if parent.VariableCount() == 0 {
		return resourcename.Pattern{}, false
	}
	return parent, true
}
