package api

import (
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/cases"
	"github.com/aep-dev/aep-resourcename-go/pkg/resourcename"
)

// Shape is the generated form of a resource name.
type Shape int

const (
	// Simple resources have one pattern and become a struct.
	Simple Shape = iota
	// Variant resources have several patterns and become a sealed interface
	// with one struct per branch.
	Variant
)

func (s Shape) String() string {
	if s == Variant {
		return "variant"
	}
	return "simple"
}

type Resource struct {
	// Type is the resource type, e.g. "library.example.com/Book".
	Type     string
	Singular string
	Plural   string
	History  []string
	// Message is the fully-qualified name of the declaring message, empty
	// for file-level definitions.
	Message string
	File    string
	Index   int
	// GoImportPath and GoPackageName locate the generated code. Code in
	// other packages may only import it when Importable is set.
	GoImportPath  string
	GoPackageName string
	Importable    bool
	Shape         Shape
	// Branches holds one branch per pattern, in declaration order.
	Branches []*Branch
	// Children lists the resources with a branch linked to one of this
	// resource's branches, sorted by type.
	Children []*Resource
}

// Kind returns the part of the type after '/', e.g. "Book".
func (r *Resource) Kind() string {
	return r.Type[strings.LastIndex(r.Type, "/")+1:]
}

// GoName is the name of the generated type: a struct for Simple resources
// and an interface for Variant ones.
func (r *Resource) GoName() string {
	return cases.GoName(r.Kind()) + "ResourceName"
}

// DisplayName is a human readable name for doc comments.
func (r *Resource) DisplayName() string {
	if r.Singular != "" {
		return strings.ReplaceAll(cases.PascalCaseToKebabCase(r.Singular), "-", " ")
	}
	return cases.Humanize(r.Kind())
}

// Patterns returns the branch patterns in declaration order.
func (r *Resource) Patterns() []resourcename.Pattern {
	patterns := make([]resourcename.Pattern, len(r.Branches))
	for i, b := range r.Branches {
		patterns[i] = b.Pattern
	}
	return patterns
}

// goNames lists the Go type names generated for r.
func (r *Resource) goNames() []string {
	names := []string{r.GoName()}
	for _, b := range r.Branches {
		names = append(names, b.GoName())
	}
	return names
}

func (r *Resource) goPackage() string {
	return r.GoImportPath + ";" + r.GoPackageName
}

// Branch is one pattern of a resource.
type Branch struct {
	// ID distinguishes the branches of a Variant resource, e.g. "Projects".
	// It is empty for Simple resources.
	ID       string
	Pattern  resourcename.Pattern
	Resource *Resource
	// Parent is the branch of another resource whose pattern is a prefix of
	// this one, if any. The generated struct then holds the parent instead
	// of the leading variables.
	Parent *Branch
}

// GoName is the name of the generated struct for the branch.
func (b *Branch) GoName() string {
	return b.ID + b.Resource.GoName()
}

// OwnVariables returns the variables held directly by the branch, that is,
// those not covered by the parent.
func (b *Branch) OwnVariables() []string {
	vars := b.Pattern.Variables()
	if b.Parent != nil {
		vars = vars[b.Parent.Pattern.VariableCount():]
	}
	return vars
}
