// Package api aggregates the resource annotations of every file of a
// compilation into resource and reference models.
package api

import (
	"sort"

	"github.com/aep-dev/aep-resourcename-go/pkg/cases"
	"github.com/aep-dev/aep-resourcename-go/pkg/reporter"
	"github.com/aep-dev/aep-resourcename-go/pkg/resourcename"
	"github.com/aep-dev/aep-resourcename-go/pkg/schema"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/api/annotations"
)

// AnyType is the reference type meaning "any resource".
const AnyType = "*"

// API is the immutable model built from one compilation.
type API struct {
	// Resources sorted by type.
	Resources []*Resource
	// References sorted by file, then declaration order.
	References []*Reference
	// Unresolved holds the references whose target is not declared anywhere
	// in the compilation. They are also in References.
	Unresolved []*Reference
	byType     map[string]*Resource
}

// Reference is a resolved resource reference.
type Reference struct {
	*schema.Reference
	// Target is the referenced resource. It is nil for child references,
	// wildcard references and unresolved types.
	Target *Resource
	// Child is the resource named by child_type, if resolved.
	Child *Resource
	// ParentPatterns are the collection parents of Child's patterns, in
	// declaration order without duplicates.
	ParentPatterns []resourcename.Pattern
	// ParentTypes are the resources whose pattern is one of ParentPatterns,
	// sorted.
	ParentTypes []string
}

// IsChild reports whether the reference was declared with child_type.
func (r *Reference) IsChild() bool {
	return r.ChildType != ""
}

func (a *API) GetResource(typ string) (*Resource, bool) {
	r, ok := a.byType[typ]
	return r, ok
}

// ResourcesInFile returns the resources declared in path, by type.
func (a *API) ResourcesInFile(path string) []*Resource {
	var out []*Resource
	for _, r := range a.Resources {
		if r.File == path {
			out = append(out, r)
		}
	}
	return out
}

// ReferencesInFile returns the references declared in path, in declaration
// order.
func (a *API) ReferencesInFile(path string) []*Reference {
	var out []*Reference
	for _, r := range a.References {
		if r.File == path {
			out = append(out, r)
		}
	}
	return out
}

// Build aggregates the walked files. It runs once per compilation, after
// every file has been walked, and is not safe to run concurrently with
// itself on shared input.
//
// The first pass gives every resource its shape and branches and rejects
// duplicate types and ambiguous branches. The second pass links branches to
// parent branches and resolves references.
func Build(files []*schema.File, logger *zap.Logger) (*API, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &API{byType: map[string]*Resource{}}

	type declared struct {
		res  *schema.Resource
		file *schema.File
	}
	var all []declared
	for _, f := range files {
		for _, r := range f.Resources {
			all = append(all, declared{res: r, file: f})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		x, y := all[i].res, all[j].res
		if x.Type != y.Type {
			return x.Type < y.Type
		}
		if x.File != y.File {
			return x.File < y.File
		}
		return x.Index < y.Index
	})

	// shape pass
	for _, d := range all {
		if prev, ok := a.byType[d.res.Type]; ok {
			return nil, reporter.Errorf(
				reporter.Source{File: d.res.File, Element: d.res.Message},
				"%w %q: declared in %s and %s", reporter.ErrDuplicateResourceType, d.res.Type, prev.File, d.res.File)
		}
		r, err := newResource(d.res, d.file)
		if err != nil {
			return nil, err
		}
		a.byType[r.Type] = r
		a.Resources = append(a.Resources, r)
	}
	if err := a.checkGoNames(); err != nil {
		return nil, err
	}

	// linkage pass
	for _, r := range a.Resources {
		for _, b := range r.Branches {
			b.Parent = a.findParent(b)
			if b.Parent == nil {
				continue
			}
			parent := b.Parent.Resource
			if !containsResource(parent.Children, r) {
				parent.Children = append(parent.Children, r)
			}
			logger.Debug("linked parent",
				zap.String("resource", r.Type),
				zap.String("pattern", b.Pattern.String()),
				zap.String("parent", parent.Type),
				zap.String("parent_pattern", b.Parent.Pattern.String()))
		}
	}
	for _, r := range a.Resources {
		sort.Slice(r.Children, func(i, j int) bool { return r.Children[i].Type < r.Children[j].Type })
	}

	for _, f := range files {
		for _, sr := range f.References {
			ref := a.resolve(sr)
			a.References = append(a.References, ref)
			if ref.Target == nil && ref.Child == nil && ref.Type != AnyType {
				a.Unresolved = append(a.Unresolved, ref)
			}
		}
	}
	sort.SliceStable(a.References, func(i, j int) bool {
		x, y := a.References[i], a.References[j]
		if x.File != y.File {
			return x.File < y.File
		}
		return x.Index < y.Index
	})
	sort.SliceStable(a.Unresolved, func(i, j int) bool {
		x, y := a.Unresolved[i], a.Unresolved[j]
		if x.File != y.File {
			return x.File < y.File
		}
		return x.Index < y.Index
	})
	return a, nil
}

func newResource(sr *schema.Resource, f *schema.File) (*Resource, error) {
	r := &Resource{
		Type:          sr.Type,
		Singular:      sr.Singular,
		Plural:        sr.Plural,
		History:       sr.History,
		Message:       sr.Message,
		File:          sr.File,
		Index:         sr.Index,
		GoImportPath:  f.GoImportPath,
		GoPackageName: f.GoPackageName,
		Importable:    f.Importable,
	}
	if len(sr.Patterns) > 1 || sr.HasHistory(annotations.ResourceDescriptor_FUTURE_MULTI_PATTERN) {
		r.Shape = Variant
	}
	ids := map[string]resourcename.Pattern{}
	for _, p := range sr.Patterns {
		b := &Branch{Pattern: p, Resource: r}
		if r.Shape == Variant {
			b.ID = branchID(p, sr.Plural)
			if prev, ok := ids[b.ID]; ok {
				return nil, reporter.Errorf(
					reporter.Source{File: sr.File, Element: sr.Message},
					"%w: patterns %q and %q of %q both map to branch %q",
					reporter.ErrAmbiguousPatternPrefix, prev, p, sr.Type, b.ID)
			}
			ids[b.ID] = p
		}
		r.Branches = append(r.Branches, b)
	}
	return r, nil
}

// checkGoNames rejects two resources of one Go package that generate the
// same type name.
func (a *API) checkGoNames() error {
	owners := map[string]*Resource{}
	for _, r := range a.Resources {
		for _, name := range r.goNames() {
			key := r.goPackage() + "." + name
			prev, ok := owners[key]
			if ok && prev != r {
				return reporter.Errorf(
					reporter.Source{File: r.File, Element: r.Message},
					"%w: %s is generated for both %q (%s) and %q (%s)",
					reporter.ErrGoNameConflict, name, prev.Type, prev.File, r.Type, r.File)
			}
			owners[key] = r
		}
	}
	return nil
}

// findParent returns the branch of another resource in the same Go package
// whose pattern is the longest proper prefix of b's pattern followed by a
// '/' literal. Ties go to the smaller type.
func (a *API) findParent(b *Branch) *Branch {
	components := b.Pattern.Components()
	var best *Branch
	for _, r := range a.Resources {
		if r == b.Resource || r.goPackage() != b.Resource.goPackage() {
			continue
		}
		for _, c := range r.Branches {
			n := len(c.Pattern.Components())
			if n >= len(components) || !b.Pattern.HasPrefix(c.Pattern) {
				continue
			}
			next := components[n]
			if next.IsVariable() || len(next.Value()) == 0 || next.Value()[0] != '/' {
				continue
			}
			if !components[n-1].IsVariable() {
				continue
			}
			if best == nil || n > len(best.Pattern.Components()) {
				best = c
			}
		}
	}
	if best == nil {
		return nil
	}
	// a variable named like the parent field would clash with it.
	for _, v := range b.Pattern.Variables()[best.Pattern.VariableCount():] {
		if cases.GoName(v) == "Parent" {
			return nil
		}
	}
	return best
}

func (a *API) resolve(sr *schema.Reference) *Reference {
	ref := &Reference{Reference: sr}
	if sr.ChildType != "" {
		child, ok := a.byType[sr.ChildType]
		if !ok {
			return ref
		}
		ref.Child = child
		types := map[string]bool{}
		for _, b := range child.Branches {
			p, ok := ParentPattern(b.Pattern)
			if !ok || containsPattern(ref.ParentPatterns, p) {
				continue
			}
			ref.ParentPatterns = append(ref.ParentPatterns, p)
			for _, r := range a.Resources {
				for _, rb := range r.Branches {
					if rb.Pattern.Equal(p) {
						types[r.Type] = true
					}
				}
			}
		}
		for t := range types {
			ref.ParentTypes = append(ref.ParentTypes, t)
		}
		sort.Strings(ref.ParentTypes)
		return ref
	}
	if target, ok := a.byType[sr.Type]; ok {
		ref.Target = target
	}
	return ref
}

func containsResource(rs []*Resource, r *Resource) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

func containsPattern(ps []resourcename.Pattern, p resourcename.Pattern) bool {
	for _, x := range ps {
		if x.Equal(p) {
			return true
		}
	}
	return false
}
