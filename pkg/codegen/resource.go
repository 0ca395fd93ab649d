package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/api"
	"github.com/aep-dev/aep-resourcename-go/pkg/cases"
	"google.golang.org/protobuf/compiler/protogen"
)

// methodNames are the methods of every generated struct. A variable whose Go
// name matches one gets a trailing underscore.
var methodNames = map[string]bool{
	"String":           true,
	"Validate":         true,
	"ResourceType":     true,
	"ContainsWildcard": true,
	"MarshalText":      true,
	"UnmarshalText":    true,
}

func fieldName(variable string) string {
	name := cases.GoName(variable)
	if methodNames[name] {
		name += "_"
	}
	return name
}

func patternVar(b *api.Branch) string {
	return cases.LowerFirst(b.GoName()) + "Pattern"
}

func fromValuesFunc(b *api.Branch) string {
	return cases.LowerFirst(b.GoName()) + "FromValues"
}

func markerMethod(r *api.Resource) string {
	return "is" + r.GoName()
}

// paramNames returns distinct Go parameter names for the variables.
func paramNames(variables []string) []string {
	seen := map[string]bool{}
	names := make([]string, len(variables))
	for i, v := range variables {
		name := cases.GoParamName(v)
		for n := 2; seen[name]; n++ {
			name = cases.GoParamName(v) + strconv.Itoa(n)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

func (gen *Generator) resource(g *protogen.GeneratedFile, r *api.Resource) error {
	if len(r.Branches) == 0 {
		return fmt.Errorf("resource %s has no patterns", r.Type)
	}
	g.P("// Compiled patterns of the ", cases.Capitalize(r.DisplayName()), " resource.")
	g.P("var (")
	for _, b := range r.Branches {
		g.P(patternVar(b), " = ", resourcenamePackage.Ident("MustCompile"), "(", strconv.Quote(b.Pattern.String()), ")")
	}
	g.P(")")
	g.P()

	if r.Shape == api.Variant {
		gen.variant(g, r)
	}
	for _, b := range r.Branches {
		gen.branch(g, b)
	}
	return nil
}

func (gen *Generator) variant(g *protogen.GeneratedFile, r *api.Resource) {
	names := make([]string, len(r.Branches))
	for i, b := range r.Branches {
		names[i] = b.GoName()
	}
	g.P("// ", r.GoName(), " is the resource name of a ", r.DisplayName(), ".")
	g.P("// It is one of ", joinOr(names), ".")
	g.P("type ", r.GoName(), " interface {")
	g.P(fmtPackage.Ident("Stringer"))
	g.P(encodingPackage.Ident("TextMarshaler"))
	g.P("Validate() error")
	g.P("ResourceType() string")
	g.P("ContainsWildcard() bool")
	g.P(markerMethod(r), "()")
	g.P("}")
	g.P()

	g.P("// Parse", r.GoName(), " parses name against the patterns of ", r.Type, ",")
	g.P("// in declaration order, and returns the first match.")
	g.P("func Parse", r.GoName(), "(name string) (", r.GoName(), ", error) {")
	var patterns []string
	for _, b := range r.Branches {
		patterns = append(patterns, patternVar(b))
	}
	if len(r.Branches) == 1 {
		g.P("_, values, err := ", resourcenamePackage.Ident("MatchFirst"), "(name, ", strings.Join(patterns, ", "), ")")
		g.P("if err != nil {")
		g.P("return nil, err")
		g.P("}")
		g.P("return ", fromValuesFunc(r.Branches[0]), "(values...), nil")
		g.P("}")
		g.P()
		return
	}
	g.P("i, values, err := ", resourcenamePackage.Ident("MatchFirst"), "(name, ", strings.Join(patterns, ", "), ")")
	g.P("if err != nil {")
	g.P("return nil, err")
	g.P("}")
	g.P("switch i {")
	for i, b := range r.Branches {
		if i == len(r.Branches)-1 {
			g.P("default:")
		} else {
			g.P("case ", i, ":")
		}
		g.P("return ", fromValuesFunc(b), "(values...), nil")
	}
	g.P("}")
	g.P("}")
	g.P()
}

func (gen *Generator) branch(g *protogen.GeneratedFile, b *api.Branch) {
	r := b.Resource
	name := b.GoName()
	variables := b.Pattern.Variables()
	own := b.OwnVariables()
	params := paramNames(variables)

	if r.Shape == api.Variant {
		g.P("// ", name, " is the ", r.DisplayName(), " resource name of the form")
	} else {
		g.P("// ", name, " is the resource name of a ", r.DisplayName(), ", of the form")
	}
	g.P("// ", b.Pattern.String(), ".")
	g.P("type ", name, " struct {")
	if b.Parent != nil {
		g.P("// Parent holds the leading ", b.Parent.Pattern.String(), " part.")
		g.P("Parent ", b.Parent.GoName())
	}
	for _, v := range own {
		g.P(fieldName(v), " string")
	}
	g.P("}")
	g.P()

	if r.Shape == api.Variant {
		g.P("func (", name, ") ", markerMethod(r), "() {}")
		g.P()
	}

	g.P("// New", name, " returns the resource name with the given values. It")
	g.P("// fails if a value is empty or contains a slash.")
	g.P("func New", name, "(", strings.Join(params, ", "), " string) (", name, ", error) {")
	g.P("if err := ", patternVar(b), ".Validate(", strings.Join(params, ", "), "); err != nil {")
	g.P("return ", name, "{}, err")
	g.P("}")
	g.P("return ", fromValuesFunc(b), "(", strings.Join(params, ", "), "), nil")
	g.P("}")
	g.P()

	g.P("// Parse", name, " parses a resource name of the form")
	g.P("// ", b.Pattern.String(), ".")
	g.P("func Parse", name, "(name string) (", name, ", error) {")
	g.P("values, err := ", patternVar(b), ".Match(name)")
	g.P("if err != nil {")
	g.P("return ", name, "{}, err")
	g.P("}")
	g.P("return ", fromValuesFunc(b), "(values...), nil")
	g.P("}")
	g.P()

	g.P("func ", fromValuesFunc(b), "(values ...string) ", name, " {")
	g.P("return ", name, "{")
	k := 0
	if b.Parent != nil {
		k = b.Parent.Pattern.VariableCount()
		g.P("Parent: ", fromValuesFunc(b.Parent), "(values[:", k, "]...),")
	}
	for i, v := range own {
		g.P(fieldName(v), ": values[", k+i, "],")
	}
	g.P("}")
	g.P("}")
	g.P()

	g.P("func (n ", name, ") values() []string {")
	var fields []string
	for _, v := range own {
		fields = append(fields, "n."+fieldName(v))
	}
	switch {
	case b.Parent != nil && len(fields) == 0:
		g.P("return n.Parent.values()")
	case b.Parent != nil:
		g.P("return append(n.Parent.values(), ", strings.Join(fields, ", "), ")")
	default:
		g.P("return []string{", strings.Join(fields, ", "), "}")
	}
	g.P("}")
	g.P()

	g.P("// String returns the resource name.")
	g.P("func (n ", name, ") String() string {")
	g.P("return ", patternVar(b), ".Sprint(n.values()...)")
	g.P("}")
	g.P()

	g.P("// Validate reports an error if a value is empty or contains a slash.")
	g.P("func (n ", name, ") Validate() error {")
	g.P("return ", patternVar(b), ".Validate(n.values()...)")
	g.P("}")
	g.P()

	g.P("func (", name, ") ResourceType() string {")
	g.P("return ", strconv.Quote(r.Type))
	g.P("}")
	g.P()

	g.P("// ContainsWildcard reports whether a value is the wildcard \"-\".")
	g.P("func (n ", name, ") ContainsWildcard() bool {")
	g.P("return ", resourcenamePackage.Ident("ContainsWildcard"), "(n.values()...)")
	g.P("}")
	g.P()

	g.P("func (n ", name, ") MarshalText() ([]byte, error) {")
	g.P("if err := n.Validate(); err != nil {")
	g.P("return nil, err")
	g.P("}")
	g.P("return []byte(n.String()), nil")
	g.P("}")
	g.P()

	g.P("func (n *", name, ") UnmarshalText(text []byte) error {")
	g.P("parsed, err := Parse", name, "(string(text))")
	g.P("if err != nil {")
	g.P("return err")
	g.P("}")
	g.P("*n = parsed")
	g.P("return nil")
	g.P("}")
	g.P()
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
