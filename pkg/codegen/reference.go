package codegen

import (
	"strconv"
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/api"
	"github.com/aep-dev/aep-resourcename-go/pkg/cases"
	"google.golang.org/protobuf/compiler/protogen"
)

func (gen *Generator) reference(g *protogen.GeneratedFile, file *protogen.File, m *protogen.Message, f *protogen.Field, ref *api.Reference) {
	if ref.IsChild() {
		gen.childReference(g, m, f, ref)
		return
	}
	msg, field := m.GoIdent, f.GoName

	if ident, ok := targetIdent(file, ref.Target); ok {
		g.P("// Parse", field, " parses the ", ref.Field, " field as a ", ref.Target.DisplayName(), " resource name.")
		g.P("func (x *", msg, ") Parse", field, "() (", ident, ", error) {")
		parse := ident
		parse.GoName = "Parse" + ident.GoName
		g.P("return ", parse, "(x.Get", field, "())")
		g.P("}")
		g.P()
	} else {
		g.P("// Parse", field, " checks that the ", ref.Field, " field is a well-formed resource name")
		if ref.Type == api.AnyType {
			g.P("// of any type.")
		} else {
			g.P("// of type ", ref.Type, ".")
		}
		g.P("func (x *", msg, ") Parse", field, "() (string, error) {")
		g.P("name := x.Get", field, "()")
		g.P("if err := ", resourcenamePackage.Ident("Validate"), "(name); err != nil {")
		g.P(`return "", err`)
		g.P("}")
		g.P("return name, nil")
		g.P("}")
		g.P()
	}

	g.P("// ", field, "ResourceType returns the resource type referenced by the ", ref.Field, " field.")
	g.P("func (*", msg, ") ", field, "ResourceType() string {")
	g.P("return ", strconv.Quote(ref.Type))
	g.P("}")
	g.P()
}

// targetIdent returns the generated type of target. It fails when target is
// nil or lives in another package that cannot be imported.
func targetIdent(file *protogen.File, target *api.Resource) (protogen.GoIdent, bool) {
	switch {
	case target == nil:
		return protogen.GoIdent{}, false
	case protogen.GoImportPath(target.GoImportPath) == file.GoImportPath:
		return file.GoImportPath.Ident(target.GoName()), true
	case !target.Importable:
		return protogen.GoIdent{}, false
	}
	return protogen.GoImportPath(target.GoImportPath).Ident(target.GoName()), true
}

func (gen *Generator) childReference(g *protogen.GeneratedFile, m *protogen.Message, f *protogen.Field, ref *api.Reference) {
	msg, field := m.GoIdent, f.GoName

	g.P("// ", field, "ChildResourceType returns the resource type whose parent the ", ref.Field, " field names.")
	g.P("func (*", msg, ") ", field, "ChildResourceType() string {")
	g.P("return ", strconv.Quote(ref.ChildType))
	g.P("}")
	g.P()

	g.P("// ", field, "ParentResourceTypes returns the resource types the ", ref.Field, " field may name.")
	g.P("func (*", msg, ") ", field, "ParentResourceTypes() []string {")
	if len(ref.ParentTypes) == 0 {
		g.P("return nil")
	} else {
		quoted := make([]string, len(ref.ParentTypes))
		for i, t := range ref.ParentTypes {
			quoted[i] = strconv.Quote(t)
		}
		g.P("return []string{", strings.Join(quoted, ", "), "}")
	}
	g.P("}")
	g.P()

	if ref.Child == nil {
		g.P("// Parse", field, " checks that the ", ref.Field, " field is empty or a well-formed")
		g.P("// resource name.")
		g.P("func (x *", msg, ") Parse", field, "() (string, error) {")
		g.P("name := x.Get", field, "()")
		g.P(`if name == "" {`)
		g.P(`return "", nil`)
		g.P("}")
		g.P("if err := ", resourcenamePackage.Ident("Validate"), "(name); err != nil {")
		g.P(`return "", err`)
		g.P("}")
		g.P("return name, nil")
		g.P("}")
		g.P()
		return
	}

	topLevel := false
	for _, b := range ref.Child.Branches {
		if _, ok := api.ParentPattern(b.Pattern); !ok {
			topLevel = true
		}
	}

	if len(ref.ParentPatterns) == 0 {
		g.P("// Parse", field, " checks that the ", ref.Field, " field is empty, as ", ref.ChildType)
		g.P("// has no parent.")
		g.P("func (x *", msg, ") Parse", field, "() (string, error) {")
		g.P("name := x.Get", field, "()")
		g.P(`if name != "" {`)
		g.P(`return "", &`, resourcenamePackage.Ident("ParseError"), "{Kind: ", resourcenamePackage.Ident("ErrInvalidPattern"), ", Value: name}")
		g.P("}")
		g.P("return name, nil")
		g.P("}")
		g.P()
		return
	}

	patterns := cases.LowerFirst(msg.GoName) + field + "ParentPatterns"
	g.P("var ", patterns, " = []", resourcenamePackage.Ident("Pattern"), "{")
	for _, p := range ref.ParentPatterns {
		g.P(resourcenamePackage.Ident("MustCompile"), "(", strconv.Quote(p.String()), "),")
	}
	g.P("}")
	g.P()

	g.P("// Parse", field, " checks that the ", ref.Field, " field names a parent of ", ref.ChildType, ".")
	g.P("func (x *", msg, ") Parse", field, "() (string, error) {")
	g.P("name := x.Get", field, "()")
	if topLevel {
		g.P(`if name == "" {`)
		g.P(`return "", nil`)
		g.P("}")
	}
	g.P("if _, _, err := ", resourcenamePackage.Ident("MatchFirst"), "(name, ", patterns, "...); err != nil {")
	g.P(`return "", err`)
	g.P("}")
	g.P("return name, nil")
	g.P("}")
	g.P()
}
