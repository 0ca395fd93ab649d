package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/aep-dev/aep-resourcename-go/pkg/api"
	"github.com/aep-dev/aep-resourcename-go/pkg/prototest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/descriptorpb"
)

func examplePlugin(t *testing.T) *protogen.Plugin {
	t.Helper()
	files := api.ExampleFiles()
	var paths []string
	for _, fd := range files {
		paths = append(paths, fd.GetName())
	}
	plugin, err := NewPlugin(prototest.Request("", paths, files...))
	require.NoError(t, err)
	return plugin
}

// declarations lists the top-level names of src. Methods are listed as
// "Type.Method".
func declarations(t *testing.T, src []byte) (*ast.File, map[string]bool) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				typ := d.Recv.List[0].Type
				if star, ok := typ.(*ast.StarExpr); ok {
					typ = star.X
				}
				name = typ.(*ast.Ident).Name + "." + name
			}
			names[name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return file, names
}

func imports(file *ast.File) map[string]string {
	out := map[string]string{}
	for _, spec := range file.Imports {
		p, _ := strconv.Unquote(spec.Path.Value)
		name := ""
		if spec.Name != nil {
			name = spec.Name.Name
		}
		out[p] = name
	}
	return out
}

func generate(t *testing.T, gen *Generator, path string) []byte {
	t.Helper()
	plugin := examplePlugin(t)
	file := plugin.FilesByPath[path]
	require.NotNil(t, file, path)
	require.True(t, gen.Declares(path))
	g := plugin.NewGeneratedFile("out.go", file.GoImportPath)
	require.NoError(t, gen.Generate(g, file))
	src, err := g.Content()
	require.NoError(t, err)
	return src
}

func TestGenerateResources(t *testing.T) {
	gen := &Generator{API: api.ExampleAPI(), Version: "v0.1.0", GenerateExtensions: true}

	tests := []struct {
		file    string
		want    []string
		notWant []string
		imports map[string]string
		pkg     string
	}{
		{
			file: "library/v1/library.proto",
			want: []string{
				"bookResourceNamePattern",
				"publisherResourceNamePattern",
				"BookResourceName",
				"NewBookResourceName",
				"ParseBookResourceName",
				"bookResourceNameFromValues",
				"BookResourceName.String",
				"BookResourceName.Validate",
				"BookResourceName.ResourceType",
				"BookResourceName.ContainsWildcard",
				"BookResourceName.MarshalText",
				"BookResourceName.UnmarshalText",
				"BookResourceName.values",
				"PublisherResourceName",
				"Publisher.ParseName",
				"Publisher.NameResourceType",
				"Book.ParseShelf",
				"Book.ShelfResourceType",
				"ListBooksRequest.ParentChildResourceType",
				"ListBooksRequest.ParentParentResourceTypes",
				"ListBooksRequest.ParseParent",
				"listBooksRequestParentParentPatterns",
			},
			notWant: []string{"ShelfResourceName", "ListBooksRequest.ParentResourceType"},
			imports: map[string]string{
				"github.com/aep-dev/aep-resourcename-go/pkg/resourcename": "resourcename",
			},
			pkg: "libraryv1",
		},
		{
			file: "library/v1/shelf.proto",
			want: []string{
				"ShelfResourceName",
				"ParseShelfResourceName",
				"ProjectsShelfResourceName",
				"UsersShelfResourceName",
				"NewProjectsShelfResourceName",
				"ParseUsersShelfResourceName",
				"ProjectsShelfResourceName.isShelfResourceName",
				"UsersShelfResourceName.isShelfResourceName",
				"BookEditionResourceName",
				"bookEditionResourceNameFromValues",
			},
			imports: map[string]string{
				"encoding": "encoding",
				"fmt":      "fmt",
				"github.com/aep-dev/aep-resourcename-go/pkg/resourcename": "resourcename",
			},
			pkg: "libraryv1",
		},
		{
			file: "reviews/v1/review.proto",
			want: []string{
				"Review.ParseBook",
				"Review.BookResourceType",
				"Review.ParseReviewer",
				"Review.ParseSubject",
				"Review.SubjectResourceType",
			},
			notWant: []string{"BookResourceName"},
			imports: map[string]string{
				"example.com/library/v1": "v1",
				"github.com/aep-dev/aep-resourcename-go/pkg/resourcename": "resourcename",
			},
			pkg: "reviewsv1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src := generate(t, gen, tt.file)
			file, names := declarations(t, src)
			for _, n := range tt.want {
				assert.True(t, names[n], "missing %s", n)
			}
			for _, n := range tt.notWant {
				assert.False(t, names[n], "unexpected %s", n)
			}
			assert.Equal(t, tt.imports, imports(file))
			assert.Equal(t, tt.pkg, file.Name.Name)
		})
	}
}

func TestGenerateHeader(t *testing.T) {
	gen := &Generator{API: api.ExampleAPI(), Version: "v1.2.3", CompilerVersion: "v4.25.1"}
	src := string(generate(t, gen, "library/v1/library.proto"))

	assert.True(t, strings.HasPrefix(src, "// Code generated by protoc-gen-go-resourcename. DO NOT EDIT.\n"))
	assert.Contains(t, src, "protoc-gen-go-resourcename v1.2.3")
	assert.Contains(t, src, "v4.25.1")
	assert.Contains(t, src, "// source: library/v1/library.proto\n")
}

func TestGenerateParentLinkage(t *testing.T) {
	gen := &Generator{API: api.ExampleAPI()}
	src := string(generate(t, gen, "library/v1/library.proto"))

	assert.Contains(t, src, "Parent PublisherResourceName")
	assert.Contains(t, src, "Parent: publisherResourceNameFromValues(values[:1]...),")
	assert.Contains(t, src, "return append(n.Parent.values(), n.Book)")
	assert.Contains(t, src, `MustCompile("publishers/{publisher}/books/{book}")`)
}

func TestGenerateWithoutExtensions(t *testing.T) {
	gen := &Generator{API: api.ExampleAPI()}
	assert.False(t, gen.Declares("reviews/v1/review.proto"))
	assert.True(t, (&Generator{API: api.ExampleAPI(), GenerateExtensions: true}).Declares("reviews/v1/review.proto"))

	src := generate(t, gen, "library/v1/library.proto")
	_, names := declarations(t, src)
	assert.True(t, names["BookResourceName"])
	assert.False(t, names["Book.ParseShelf"])
}

func TestGenerateDeterministic(t *testing.T) {
	for _, fd := range api.ExampleFiles() {
		first := generate(t, &Generator{API: api.ExampleAPI(), GenerateExtensions: true}, fd.GetName())
		second := generate(t, &Generator{API: api.ExampleAPI(), GenerateExtensions: true}, fd.GetName())
		assert.Equal(t, string(first), string(second), fd.GetName())
	}
}

func TestGenerateNestedMessageReference(t *testing.T) {
	chapter := prototest.Message("Chapter", prototest.ReferenceField("book", 1, "library.example.com/Book"))
	outer := prototest.Nest(prototest.Message("Volume", prototest.StringField("title", 1)), chapter)
	fd := prototest.NewFile("library/v1/volume.proto", "library.v1", "example.com/library/v1;libraryv1").
		AddMessage(outer).
		MustProto()
	files := append(api.ExampleFiles(), fd)

	a, err := api.Load(files, nil)
	require.NoError(t, err)
	plugin, err := NewPlugin(prototest.Request("", []string{fd.GetName()}, files...))
	require.NoError(t, err)
	file := plugin.FilesByPath[fd.GetName()]
	g := plugin.NewGeneratedFile("out.go", file.GoImportPath)
	require.NoError(t, (&Generator{API: a, GenerateExtensions: true}).Generate(g, file))
	src, err := g.Content()
	require.NoError(t, err)

	_, names := declarations(t, src)
	assert.True(t, names["Volume_Chapter.ParseBook"])
	assert.Contains(t, string(src), "func (x *Volume_Chapter) ParseBook() (BookResourceName, error) {")
	assert.Contains(t, string(src), "return ParseBookResourceName(x.GetBook())")
}

func TestGenerateReferenceWithoutGoPackage(t *testing.T) {
	lib := prototest.NewFile("lib/v1/lib.proto", "lib.v1", "").
		AddMessage(prototest.Resource("Book", "lib.example.com/Book", "books/{book}")).
		MustProto()
	review := prototest.NewFile("rev/v1/rev.proto", "rev.v1", "example.com/rev/v1;revv1").
		AddMessage(prototest.Message("Review", prototest.ReferenceField("book", 1, "lib.example.com/Book"))).
		MustProto()
	files := []*descriptorpb.FileDescriptorProto{lib, review}

	a, err := api.Load(files, nil)
	require.NoError(t, err)
	plugin, err := NewPlugin(prototest.Request("", []string{"rev/v1/rev.proto"}, files...))
	require.NoError(t, err)
	file := plugin.FilesByPath["rev/v1/rev.proto"]
	g := plugin.NewGeneratedFile("out.go", file.GoImportPath)
	require.NoError(t, (&Generator{API: a, GenerateExtensions: true}).Generate(g, file))
	src, err := g.Content()
	require.NoError(t, err)

	parsed, _ := declarations(t, src)
	assert.NotContains(t, imports(parsed), "lib/v1")
	assert.Contains(t, string(src), "func (x *Review) ParseBook() (string, error) {")
}

func TestNewPlugin(t *testing.T) {
	fd := prototest.NewFile("shelf.proto", "shelf", "").
		AddMessage(prototest.Resource("Shelf", "library.example.com/Shelf", "shelves/{shelf}")).
		MustProto()
	plugin, err := NewPlugin(prototest.Request("paths=bogus", []string{"shelf.proto"}, fd))
	require.NoError(t, err)

	file := plugin.FilesByPath["shelf.proto"]
	require.NotNil(t, file)
	assert.True(t, file.Generate)
	assert.Equal(t, "_/shelf", string(file.GoImportPath))
	assert.Equal(t, "shelf", string(file.GoPackageName))
	assert.Empty(t, fd.GetOptions().GetGoPackage())

	_, err = NewPlugin(prototest.Request("", []string{"missing.proto"}, fd))
	assert.ErrorContains(t, err, "no descriptor for generated file: missing.proto")
}

func TestParamNames(t *testing.T) {
	assert.Equal(t, []string{"project", "bookID", "bookID2"}, paramNames([]string{"project", "book_i_d", "bookID"}))
	assert.Equal(t, []string{"type_", "name_"}, paramNames([]string{"type", "name"}))
	assert.Equal(t, "String_", fieldName("string"))
	assert.Equal(t, "Shelf", fieldName("shelf"))
}
