package schema

import (
	"testing"

	"github.com/aep-dev/aep-resourcename-go/pkg/prototest"
	"github.com/aep-dev/aep-resourcename-go/pkg/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/api/annotations"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func TestWalkFile(t *testing.T) {
	book := prototest.Resource("Book", "library.example.com/Book", "publishers/{publisher}/books/{book}")
	book.AddField(prototest.ReferenceField("author", 2, "library.example.com/Author"))
	prototest.Nest(book, prototest.Message("Chapter",
		prototest.ReferenceField("shelf", 1, "library.example.com/Shelf"),
		prototest.StringField("title", 2),
	))
	list := prototest.Message("ListBooksRequest",
		prototest.ChildReferenceField("parent", 1, "library.example.com/Book"),
		prototest.StringField("page_token", 2),
	)
	fdp := prototest.NewFile("library/v1/book.proto", "library.v1", "example.com/library/v1;libraryv1").
		AddResourceDefinition(&annotations.ResourceDescriptor{
			Type:    "library.example.com/Publisher",
			Pattern: []string{"publishers/{publisher}"},
		}).
		AddMessage(book).
		AddMessage(list).
		MustProto()

	f, err := WalkFile(fdp)
	require.NoError(t, err)
	assert.Equal(t, "library/v1/book.proto", f.Path)
	assert.Equal(t, "library.v1", f.Package)
	assert.Equal(t, "example.com/library/v1", f.GoImportPath)
	assert.Equal(t, "libraryv1", f.GoPackageName)
	assert.True(t, f.Importable)

	require.Len(t, f.Resources, 2)
	assert.Equal(t, "library.example.com/Publisher", f.Resources[0].Type)
	assert.Equal(t, "", f.Resources[0].Message)
	assert.Equal(t, 0, f.Resources[0].Index)
	assert.Equal(t, "library.example.com/Book", f.Resources[1].Type)
	assert.Equal(t, "library.v1.Book", f.Resources[1].Message)
	assert.Equal(t, "library/v1/book.proto", f.Resources[1].File)
	assert.Equal(t, 1, f.Resources[1].Index)

	type ref struct {
		message, field, typ, childType string
	}
	var got []ref
	for _, r := range f.References {
		got = append(got, ref{r.Message, r.Field, r.Type, r.ChildType})
	}
	assert.Equal(t, []ref{
		{"library.v1.Book", "name", "library.example.com/Book", ""},
		{"library.v1.Book", "author", "library.example.com/Author", ""},
		{"library.v1.Book.Chapter", "shelf", "library.example.com/Shelf", ""},
		{"library.v1.ListBooksRequest", "parent", "", "library.example.com/Book"},
	}, got)
}

func TestWalkFileSkipsNonStringFields(t *testing.T) {
	o := &descriptorpb.FieldOptions{}
	proto.SetExtension(o, annotations.E_ResourceReference, &annotations.ResourceReference{Type: "a.com/A"})
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("a.proto"),
		Package: proto.String("a"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("M"),
			Field: []*descriptorpb.FieldDescriptorProto{
				{
					Name:    proto.String("count"),
					Number:  proto.Int32(1),
					Type:    descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
					Options: o,
				},
				{
					Name:    proto.String("names"),
					Number:  proto.Int32(2),
					Type:    descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					Label:   descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
					Options: o,
				},
			},
		}},
	}
	f, err := WalkFile(fdp)
	require.NoError(t, err)
	assert.Empty(t, f.References)
	assert.Empty(t, f.Resources)
	assert.False(t, f.Importable)
	assert.Equal(t, "_/a", f.GoImportPath)
	assert.Equal(t, "a", f.GoPackageName)
}

func TestWalkFileReportsSource(t *testing.T) {
	o := &descriptorpb.MessageOptions{}
	proto.SetExtension(o, annotations.E_Resource, &annotations.ResourceDescriptor{
		Pattern: []string{"books/{book}"},
	})
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("library.proto"),
		Package: proto.String("library"),
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: proto.String("Outer"), NestedType: []*descriptorpb.DescriptorProto{
				{Name: proto.String("Book"), Options: o},
			}},
		},
	}
	_, err := WalkFile(fdp)
	require.Error(t, err)
	assert.ErrorIs(t, err, reporter.ErrMissingRequiredField)
	var ews reporter.ErrorWithSource
	require.ErrorAs(t, err, &ews)
	assert.Equal(t, reporter.Source{File: "library.proto", Element: "library.Outer.Book"}, ews.GetSource())
}

func TestGoPackage(t *testing.T) {
	tests := []struct {
		name       string
		fdp        *descriptorpb.FileDescriptorProto
		importPath string
		pkgName    string
	}{
		{
			name: "path and name",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a/b.proto"),
				Options: &descriptorpb.FileOptions{GoPackage: proto.String("example.com/a/v1;apiv1")},
			},
			importPath: "example.com/a/v1",
			pkgName:    "apiv1",
		},
		{
			name: "path only",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a/b.proto"),
				Options: &descriptorpb.FileOptions{GoPackage: proto.String("example.com/my-api/v1")},
			},
			importPath: "example.com/my-api/v1",
			pkgName:    "v1",
		},
		{
			name: "dashed last element",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a/b.proto"),
				Options: &descriptorpb.FileOptions{GoPackage: proto.String("example.com/my-api")},
			},
			importPath: "example.com/my-api",
			pkgName:    "my_api",
		},
		{
			name: "proto package",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a/b.proto"),
				Package: proto.String("google.example.library.v1"),
			},
			pkgName: "v1",
		},
		{
			name: "file name",
			fdp: &descriptorpb.FileDescriptorProto{
				Name: proto.String("a/1book.proto"),
			},
			pkgName: "_1book",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importPath, pkgName := GoPackage(tt.fdp)
			assert.Equal(t, tt.importPath, importPath)
			assert.Equal(t, tt.pkgName, pkgName)
		})
	}
}

func TestWithGoPackage(t *testing.T) {
	tests := []struct {
		name      string
		fdp       *descriptorpb.FileDescriptorProto
		goPackage string
	}{
		{
			name: "kept",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a/b.proto"),
				Package: proto.String("a.v1"),
				Options: &descriptorpb.FileOptions{GoPackage: proto.String("example.com/a/v1;apiv1")},
			},
			goPackage: "example.com/a/v1;apiv1",
		},
		{
			name: "from proto package",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a/b.proto"),
				Package: proto.String("google.example.library.v1"),
			},
			goPackage: "google/example/library/v1;v1",
		},
		{
			name: "from file name",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a/1book.proto"),
				Options: &descriptorpb.FileOptions{JavaPackage: proto.String("com.example")},
			},
			goPackage: "a/1book;_1book",
		},
		{
			name: "single element",
			fdp: &descriptorpb.FileDescriptorProto{
				Name:    proto.String("a.proto"),
				Package: proto.String("a"),
			},
			goPackage: "_/a;a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := proto.Clone(tt.fdp)
			got := WithGoPackage(tt.fdp)
			assert.Equal(t, tt.goPackage, got.GetOptions().GetGoPackage())
			assert.True(t, proto.Equal(before, tt.fdp), "input modified")

			importPath, pkgName := GoPackage(got)
			_, wantName := GoPackage(tt.fdp)
			assert.Equal(t, wantName, pkgName)
			if tt.fdp.GetOptions().GetGoPackage() == "" {
				assert.Equal(t, LocalImportPath(tt.fdp), importPath)
			}
		})
	}
}
