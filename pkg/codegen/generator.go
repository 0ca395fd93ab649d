package codegen

import (
	"fmt"

	"github.com/aep-dev/aep-resourcename-go/pkg/api"
	"github.com/aep-dev/aep-resourcename-go/pkg/schema"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

const (
	resourcenamePackage = protogen.GoImportPath("github.com/aep-dev/aep-resourcename-go/pkg/resourcename")
	fmtPackage          = protogen.GoImportPath("fmt")
	encodingPackage     = protogen.GoImportPath("encoding")
)

// NewPlugin returns the protogen plugin for req. The parameter string is not
// passed on, since it is parsed by the plugin package, and files without a
// go_package option are given one.
func NewPlugin(req *pluginpb.CodeGeneratorRequest) (*protogen.Plugin, error) {
	files := make([]*descriptorpb.FileDescriptorProto, len(req.GetProtoFile()))
	for i, fd := range req.GetProtoFile() {
		files[i] = schema.WithGoPackage(fd)
	}
	return protogen.Options{}.New(&pluginpb.CodeGeneratorRequest{
		FileToGenerate:  req.GetFileToGenerate(),
		CompilerVersion: req.GetCompilerVersion(),
		ProtoFile:       files,
	})
}

// Generator renders one output file per proto file from a built API. It only
// reads the API, so files may be filled in concurrently.
type Generator struct {
	API *api.API
	// Version is the plugin version printed in file headers.
	Version string
	// CompilerVersion is the protoc version printed in file headers, if
	// known.
	CompilerVersion string
	// GenerateExtensions enables the reference accessors on message types.
	GenerateExtensions bool
}

// Declares reports whether the proto file at path declares anything to
// generate.
func (gen *Generator) Declares(path string) bool {
	if len(gen.API.ResourcesInFile(path)) > 0 {
		return true
	}
	return gen.GenerateExtensions && len(gen.API.ReferencesInFile(path)) > 0
}

// Generate writes the resources and references declared in file to g.
func (gen *Generator) Generate(g *protogen.GeneratedFile, file *protogen.File) error {
	path := file.Desc.Path()
	gen.header(g, file)
	for _, r := range gen.API.ResourcesInFile(path) {
		if err := gen.resource(g, r); err != nil {
			return fmt.Errorf("error generating %s: %w", r.Type, err)
		}
	}
	if !gen.GenerateExtensions {
		return nil
	}
	messages := map[protoreflect.FullName]*protogen.Message{}
	indexMessages(file.Messages, messages)
	for _, ref := range gen.API.ReferencesInFile(path) {
		msg, ok := messages[protoreflect.FullName(ref.Message)]
		if !ok {
			return fmt.Errorf("no message %s in %s", ref.Message, path)
		}
		field := fieldByName(msg, ref.Field)
		if field == nil {
			return fmt.Errorf("no field %s in %s", ref.Field, ref.Message)
		}
		gen.reference(g, file, msg, field, ref)
	}
	return nil
}

func (gen *Generator) header(g *protogen.GeneratedFile, file *protogen.File) {
	compiler := gen.CompilerVersion
	if compiler == "" {
		compiler = "(unknown)"
	}
	g.P("// Code generated by protoc-gen-go-resourcename. DO NOT EDIT.")
	g.P("// versions:")
	g.P("// \tprotoc-gen-go-resourcename ", gen.Version)
	g.P("// \tprotoc                     ", compiler)
	g.P("// source: ", file.Desc.Path())
	g.P()
	g.P("package ", file.GoPackageName)
	g.P()
}

func indexMessages(messages []*protogen.Message, into map[protoreflect.FullName]*protogen.Message) {
	for _, m := range messages {
		into[m.Desc.FullName()] = m
		indexMessages(m.Messages, into)
	}
}

func fieldByName(msg *protogen.Message, name string) *protogen.Field {
	for _, f := range msg.Fields {
		if string(f.Desc.Name()) == name {
			return f
		}
	}
	return nil
}
