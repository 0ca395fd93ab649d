// Package schema walks proto file descriptors and collects their resource
// annotations.
package schema

import (
	"github.com/aep-dev/aep-resourcename-go/pkg/annotation"
	"github.com/aep-dev/aep-resourcename-go/pkg/reporter"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File holds everything collected from one proto file.
type File struct {
	// Path is the proto file name as given to protoc.
	Path    string
	Package string
	// GoImportPath is the LocalImportPath when the file has no go_package
	// option. Importable tells the two cases apart.
	GoImportPath  string
	GoPackageName string
	Importable    bool
	Resources     []*Resource
	References    []*Reference
}

// Resource is a resource annotation together with where it was declared.
type Resource struct {
	*annotation.Resource
	// Message is the fully-qualified name of the declaring message. It is
	// empty for file-level resource definitions.
	Message string
	File    string
	// Index is the declaration order within the file.
	Index int
}

// Reference is a resource reference annotation on a string field.
type Reference struct {
	*annotation.Reference
	Field string
	// Message is the fully-qualified name of the message holding Field.
	Message string
	File    string
	Index   int
}

// WalkFile decodes every resource definition, resource and reference
// annotation in fd. File-level definitions come first, then messages in
// depth-first declaration order with fields before nested messages.
func WalkFile(fd *descriptorpb.FileDescriptorProto) (*File, error) {
	importPath, pkgName := GoPackage(fd)
	f := &File{
		Path:          fd.GetName(),
		Package:       fd.GetPackage(),
		GoImportPath:  importPath,
		GoPackageName: pkgName,
		Importable:    importPath != "",
	}
	if !f.Importable {
		f.GoImportPath = LocalImportPath(fd)
	}
	defs, err := annotation.DecodeResourceDefinitions(fd.GetOptions())
	if err != nil {
		return nil, reporter.Error(reporter.Source{File: f.Path}, err)
	}
	for _, d := range defs {
		f.Resources = append(f.Resources, &Resource{Resource: d, File: f.Path, Index: len(f.Resources)})
	}
	err = descriptorProtos(fd, func(name protoreflect.FullName, m proto.Message) error {
		switch d := m.(type) {
		case *descriptorpb.DescriptorProto:
			r, err := annotation.DecodeResource(d.GetOptions())
			if err != nil {
				return reporter.Error(reporter.Source{File: f.Path, Element: string(name)}, err)
			}
			if r != nil {
				f.Resources = append(f.Resources, &Resource{
					Resource: r,
					Message:  string(name),
					File:     f.Path,
					Index:    len(f.Resources),
				})
			}
		case *descriptorpb.FieldDescriptorProto:
			if d.GetType() != descriptorpb.FieldDescriptorProto_TYPE_STRING ||
				d.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED {
				return nil
			}
			ref, err := annotation.DecodeReference(d.GetOptions())
			if err != nil {
				return reporter.Error(reporter.Source{File: f.Path, Element: string(name)}, err)
			}
			if ref != nil {
				f.References = append(f.References, &Reference{
					Reference: ref,
					Field:     d.GetName(),
					Message:   string(name.Parent()),
					File:      f.Path,
					Index:     len(f.References),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func packagePrefix(fd *descriptorpb.FileDescriptorProto) string {
	if fd.GetPackage() == "" {
		return ""
	}
	return fd.GetPackage() + "."
}

// descriptorProtos calls fn for every message and field of file, skipping
// synthesized map entry messages.
func descriptorProtos(file *descriptorpb.FileDescriptorProto, fn func(protoreflect.FullName, proto.Message) error) error {
	prefix := packagePrefix(file)
	for _, msg := range file.MessageType {
		if err := walkDescriptorProto(prefix, msg, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkDescriptorProto(prefix string, msg *descriptorpb.DescriptorProto, fn func(protoreflect.FullName, proto.Message) error) error {
	if msg.GetOptions().GetMapEntry() {
		return nil
	}
	fqn := prefix + msg.GetName()
	if err := fn(protoreflect.FullName(fqn), msg); err != nil {
		return err
	}
	prefix = fqn + "."
	for _, fld := range msg.Field {
		if err := fn(protoreflect.FullName(prefix+fld.GetName()), fld); err != nil {
			return err
		}
	}
	for _, nested := range msg.NestedType {
		if err := walkDescriptorProto(prefix, nested, fn); err != nil {
			return err
		}
	}
	return nil
}
