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

// Package prototest builds annotated proto file descriptors and plugin
// requests for tests.
package prototest

import (
	"fmt"
	"strings"

	"github.com/jhump/protoreflect/desc/builder"
	"google.golang.org/genproto/googleapis/api/annotations"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

// File builds one proto3 file.
type File struct {
	fb *builder.FileBuilder
}

// NewFile starts a proto3 file. goPackage may be empty.
func NewFile(path, pkg, goPackage string) *File {
	fb := builder.NewFile(path).SetPackageName(pkg).SetProto3(true)
	options := &descriptorpb.FileOptions{}
	if goPackage != "" {
		options.GoPackage = proto.String(goPackage)
	}
	fb.SetOptions(options)
	return &File{fb: fb}
}

// AddMessage adds a top-level message.
func (f *File) AddMessage(mb *builder.MessageBuilder) *File {
	f.fb.AddMessage(mb)
	return f
}

// AddResourceDefinition adds a file-level google.api.resource_definition.
func (f *File) AddResourceDefinition(rd *annotations.ResourceDescriptor) *File {
	options := f.fb.Options
	var defs []*annotations.ResourceDescriptor
	if proto.HasExtension(options, annotations.E_ResourceDefinition) {
		defs = proto.GetExtension(options, annotations.E_ResourceDefinition).([]*annotations.ResourceDescriptor)
	}
	proto.SetExtension(options, annotations.E_ResourceDefinition, append(defs, rd))
	return f
}

// Proto builds the file and returns its descriptor proto.
func (f *File) Proto() (*descriptorpb.FileDescriptorProto, error) {
	fd, err := f.fb.Build()
	if err != nil {
		return nil, fmt.Errorf("error building %s: %w", f.fb.GetName(), err)
	}
	return fd.AsFileDescriptorProto(), nil
}

// MustProto is like Proto but panics on error.
func (f *File) MustProto() *descriptorpb.FileDescriptorProto {
	fdp, err := f.Proto()
	if err != nil {
		panic(err)
	}
	return fdp
}

// Resource returns a message annotated with google.api.resource, carrying a
// `name` field that references the resource itself. Extra fields are added
// after it.
func Resource(name, typ string, patterns ...string) *builder.MessageBuilder {
	return ResourceDescriptor(name, &annotations.ResourceDescriptor{
		Type:     typ,
		Pattern:  patterns,
		Singular: strings.ToLower(name[:1]) + name[1:],
	})
}

// ResourceDescriptor is like Resource but takes the full annotation.
func ResourceDescriptor(name string, rd *annotations.ResourceDescriptor) *builder.MessageBuilder {
	mb := Message(name)
	proto.SetExtension(mb.Options, annotations.E_Resource, rd)
	mb.AddField(NameField(rd.GetType()))
	return mb
}

// NameField returns the `name = 1` field of a resource message.
func NameField(typ string) *builder.FieldBuilder {
	o := &descriptorpb.FieldOptions{}
	if typ != "" {
		proto.SetExtension(o, annotations.E_ResourceReference, &annotations.ResourceReference{Type: typ})
	}
	return builder.NewField("name", builder.FieldTypeString()).
		SetNumber(1).
		SetComments(builder.Comments{
			LeadingComment: "The resource name.",
		}).
		SetOptions(o)
}

// ReferenceField returns a string field referencing typ.
func ReferenceField(name string, number int32, typ string) *builder.FieldBuilder {
	return referenceField(name, number, &annotations.ResourceReference{Type: typ})
}

// ChildReferenceField returns a string field whose value is a parent of
// childType, like the `parent` field of a List request.
func ChildReferenceField(name string, number int32, childType string) *builder.FieldBuilder {
	return referenceField(name, number, &annotations.ResourceReference{ChildType: childType})
}

func referenceField(name string, number int32, ref *annotations.ResourceReference) *builder.FieldBuilder {
	o := &descriptorpb.FieldOptions{}
	proto.SetExtension(o, annotations.E_FieldBehavior, []annotations.FieldBehavior{annotations.FieldBehavior_REQUIRED})
	proto.SetExtension(o, annotations.E_ResourceReference, ref)
	return builder.NewField(name, builder.FieldTypeString()).
		SetNumber(number).
		SetComments(builder.Comments{
			LeadingComment: fmt.Sprintf("Field for %v.", name),
		}).
		SetOptions(o)
}

// Request wraps files in a plugin request. Only the files named in generate
// are marked for generation. Imports of files that are linked into the test
// binary, such as google/api/resource.proto, are added ahead of files, the
// way protoc sends them.
func Request(parameter string, generate []string, files ...*descriptorpb.FileDescriptorProto) *pluginpb.CodeGeneratorRequest {
	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: generate,
		ProtoFile:      append(dependencies(files), files...),
	}
	if parameter != "" {
		req.Parameter = proto.String(parameter)
	}
	return req
}

// dependencies returns the transitive imports of files that are not among
// them, in dependency order.
func dependencies(files []*descriptorpb.FileDescriptorProto) []*descriptorpb.FileDescriptorProto {
	seen := map[string]bool{}
	for _, f := range files {
		seen[f.GetName()] = true
	}
	var out []*descriptorpb.FileDescriptorProto
	var add func(path string)
	add = func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		fd, err := protoregistry.GlobalFiles.FindFileByPath(path)
		if err != nil {
			return
		}
		imports := fd.Imports()
		for i := 0; i < imports.Len(); i++ {
			add(imports.Get(i).Path())
		}
		out = append(out, protodesc.ToFileDescriptorProto(fd))
	}
	for _, f := range files {
		for _, dep := range f.GetDependency() {
			add(dep)
		}
	}
	return out
}
