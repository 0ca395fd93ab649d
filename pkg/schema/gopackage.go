package schema

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// GoPackage returns the Go import path and package name for fd.
//
// The go_package option may be "import/path" or "import/path;name". Without
// it the import path is empty and the name falls back to the last element of
// the proto package, then to the file name.
func GoPackage(fd *descriptorpb.FileDescriptorProto) (importPath, name string) {
	goPkg := fd.GetOptions().GetGoPackage()
	if goPkg != "" {
		importPath = goPkg
		if i := strings.LastIndexByte(goPkg, ';'); i >= 0 {
			importPath, name = goPkg[:i], goPkg[i+1:]
		}
		if name == "" {
			name = path.Base(importPath)
		}
		return importPath, cleanPackageName(name)
	}
	if pkg := fd.GetPackage(); pkg != "" {
		return "", cleanPackageName(pkg[strings.LastIndexByte(pkg, '.')+1:])
	}
	base := path.Base(fd.GetName())
	return "", cleanPackageName(strings.TrimSuffix(base, path.Ext(base)))
}

// cleanPackageName turns s into a valid Go package name.
func cleanPackageName(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
	if r, _ := utf8.DecodeRuneInString(s); s == "" || !unicode.IsLetter(r) && r != '_' {
		s = "_" + s
	}
	return s
}

// WithGoPackage returns fd with a go_package option, so that protogen can
// place every file of a request. A file that already has one is returned as
// is; otherwise a copy is returned whose option is built from
// LocalImportPath and the package name GoPackage picks.
func WithGoPackage(fd *descriptorpb.FileDescriptorProto) *descriptorpb.FileDescriptorProto {
	if fd.GetOptions().GetGoPackage() != "" {
		return fd
	}
	_, name := GoPackage(fd)
	fd = proto.Clone(fd).(*descriptorpb.FileDescriptorProto)
	if fd.Options == nil {
		fd.Options = &descriptorpb.FileOptions{}
	}
	fd.Options.GoPackage = proto.String(LocalImportPath(fd) + ";" + name)
	return fd
}

// LocalImportPath is the import path given to a file without go_package:
// the proto package with dots turned into slashes, or the file name without
// its extension. A single element gets a "_/" prefix, since protogen wants a
// slash or a dot in every import path. Generated code never imports it.
func LocalImportPath(fd *descriptorpb.FileDescriptorProto) string {
	p := strings.TrimSuffix(fd.GetName(), path.Ext(fd.GetName()))
	if pkg := fd.GetPackage(); pkg != "" {
		p = strings.ReplaceAll(pkg, ".", "/")
	}
	if !strings.ContainsAny(p, "./") {
		p = "_/" + p
	}
	return p
}
