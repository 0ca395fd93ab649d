// Package plugin implements the protoc plugin: it walks every file of a
// CodeGeneratorRequest, builds the resource model once and renders one Go
// file per requested proto file.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/api"
	"github.com/aep-dev/aep-resourcename-go/pkg/codegen"
	"github.com/aep-dev/aep-resourcename-go/pkg/schema"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"
)

const supportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)

// Run generates the response for req. A failure is reported in the
// response's error field and no files are returned.
func Run(ctx context.Context, req *pluginpb.CodeGeneratorRequest, opts Options) *pluginpb.CodeGeneratorResponse {
	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(supportedFeatures),
	}
	files, err := Generate(ctx, req, opts)
	if err != nil {
		resp.Error = proto.String(err.Error())
		return resp
	}
	resp.File = files
	return resp
}

// Generate renders the output files for req. The generation parameters in
// opts are reset to their defaults and then set from req's parameter string.
func Generate(ctx context.Context, req *pluginpb.CodeGeneratorRequest, opts Options) ([]*pluginpb.CodeGeneratorResponse_File, error) {
	defaults := DefaultOptions()
	opts.GenerateExtensions = defaults.GenerateExtensions
	opts.FileSuffix = defaults.FileSuffix
	opts.ModulePrefix = defaults.ModulePrefix
	if err := ParseParameter(req.GetParameter(), &opts); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	walked, err := walk(ctx, req, opts, logger)
	if err != nil {
		return nil, err
	}

	a, err := api.Build(walked, logger)
	if err != nil {
		return nil, err
	}
	for _, ref := range a.Unresolved {
		logger.Warn("unresolved resource reference",
			zap.String("file", ref.File),
			zap.String("message", ref.Message),
			zap.String("field", ref.Field),
			zap.String("type", ref.Type))
	}

	plugin, err := codegen.NewPlugin(req)
	if err != nil {
		return nil, err
	}
	gen := &codegen.Generator{
		API:                a,
		Version:            opts.Version,
		CompilerVersion:    compilerVersion(req.GetCompilerVersion()),
		GenerateExtensions: opts.GenerateExtensions,
	}
	return emit(ctx, plugin, gen, opts, logger)
}

// walk decodes every proto file of the request in parallel. Results keep the
// request order.
func walk(ctx context.Context, req *pluginpb.CodeGeneratorRequest, opts Options, logger *zap.Logger) ([]*schema.File, error) {
	walked := make([]*schema.File, len(req.GetProtoFile()))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit(opts.Parallelism))
	for i, fd := range req.GetProtoFile() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := schema.WalkFile(fd)
			if err != nil {
				return err
			}
			logger.Debug("walked file",
				zap.String("file", f.Path),
				zap.Int("resources", len(f.Resources)),
				zap.Int("references", len(f.References)))
			walked[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return walked, nil
}

// emit renders the requested files in parallel. Files with nothing to
// generate are left out. Output files are created up front, since the plugin
// does not allow concurrent creation, and formatted by the plugin's response.
func emit(ctx context.Context, plugin *protogen.Plugin, gen *codegen.Generator, opts Options, logger *zap.Logger) ([]*pluginpb.CodeGeneratorResponse_File, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit(opts.Parallelism))
	for _, file := range plugin.Files {
		name := file.Desc.Path()
		if !file.Generate {
			continue
		}
		if !gen.Declares(name) {
			logger.Debug("nothing to generate", zap.String("file", name))
			continue
		}
		filename := OutputName(name, opts)
		g := plugin.NewGeneratedFile(filename, file.GoImportPath)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := gen.Generate(g, file); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("generated file", zap.String("file", name), zap.String("output", filename))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	resp := plugin.Response()
	if resp.Error != nil {
		return nil, errors.New(resp.GetError())
	}
	return resp.GetFile(), nil
}

// OutputName is the generated file name for a proto file name: the ".proto"
// extension is replaced by the file suffix, under the module prefix if any.
func OutputName(protoFile string, opts Options) string {
	name := strings.TrimSuffix(protoFile, ".proto") + opts.FileSuffix
	if opts.ModulePrefix != "" {
		name = path.Join(opts.ModulePrefix, name)
	}
	return name
}

func compilerVersion(v *pluginpb.Version) string {
	if v == nil {
		return ""
	}
	s := fmt.Sprintf("v%d.%d.%d", v.GetMajor(), v.GetMinor(), v.GetPatch())
	if suffix := v.GetSuffix(); suffix != "" {
		s += "-" + suffix
	}
	return s
}

func limit(parallelism int) int {
	if parallelism <= 0 {
		return -1
	}
	return parallelism
}
