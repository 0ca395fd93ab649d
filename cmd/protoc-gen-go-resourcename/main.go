// Command protoc-gen-go-resourcename is a protoc plugin that generates Go
// types for the resource names declared with google.api.resource.
//
//	protoc --go_out=. --go-resourcename_out=. library.proto
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/plugin"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"
)

const name = "protoc-gen-go-resourcename"

// version is set at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

type config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	Parallelism int    `env:"PARALLELISM" envDefault:"0"`
}

func main() {
	if err := newRootCommand(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

// newRootCommand returns the plugin command. environ overrides the process
// environment when not nil.
func newRootCommand(environ map[string]string) *cobra.Command {
	var showVersion bool
	cmd := &cobra.Command{
		Use:   name,
		Short: "Generate Go resource name types from google.api.resource annotations",
		Long: `protoc-gen-go-resourcename reads a CodeGeneratorRequest on standard input
and writes a CodeGeneratorResponse on standard output. It is meant to be
run by protoc or buf.

Parameters (--go-resourcename_opt):
  generate_extensions=<bool>  emit reference accessors on messages (default true)
  file_suffix=<suffix>        output file suffix (default "_resources.go")
  module_prefix=<dir>         directory prepended to output file names

Environment:
  RESOURCENAME_LOG_LEVEL      debug, info, warn or error (default warn)
  RESOURCENAME_PARALLELISM    files processed at once, 0 for no limit`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, version)
				return nil
			}
			var cfg config
			if err := env.ParseWithOptions(&cfg, env.Options{
				Prefix:      "RESOURCENAME_",
				Environment: environ,
			}); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()
			return run(cmd, cfg, logger)
		},
	}
	cmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print the version and exit")
	return cmd
}

func run(cmd *cobra.Command, cfg config, logger *zap.Logger) error {
	in, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("error reading request: %w", err)
	}
	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(in, req); err != nil {
		return fmt.Errorf("error parsing request: %w", err)
	}

	resp := plugin.Run(cmd.Context(), req, plugin.Options{
		Parallelism: cfg.Parallelism,
		Logger:      logger,
		Version:     version,
	})
	out, err := proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("error marshaling response: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("error writing response: %w", err)
	}
	if resp.Error != nil {
		return errors.New(resp.GetError())
	}
	return nil
}

// newLogger builds a console logger on w. Standard output carries the
// response, so logs never go there.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, err
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core).Named(name), nil
}
