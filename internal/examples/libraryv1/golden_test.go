package libraryv1_test

import (
	"os"
	"strings"
	"testing"

	"github.com/aep-dev/aep-resourcename-go/pkg/api"
	"github.com/aep-dev/aep-resourcename-go/pkg/codegen"
	"github.com/aep-dev/aep-resourcename-go/pkg/prototest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGolden checks the checked-in files against the generator. Alignment
// padding and blank lines are ignored.
func TestGolden(t *testing.T) {
	files := api.ExampleFiles()
	golden := map[string]string{
		"library/v1/library.proto": "library_resources.go",
		"library/v1/shelf.proto":   "shelf_resources.go",
	}
	var paths []string
	for _, fd := range files {
		paths = append(paths, fd.GetName())
	}
	plugin, err := codegen.NewPlugin(prototest.Request("", paths, files...))
	require.NoError(t, err)
	gen := &codegen.Generator{API: api.ExampleAPI(), Version: "v0.1.0"}

	for path, out := range golden {
		t.Run(out, func(t *testing.T) {
			file := plugin.FilesByPath[path]
			require.NotNil(t, file)
			g := plugin.NewGeneratedFile(out, file.GoImportPath)
			require.NoError(t, gen.Generate(g, file))
			got, err := g.Content()
			require.NoError(t, err)

			if os.Getenv("RESOURCENAME_UPDATE_GOLDEN") != "" {
				require.NoError(t, os.WriteFile(out, got, 0o644))
				return
			}
			want, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, normalize(string(want)), normalize(string(got)))
		})
	}
}

func normalize(src string) string {
	var lines []string
	for _, line := range strings.Split(src, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n")
}
