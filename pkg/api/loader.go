package api

import (
	"fmt"

	"github.com/aep-dev/aep-resourcename-go/pkg/schema"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Load walks the files one after another and builds the model. The plugin
// walks files in parallel instead; Load is for callers that hold a small
// set of descriptors.
func Load(files []*descriptorpb.FileDescriptorProto, logger *zap.Logger) (*API, error) {
	walked := make([]*schema.File, 0, len(files))
	for _, fd := range files {
		f, err := schema.WalkFile(fd)
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", fd.GetName(), err)
		}
		walked = append(walked, f)
	}
	a, err := Build(walked, logger)
	if err != nil {
		return nil, fmt.Errorf("error building resource model: %w", err)
	}
	return a, nil
}
