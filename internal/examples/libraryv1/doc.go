// Package libraryv1 holds the resource names generated for the example
// library API of pkg/api (ExampleFiles), with generate_extensions=false since
// the package has no message types.
//
// The files are checked by golden_test.go; regenerate them with
//
//	RESOURCENAME_UPDATE_GOLDEN=1 go test ./internal/examples/...
package libraryv1
