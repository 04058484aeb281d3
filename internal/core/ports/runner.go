package ports

import "context"

// ToolRunner runs external programs on behalf of the renderer.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ToolRunner interface {
	// Run executes argv[0] with the remaining arguments in dir and waits for it.
	//
	// It returns an error if the program cannot be started or exits with a
	// non-zero status.
	Run(ctx context.Context, dir string, argv []string) error
}
