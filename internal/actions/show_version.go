package actions

import (
	"runtime"

	"github.com/footprint-tools/verbparse/internal/dispatchers"
)

func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	_, _ = deps.Printf("verbparse version %v (%s/%s)\n", deps.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
