package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/pagebar/internal/cli"
	"github.com/rshade/pagebar/pkg/version"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

// exitCode maps an error returned by run to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return cli.ExitOK
	}
	var codeErr *cli.ExitCodeError
	if errors.As(err, &codeErr) {
		return codeErr.ExitCode
	}
	return cli.ExitError
}
