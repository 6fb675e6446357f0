// Command errkit demonstrates erasing, chaining, and recovering errors.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and renders a failure's whole chain to
// stderr. It returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "errkit: %+v\n", err)
		return 1
	}

	return 0
}
