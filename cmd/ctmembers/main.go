// Command ctmembers prints the member pids of a process contract.
//
// Usage:
//
//	ctmembers [--format text|json|yaml] [-v] [--config file] <ctid>
package main

import (
	"os"

	"github.com/roach88/ctmembers/internal/cli"
)

func main() {
	os.Exit(cli.Main(nil, os.Args[1:], os.Stdout, os.Stderr))
}
