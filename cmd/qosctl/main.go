// Command qosctl prints the QoS profiles and action options in the catalog.
package main

import (
	"fmt"
	"os"

	"github.com/gonzalop/duaqos/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
