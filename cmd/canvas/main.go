// Command canvas runs the topics and users API and its operator tooling.
//
// Usage:
//
//	canvas serve
//	canvas migrate up|down|status [--dsn=...]
//	canvas token --user=<uuid>
//	canvas promote --email=user@example.com [--role=3]
//	canvas history --entity=topic --id=<uuid>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/canvas-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
