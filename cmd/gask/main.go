package main

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/gask-go/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	debug := isDebug()

	root := cli.NewRootCmd(ctx, cli.Options{Verbose: debug})
	if err := root.ExecuteContext(ctx); err != nil {
		cli.RenderError(os.Stderr, err, debug)
		os.Exit(1)
	}
}

func isDebug() bool {
	value := os.Getenv("GASK_DEBUG")
	return value != "" && !strings.EqualFold(value, "0") && !strings.EqualFold(value, "false")
}
