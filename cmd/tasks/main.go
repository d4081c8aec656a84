package main

import (
	"context"
	"fmt"
	"os"

	"task-tracker/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
