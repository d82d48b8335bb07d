package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trebuchet-org/courier/internal/cli"
	"github.com/trebuchet-org/courier/internal/config"
)

// Set via -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
