package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "revealdeck",
		Short: "Build reveal.js slide decks from YAML manifests or markdown",
		Long: `revealdeck turns a deck manifest (.yaml) or a markdown deck (.md)
into a single self-contained reveal.js HTML document. Images and videos
can be embedded as data URIs so the result works offline.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringP("config", "c", "", "Global config file (default: user config dir/revealdeck/config.toml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(newBuildCmd(), newServeCmd(), newSlugCmd(), newInitCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
