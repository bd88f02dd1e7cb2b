package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	httpadapter "github.com/fredcamaral/revealdeck/internal/adapters/primary/http"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/browser"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/config"
	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/watcher"
	"github.com/fredcamaral/revealdeck/internal/domain/services"
)

// newServeCmd previews a deck with live reload
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve SOURCE",
		Short: "Preview a deck in the browser with live reload",
		Long: `Build the deck in memory and serve it over HTTP. Files next to the
source are served too, so media that is not embedded still loads. The
page reloads whenever the source or its revealdeck.toml changes; deck
and output settings are read again on every rebuild. Server, logging,
markup and media fetch settings apply from the next start.

Example:
  revealdeck serve talk.yaml
  revealdeck serve talk.md --port 8080 --open`,
		Args: cobra.ExactArgs(1),
		RunE: runServe,
	}

	cmd.Flags().IntP("port", "p", 0, "Port to serve on (overrides config)")
	cmd.Flags().String("host", "", "Host to bind to (overrides config)")
	cmd.Flags().Bool("open", false, "Open the preview in a browser")
	cmd.Flags().Bool("no-browser", false, "Never open a browser")
	cmd.Flags().Bool("write", false, "Also write the compiled document on every rebuild")
	addDeckFlags(cmd)
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	dir := sourceDir(sourcePath)

	a, err := newApp(cmd, dir)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()

	server := httpadapter.NewServer(a.config.Server, dir, a.logger)
	if err := server.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.GetShutdownTimeout())
		defer cancel()
		if err := server.Stop(stopCtx); err != nil {
			a.logger.Warn("stopping server: %v", err)
		}
	}()

	fileWatcher, err := watcher.NewFSWatcher(a.config.Watcher.GetDebounce(), a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = fileWatcher.Stop() }()

	var extra []string
	if localConfig := filepath.Join(dir, config.LocalConfigName); a.fs.Exists(localConfig) {
		extra = append(extra, localConfig)
	}

	write, _ := cmd.Flags().GetBool("write")
	reload := services.NewLiveReloadService(a.builder, fileWatcher, server, a.logger)
	reload.SetConfigLoader(a.reloadConfig(dir))
	if err := reload.Start(ctx, a.request(sourcePath, ""), write, extra...); err != nil {
		return err
	}
	defer func() { _ = reload.Stop() }()

	url := "http://" + server.Addr() + "/"
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at %s (Ctrl+C to stop)\n", sourcePath, url)

	if a.config.Browser.AutoOpen {
		if err := browser.NewLauncher().Launch(url); err != nil {
			a.logger.Warn("could not open browser: %v", err)
		}
	}

	<-ctx.Done()
	fmt.Fprintln(cmd.OutOrStdout(), "Shutting down...")
	return nil
}
