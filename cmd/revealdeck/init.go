package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/config"
	"github.com/fredcamaral/revealdeck/internal/domain/services"
)

const exampleManifest = `deck:
  title: My Talk
  short_title: Talk
  author: Your Name
  conference: Conference 2026
output: index.html
slides:
  - kind: slide
    title: My Talk
    content: "<p>Your Name</p>"
  - kind: outline
  - kind: section_open
  - kind: slide
    id: motivation
    title: Motivation
    content: "<p>Why this matters.</p>"
    notes: "Remember to *breathe*."
  - kind: summary
    points: ["First point", "Second point"]
    fragment: fade-up
  - kind: section_close
`

// newInitCmd writes starter configuration files
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create a revealdeck.toml (and optionally an example deck) in DIR",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}

	cmd.Flags().Bool("global", false, "Create the global config file instead")
	cmd.Flags().Bool("example", false, "Also write an example deck.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	svc := services.NewConfigService(newLoader(cmd), config.NewConfigMerger())
	out := cmd.OutOrStdout()

	if global, _ := cmd.Flags().GetBool("global"); global {
		if err := svc.CreateGlobalConfig(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(out, "Created global config")
		return nil
	}

	path, err := svc.CreateLocalConfig(cmd.Context(), dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created %s\n", path)

	if example, _ := cmd.Flags().GetBool("example"); example {
		deckPath := filepath.Join(dir, "deck.yaml")
		if err := writeNewFile(deckPath, []byte(exampleManifest)); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", deckPath)
	}

	return nil
}

// writeNewFile refuses to overwrite an existing file
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G302 G304 - user chosen deck directory
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
