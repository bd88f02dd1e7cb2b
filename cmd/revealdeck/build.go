package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newBuildCmd compiles a deck source to HTML
func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build SOURCE",
		Short: "Compile a deck source to a reveal.js HTML file",
		Long: `Compile a deck manifest (.yaml, .yml) or markdown deck (.md) into a
reveal.js document. Settings come from defaults, the global and local
revealdeck.toml files, the source itself and finally the flags below.

Example:
  revealdeck build talk.yaml
  revealdeck build talk.md -o public/index.html --embed --theme white`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (overrides the source and config)")
	cmd.Flags().Bool("dry-run", false, "Build in memory and print the document instead of writing it")
	addDeckFlags(cmd)
	return cmd
}

// addDeckFlags registers the deck setting overrides shared by build and serve
func addDeckFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Deck title")
	cmd.Flags().String("short-title", "", "Short title shown in the footer")
	cmd.Flags().String("author", "", "Author name")
	cmd.Flags().String("conference", "", "Conference or venue")
	cmd.Flags().StringP("theme", "t", "", "reveal.js theme name")
	cmd.Flags().String("reveal-path", "", "Base URL or path of the reveal.js distribution")
	cmd.Flags().Int("width", 0, "Slide width in pixels")
	cmd.Flags().Int("height", 0, "Slide height in pixels")
	cmd.Flags().Float64("margin", 0, "Slide margin as a fraction of the slide size")
	cmd.Flags().Bool("draft", false, "Show speaker notes inline")
	cmd.Flags().Bool("embed", false, "Embed images and videos as data URIs")
	cmd.Flags().Bool("sanitize", false, "Sanitize HTML produced from markdown")
	cmd.Flags().String("filename", "", "Output filename relative to the source directory")
}

func runBuild(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	a, err := newApp(cmd, sourceDir(sourcePath))
	if err != nil {
		return err
	}
	defer a.close()

	output, _ := cmd.Flags().GetString("output")
	req := a.request(sourcePath, output)

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		result, err := a.builder.Render(cmd.Context(), req)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(result.HTML)
		return err
	}

	result, err := a.builder.Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d fragments, %d hidden)\n", result.OutputPath, result.Fragments, result.Hidden)
	return nil
}
