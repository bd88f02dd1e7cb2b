package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/revealdeck/internal/domain/services"
)

// newSlugCmd prints the slide id a title would get
func newSlugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slug TEXT...",
		Short: "Print the slug revealdeck derives from a title or id",
		Example: `  revealdeck slug "Section_1.Intro"
  revealdeck slug --keep-case CamelCase2Test`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keepCase, _ := cmd.Flags().GetBool("keep-case")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), services.Slugify(strings.Join(args, " "), !keepCase))
			return err
		},
	}

	cmd.Flags().Bool("keep-case", false, "Do not lower-case the slug")
	return cmd
}
