package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstudio/algorithms"
)

func algorithmsCmd(a *app) *cobra.Command {
	var (
		remote  bool
		baseURL string
	)
	cmd := &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algos"},
		Short:   "List the supported algorithms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := algorithms.Catalog()
			if remote {
				c := a.client(baseURL)
				h, err := c.Health(cmd.Context())
				if err != nil {
					return err
				}
				good.Fprintf(cmd.ErrOrStderr(), "service %s: %s\n", h.Status, h.Message)
				if list, err = c.Algorithms(cmd.Context()); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			width := 0
			for _, in := range list {
				width = max(width, len(in.ID))
			}
			for _, in := range list {
				brand.Fprintf(out, "%-*s  ", width, in.ID)
				fmt.Fprint(out, in.Name)
				if len(in.Needs) > 0 {
					subtle.Fprintf(out, "  [%s]", strings.Join(in.Needs, ", "))
				}
				fmt.Fprintln(out)
				subtle.Fprintf(out, "%-*s  %s\n", width, "", in.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "ask the algorithm service instead of the built-in catalog")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "service API root (default from config)")
	return cmd
}
