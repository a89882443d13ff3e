package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
)

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print the version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipCatalog: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.FormatterFromFlags(cmd)
			if formatter.JSON {
				return cli.PrintJSON("version", Version)
			}
			fmt.Println("portfolio " + Version)
			return nil
		},
	}
	cli.AddJSONFlag(cmd)
	return cmd
}
