// Version command for the fireline CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fireline-tools/fireline/pkg/fireline"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the fireline version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("fireline", fireline.Version)
		},
	}
}
