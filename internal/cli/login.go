package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <oec>",
		Short: "Verify credentials for an investigator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openUserStore()
			if err != nil {
				fail(exitSysError, "login", err)
			}
			u, err := store.Authenticate(args[0], password)
			if err != nil {
				fail(exitUserError, "login", err)
			}
			if flags.jsonMode {
				return printJSON(u)
			}
			fmt.Printf("authenticated %s %s (OEČ %s, role %s)\n", u.FirstName, u.LastName, u.OEC, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the account")
	cmd.MarkFlagRequired("password")
	return cmd
}
