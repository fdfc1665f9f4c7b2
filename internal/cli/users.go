package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fireline-tools/fireline/pkg/types"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage investigator accounts",
	}
	cmd.AddCommand(
		newUsersAddCmd(),
		newUsersListCmd(),
		newUsersPasswdCmd(),
		newUsersActivateCmd(true),
		newUsersActivateCmd(false),
	)
	return cmd
}

func newUsersAddCmd() *cobra.Command {
	var (
		password  string
		role      string
		firstName string
		lastName  string
		phone     string
		email     string
		region    string
	)

	cmd := &cobra.Command{
		Use:   "add <oec>",
		Short: "Add an investigator account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openUserStore()
			if err != nil {
				fail(exitSysError, "users add", err)
			}
			u := types.User{
				OEC:       args[0],
				Role:      role,
				FirstName: firstName,
				LastName:  lastName,
				Phone:     phone,
				Email:     email,
				Region:    region,
			}
			if err := store.Add(u, password); err != nil {
				fail(exitUserError, "users add", err)
			}
			fmt.Printf("added user %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "initial password")
	cmd.MarkFlagRequired("password")
	cmd.Flags().StringVar(&role, "role", types.RoleUser, "account role (admin or user)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&region, "region", "", "assigned region")
	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openUserStore()
			if err != nil {
				fail(exitSysError, "users list", err)
			}
			list := store.List()
			if flags.jsonMode {
				return printJSON(list)
			}
			for _, u := range list {
				state := "active"
				if !u.Active {
					state = "inactive"
				}
				fmt.Printf("%s\t%s\t%s %s\t%s\n", u.OEC, u.Role, u.FirstName, u.LastName, state)
			}
			return nil
		},
	}
}

func newUsersPasswdCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd <oec>",
		Short: "Change an account password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openUserStore()
			if err != nil {
				fail(exitSysError, "users passwd", err)
			}
			if err := store.SetPassword(args[0], password); err != nil {
				fail(exitUserError, "users passwd", err)
			}
			fmt.Printf("password changed for %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "new password")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersActivateCmd(active bool) *cobra.Command {
	use, short := "activate <oec>", "Re-enable an account"
	if !active {
		use, short = "deactivate <oec>", "Disable an account without deleting it"
	}
	name := "users activate"
	if !active {
		name = "users deactivate"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openUserStore()
			if err != nil {
				fail(exitSysError, name, err)
			}
			if err := store.SetActive(args[0], active); err != nil {
				fail(exitUserError, name, err)
			}
			return nil
		},
	}
}
