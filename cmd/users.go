/**************************************************************************************************
** Account management commands: the admin role's create/delete/list operations, plus a
** login command exercising the session state machine.
**************************************************************************************************/

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var successColor = color.New(color.FgGreen).SprintFunc()
var failureColor = color.New(color.FgRed).SprintFunc()

/**************************************************************************************************
** newUsersCmd builds the `users` command group: list, create <name>, delete <name>.
** Create and delete go through the Admin registry, which persists the account record in
** the same call.
**************************************************************************************************/
func newUsersCmd() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all user accounts",
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			for _, name := range library.Admin().ListUsers() {
				cmd.Println(name)
			}
		},
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			if !library.Admin().CreateUser(args[0]) {
				logger.Errorf("Cannot create user %q: name is reserved, blank or taken", args[0])
				return
			}
			if err := library.SaveAdmin(); err != nil {
				logger.WithError(err).Fatal("Failed to save admin registry")
			}
			cmd.Println(successColor("created " + args[0]))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a user account and its data",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			if !library.Admin().DeleteUser(args[0]) {
				logger.Errorf("Cannot delete user %q: reserved or not found", args[0])
				return
			}
			if err := library.SaveAdmin(); err != nil {
				logger.WithError(err).Fatal("Failed to save admin registry")
			}
			cmd.Println(successColor("deleted " + args[0]))
		},
	}

	usersCmd.AddCommand(listCmd)
	usersCmd.AddCommand(createCmd)
	usersCmd.AddCommand(deleteCmd)
	return usersCmd
}

/**************************************************************************************************
** newLoginCmd builds the `login <name>` command. Logging in as "admin" starts the
** privileged session; any other name must be a registered account.
**************************************************************************************************/
func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Verify a login and report the session kind",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			if !library.Login(args[0]) {
				cmd.Println(failureColor("login failed: unknown account " + args[0]))
				return
			}
			cmd.Printf("%s (session: %s)\n", successColor("login ok"), library.State())
			library.Logout()
		},
	}
}
