/**************************************************************************************************
** Album management commands: list, create, delete and rename albums for one account.
**************************************************************************************************/

package main

import (
	"github.com/photokeep/photokeep/pkg/photos"
	"github.com/photokeep/photokeep/pkg/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** requireUser resolves the --user flag against the library, exiting with a clear error
** when the account does not exist. The admin placeholder is a valid target so the admin
** identity can be inspected like any other in-memory user.
**************************************************************************************************/
func requireUser(library *store.Library, logger *logrus.Logger) *photos.User {
	if userName == "" {
		logger.Fatal("--user is required")
	}
	user := library.UserByName(userName)
	if user == nil {
		logger.Fatalf("Unknown user %q", userName)
	}
	return user
}

/**************************************************************************************************
** newAlbumsCmd builds the `albums` command group for one user: list, create <name>,
** delete <name>, rename <old> <new>.
**************************************************************************************************/
func newAlbumsCmd() *cobra.Command {
	albumsCmd := &cobra.Command{
		Use:   "albums",
		Short: "Manage a user's albums",
	}
	albumsCmd.PersistentFlags().StringVar(&userName, "user", "", "Account that owns the albums")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List albums with photo counts and date ranges",
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			for _, album := range user.Albums() {
				cmd.Printf("%s — %s\n", album, album.DateRangeString())
			}
		},
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an album",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			if !user.CreateAlbum(args[0]) {
				logger.Errorf("Album %q already exists", args[0])
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("created album " + args[0]))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an album",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			if !user.DeleteAlbum(args[0]) {
				logger.Errorf("Album %q not found", args[0])
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("deleted album " + args[0]))
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename an album",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			if !user.RenameAlbum(args[0], args[1]) {
				logger.Errorf("Cannot rename %q to %q: source missing or name taken", args[0], args[1])
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("renamed " + args[0] + " to " + args[1]))
		},
	}

	albumsCmd.AddCommand(listCmd)
	albumsCmd.AddCommand(createCmd)
	albumsCmd.AddCommand(deleteCmd)
	albumsCmd.AddCommand(renameCmd)
	return albumsCmd
}

func saveUserOrDie(library *store.Library, user *photos.User, logger *logrus.Logger) {
	if err := library.SaveUser(user); err != nil {
		logger.WithError(err).Fatal("Failed to save user record")
	}
}
