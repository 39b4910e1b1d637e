/**************************************************************************************************
** Photo-level commands: importing files into albums, captions, per-photo tags, tag type
** definitions and the user-level tag namespace.
**************************************************************************************************/

package main

import (
	"path/filepath"
	"strings"

	"github.com/photokeep/photokeep/pkg/photos"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** splitTagArg parses a "name=value" argument into its parts. The name side is what gets
** lowercased by the model; here we only split.
**************************************************************************************************/
func splitTagArg(arg string) (string, string, bool) {
	name, value, found := strings.Cut(arg, "=")
	if !found || name == "" {
		return "", "", false
	}
	return name, value, true
}

/**************************************************************************************************
** findPhoto resolves a file path argument to the user's registered photo, or nil.
**************************************************************************************************/
func findPhoto(user *photos.User, path string) *photos.Photo {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	for _, photo := range user.AllPhotos() {
		if photo.FilePath == abs {
			return photo
		}
	}
	return nil
}

/**************************************************************************************************
** newImportCmd builds `import <files...> --user --album [--exif]`. Each file is resolved
** through the user's photo registry, so re-importing a known file into another album
** reuses the same photo and its caption and tags.
**************************************************************************************************/
func newImportCmd() *cobra.Command {
	var albumName string
	var useExif bool

	importCmd := &cobra.Command{
		Use:   "import <files...>",
		Short: "Import photo files into an album",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			if user.Album(albumName) == nil {
				logger.Fatalf("Album %q not found", albumName)
			}

			added := 0
			for _, path := range args {
				photo := user.AddPhotoWithOptions(path, albumName, useExif)
				if photo == nil {
					logger.Warnf("Skipped %s: unreadable or already in %q", path, albumName)
					continue
				}
				added++
				cmd.Printf("%s %s (%s)\n", successColor("+"), photo.FileName(), photo.DateTaken.Format("2006-01-02 15:04:05"))
			}
			saveUserOrDie(library, user, logger)
			logger.Infof("Imported %d of %d files into %q", added, len(args), albumName)
		},
	}

	importCmd.Flags().StringVar(&userName, "user", "", "Account to import into")
	importCmd.Flags().StringVar(&albumName, "album", "", "Target album")
	importCmd.Flags().BoolVar(&useExif, "exif", false, "Prefer the EXIF capture date over the file mtime")
	return importCmd
}

/**************************************************************************************************
** newCaptionCmd builds `caption <file> <caption> --user`. The caption change is visible
** from every album holding the photo.
**************************************************************************************************/
func newCaptionCmd() *cobra.Command {
	captionCmd := &cobra.Command{
		Use:   "caption <file> <caption>",
		Short: "Set a photo's caption",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			photo := findPhoto(user, args[0])
			if photo == nil {
				logger.Fatalf("Photo %q is not in the library", args[0])
			}
			photo.SetCaption(args[1])
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("captioned " + photo.FileName()))
		},
	}
	captionCmd.Flags().StringVar(&userName, "user", "", "Account that owns the photo")
	return captionCmd
}

/**************************************************************************************************
** newTagCmd builds `tag add|remove <file> name=value --user` for per-photo tags.
** Duplicate tags (case-insensitive on name and value) are rejected.
**************************************************************************************************/
func newTagCmd() *cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage a photo's tags",
	}
	tagCmd.PersistentFlags().StringVar(&userName, "user", "", "Account that owns the photo")

	addCmd := &cobra.Command{
		Use:   "add <file> <name=value>",
		Short: "Add a tag to a photo",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			photo := findPhoto(user, args[0])
			if photo == nil {
				logger.Fatalf("Photo %q is not in the library", args[0])
			}
			name, value, ok := splitTagArg(args[1])
			if !ok {
				logger.Fatalf("Tag must look like name=value, got %q", args[1])
			}
			if !photo.AddTag(name, value) {
				logger.Errorf("Photo already carries %s=%s", name, value)
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("tagged " + photo.FileName()))
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <file> <name=value>",
		Short: "Remove a tag from a photo",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			photo := findPhoto(user, args[0])
			if photo == nil {
				logger.Fatalf("Photo %q is not in the library", args[0])
			}
			name, value, ok := splitTagArg(args[1])
			if !ok {
				logger.Fatalf("Tag must look like name=value, got %q", args[1])
			}
			if !photo.RemoveTag(name, value) {
				logger.Errorf("Photo does not carry %s=%s", name, value)
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("untagged " + photo.FileName()))
		},
	}

	tagCmd.AddCommand(addCmd)
	tagCmd.AddCommand(removeCmd)
	return tagCmd
}

/**************************************************************************************************
** newTagTypeCmd builds `tagtype add <name> [--multiple] --user`, registering a tag name
** as single- or multi-valued for the account.
**************************************************************************************************/
func newTagTypeCmd() *cobra.Command {
	var multiple bool

	tagTypeCmd := &cobra.Command{
		Use:   "tagtype",
		Short: "Manage a user's tag type definitions",
	}
	tagTypeCmd.PersistentFlags().StringVar(&userName, "user", "", "Account to define the tag type for")

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a tag type",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			if !user.AddTagType(args[0], !multiple) {
				logger.Errorf("Tag type %q already exists", args[0])
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("added tag type " + strings.ToLower(args[0])))
		},
	}
	addCmd.Flags().BoolVar(&multiple, "multiple", false, "Allow several values at once (default single-valued)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tag types and their cardinality",
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			for name, cardinality := range user.TagTypes() {
				cmd.Printf("%s: %s\n", name, cardinality)
			}
		},
	}

	tagTypeCmd.AddCommand(addCmd)
	tagTypeCmd.AddCommand(listCmd)
	return tagTypeCmd
}

/**************************************************************************************************
** newUserTagCmd builds `usertag add|remove|list` for the user-level tag namespace, which
** is independent of any photo's tags.
**************************************************************************************************/
func newUserTagCmd() *cobra.Command {
	userTagCmd := &cobra.Command{
		Use:   "usertag",
		Short: "Manage a user's own tags",
	}
	userTagCmd.PersistentFlags().StringVar(&userName, "user", "", "Account that owns the tags")

	addCmd := &cobra.Command{
		Use:   "add <name=value>",
		Short: "Add a user-level tag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			name, value, ok := splitTagArg(args[0])
			if !ok {
				logger.Fatalf("Tag must look like name=value, got %q", args[0])
			}
			if !user.AddTag(photos.NewTag(name, value)) {
				logger.Errorf("User already carries %s=%s", name, value)
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("tagged user " + user.Username()))
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <name=value>",
		Short: "Remove a user-level tag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			name, value, ok := splitTagArg(args[0])
			if !ok {
				logger.Fatalf("Tag must look like name=value, got %q", args[0])
			}
			if !user.RemoveTag(photos.NewTag(name, value)) {
				logger.Errorf("User does not carry %s=%s", name, value)
				return
			}
			saveUserOrDie(library, user, logger)
			cmd.Println(successColor("untagged user " + user.Username()))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List user-level tags",
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			for _, tag := range user.Tags() {
				cmd.Println(tag.String())
			}
		},
	}

	userTagCmd.AddCommand(addCmd)
	userTagCmd.AddCommand(removeCmd)
	userTagCmd.AddCommand(listCmd)
	return userTagCmd
}
