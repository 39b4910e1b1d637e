/**************************************************************************************************
** The show command renders an album through an ImageRenderer. The CLI's renderer is plain
** text: it prints the path, the capture date and the tags. A graphical front end would
** plug its own renderer in here; the core never touches image bytes either way.
**************************************************************************************************/

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/photokeep/photokeep/pkg/photos"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** textRenderer implements photos.ImageRenderer on a writer: one line per photo with the
** file path highlighted, plus caption and tags when present.
**************************************************************************************************/
type textRenderer struct {
	out io.Writer
}

var pathColor = color.New(color.FgCyan).SprintFunc()

func (r *textRenderer) Render(photo *photos.Photo) error {
	if photo == nil {
		return fmt.Errorf("no photo to render")
	}
	line := fmt.Sprintf("%s  %s", photo.DateTaken.Format("2006-01-02 15:04:05"), pathColor(photo.FilePath))
	if photo.Caption != "" {
		line += "  " + photo.Caption
	}
	for _, tag := range photo.Tags {
		line += fmt.Sprintf("  [%s]", tag)
	}
	_, err := fmt.Fprintln(r.out, line)
	return err
}

/**************************************************************************************************
** newShowCmd builds `show <album> --user`, rendering every photo in the album in order.
**************************************************************************************************/
func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <album>",
		Short: "Render an album's photos",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			album := user.Album(args[0])
			if album == nil {
				logger.Fatalf("Album %q not found", args[0])
			}

			var renderer photos.ImageRenderer = &textRenderer{out: cmd.OutOrStdout()}
			for _, photo := range album.Photos() {
				if err := renderer.Render(photo); err != nil {
					logger.WithError(err).Error("Failed to render photo")
				}
			}
			cmd.Printf("%s: %d photos, %s\n", album.Name(), album.Count(), album.DateRangeString())
		},
	}
	showCmd.Flags().StringVar(&userName, "user", "", "Account that owns the album")
	return showCmd
}
