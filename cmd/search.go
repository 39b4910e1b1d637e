/**************************************************************************************************
** Search commands: date-range and tag-criteria search over a user's whole photo library,
** with an option to capture the results as a new album.
**************************************************************************************************/

package main

import (
	"time"

	"github.com/photokeep/photokeep/pkg/photos"
	"github.com/spf13/cobra"
)

// Accepted layouts for --from / --to values.
var dateLayouts = []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

/**************************************************************************************************
** newSearchCmd builds the `search` command. Exactly one search family applies per run:
**
**   search --user alice --from 2024-01-01 --to 2024-02-01
**   search --user alice --tag location=Paris
**   search --user alice --tag location=Paris --tag2 person=Bob --mode and|or
**
** --save-album NAME captures the result list as a new album, silently skipping photos the
** new album already received (duplicate results).
**************************************************************************************************/
func newSearchCmd() *cobra.Command {
	var fromArg, toArg string
	var tagArg, tag2Arg, modeArg string
	var saveAlbum string

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search a user's photos by date range or tags",
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)

			var results []*photos.Photo
			switch {
			case fromArg != "" || toArg != "":
				if tagArg != "" {
					logger.Fatal("Use either a date range or tags, not both")
				}
				from, okFrom := parseDate(fromArg)
				to, okTo := parseDate(toArg)
				if !okFrom || !okTo {
					logger.Fatalf("Dates must look like 2006-01-02 or 2006-01-02T15:04:05")
				}
				results = user.SearchByDateRange(from, to)

			case tagArg != "":
				name, value, ok := splitTagArg(tagArg)
				if !ok {
					logger.Fatalf("Tag must look like name=value, got %q", tagArg)
				}
				criteria := photos.NewTagCriteria(name, value)
				if tag2Arg != "" {
					name2, value2, ok2 := splitTagArg(tag2Arg)
					if !ok2 {
						logger.Fatalf("Tag must look like name=value, got %q", tag2Arg)
					}
					switch modeArg {
					case "and":
						criteria = photos.NewPairCriteria(name, value, name2, value2, true)
					case "or", "":
						criteria = photos.NewPairCriteria(name, value, name2, value2, false)
					default:
						logger.Fatalf("--mode must be 'and' or 'or', got %q", modeArg)
					}
				}
				results = user.SearchByTags(criteria)

			default:
				logger.Fatal("Provide --from/--to or --tag")
			}

			for _, photo := range results {
				cmd.Printf("%s  %s\n", photo.DateTaken.Format("2006-01-02 15:04:05"), photo.FilePath)
			}
			logger.Infof("Found %d photos", len(results))

			if saveAlbum != "" {
				if !user.CreateAlbumFromSearch(saveAlbum, results) {
					logger.Errorf("Album %q already exists", saveAlbum)
					return
				}
				saveUserOrDie(library, user, logger)
				cmd.Println(successColor("saved results as album " + saveAlbum))
			}
		},
	}

	searchCmd.Flags().StringVar(&userName, "user", "", "Account to search")
	searchCmd.Flags().StringVar(&fromArg, "from", "", "Range start, inclusive")
	searchCmd.Flags().StringVar(&toArg, "to", "", "Range end, inclusive")
	searchCmd.Flags().StringVar(&tagArg, "tag", "", "Tag to match, name=value")
	searchCmd.Flags().StringVar(&tag2Arg, "tag2", "", "Second tag for AND/OR matching")
	searchCmd.Flags().StringVar(&modeArg, "mode", "", "Pair mode: and | or")
	searchCmd.Flags().StringVar(&saveAlbum, "save-album", "", "Create an album from the results")
	return searchCmd
}
