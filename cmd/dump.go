/**************************************************************************************************
** The dump command pretty-prints a user's in-memory object graph for debugging: albums,
** registry, tag types and user tags as they exist after load and rehydration.
**************************************************************************************************/

package main

import (
	"github.com/photokeep/photokeep/pkg/utils"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Pretty-print a user's loaded object graph",
		Run: func(cmd *cobra.Command, args []string) {
			library, logger, err := openLibrary()
			if err != nil {
				logger.WithError(err).Fatal("Failed to open library")
			}
			user := requireUser(library, logger)
			utils.Pretty(user.Albums(), user.AllPhotos(), user.TagTypes(), user.Tags())
		},
	}
	dumpCmd.Flags().StringVar(&userName, "user", "", "Account to dump")
	return dumpCmd
}
