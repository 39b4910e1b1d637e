/**************************************************************************************************
** Main entry point for the photokeep CLI. A single-user photo organizer: accounts hold
** albums of tagged photos persisted to a file-per-user JSON store, searchable by date
** range and tag combinations, with an admin role managing the accounts.
**************************************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Application entry point. Sets up the CLI command structure using Cobra, including all
** available commands and their associated flags. Handles command execution and error
** reporting.
**************************************************************************************************/
func main() {
	var rootCmd = &cobra.Command{
		Use:   "photokeep",
		Short: "Photokeep CLI",
		Long:  "A tool to organize photos into per-user albums with tags, search and flat-file persistence.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Storage directory (or set DATA_DIR env var)")
	rootCmd.PersistentFlags().StringVar(&stockDir, "stock-dir", "", "Stock photo directory (or set STOCK_DIR env var)")

	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newAlbumsCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newCaptionCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newTagTypeCmd())
	rootCmd.AddCommand(newUserTagCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newLoginCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
