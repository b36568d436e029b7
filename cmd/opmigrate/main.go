// Package main provides the entry point for the opmigrate CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-edge"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "opmigrate",
	Short: "Migrate Bitwarden items into a 1Password vault",
	Long: `opmigrate imports the items of a Bitwarden collection into a
1Password vault, including file attachments.

Items are read with the Bitwarden CLI (bw), translated into 1Password's
item document format, and created with the 1Password CLI (op). Both
binaries must be installed and signed in.

Examples:
  # Migrate a collection
  opmigrate migrate <collection-id> --account my.1password.com --vault Private

  # Inspect a collection without writing anything
  opmigrate preview <collection-id>

  # Translate and dump the JSON documents, but create nothing
  opmigrate migrate <collection-id> -a my -V Private --dry-run --dump --no-cleanup`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
