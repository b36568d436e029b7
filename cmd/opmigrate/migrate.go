package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/nvinuesa/opmigrate/internal/bitwarden"
	"github.com/nvinuesa/opmigrate/internal/config"
	"github.com/nvinuesa/opmigrate/internal/migrate"
	"github.com/nvinuesa/opmigrate/internal/onepassword"
)

var migrateFlags struct {
	account   string
	vault     string
	dataDir   string
	dryRun    bool
	dump      bool
	noCleanup bool
	unlock    bool
	yes       bool
	verbose   bool
}

var migrateCmd = &cobra.Command{
	Use:   "migrate <collection-id>",
	Short: "Import a Bitwarden collection into a 1Password vault",
	Long: `Import every item of a Bitwarden collection into a 1Password vault.

Each item is translated into 1Password's item document format and created
with the op CLI; attachments are downloaded from Bitwarden and attached to
the new item. Items with missing required fields or unsupported types are
skipped with a logged reason. Items that fail to import are retried; in an
interactive run you are asked per item whether to skip or try again.

Examples:
  # Migrate a collection
  opmigrate migrate 3f54d915 --account my.1password.com --vault Private

  # Unlock the Bitwarden vault first (prompts for the master password)
  opmigrate migrate 3f54d915 -a my -V Private --unlock

  # Keep the pre- and post-translation JSON dumps
  opmigrate migrate 3f54d915 -a my -V Private --dump --no-cleanup`,
	Args: cobra.ExactArgs(1),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateFlags.account, "account", "a", "", "1Password account shorthand, sign-in address, or ID")
	migrateCmd.Flags().StringVarP(&migrateFlags.vault, "vault", "V", "", "1Password vault name or ID to import into")
	migrateCmd.Flags().StringVar(&migrateFlags.dataDir, "data-dir", "", "directory for dumps and staged attachments")
	migrateCmd.Flags().BoolVar(&migrateFlags.dryRun, "dry-run", false, "translate items but do not import them")
	migrateCmd.Flags().BoolVar(&migrateFlags.dump, "dump", false, "dump each item as JSON before and after translation")
	migrateCmd.Flags().BoolVar(&migrateFlags.noCleanup, "no-cleanup", false, "keep the data directory after the run")
	migrateCmd.Flags().BoolVar(&migrateFlags.unlock, "unlock", false, "unlock the Bitwarden vault first (prompts for the master password)")
	migrateCmd.Flags().BoolVarP(&migrateFlags.yes, "yes", "y", false, "never prompt; skip items that fail to import")
	migrateCmd.Flags().BoolVarP(&migrateFlags.verbose, "verbose", "v", false, "verbose output")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	account := migrateFlags.account
	if account == "" {
		account = cfg.Account
	}
	if account == "" {
		return fmt.Errorf("1Password account is required (--account or OP_ACCOUNT)")
	}

	vault := migrateFlags.vault
	if vault == "" {
		vault = cfg.Vault
	}
	if vault == "" {
		return fmt.Errorf("1Password vault is required (--vault or OP_VAULT)")
	}

	dataDir := migrateFlags.dataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	logger, err := newLogger(migrateFlags.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	bw := bitwarden.NewClient(cfg.BWPath, nil)
	if cfg.BWSession != "" {
		bw.SetSession(cfg.BWSession)
	}
	if migrateFlags.unlock {
		password, err := promptPassword("Bitwarden master password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		session, err := bw.Unlock(cmd.Context(), password)
		if err != nil {
			return err
		}
		bw.SetSession(session)
	}

	op := onepassword.NewClient(cfg.OPPath, account, vault, nil)

	var prompt migrate.Prompter
	if !migrateFlags.yes {
		prompt = stdinPrompter(os.Stdin)
	}

	runner := migrate.NewRunner(bw, op, prompt, logger.Sugar(), migrate.Options{
		CollectionID: args[0],
		DataDir:      dataDir,
		Dump:         migrateFlags.dump,
		DryRun:       migrateFlags.dryRun,
		Cleanup:      !migrateFlags.noCleanup,
	})

	stats, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d of %d items migrated", stats.Migrated, stats.Total)
	if stats.Skipped > 0 {
		fmt.Fprintf(os.Stderr, ", %d skipped", stats.Skipped)
	}
	if migrateFlags.dryRun {
		fmt.Fprint(os.Stderr, " (dry run)")
	}
	fmt.Fprintln(os.Stderr)

	return nil
}

// newLogger builds the run logger. Verbose runs include debug output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr) // newline after password
	return string(password), err
}

// stdinPrompter asks per failed item whether it should be skipped or
// retried in the next pass. EOF counts as skip.
func stdinPrompter(in io.Reader) migrate.Prompter {
	reader := bufio.NewReader(in)
	return func(itemName string, reason error) (bool, error) {
		fmt.Fprintf(os.Stderr, "\nCould not import %q: %v\n", itemName, reason)
		fmt.Fprint(os.Stderr, "Should this item be skipped? (y/n) ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return true, nil
		}
		return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
	}
}
