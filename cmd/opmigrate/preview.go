package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nvinuesa/opmigrate/internal/bitwarden"
	"github.com/nvinuesa/opmigrate/internal/config"
	"github.com/nvinuesa/opmigrate/internal/model"
	"github.com/nvinuesa/opmigrate/internal/translate"
)

var previewFlags struct {
	unlock bool
}

var previewCmd = &cobra.Command{
	Use:   "preview <collection-id>",
	Short: "Preview a collection without importing anything",
	Long: `Preview the items of a Bitwarden collection without writing anything.

The preview command shows item counts by type, flags the items that would
be skipped during migration, and lists attachment and custom field totals.

Examples:
  # Preview a collection
  opmigrate preview 3f54d915

  # Unlock the vault first
  opmigrate preview 3f54d915 --unlock`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&previewFlags.unlock, "unlock", false, "unlock the Bitwarden vault first (prompts for the master password)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	bw := bitwarden.NewClient(cfg.BWPath, nil)
	if cfg.BWSession != "" {
		bw.SetSession(cfg.BWSession)
	}
	if previewFlags.unlock {
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

	items, err := bw.ListItems(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPreview(args[0], items)
	return nil
}

func printPreview(collectionID string, items []model.Item) {
	typeCounts := make(map[string]int)
	attachments := 0
	customFields := 0
	var problems []string

	for i := range items {
		item := &items[i]
		typeCounts[item.Type.String()]++
		attachments += len(item.Attachments)
		customFields += len(item.Fields)

		if _, err := translate.Translate(item); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", item.Name, err))
		}
	}

	fmt.Printf("Collection: %s\n", collectionID)
	fmt.Printf("Items: %d total\n", len(items))

	typeNames := make([]string, 0, len(typeCounts))
	for name := range typeCounts {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)
	for _, name := range typeNames {
		fmt.Printf("  - %d %s\n", typeCounts[name], name)
	}

	fmt.Printf("Attachments: %d\n", attachments)
	fmt.Printf("Custom fields: %d\n", customFields)

	if len(problems) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d item(s) would be skipped:\n", len(problems))
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
	}
}
