// Package onepassword wraps the 1Password CLI (`op`), the destination of
// the migration. Item documents are piped to `op item create` as JSON;
// attachments are added afterwards with `op item edit`.
package onepassword

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nvinuesa/opmigrate/internal/opitem"
	"github.com/nvinuesa/opmigrate/internal/proc"
)

// Runner executes external commands. Satisfied by proc.Exec.
type Runner interface {
	Run(ctx context.Context, stdin []byte, extraEnv []string, name string, args ...string) ([]byte, error)
}

// Client invokes the op binary for a fixed account and vault.
type Client struct {
	bin     string
	account string
	vault   string
	run     Runner
}

// NewClient creates an op client. bin defaults to "op" and run to the
// real process executor when nil.
func NewClient(bin, account, vault string, run Runner) *Client {
	if bin == "" {
		bin = "op"
	}
	if run == nil {
		run = proc.Exec{}
	}
	return &Client{bin: bin, account: account, vault: vault, run: run}
}

// CreateItem creates an item from the document and returns the new
// item's ID as reported by the CLI.
func (c *Client) CreateItem(ctx context.Context, doc *opitem.Document) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("create item: encode document: %w", err)
	}

	out, err := c.run.Run(ctx, payload, nil, c.bin,
		"--account", c.account,
		"item", "create",
		"--vault", c.vault,
		"--format=json",
		"-",
	)
	if err != nil {
		return "", fmt.Errorf("create item: %w", err)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(out, &created); err != nil {
		return "", fmt.Errorf("create item: decode output: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("create item: no item id in output")
	}
	return created.ID, nil
}

// AttachFile attaches the file at path to an existing item.
func (c *Client) AttachFile(ctx context.Context, itemID, path string) error {
	_, err := c.run.Run(ctx, nil, nil, c.bin,
		"--account", c.account,
		"item", "edit", itemID,
		"[file]="+path,
	)
	if err != nil {
		return fmt.Errorf("attach file to item %s: %w", itemID, err)
	}
	return nil
}
