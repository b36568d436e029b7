// Package bitwarden wraps the Bitwarden CLI (`bw`), the source of the
// migration. The CLI is treated as a black box: items are listed per
// collection and attachments are fetched to disk by ID.
package bitwarden

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nvinuesa/opmigrate/internal/model"
	"github.com/nvinuesa/opmigrate/internal/proc"
)

// Runner executes external commands. Satisfied by proc.Exec.
type Runner interface {
	Run(ctx context.Context, stdin []byte, extraEnv []string, name string, args ...string) ([]byte, error)
}

// Client invokes the bw binary. Invocations are blocking and sequential;
// the session token, when set, is passed via BW_SESSION.
type Client struct {
	bin     string
	session string
	run     Runner
}

// NewClient creates a bw client. bin defaults to "bw" and run to the
// real process executor when nil.
func NewClient(bin string, run Runner) *Client {
	if bin == "" {
		bin = "bw"
	}
	if run == nil {
		run = proc.Exec{}
	}
	return &Client{bin: bin, run: run}
}

// SetSession sets the vault session token for subsequent invocations.
func (c *Client) SetSession(token string) {
	c.session = token
}

func (c *Client) env() []string {
	if c.session == "" {
		return nil
	}
	return []string{"BW_SESSION=" + c.session}
}

// Unlock unlocks the vault with the master password and returns the
// session token. The password is handed to the CLI through the
// environment so it never appears in the process arguments.
func (c *Client) Unlock(ctx context.Context, password string) (string, error) {
	env := append(c.env(), "BW_PASSWORD="+password)
	out, err := c.run.Run(ctx, nil, env, c.bin, "unlock", "--raw", "--passwordenv", "BW_PASSWORD")
	if err != nil {
		return "", fmt.Errorf("unlock vault: %w", err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", fmt.Errorf("unlock vault: empty session token")
	}
	return token, nil
}

// ListItems fetches all items of a collection.
func (c *Client) ListItems(ctx context.Context, collectionID string) ([]model.Item, error) {
	out, err := c.run.Run(ctx, nil, c.env(), c.bin, "list", "items", "--collectionid="+collectionID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	var items []model.Item
	if err := json.Unmarshal(out, &items); err != nil {
		return nil, fmt.Errorf("list items: decode output: %w", err)
	}
	return items, nil
}

// DownloadAttachment fetches one attachment of an item to outPath.
func (c *Client) DownloadAttachment(ctx context.Context, itemID, attachmentID, outPath string) error {
	_, err := c.run.Run(ctx, nil, c.env(), c.bin,
		"get", "attachment", attachmentID,
		"--itemid="+itemID,
		"--output="+outPath,
	)
	if err != nil {
		return fmt.Errorf("get attachment %s: %w", attachmentID, err)
	}
	return nil
}
