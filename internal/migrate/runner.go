// Package migrate drives the item-by-item migration pipeline: fetch,
// dump, translate, create, attach, with a retry pass for transient
// failures.
package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/nvinuesa/opmigrate/internal/model"
	"github.com/nvinuesa/opmigrate/internal/opitem"
	"github.com/nvinuesa/opmigrate/internal/translate"
)

// Source lists vault items and fetches their attachments.
type Source interface {
	ListItems(ctx context.Context, collectionID string) ([]model.Item, error)
	DownloadAttachment(ctx context.Context, itemID, attachmentID, outPath string) error
}

// Destination creates items and attaches files to them.
type Destination interface {
	CreateItem(ctx context.Context, doc *opitem.Document) (string, error)
	AttachFile(ctx context.Context, itemID, path string) error
}

// Prompter decides whether a failed item is skipped (true) or retried in
// the next pass. It is only consulted for retryable failures; validation
// and unsupported-type failures always skip.
type Prompter func(itemName string, reason error) (skip bool, err error)

// Options configures a migration run.
type Options struct {
	// CollectionID selects the source collection.
	CollectionID string
	// DataDir holds dumps and staged attachments.
	DataDir string
	// Dump writes each item as JSON before and after translation.
	Dump bool
	// DryRun translates (and dumps) without writing to the destination.
	DryRun bool
	// Cleanup removes DataDir once the run completes.
	Cleanup bool
}

// Stats summarizes a migration run.
type Stats struct {
	Total    int // items fetched from the source
	Migrated int // items created in the destination
	Skipped  int // items dropped with a logged reason
	Retries  int // deferred item attempts across retry passes
}

// Runner executes a migration run. It is single-threaded: items are
// processed one at a time, in source order.
type Runner struct {
	src    Source
	dst    Destination
	prompt Prompter
	log    *zap.SugaredLogger
	opts   Options
}

// NewRunner creates a runner. A nil logger disables logging and a nil
// prompter skips failed items after their first retryable failure.
func NewRunner(src Source, dst Destination, prompt Prompter, log *zap.SugaredLogger, opts Options) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if prompt == nil {
		prompt = func(string, error) (bool, error) { return true, nil }
	}
	return &Runner{src: src, dst: dst, prompt: prompt, log: log, opts: opts}
}

// Run migrates every item of the configured collection. Items that fail
// validation are skipped immediately; items that fail on the destination
// side are deferred and retried until they succeed or the prompter
// chooses to skip them.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	items, err := r.src.ListItems(ctx, r.opts.CollectionID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(items)}
	r.log.Infow("fetched items", "collection", r.opts.CollectionID, "count", len(items))

	pending := items
	for len(pending) > 0 {
		var remaining []model.Item

		for i := range pending {
			item := &pending[i]

			err := r.migrateItem(ctx, item)
			if err == nil {
				stats.Migrated++
				r.log.Infow("migrated item", "item", item.Name, "type", item.Type)
				continue
			}

			if translate.IsValidation(err) || translate.IsUnsupportedType(err) {
				stats.Skipped++
				r.log.Warnw("skipping item", "item", item.Name, "reason", err)
				continue
			}

			skip, promptErr := r.prompt(item.Name, err)
			if promptErr != nil {
				return stats, promptErr
			}
			if skip {
				stats.Skipped++
				r.log.Warnw("skipping item", "item", item.Name, "reason", err)
				continue
			}
			remaining = append(remaining, *item)
		}

		if len(remaining) > 0 {
			stats.Retries += len(remaining)
			r.log.Infow("retrying items", "count", len(remaining))
		}
		pending = remaining
	}

	if r.opts.Cleanup {
		if err := os.RemoveAll(r.opts.DataDir); err != nil {
			r.log.Warnw("cleanup failed", "dir", r.opts.DataDir, "error", err)
		}
	}

	return stats, nil
}

// migrateItem handles one item end to end.
func (r *Runner) migrateItem(ctx context.Context, item *model.Item) error {
	dumpName := dumpFileName(item)

	if r.opts.Dump {
		if err := writeDump(filepath.Join(r.opts.DataDir, "bitwarden_items"), dumpName, item); err != nil {
			return err
		}
	}

	doc, err := translate.Translate(item)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("translated document for %q: %w", item.Name, err)
	}

	if r.opts.Dump {
		if err := writeDump(filepath.Join(r.opts.DataDir, "1password_items"), dumpName, doc); err != nil {
			return err
		}
	}

	if r.opts.DryRun {
		return nil
	}

	newID, err := r.dst.CreateItem(ctx, doc)
	if err != nil {
		return err
	}

	return r.migrateAttachments(ctx, item, newID)
}

// migrateAttachments stages each attachment on disk and hands it to the
// destination, keyed by the newly created item's ID.
func (r *Runner) migrateAttachments(ctx context.Context, item *model.Item, newID string) error {
	if len(item.Attachments) == 0 {
		return nil
	}

	dir := filepath.Join(r.opts.DataDir, "attachments", newID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("stage attachments: %w", err)
	}

	for _, att := range item.Attachments {
		path := filepath.Join(dir, att.FileName)
		if err := r.src.DownloadAttachment(ctx, item.ID, att.ID, path); err != nil {
			return err
		}
		if err := r.dst.AttachFile(ctx, newID, path); err != nil {
			return err
		}
	}
	return nil
}
