package main

import (
	"context"
	"fmt"
	"time"

	"github.com/polzovatel/browsercli/internal/cdp"
	"github.com/polzovatel/browsercli/internal/snapshot"
	"github.com/polzovatel/browsercli/internal/store"
)

// TakeSnapshotWithMeta is the CLI-facing wrapper around the snapshot
// engine's take_snapshot contract: it calls snapshot.TakeSnapshot, derives
// a snapshot.Digest, and — when history recording is enabled — records a
// store.Entry, reporting whether the digest changed from the last one on
// file for url/mode. With recording off or a nil history it always reports
// changed as true. It is not part of the engine's public contract and
// stays out of internal/snapshot for that reason; history is an optional
// CLI-level concern (the watch subcommand) the engine itself knows nothing
// about.
func TakeSnapshotWithMeta(
	ctx context.Context,
	transport cdp.Transport,
	opts snapshot.Options,
	history *store.History,
	url, mode string,
	recordHistory bool,
) (rendered, digest string, changed bool, err error) {
	rendered, err = snapshot.TakeSnapshot(ctx, transport, opts)
	if err != nil {
		return "", "", false, fmt.Errorf("snapshot: %w", err)
	}
	digest = snapshot.Digest(rendered)

	if !recordHistory || history == nil {
		return rendered, digest, true, nil
	}

	latest, ok, err := history.Latest(ctx, url, mode)
	if err != nil {
		return "", "", false, err
	}
	changed = !ok || latest.Digest != digest
	if !changed {
		return rendered, digest, false, nil
	}

	if err := history.Insert(ctx, url, mode, digest, rendered, time.Now()); err != nil {
		return "", "", false, err
	}
	return rendered, digest, true, nil
}
