package snapshot

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a stable content hash of a rendered snapshot, used by
// cmd/browsercli's TakeSnapshotWithMeta (the `watch` subcommand) to detect
// unchanged snapshots between polls; internal/store records the digest
// alongside each entry so identical text is not re-stored.
func Digest(rendered string) string {
	sum := xxhash.Sum64String(rendered)
	return strconv.FormatUint(sum, 16)
}
