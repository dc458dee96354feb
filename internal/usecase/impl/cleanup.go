package impl

import (
	"context"
	"log/slog"

	"vitrine/internal/domain/service"
)

// cleanupBlobs best-effort deletes the blobs behind the given public URLs.
// URLs outside the bucket (hotlinked or legacy images) are skipped, and
// failures are logged and swallowed: the database row is the authority, a
// stray blob is just storage waste.
func cleanupBlobs(ctx context.Context, store service.BlobStore, logger *slog.Logger, urls ...string) {
	for _, url := range urls {
		if url == "" || !store.OwnsURL(url) {
			continue
		}

		if err := store.DeleteByPublicURL(ctx, url); err != nil {
			logger.WarnContext(ctx, "blob cleanup failed",
				slog.String("url", url),
				slog.String("error", err.Error()),
			)
		}
	}
}
