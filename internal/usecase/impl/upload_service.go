package impl

import (
	"context"
	"log/slog"
	"strings"

	"vitrine/config"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/service"
	"vitrine/internal/upload"
	"vitrine/internal/usecase"

	"github.com/pkg/errors"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	blobStore   service.BlobStore
	logger      *slog.Logger
	maxFileSize int64
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(
	blobStore service.BlobStore,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.UploadUsecase {
	maxFileSize := cfg.Storage.MaxUploadSize
	if maxFileSize <= 0 {
		maxFileSize = upload.DefaultMaxFileSize
	}

	return &uploadService{
		blobStore:   blobStore,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// UploadImages validates and uploads a batch in one pass. Any rejected file
// fails the whole batch before a single byte reaches the store.
func (srv *uploadService) UploadImages(ctx context.Context, input *usecase.UploadImagesInput) ([]upload.Result, error) {
	if len(input.Files) == 0 {
		return nil, errors.Wrap(domainerrors.ErrUploadRejected, "no files provided")
	}

	maxFiles := input.MaxFiles
	if maxFiles <= 0 {
		maxFiles = len(input.Files)
	}

	stager := upload.NewStager(srv.blobStore, maxFiles, srv.maxFileSize)
	stager.SetStartIndex(input.StartIndex)
	if msgs := stager.AddFiles(input.Files); len(msgs) > 0 {
		return nil, domainerrors.ErrUploadRejected.WithDetails(strings.Join(msgs, "; "))
	}

	results, err := stager.UploadAll(ctx, input.CustomName)
	if err != nil {
		return nil, errors.Wrap(err, "upload batch failed")
	}

	srv.logger.InfoContext(ctx, "images uploaded", slog.Int("count", len(results)))

	return results, nil
}

// DeleteImage best-effort removes an uploaded blob. Foreign URLs are
// silently ignored.
func (srv *uploadService) DeleteImage(ctx context.Context, publicURL string) error {
	cleanupBlobs(ctx, srv.blobStore, srv.logger, publicURL)

	return nil
}
