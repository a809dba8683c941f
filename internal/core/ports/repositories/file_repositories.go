package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// FileRepository persists batch-import bookkeeping rows.
type FileRepository interface {
	// InsertImportLog creates an import-log row.
	InsertImportLog(ctx context.Context, log domain.FileImportLog) error

	// InsertImportLogFile links an uploaded file into an import log.
	InsertImportLogFile(ctx context.Context, file domain.FileImportLogFile) error

	// InsertFile creates the file-processing row.
	InsertFile(ctx context.Context, file domain.File) error

	// InsertFileLine appends one pending line.
	InsertFileLine(ctx context.Context, line domain.FileLine) error

	// UpdateFileLineStatus records the processing outcome of one line.
	// transactionID is uuid.Nil for failed or ignored lines without one.
	// Zero rows matched yields apperrors.ErrOutOfOrderEvent.
	UpdateFileLineStatus(ctx context.Context, fileID uuid.UUID, lineNumber int, status domain.FileLineStatus, transactionID uuid.UUID) error

	// MarkFileCompleted closes the file's processing lifecycle.
	MarkFileCompleted(ctx context.Context, fileID uuid.UUID) error
}
