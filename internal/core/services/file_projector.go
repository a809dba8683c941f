package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	"github.com/txnsuite/estate-reporting/internal/core/events"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
)

// FileProjector projects file-import events onto the read model.
type FileProjector struct {
	BaseService
	fileRepo portsrepo.FileRepository
}

// NewFileProjector creates a projector over the file repository.
func NewFileProjector(fileRepo portsrepo.FileRepository) *FileProjector {
	return &FileProjector{fileRepo: fileRepo}
}

var _ portssvc.EventProjector = (*FileProjector)(nil)

// Apply dispatches on the event's concrete type.
func (p *FileProjector) Apply(ctx context.Context, ev events.DomainEvent) error {
	switch e := ev.(type) {
	case *events.ImportLogCreated:
		return p.skipDuplicate(ctx, "import log", p.fileRepo.InsertImportLog(ctx, domain.FileImportLog{
			ImportLogID:       e.ImportLogID,
			EstateID:          e.EstateID,
			ImportLogDateTime: e.ImportLogDateTime,
		}))
	case *events.FileAddedToImportLog:
		return p.skipDuplicate(ctx, "import log file", p.fileRepo.InsertImportLogFile(ctx, domain.FileImportLogFile{
			ImportLogID:          e.ImportLogID,
			FileID:               e.FileID,
			EstateID:             e.EstateID,
			MerchantID:           e.MerchantID,
			UserID:               e.UserID,
			FilePath:             e.FilePath,
			FileProfileID:        e.FileProfileID,
			OriginalFileName:     e.OriginalFileName,
			FileUploadedDateTime: e.FileUploadedDateTime,
		}))
	case *events.FileCreated:
		return p.skipDuplicate(ctx, "file", p.fileRepo.InsertFile(ctx, domain.File{
			FileID:               e.FileID,
			ImportLogID:          e.ImportLogID,
			EstateID:             e.EstateID,
			MerchantID:           e.MerchantID,
			UserID:               e.UserID,
			FileProfileID:        e.FileProfileID,
			FileReceivedDateTime: e.FileReceivedDateTime,
		}))
	case *events.FileLineAdded:
		return p.skipDuplicate(ctx, "file line", p.fileRepo.InsertFileLine(ctx, domain.FileLine{
			FileID:       e.FileID,
			LineNumber:   e.LineNumber,
			FileLineData: e.FileLineData,
			Status:       domain.FileLineStatusPending,
		}))
	case *events.FileLineProcessingSuccessful:
		return p.fileRepo.UpdateFileLineStatus(ctx, e.FileID, e.LineNumber, domain.FileLineStatusSuccess, e.TransactionID)
	case *events.FileLineProcessingFailed:
		return p.fileRepo.UpdateFileLineStatus(ctx, e.FileID, e.LineNumber, domain.FileLineStatusFailed, e.TransactionID)
	case *events.FileLineProcessingIgnored:
		return p.fileRepo.UpdateFileLineStatus(ctx, e.FileID, e.LineNumber, domain.FileLineStatusIgnored, uuid.Nil)
	case *events.FileProcessingCompleted:
		return p.fileRepo.MarkFileCompleted(ctx, e.FileID)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, ev.EventType())
	}
}

func (p *FileProjector) skipDuplicate(ctx context.Context, what string, err error) error {
	if errors.Is(err, apperrors.ErrDuplicateEvent) {
		p.LogDebug(ctx, "Event redelivered, skipping", slog.String("entity", what))
		return nil
	}
	return err
}
